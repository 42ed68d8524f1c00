package filesystem

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// DialogueOrganizer plans copies of dialogue metadata documents into the
// directory layout named by their object path
type DialogueOrganizer struct {
	logger *slog.Logger
}

// Ensure DialogueOrganizer implements DialoguePlanner
var _ ports.DialoguePlanner = (*DialogueOrganizer)(nil)

// NewDialogueOrganizer creates a new dialogue organizer
func NewDialogueOrganizer(logger *slog.Logger) *DialogueOrganizer {
	return &DialogueOrganizer{logger: logger}
}

// Plan walks srcRoot for dialogue documents and returns one task per match,
// copying it to dstRoot/dir(ObjectPath)/<file name>. Secondary "*.2.json"
// exports are ignored.
func (o *DialogueOrganizer) Plan(ctx context.Context, srcRoot, dstRoot string) ([]domain.CopyTask, *domain.DialogueStats, error) {
	srcRoot = ExpandHome(srcRoot)
	dstRoot = ExpandHome(dstRoot)
	if err := requireDir(srcRoot); err != nil {
		return nil, nil, err
	}

	stats := &domain.DialogueStats{}
	var tasks []domain.CopyTask
	err := filepath.WalkDir(srcRoot, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			o.logger.Error("walk error", "path", p, "error", err)
			return nil
		}
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".2.json") {
			return nil
		}
		stats.FilesScanned++

		data, err := os.ReadFile(p)
		if err != nil {
			stats.ParseErrors++
			o.logger.Warn("skipping unreadable dialogue", "path", p, "error", err)
			return nil
		}
		doc, err := domain.ParseNode(data)
		if err != nil {
			stats.ParseErrors++
			o.logger.Warn("skipping malformed dialogue", "error", &domain.ParseError{Path: p, Err: err})
			return nil
		}
		objectPath, ok := domain.DialogueObjectPath(doc)
		if !ok {
			return nil
		}

		dst, err := dialogueDestination(dstRoot, objectPath, name)
		if err != nil {
			stats.Unsafe++
			o.logger.Warn("skipping dialogue with unsafe object path", "path", p, "object_path", objectPath)
			return nil
		}
		stats.Matched++
		tasks = append(tasks, domain.CopyTask{Source: p, Destination: dst})
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return tasks, stats, nil
}

func dialogueDestination(dstRoot, objectPath, name string) (string, error) {
	dir := path.Dir(strings.TrimLeft(domain.NormalizeSlashes(objectPath), "/"))
	if dir == "." {
		return filepath.Join(dstRoot, name), nil
	}
	return under(dstRoot, dir+"/"+name)
}
