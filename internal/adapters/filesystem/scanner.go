package filesystem

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// ScannerOptions configures which metadata documents a Scanner reads
type ScannerOptions struct {
	Extensions []string // file suffixes, matched case-insensitively
	AssetKinds []string // Type values carrying media tables
	Exclude    []string // doublestar patterns on root-relative paths
	OnlyFolder string   // when set, only files below a directory with this name
}

// Scanner walks a tree of exported metadata JSON and builds a mapping
type Scanner struct {
	logger *slog.Logger
	opts   ScannerOptions
}

// Ensure Scanner implements MetadataScanner
var _ ports.MetadataScanner = (*Scanner)(nil)

// NewScanner creates a new metadata scanner
func NewScanner(logger *slog.Logger, opts ScannerOptions) *Scanner {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".json"}
	}
	if opts.AssetKinds == nil {
		opts.AssetKinds = domain.DefaultAssetKinds
	}
	return &Scanner{logger: logger, opts: opts}
}

// Scan visits every metadata document under root in lexical order. Documents
// that cannot be read or parsed are logged and skipped. When an ID is seen
// again with a different debug name the later one wins and a warning is logged.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.Mapping, *domain.ScanStats, error) {
	root = ExpandHome(root)
	if err := requireDir(root); err != nil {
		return nil, nil, err
	}

	builder := domain.NewMappingBuilder()
	stats := &domain.ScanStats{}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.Error("walk error", "path", p, "error", err)
			if d != nil && d.IsDir() && p != root {
				return filepath.SkipDir
			}
			return nil
		}

		rel := relSlash(root, p)
		if d.IsDir() {
			if p != root && excluded(s.opts.Exclude, rel) {
				s.logger.Debug("skipping excluded directory", "path", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if !s.wants(rel) {
			return nil
		}
		if excluded(s.opts.Exclude, rel) || !s.inFolder(rel) {
			stats.Skipped++
			return nil
		}

		s.scanFile(p, rel, builder, stats)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	m := builder.Finalize()
	s.logger.Info("scan complete",
		"root", root,
		"files", stats.FilesScanned,
		"entries", m.Len(),
		"conflicts", stats.Conflicts,
		"parse_errors", stats.ParseErrors)
	return m, stats, nil
}

func (s *Scanner) wants(rel string) bool {
	name := strings.ToLower(path.Base(rel))
	for _, ext := range s.opts.Extensions {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (s *Scanner) inFolder(rel string) bool {
	if s.opts.OnlyFolder == "" {
		return true
	}
	return slices.Contains(strings.Split(path.Dir(rel), "/"), s.opts.OnlyFolder)
}

func (s *Scanner) scanFile(p, rel string, builder *domain.MappingBuilder, stats *domain.ScanStats) {
	stats.FilesScanned++

	data, err := os.ReadFile(p)
	if err != nil {
		stats.ParseErrors++
		s.logger.Warn("skipping unreadable metadata", "path", rel, "error", err)
		return
	}
	doc, err := domain.ParseNode(data)
	if err != nil {
		stats.ParseErrors++
		s.logger.Warn("skipping malformed metadata", "error", &domain.ParseError{Path: rel, Err: err})
		return
	}

	refs := domain.ExtractMedia(doc, s.opts.AssetKinds)
	for _, ref := range refs {
		stats.MediaFound++
		if c, conflicted := builder.Observe(ref.ID, ref.DebugName, rel); conflicted {
			stats.Conflicts++
			s.logger.Warn("debug name changed, keeping latest",
				"id", c.ID,
				"previous", c.Previous,
				"current", c.Current,
				"source", c.Source)
		}
	}
	if len(refs) > 0 {
		s.logger.Debug("scanned metadata", "path", rel, "media", len(refs))
	}
}
