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

// AnalyzerOptions configures an Analyzer
type AnalyzerOptions struct {
	Extension  string   // asset extension, default ".wem"
	Categories []string // ordered directory-name prefixes
	CatchAll   string
	Exclude    []string
	Sizes      bool // stat every file and fill TotalBytes
	Workers    int  // pool size for size enrichment
}

// Analyzer groups asset files by filename and parent-directory category
type Analyzer struct {
	logger *slog.Logger
	opts   AnalyzerOptions
}

// Ensure Analyzer implements CategoryAnalyzer
var _ ports.CategoryAnalyzer = (*Analyzer)(nil)

// NewAnalyzer creates a new analyzer
func NewAnalyzer(logger *slog.Logger, opts AnalyzerOptions) *Analyzer {
	if opts.Extension == "" {
		opts.Extension = ".wem"
	}
	if opts.Categories == nil {
		opts.Categories = domain.DefaultCategoryPrefixes
	}
	return &Analyzer{logger: logger, opts: opts}
}

// Analyze walks root and builds the category report
func (a *Analyzer) Analyze(ctx context.Context, root string) (*domain.CategoryReport, error) {
	root = ExpandHome(root)
	if err := requireDir(root); err != nil {
		return nil, err
	}

	ext := strings.ToLower(a.opts.Extension)
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			a.logger.Error("walk error", "path", p, "error", err)
			if d != nil && d.IsDir() && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		rel := relSlash(root, p)
		if d.IsDir() {
			if p != root && excluded(a.opts.Exclude, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.ToLower(path.Ext(rel)) != ext || excluded(a.opts.Exclude, rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var sizes []int64
	if a.opts.Sizes {
		sizes = Run(ctx, NewPool(a.opts.Workers), len(files),
			func(i int) int64 {
				info, err := os.Stat(filepath.Join(root, filepath.FromSlash(files[i])))
				if err != nil {
					a.logger.Warn("failed to stat asset", "path", files[i], "error", err)
					return 0
				}
				return info.Size()
			},
			func(int) int64 { return 0 })
	}

	builder := domain.NewReportBuilder(domain.NewCategorizer(a.opts.Categories, a.opts.CatchAll))
	for i, rel := range files {
		var size int64
		if sizes != nil {
			size = sizes[i]
		}
		builder.Observe(rel, size)
	}
	report := builder.Finalize()

	a.logger.Info("analysis complete",
		"root", root,
		"files", report.Files,
		"categories", len(report.Sections),
		"duplicates", len(report.Duplicates()))
	return report, nil
}
