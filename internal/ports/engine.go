package ports

import (
	"context"

	"wemtool/internal/domain"
)

// MetadataScanner builds a mapping from a tree of exported metadata documents
type MetadataScanner interface {
	Scan(ctx context.Context, root string) (*domain.Mapping, *domain.ScanStats, error)
}

// Relocator copies files between the opaque and debug naming schemes
type Relocator interface {
	Relocate(ctx context.Context, m *domain.Mapping, srcRoot, dstRoot string, dir domain.Direction) (*domain.RunSummary, error)

	// Execute runs a precomputed task list on the worker pool
	Execute(ctx context.Context, tasks []domain.CopyTask) []domain.CopyResult
}

// CategoryAnalyzer groups asset files by filename and directory category
type CategoryAnalyzer interface {
	Analyze(ctx context.Context, root string) (*domain.CategoryReport, error)
}

// DialoguePlanner finds dialogue documents and plans where they are copied
type DialoguePlanner interface {
	Plan(ctx context.Context, srcRoot, dstRoot string) ([]domain.CopyTask, *domain.DialogueStats, error)
}
