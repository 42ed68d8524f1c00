package commands

import (
	"context"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// IndexResult contains the statistics of an index rebuild
type IndexResult struct {
	Stats   *domain.SyncStats
	Message string
}

// IndexCommand loads the mapping snapshot into the query index
type IndexCommand struct {
	store       ports.MappingStore
	index       ports.MappingIndex
	MappingPath string
}

// NewIndexCommand creates a new IndexCommand
func NewIndexCommand(store ports.MappingStore, index ports.MappingIndex, mappingPath string) *IndexCommand {
	return &IndexCommand{
		store:       store,
		index:       index,
		MappingPath: mappingPath,
	}
}

// Execute rebuilds the index from the mapping
func (c *IndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	if err := application.ValidateRequired("mappingPath", c.MappingPath); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.MappingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}

	stats, err := c.index.Rebuild(m)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}

	return &IndexResult{
		Stats: stats,
		Message: fmt.Sprintf("Indexed %d IDs (%d sources, %d shared debug names)",
			stats.EntriesWritten, stats.SourcesWritten, stats.SharedNames),
	}, nil
}
