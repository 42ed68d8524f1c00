package commands

import (
	"context"
	"errors"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// ScanResult contains the result of scanning metadata into a mapping
type ScanResult struct {
	Mapping     *domain.Mapping
	Stats       *domain.ScanStats
	MappingPath string
	Merged      int // entries carried over from the previous snapshot
	Message     string
}

// ScanCommand builds the ID -> debug name mapping from exported metadata
type ScanCommand struct {
	scanner     ports.MetadataScanner
	store       ports.MappingStore
	Root        string
	MappingPath string
	Merge       bool // fold the existing snapshot in instead of replacing it
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(scanner ports.MetadataScanner, store ports.MappingStore, root, mappingPath string) *ScanCommand {
	return &ScanCommand{
		scanner:     scanner,
		store:       store,
		Root:        root,
		MappingPath: mappingPath,
	}
}

// Validate checks if the scan can run
func (c *ScanCommand) Validate() error {
	if err := application.ValidateDirectory("root", c.Root); err != nil {
		return err
	}
	return application.ValidateRequired("mappingPath", c.MappingPath)
}

// Execute scans the metadata tree and saves the mapping
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, stats, err := c.scanner.Scan(ctx, c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", c.Root, err)
	}

	merged := 0
	if c.Merge {
		previous, err := c.store.Load(c.MappingPath)
		switch {
		case err == nil:
			scanned := m.Len()
			m = previous.Merge(m)
			merged = m.Len() - scanned
		case !errors.Is(err, domain.ErrMappingNotFound):
			return nil, fmt.Errorf("failed to load previous mapping: %w", err)
		}
	}

	if err := c.store.Save(m, c.MappingPath); err != nil {
		return nil, fmt.Errorf("failed to save mapping: %w", err)
	}

	msg := fmt.Sprintf("Mapped %d IDs from %d files to %s", m.Len(), stats.FilesScanned, c.MappingPath)
	if stats.Conflicts > 0 || stats.ParseErrors > 0 {
		msg += fmt.Sprintf(" (%d conflicts, %d unreadable)", stats.Conflicts, stats.ParseErrors)
	}

	return &ScanResult{
		Mapping:     m,
		Stats:       stats,
		MappingPath: c.MappingPath,
		Merged:      merged,
		Message:     msg,
	}, nil
}
