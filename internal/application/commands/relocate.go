package commands

import (
	"context"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// RelocateResult contains the result of a relocation run
type RelocateResult struct {
	Summary *domain.RunSummary
	Message string
}

// RelocateCommand copies asset files into the other naming scheme
type RelocateCommand struct {
	store       ports.MappingStore
	relocator   ports.Relocator
	MappingPath string
	SrcRoot     string
	DstRoot     string
	Direction   domain.Direction
}

// NewRelocateCommand creates a new RelocateCommand
func NewRelocateCommand(store ports.MappingStore, relocator ports.Relocator, mappingPath, srcRoot, dstRoot string, dir domain.Direction) *RelocateCommand {
	return &RelocateCommand{
		store:       store,
		relocator:   relocator,
		MappingPath: mappingPath,
		SrcRoot:     srcRoot,
		DstRoot:     dstRoot,
		Direction:   dir,
	}
}

// Validate checks if the relocation can run
func (c *RelocateCommand) Validate() error {
	if c.Direction != domain.Forward && c.Direction != domain.Reverse {
		return &application.ValidationError{
			Field:   "direction",
			Message: fmt.Sprintf("%v: %d", application.ErrInvalidDirection, c.Direction),
		}
	}
	if err := application.ValidateRequired("mappingPath", c.MappingPath); err != nil {
		return err
	}
	if err := application.ValidateDirectory("srcRoot", c.SrcRoot); err != nil {
		return err
	}
	if err := application.ValidateRequired("dstRoot", c.DstRoot); err != nil {
		return err
	}
	return application.ValidateDistinctRoots(c.SrcRoot, c.DstRoot)
}

// Execute loads the mapping and runs the relocation. Per-file failures are
// reported in the summary, not as an error.
func (c *RelocateCommand) Execute(ctx context.Context) (*RelocateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.MappingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping: %w", err)
	}

	summary, err := c.relocator.Relocate(ctx, m, c.SrcRoot, c.DstRoot, c.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", c.Direction, err)
	}

	return &RelocateResult{
		Summary: summary,
		Message: summary.Message(),
	}, nil
}
