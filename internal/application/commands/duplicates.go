package commands

import (
	"context"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// DuplicatesResult lists debug names shared by several IDs
type DuplicatesResult struct {
	Shared  []domain.SharedName
	Message string
}

// DuplicatesCommand reports debug names that collapse when the mapping is
// inverted; all but one ID per name are lost in a reverse run
type DuplicatesCommand struct {
	index ports.MappingIndex
}

// NewDuplicatesCommand creates a new DuplicatesCommand
func NewDuplicatesCommand(index ports.MappingIndex) *DuplicatesCommand {
	return &DuplicatesCommand{index: index}
}

// Execute lists the shared debug names
func (c *DuplicatesCommand) Execute(ctx context.Context) (*DuplicatesResult, error) {
	if n, err := c.index.Count(); err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	} else if n == 0 {
		return nil, application.ErrIndexEmpty
	}

	shared, err := c.index.SharedNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list shared debug names: %w", err)
	}

	lost := 0
	for _, s := range shared {
		lost += len(s.IDs) - 1
	}
	return &DuplicatesResult{
		Shared:  shared,
		Message: fmt.Sprintf("%d debug names shared by several IDs, %d IDs unreachable in reverse", len(shared), lost),
	}, nil
}
