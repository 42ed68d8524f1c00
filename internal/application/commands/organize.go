package commands

import (
	"context"
	"fmt"
	"time"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// OrganizeDialogueResult contains the outcome of organizing dialogue documents
type OrganizeDialogueResult struct {
	Stats     *domain.DialogueStats
	Succeeded int
	Failures  []domain.CopyFailure
	Elapsed   time.Duration
	Message   string
}

// OrganizeDialogueCommand copies dialogue metadata documents into the
// directory tree named by their object paths
type OrganizeDialogueCommand struct {
	planner  ports.DialoguePlanner
	executor ports.Relocator
	SrcRoot  string
	DstRoot  string
}

// NewOrganizeDialogueCommand creates a new OrganizeDialogueCommand
func NewOrganizeDialogueCommand(planner ports.DialoguePlanner, executor ports.Relocator, srcRoot, dstRoot string) *OrganizeDialogueCommand {
	return &OrganizeDialogueCommand{
		planner:  planner,
		executor: executor,
		SrcRoot:  srcRoot,
		DstRoot:  dstRoot,
	}
}

// Validate checks if the organizer can run
func (c *OrganizeDialogueCommand) Validate() error {
	if err := application.ValidateDirectory("srcRoot", c.SrcRoot); err != nil {
		return err
	}
	if err := application.ValidateRequired("dstRoot", c.DstRoot); err != nil {
		return err
	}
	return application.ValidateDistinctRoots(c.SrcRoot, c.DstRoot)
}

// Execute plans and runs the copies
func (c *OrganizeDialogueCommand) Execute(ctx context.Context) (*OrganizeDialogueResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	tasks, stats, err := c.planner.Plan(ctx, c.SrcRoot, c.DstRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to plan dialogue copies: %w", err)
	}

	result := &OrganizeDialogueResult{Stats: stats}
	for _, r := range c.executor.Execute(ctx, tasks) {
		if r.Err != nil {
			result.Failures = append(result.Failures, domain.FailureFromResult(r))
			continue
		}
		result.Succeeded++
	}
	result.Elapsed = time.Since(start)

	result.Message = fmt.Sprintf("Organized %d/%d dialogue files", result.Succeeded, len(tasks))
	if n := len(result.Failures); n > 0 {
		result.Message += fmt.Sprintf(", %d failed", n)
	}
	return result, nil
}
