package commands

import (
	"context"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// AnalyzeResult contains the category report and where it was written
type AnalyzeResult struct {
	Report     *domain.CategoryReport
	Duplicates []domain.CategoryRecord
	OutputPath string
	Message    string
}

// AnalyzeCommand groups asset files by category and reports duplicates
type AnalyzeCommand struct {
	analyzer   ports.CategoryAnalyzer
	reports    ports.ReportStore
	Root       string
	OutputPath string
}

// NewAnalyzeCommand creates a new AnalyzeCommand
func NewAnalyzeCommand(analyzer ports.CategoryAnalyzer, reports ports.ReportStore, root, outputPath string) *AnalyzeCommand {
	return &AnalyzeCommand{
		analyzer:   analyzer,
		reports:    reports,
		Root:       root,
		OutputPath: outputPath,
	}
}

// Validate checks if the analysis can run
func (c *AnalyzeCommand) Validate() error {
	if err := application.ValidateDirectory("root", c.Root); err != nil {
		return err
	}
	return application.ValidateRequired("analysisPath", c.OutputPath)
}

// Execute analyzes the tree and writes the report
func (c *AnalyzeCommand) Execute(ctx context.Context) (*AnalyzeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.analyzer.Analyze(ctx, c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", c.Root, err)
	}

	if err := c.reports.Write(report, c.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	dups := report.Duplicates()
	return &AnalyzeResult{
		Report:     report,
		Duplicates: dups,
		OutputPath: c.OutputPath,
		Message: fmt.Sprintf("Analyzed %d files into %d categories, %d duplicated names, wrote %s",
			report.Files, len(report.Sections), len(dups), c.OutputPath),
	}, nil
}
