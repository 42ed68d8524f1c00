package commands

import (
	"context"
	"fmt"

	"wemtool/internal/application"
	"wemtool/internal/ports"
)

// ExportResult lists the files written by an export
type ExportResult struct {
	Files   []string
	Message string
}

// ExportCommand converts a category report into one CSV per category
type ExportCommand struct {
	reports      ports.ReportStore
	AnalysisPath string
	OutDir       string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(reports ports.ReportStore, analysisPath, outDir string) *ExportCommand {
	return &ExportCommand{
		reports:      reports,
		AnalysisPath: analysisPath,
		OutDir:       outDir,
	}
}

// Validate checks if the export can run
func (c *ExportCommand) Validate() error {
	if err := application.ValidateRequired("analysisPath", c.AnalysisPath); err != nil {
		return err
	}
	return application.ValidateRequired("outDir", c.OutDir)
}

// Execute reads the report and writes the CSV files
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	report, err := c.reports.Read(c.AnalysisPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	files, err := c.reports.ExportCSV(report, c.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	return &ExportResult{
		Files:   files,
		Message: fmt.Sprintf("Exported %d categories to %s", len(files), c.OutDir),
	}, nil
}
