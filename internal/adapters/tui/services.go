package tui

import (
	"context"
	"fmt"

	"wemtool/internal/adapters/tui/views"
	"wemtool/internal/application/commands"
	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// maxDetails bounds the failure lines shown under a run summary
const maxDetails = 8

// Services are the adapters the operations run on
type Services struct {
	Scanner   ports.MetadataScanner
	Store     ports.MappingStore
	Relocator ports.Relocator
	Analyzer  ports.CategoryAnalyzer
	Reports   ports.ReportStore
	Planner   ports.DialoguePlanner
	Index     ports.MappingIndex

	MappingPath  string
	AnalysisPath string
}

// run executes op with the form values and reports the outcome
func (s Services) run(ctx context.Context, op views.Operation, values []string) views.RunFinishedMsg {
	arg := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	msg := views.RunFinishedMsg{Op: op}

	switch op {
	case views.OpScan:
		result, err := commands.NewScanCommand(s.Scanner, s.Store, arg(0), s.MappingPath).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message

	case views.OpUnobfuscate, views.OpObfuscate:
		dir := domain.Forward
		if op == views.OpObfuscate {
			dir = domain.Reverse
		}
		result, err := commands.NewRelocateCommand(s.Store, s.Relocator, s.MappingPath, arg(0), arg(1), dir).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message
		msg.Details = truncate(result.Summary.ErrorLines())
		msg.ErrorLog = result.Summary.ErrorLog

	case views.OpAnalyze:
		result, err := commands.NewAnalyzeCommand(s.Analyzer, s.Reports, arg(0), s.AnalysisPath).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message
		details := make([]string, 0, len(result.Duplicates))
		for _, rec := range result.Duplicates {
			details = append(details, fmt.Sprintf("%s (%d copies)", rec.Filename, len(rec.Paths)))
		}
		msg.Details = truncate(details)

	case views.OpExport:
		result, err := commands.NewExportCommand(s.Reports, s.AnalysisPath, arg(0)).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message

	case views.OpOrganizeDialogue:
		result, err := commands.NewOrganizeDialogueCommand(s.Planner, s.Relocator, arg(0), arg(1)).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message
		lines := make([]string, len(result.Failures))
		for i, f := range result.Failures {
			lines[i] = f.Line()
		}
		msg.Details = truncate(lines)

	case views.OpIndex:
		result, err := commands.NewIndexCommand(s.Store, s.Index, s.MappingPath).Execute(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Message = result.Message

	default:
		msg.Err = fmt.Errorf("operation %q cannot be run", op.Title())
	}
	return msg
}

func truncate(lines []string) []string {
	if len(lines) <= maxDetails {
		return lines
	}
	out := append([]string(nil), lines[:maxDetails]...)
	return append(out, fmt.Sprintf("... and %d more", len(lines)-maxDetails))
}
