package commands

import (
	"context"
	"testing"

	"wemtool/internal/domain"
)

func testReport() *domain.CategoryReport {
	b := domain.NewReportBuilder(domain.NewCategorizer(domain.DefaultCategoryPrefixes, ""))
	b.Observe("Act_1/Roar.wem", 0)
	b.Observe("Amb_1/Roar.wem", 0)
	b.Observe("Misc/Click.wem", 0)
	return b.Finalize()
}

func TestAnalyzeCommand_Execute(t *testing.T) {
	reports := newFakeReports()
	analyzer := &fakeAnalyzer{report: testReport()}

	result, err := NewAnalyzeCommand(analyzer, reports, t.TempDir(), "analysis.json").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if reports.written["analysis.json"] != analyzer.report {
		t.Error("expected report to be written")
	}
	if len(result.Duplicates) != 1 || result.Duplicates[0].Filename != "Roar.wem" {
		t.Errorf("unexpected duplicates %+v", result.Duplicates)
	}
	if !contains(result.Message, "3 files into 3 categories, 1 duplicated names") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestAnalyzeCommand_RequiresOutput(t *testing.T) {
	cmd := NewAnalyzeCommand(&fakeAnalyzer{}, newFakeReports(), t.TempDir(), "")

	if err := cmd.Validate(); err == nil || !contains(err.Error(), "analysis path is required") {
		t.Errorf("expected analysis path error, got %v", err)
	}
}

func TestExportCommand_Execute(t *testing.T) {
	reports := newFakeReports()
	reports.written["analysis.json"] = testReport()

	result, err := NewExportCommand(reports, "analysis.json", "out").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Files) != 3 {
		t.Errorf("expected 3 files, got %v", result.Files)
	}
	if result.Message != "Exported 3 categories to out" {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestExportCommand_MissingReport(t *testing.T) {
	_, err := NewExportCommand(newFakeReports(), "absent.json", "out").Execute(context.Background())
	if err == nil {
		t.Fatal("expected error for missing report")
	}
}
