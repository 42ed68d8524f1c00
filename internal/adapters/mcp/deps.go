package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"wemtool/internal/ports"
)

// Deps are the services and default paths the tools operate on
type Deps struct {
	Scanner   ports.MetadataScanner
	Store     ports.MappingStore
	Relocator ports.Relocator
	Analyzer  ports.CategoryAnalyzer
	Reports   ports.ReportStore
	Index     ports.MappingIndex

	MappingPath  string
	AnalysisPath string
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatLines[T any](items []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(format(it))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func withMessage(lines []string, message string) *mcp.CallToolResult {
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "%s\n", l)
	}
	sb.WriteString(message)
	return mcp.NewToolResultText(sb.String())
}
