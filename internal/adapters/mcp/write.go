package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wemtool/internal/application/commands"
	"wemtool/internal/domain"
)

// RegisterWriteTools adds the tools that write mappings, reports or asset trees.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(scanTool(), scanHandler(deps))
	s.AddTool(indexTool(), indexHandler(deps))
	s.AddTool(relocateTool("unobfuscate", "Copy assets from media ID paths to debug-name paths."), relocateHandler(deps, domain.Forward))
	s.AddTool(relocateTool("obfuscate", "Copy assets from debug-name paths back to media ID paths."), relocateHandler(deps, domain.Reverse))
	s.AddTool(analyzeTool(), analyzeHandler(deps))
	s.AddTool(exportTool(), exportHandler(deps))
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Scan exported metadata JSON and save the media ID to debug name mapping."),
		mcp.WithString("root",
			mcp.Description("Directory of exported metadata"),
			mcp.Required(),
		),
		mcp.WithBoolean("merge",
			mcp.Description("Merge into the existing mapping instead of replacing it"),
		),
	)
}

func scanHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewScanCommand(deps.Scanner, deps.Store, req.GetString("root", ""), deps.MappingPath)
		cmd.Merge = req.GetBool("merge", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- index ---

func indexTool() mcp.Tool {
	return mcp.NewTool("index",
		mcp.WithDescription("Rebuild the lookup index from the saved mapping. Run after scan."),
	)
}

func indexHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewIndexCommand(deps.Store, deps.Index, deps.MappingPath).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- unobfuscate / obfuscate ---

func relocateTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description+" Failed copies are listed and written to an error log."),
		mcp.WithString("source",
			mcp.Description("Source root"),
			mcp.Required(),
		),
		mcp.WithString("destination",
			mcp.Description("Destination root, created if missing"),
			mcp.Required(),
		),
	)
}

func relocateHandler(deps Deps, dir domain.Direction) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRelocateCommand(deps.Store, deps.Relocator, deps.MappingPath,
			req.GetString("source", ""), req.GetString("destination", ""), dir)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return withMessage(result.Summary.ErrorLines(), result.Message), nil
	}
}

// --- analyze ---

func analyzeTool() mcp.Tool {
	return mcp.NewTool("analyze",
		mcp.WithDescription("Group .wem files by category and filename and write the JSON report."),
		mcp.WithString("root",
			mcp.Description("Asset directory"),
			mcp.Required(),
		),
		mcp.WithString("output",
			mcp.Description("Report path. Omit to use the configured analysis path."),
		),
	)
}

func analyzeHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAnalyzeCommand(deps.Analyzer, deps.Reports,
			req.GetString("root", ""), req.GetString("output", deps.AnalysisPath))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Write one CSV per category from a report written by analyze."),
		mcp.WithString("output_dir",
			mcp.Description("Directory for the CSV files"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Report path. Omit to use the configured analysis path."),
		),
	)
}

func exportHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewExportCommand(deps.Reports,
			req.GetString("path", deps.AnalysisPath), req.GetString("output_dir", ""))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return withMessage(result.Files, result.Message), nil
	}
}
