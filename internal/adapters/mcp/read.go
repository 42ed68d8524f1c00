package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wemtool/internal/application/commands"
	"wemtool/internal/domain"
)

// RegisterReadTools adds the read-only mapping and report tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(lookupTool(), lookupHandler(deps))
	s.AddTool(duplicatesTool(), duplicatesHandler(deps))
	s.AddTool(sourcesTool(), sourcesHandler(deps))
	s.AddTool(reportTool(), reportHandler(deps))
}

// --- lookup ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup",
		mcp.WithDescription("Find mapping entries by media ID (e.g. Media/123456.wem) or by debug name. Exact matches are returned alone; otherwise ranked partial matches."),
		mcp.WithString("query",
			mcp.Description("Media ID, debug name or part of one"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func lookupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewLookupCommand(deps.Index, query, req.GetInt("limit", 20))
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLines(results, func(r commands.LookupResult) string {
			return fmt.Sprintf("%s  %s", r.ID, r.DebugName)
		})
	}
}

// --- duplicates ---

func duplicatesTool() mcp.Tool {
	return mcp.NewTool("duplicates",
		mcp.WithDescription("List debug names shared by several media IDs. Only one ID per name survives an obfuscate run."),
	)
}

func duplicatesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDuplicatesCommand(deps.Index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		lines := make([]string, len(result.Shared))
		for i, s := range result.Shared {
			lines[i] = fmt.Sprintf("%s  %s", s.DebugName, strings.Join(s.IDs, ", "))
		}
		return withMessage(lines, result.Message), nil
	}
}

// --- sources ---

func sourcesTool() mcp.Tool {
	return mcp.NewTool("sources",
		mcp.WithDescription("List the metadata files that asserted a media ID."),
		mcp.WithString("id",
			mcp.Description("Media ID (e.g. Media/123456.wem)"),
			mcp.Required(),
		),
	)
}

func sourcesHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		sources, err := deps.Index.SourcesFor(id)
		if err != nil {
			return toolError(err)
		}
		if len(sources) == 0 {
			return toolError(fmt.Errorf("media ID not indexed: %s", id))
		}
		return mcp.NewToolResultText(strings.Join(sources, "\n")), nil
	}
}

// --- report ---

func reportTool() mcp.Tool {
	return mcp.NewTool("report",
		mcp.WithDescription("Summarize a category report written by analyze: files per category and duplicated filenames."),
		mcp.WithString("path",
			mcp.Description("Report path. Omit to use the configured analysis path."),
		),
		mcp.WithString("category",
			mcp.Description("Only list this category's filenames"),
		),
	)
}

func reportHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := deps.Reports.Read(req.GetString("path", deps.AnalysisPath))
		if err != nil {
			return toolError(err)
		}

		if name := req.GetString("category", ""); name != "" {
			section, ok := report.Section(name)
			if !ok {
				return toolError(fmt.Errorf("category not in report: %s", name))
			}
			return formatLines(section.Records, func(r domain.CategoryRecord) string {
				return fmt.Sprintf("%s  %s", r.Filename, strings.Join(r.Paths, ", "))
			})
		}

		lines := make([]string, len(report.Sections))
		for i, s := range report.Sections {
			lines[i] = fmt.Sprintf("%s  %d", s.Name, len(s.Records))
		}
		message := fmt.Sprintf("%d files, %d duplicated names", report.Files, len(report.Duplicates()))
		return withMessage(lines, message), nil
	}
}
