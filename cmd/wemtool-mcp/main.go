package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do/v2"

	"wemtool/internal/adapters/filesystem"
	mcpadapter "wemtool/internal/adapters/mcp"
	"wemtool/internal/config"
	"wemtool/internal/di"
	"wemtool/internal/di/providers"
	"wemtool/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the TOML config file")
	mappingFlag := flag.String("mapping", "", "path to the mapping JSON (default from config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("wemtool-mcp: %v", err)
	}
	if *mappingFlag != "" {
		cfg.MappingPath = *mappingFlag
	}

	// stdout carries the protocol; logs go to stderr
	logger := logging.New(logging.Config{
		Writer: os.Stderr,
		Format: cfg.LogFormat,
		Level:  logging.ParseLevel(cfg.LogLevel),
	})
	injector := di.NewContainer(&cfg, logger)
	defer func() {
		if err := injector.Shutdown(); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	deps := mcpadapter.Deps{
		Scanner:      do.MustInvoke[*filesystem.Scanner](injector),
		Store:        do.MustInvoke[*filesystem.MappingStore](injector),
		Relocator:    do.MustInvoke[*filesystem.Relocator](injector),
		Analyzer:     do.MustInvoke[*filesystem.Analyzer](injector),
		Reports:      do.MustInvoke[*filesystem.ReportStore](injector),
		Index:        do.MustInvoke[*providers.IndexHandle](injector),
		MappingPath:  cfg.MappingPath,
		AnalysisPath: cfg.AnalysisPath,
	}

	mcpServer := server.NewMCPServer(
		"wemtool-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("wemtool-mcp stopped", "error", err)
	}
}
