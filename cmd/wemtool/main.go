package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do/v2"

	"wemtool/internal/adapters/editor"
	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/adapters/tui"
	"wemtool/internal/config"
	"wemtool/internal/di"
	"wemtool/internal/di/providers"
	"wemtool/internal/logging"
)

func main() {
	configPath := flag.String("config", config.Path(), "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal; logs are shown in the run view
	sink := logging.NewSink(logging.ParseLevel(cfg.LogLevel))
	injector := di.NewContainer(&cfg, slog.New(sink))

	index, err := do.Invoke[*providers.IndexHandle](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	services := tui.Services{
		Scanner:      do.MustInvoke[*filesystem.Scanner](injector),
		Store:        do.MustInvoke[*filesystem.MappingStore](injector),
		Relocator:    do.MustInvoke[*filesystem.Relocator](injector),
		Analyzer:     do.MustInvoke[*filesystem.Analyzer](injector),
		Reports:      do.MustInvoke[*filesystem.ReportStore](injector),
		Planner:      do.MustInvoke[*filesystem.DialogueOrganizer](injector),
		Index:        index,
		MappingPath:  cfg.MappingPath,
		AnalysisPath: cfg.AnalysisPath,
	}
	app := tui.NewApp(services, sink, editor.NewOpener(), tui.Options{
		ConfigPath: *configPath,
		IndexPath:  index.Path(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	_, runErr := p.Run()
	if err := injector.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
