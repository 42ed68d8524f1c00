package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/config"
)

// ProvideScanner provides the metadata scanner.
func ProvideScanner(i do.Injector) (*filesystem.Scanner, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	return filesystem.NewScanner(log, filesystem.ScannerOptions{
		Extensions: cfg.Scan.Extensions,
		AssetKinds: cfg.Scan.AssetKinds,
		Exclude:    cfg.Scan.Exclude,
		OnlyFolder: cfg.Scan.OnlyFolder,
	}), nil
}

// ProvideRelocator provides the relocation engine sized from the config.
func ProvideRelocator(i do.Injector) (*filesystem.Relocator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	return filesystem.NewRelocator(log, cfg.WorkerCount(), cfg.Relocate.LogDir), nil
}

// ProvideAnalyzer provides the category analyzer.
func ProvideAnalyzer(i do.Injector) (*filesystem.Analyzer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	return filesystem.NewAnalyzer(log, filesystem.AnalyzerOptions{
		Extension:  cfg.Analyze.Extension,
		Categories: cfg.Analyze.Categories,
		CatchAll:   cfg.Analyze.CatchAll,
		Exclude:    cfg.Analyze.Exclude,
		Sizes:      cfg.Analyze.Sizes,
		Workers:    cfg.WorkerCount(),
	}), nil
}

// ProvideDialogueOrganizer provides the dialogue document planner.
func ProvideDialogueOrganizer(i do.Injector) (*filesystem.DialogueOrganizer, error) {
	log := do.MustInvoke[*slog.Logger](i)

	return filesystem.NewDialogueOrganizer(log), nil
}
