// Package di wires the adapters shared by the CLI, TUI and MCP front ends.
package di

import (
	"log/slog"

	"github.com/samber/do/v2"

	"wemtool/internal/config"
	"wemtool/internal/di/providers"
)

// NewContainer creates the DI container. Services are built lazily on first
// invoke, so commands that never touch the index never open it.
func NewContainer(cfg *config.Config, logger *slog.Logger) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	// Storage layer
	do.Provide(injector, providers.ProvideMappingStore)
	do.Provide(injector, providers.ProvideReportStore)
	do.Provide(injector, providers.ProvideIndex)

	// Engine layer
	do.Provide(injector, providers.ProvideScanner)
	do.Provide(injector, providers.ProvideRelocator)
	do.Provide(injector, providers.ProvideAnalyzer)
	do.Provide(injector, providers.ProvideDialogueOrganizer)

	return injector
}
