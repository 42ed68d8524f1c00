// Package providers contains dependency injection providers for wemtool.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"wemtool/internal/adapters/filesystem"
	"wemtool/internal/adapters/sqlite"
	"wemtool/internal/config"
)

// ProvideMappingStore provides the JSON mapping store.
func ProvideMappingStore(i do.Injector) (*filesystem.MappingStore, error) {
	return filesystem.NewMappingStore(), nil
}

// ProvideReportStore provides the category report store.
func ProvideReportStore(i do.Injector) (*filesystem.ReportStore, error) {
	return filesystem.NewReportStore(), nil
}

// IndexHandle wraps the mapping index with shutdown capability.
type IndexHandle struct {
	*sqlite.Index
}

// Shutdown implements do.Shutdownable.
func (h *IndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideIndex provides the opened SQLite mapping index.
func ProvideIndex(i do.Injector) (*IndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	index := sqlite.NewIndex()
	if err := index.Open(cfg.IndexPath); err != nil {
		return nil, err
	}

	log.Debug("Mapping index opened", "path", index.Path())

	return &IndexHandle{Index: index}, nil
}
