package ports

import "wemtool/internal/domain"

// MappingStore persists whole-mapping snapshots
type MappingStore interface {
	// Load reads the mapping at path. A missing file yields an error
	// matching domain.ErrMappingNotFound.
	Load(path string) (*domain.Mapping, error)

	// Save writes the mapping to path, replacing any previous snapshot
	Save(m *domain.Mapping, path string) error
}

// ReportStore persists category reports and exports them for spreadsheets
type ReportStore interface {
	Write(r *domain.CategoryReport, path string) error
	Read(path string) (*domain.CategoryReport, error)

	// ExportCSV writes one file per non-empty category into dir
	ExportCSV(r *domain.CategoryReport, dir string) ([]string, error)
}
