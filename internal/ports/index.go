package ports

import "wemtool/internal/domain"

// MappingIndex provides cached query access to a persisted mapping.
// All lookups should be O(log n) via database indexes.
type MappingIndex interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Rebuild replaces the indexed mapping in one transaction
	Rebuild(m *domain.Mapping) (*domain.SyncStats, error)

	// Queries
	LookupID(id string) (*domain.IndexMatch, error)
	LookupDebugName(debugName string) ([]domain.IndexMatch, error)
	Search(query string, limit int) ([]domain.IndexMatch, error)
	SharedNames() ([]domain.SharedName, error)
	SourcesFor(id string) ([]string, error)
	Count() (int, error)
}
