package sqlite

import (
	"time"

	"wemtool/internal/domain"
)

// Rebuild replaces the indexed mapping. The old contents stay visible until
// the new ones commit.
func (idx *Index) Rebuild(m *domain.Mapping) (*domain.SyncStats, error) {
	start := time.Now()

	tx, err := idx.beginTx()
	if err != nil {
		return nil, err
	}
	if err := idx.fill(tx, m); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	shared, err := idx.SharedNames()
	if err != nil {
		return nil, err
	}

	return &domain.SyncStats{
		EntriesWritten: tx.written,
		SourcesWritten: tx.sources,
		SharedNames:    len(shared),
		Duration:       time.Since(start),
	}, nil
}

func (idx *Index) fill(tx *mappingTx, m *domain.Mapping) error {
	if err := tx.clear(); err != nil {
		return err
	}
	if err := tx.prepare(); err != nil {
		return err
	}
	if m != nil {
		for _, e := range m.Entries {
			if err := tx.insertEntry(e); err != nil {
				return err
			}
		}
	}
	return tx.setMeta("last_sync_time", time.Now().Unix())
}

// LastSync returns when the index was last rebuilt; zero when never
func (idx *Index) LastSync() time.Time {
	var unix int64
	if err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&unix); err != nil {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
