package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wemtool/internal/domain"
	"wemtool/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.MappingIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements MappingIndex
var _ ports.MappingIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// DefaultPath returns the index location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wemtool", "index.db")
}

// Open creates or opens the database at dbPath
func (idx *Index) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	idx.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			debug_name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS sources (
			id TEXT NOT NULL,
			source TEXT NOT NULL,
			PRIMARY KEY (id, source)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_debug_name ON entries(debug_name);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (idx *Index) Path() string {
	return idx.dbPath
}

// LookupID returns the entry for an opaque ID, or nil when absent
func (idx *Index) LookupID(id string) (*domain.IndexMatch, error) {
	var m domain.IndexMatch
	err := idx.db.QueryRow(`
		SELECT e.id, e.debug_name, (SELECT COUNT(*) FROM sources s WHERE s.id = e.id)
		FROM entries e WHERE e.id = ?
	`, domain.NormalizeSlashes(id)).Scan(&m.ID, &m.DebugName, &m.SourceCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// LookupDebugName returns every ID carrying exactly debugName
func (idx *Index) LookupDebugName(debugName string) ([]domain.IndexMatch, error) {
	return idx.queryMatches(`
		SELECT e.id, e.debug_name, (SELECT COUNT(*) FROM sources s WHERE s.id = e.id)
		FROM entries e WHERE e.debug_name = ?
		ORDER BY e.id
	`, domain.NormalizeSlashes(debugName))
}

// Search matches query as a case-insensitive substring of the ID or debug name
func (idx *Index) Search(query string, limit int) ([]domain.IndexMatch, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + escapeLike(domain.NormalizeSlashes(query)) + "%"
	return idx.queryMatches(`
		SELECT e.id, e.debug_name, (SELECT COUNT(*) FROM sources s WHERE s.id = e.id)
		FROM entries e
		WHERE e.debug_name LIKE ? ESCAPE '\' OR e.id LIKE ? ESCAPE '\'
		ORDER BY e.debug_name, e.id
		LIMIT ?
	`, pattern, pattern, limit)
}

// SharedNames lists debug names asserted for more than one ID
func (idx *Index) SharedNames() ([]domain.SharedName, error) {
	rows, err := idx.db.Query(`
		SELECT debug_name, id FROM entries
		WHERE debug_name IN (
			SELECT debug_name FROM entries GROUP BY debug_name HAVING COUNT(*) > 1
		)
		ORDER BY debug_name, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shared []domain.SharedName
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return nil, err
		}
		if n := len(shared); n > 0 && shared[n-1].DebugName == name {
			shared[n-1].IDs = append(shared[n-1].IDs, id)
			continue
		}
		shared = append(shared, domain.SharedName{DebugName: name, IDs: []string{id}})
	}

	return shared, rows.Err()
}

// SourcesFor returns the metadata documents that asserted id
func (idx *Index) SourcesFor(id string) ([]string, error) {
	rows, err := idx.db.Query(`SELECT source FROM sources WHERE id = ? ORDER BY source`, domain.NormalizeSlashes(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}

	return sources, rows.Err()
}

// Count returns the number of indexed entries
func (idx *Index) Count() (int, error) {
	var n int
	err := idx.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

func (idx *Index) queryMatches(query string, args ...any) ([]domain.IndexMatch, error) {
	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.IndexMatch
	for rows.Next() {
		var m domain.IndexMatch
		if err := rows.Scan(&m.ID, &m.DebugName, &m.SourceCount); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// escapeLike escapes LIKE wildcards; debug names are full of underscores
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// beginTx starts a new transaction
func (idx *Index) beginTx() (*mappingTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &mappingTx{tx: tx}, nil
}
