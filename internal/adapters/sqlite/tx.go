package sqlite

import (
	"database/sql"
	"fmt"

	"wemtool/internal/domain"
)

// mappingTx writes mapping rows inside one transaction
type mappingTx struct {
	tx      *sql.Tx
	entry   *sql.Stmt
	source  *sql.Stmt
	written int
	sources int
}

// clear removes every indexed row
func (t *mappingTx) clear() error {
	if _, err := t.tx.Exec(`DELETE FROM sources`); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM entries`)
	return err
}

// prepare compiles the insert statements
func (t *mappingTx) prepare() error {
	var err error
	t.entry, err = t.tx.Prepare(`INSERT OR REPLACE INTO entries (id, debug_name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	t.source, err = t.tx.Prepare(`INSERT OR IGNORE INTO sources (id, source) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare source insert: %w", err)
	}
	return nil
}

// insertEntry adds an entry and its source documents
func (t *mappingTx) insertEntry(e domain.MappingEntry) error {
	if _, err := t.entry.Exec(e.ID, e.DebugName); err != nil {
		return fmt.Errorf("failed to insert %s: %w", e.ID, err)
	}
	t.written++
	for _, src := range e.SourceFiles {
		if _, err := t.source.Exec(e.ID, src); err != nil {
			return fmt.Errorf("failed to insert source of %s: %w", e.ID, err)
		}
		t.sources++
	}
	return nil
}

// setMeta records a metadata value
func (t *mappingTx) setMeta(key string, value any) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *mappingTx) close() {
	if t.entry != nil {
		t.entry.Close()
	}
	if t.source != nil {
		t.source.Close()
	}
}

// Commit commits the transaction
func (t *mappingTx) Commit() error {
	t.close()
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *mappingTx) Rollback() error {
	t.close()
	return t.tx.Rollback()
}
