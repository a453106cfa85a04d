package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/snippets/pkg/types"
)

// Compile-time interface check: Store must implement types.Storage.
var _ types.Storage = (*Store)(nil)

// Store is the SQLite-backed session store. It owns the on-disk file and all
// serialization; callers only see hydrated records. Single-process,
// single-writer: no cross-process coordination is provided.
type Store struct {
	file string
	db   *sql.DB
}

// Open opens the store file, creating it and the schema when the file does
// not exist yet. An existing file is opened unchanged after a schema
// compatibility check. All failures wrap types.ErrStoreOpen.
func Open(file string) (*Store, error) {
	_, statErr := os.Stat(file)
	shouldCreateSchema := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStoreOpen, err)
	}

	if shouldCreateSchema {
		for _, ddl := range schemaStatements {
			if _, err := db.Exec(ddl); err != nil {
				db.Close()
				os.Remove(file)
				return nil, fmt.Errorf("%w: creating schema: %v", types.ErrStoreOpen, err)
			}
		}
	} else {
		if err := verifySchema(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{file: file, db: db}, nil
}

// verifySchema checks that an existing file carries all required tables.
func verifySchema(db *sql.DB) error {
	for _, table := range requiredTables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: incompatible schema, missing table %s", types.ErrStoreOpen, table)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", types.ErrStoreOpen, err)
		}
	}
	return nil
}

// conn returns the live database handle, or ErrStoreClosed after Close or
// Destroy. Every store operation goes through here so that use-after-teardown
// fails fast instead of silently succeeding.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// File returns the path of the backing file.
func (s *Store) File() string {
	return s.file
}

// Close releases the backing resource. Idempotent on the handle: further
// operations return ErrStoreClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// Destroy closes the store and irreversibly deletes the backing file. Used
// only at end-of-session teardown.
func (s *Store) Destroy() error {
	if err := s.Close(); err != nil {
		return err
	}
	if err := os.Remove(s.file); err != nil {
		return fmt.Errorf("removing store file: %w", err)
	}
	return nil
}
