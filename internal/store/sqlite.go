package store

import (
	"database/sql"
	"errors"
	"fmt"

	"hangar-go/internal/hangar"
	"hangar-go/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore keeps every snapshot in a single-table SQLite database. Each
// mutation still replaces the whole snapshot blob for its key; SQLite buys
// durable single-statement writes, not row-level item storage.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the snapshot database at path and brings
// its schema up to date. path can be ":memory:" for tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Get returns the snapshot blob for key, or (nil, nil) if it has never been
// written.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the snapshot blob for key in a single upsert statement.
func (s *SQLiteStore) Set(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot %s: %w", key, err)
	}
	return nil
}

// ValidateSetup verifies the schema is at the latest version.
func (s *SQLiteStore) ValidateSetup() error {
	return migrations.CheckStatus(s.db)
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteStore implements hangar.Store
var _ hangar.Store = (*SQLiteStore)(nil)
