// Package sqlite implements the driven storage ports over the cache
// database maintained by the external 115 client. All access is
// read-only; schema creation and writes belong to that client.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a read-only connection pool to the cache database. Opening
// with mode=ro never requests a write lock, so the tools cannot contend
// with the external writer and concurrent invocations stay independent.
type DB struct {
	Reader *sql.DB
	path   string
}

// OpenReadOnly opens the cache database at dbPath strictly read-only.
// The file must already exist; nothing is ever created or migrated here.
// Note that SQLite opens lazily: a corrupt or non-database file may only
// surface an error at the first query.
func OpenReadOnly(dbPath string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", dbPath)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache database %q: %w", dbPath, err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.Ping(); err != nil {
		_ = reader.Close()
		return nil, fmt.Errorf("open cache database %q: %w", dbPath, err)
	}

	return &DB{Reader: reader, path: dbPath}, nil
}

// Path returns the filesystem path the database was opened with.
func (db *DB) Path() string { return db.path }

// Close releases the read-only connection pool.
func (db *DB) Close() error {
	if err := db.Reader.Close(); err != nil {
		return fmt.Errorf("close reader: %w", err)
	}
	return nil
}
