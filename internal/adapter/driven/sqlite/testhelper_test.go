package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed testdata/migrations/*.sql
var writerSchemaFS embed.FS

// setupTestDB creates a named shared in-memory database carrying the
// external writer's schema and returns a read-side *DB plus a writer
// handle for seeding fixtures. The code under test is read-only, so the
// helper plays the writer's role.
// A unique name derived from t.Name() isolates parallel tests.
func setupTestDB(t *testing.T) (*DB, *sql.DB) {
	t.Helper()

	// Percent-encode the test name so it's a safe SQLite URI filename
	// component and cannot be misinterpreted as query parameters.
	safeName := url.PathEscape(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", safeName)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("create test db writer: %v", err)
	}
	writer.SetMaxOpenConns(1)
	if err := writer.PingContext(context.Background()); err != nil {
		_ = writer.Close()
		t.Fatalf("ping test db writer: %v", err)
	}

	if err := applyWriterSchema(writer); err != nil {
		_ = writer.Close()
		t.Fatalf("apply writer schema: %v", err)
	}

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = writer.Close()
		t.Fatalf("create test db reader: %v", err)
	}
	reader.SetMaxOpenConns(4)
	if err := reader.PingContext(context.Background()); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		t.Fatalf("ping test db reader: %v", err)
	}

	db := &DB{Reader: reader, path: dsn}

	t.Cleanup(func() {
		_ = db.Close()
		_ = writer.Close()
	})

	return db, writer
}

// applyWriterSchema builds the external writer's tables via the embedded
// fixture migration.
func applyWriterSchema(writer *sql.DB) error {
	sourceDriver, err := iofs.New(writerSchemaFS, "testdata/migrations")
	if err != nil {
		return fmt.Errorf("create fixture source: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(writer, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create fixture db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create fixture migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply fixture schema: %w", err)
	}

	return nil
}

// seedTokens inserts a token row the way the external writer does.
func seedTokens(t *testing.T, writer *sql.DB, id int64, access, refresh, updatedAt string) {
	t.Helper()

	const query = `INSERT INTO tokens (id, access_token, refresh_token, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := writer.ExecContext(context.Background(), query, id, access, refresh, updatedAt); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}
}

// seedCachedDir inserts a cached_dirs row.
func seedCachedDir(t *testing.T, writer *sql.DB, path, fileID string) {
	t.Helper()

	const query = `INSERT INTO cached_dirs (path, file_id) VALUES (?, ?)`
	if _, err := writer.ExecContext(context.Background(), query, path, fileID); err != nil {
		t.Fatalf("seed cached_dirs: %v", err)
	}
}

// seedCachedFile inserts a cached_files row.
func seedCachedFile(t *testing.T, writer *sql.DB, fileID, parentID, filename string, isDir bool, size int64) {
	t.Helper()

	const query = `INSERT INTO cached_files (file_id, parent_id, filename, is_dir, size, pick_code) VALUES (?, ?, ?, ?, ?, '')`
	if _, err := writer.ExecContext(context.Background(), query, fileID, parentID, filename, isDir, size); err != nil {
		t.Fatalf("seed cached_files: %v", err)
	}
}
