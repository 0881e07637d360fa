package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory dataset database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	// Schema kept in sync with dataset.runMigrations.
	schema := `
	CREATE TABLE IF NOT EXISTS datasets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset_id INTEGER NOT NULL,
		parent_id INTEGER,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		value TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE,
		FOREIGN KEY (parent_id) REFERENCES options(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_options_parent
	ON options(dataset_id, parent_id, position);
	`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}
