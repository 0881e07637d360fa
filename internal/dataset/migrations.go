package dataset

import (
	"context"
	"database/sql"
)

// runMigrations creates the dataset schema.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS datasets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS options (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset_id INTEGER NOT NULL,
			parent_id INTEGER,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE,
			FOREIGN KEY (parent_id) REFERENCES options(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_options_parent
		ON options(dataset_id, parent_id, position)
	`)
	return err
}
