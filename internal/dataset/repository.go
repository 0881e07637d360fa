package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/octologs/wheelpicker/internal/picker"
)

// Repository defines all dataset operations.
type Repository interface {
	// LoadForest loads a named dataset into an option forest.
	LoadForest(ctx context.Context, name string) ([]*picker.Option, error)

	// ImportForest replaces a named dataset with the given forest.
	ImportForest(ctx context.Context, name string, forest []*picker.Option) error

	// ListDatasets returns the stored dataset names.
	ListDatasets(ctx context.Context) ([]string, error)

	// DeleteDataset removes a dataset and all its options.
	DeleteDataset(ctx context.Context, name string) error
}

// repository implements Repository over a SQLite database.
type repository struct {
	db *sql.DB
}

// NewRepository creates a dataset repository.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// LoadForest loads a dataset's options and rebuilds the tree from the
// parent links, children ordered by their stored position.
func (r *repository) LoadForest(ctx context.Context, name string) ([]*picker.Option, error) {
	if name == "" {
		return nil, ErrEmptyDatasetName
	}

	var datasetID int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM datasets WHERE name = ?", name).Scan(&datasetID)
	if err == sql.ErrNoRows {
		return nil, ErrDatasetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up dataset: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, parent_id, label, value
		FROM options
		WHERE dataset_id = ?
		ORDER BY parent_id, position
	`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}
	defer rows.Close()

	type row struct {
		id     int64
		parent sql.NullInt64
		node   *picker.Option
	}

	byID := make(map[int64]*picker.Option)
	var ordered []row
	for rows.Next() {
		var (
			id     int64
			parent sql.NullInt64
			label  string
			value  string
		)
		if err := rows.Scan(&id, &parent, &label, &value); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		node := &picker.Option{Label: label, Value: value}
		if value == "" {
			node.Value = label
		}
		byID[id] = node
		ordered = append(ordered, row{id: id, parent: parent, node: node})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var forest []*picker.Option
	for _, r := range ordered {
		if !r.parent.Valid {
			forest = append(forest, r.node)
			continue
		}
		parent, ok := byID[r.parent.Int64]
		if !ok {
			// Orphaned row; skip rather than fail the whole load.
			continue
		}
		parent.Children = append(parent.Children, r.node)
	}
	return forest, nil
}

// ImportForest replaces a dataset inside a single transaction, so readers
// never observe a half-imported tree.
func (r *repository) ImportForest(ctx context.Context, name string, forest []*picker.Option) error {
	if name == "" {
		return ErrEmptyDatasetName
	}
	if len(forest) == 0 {
		return ErrEmptyForest
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM datasets WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	result, err := tx.ExecContext(ctx, "INSERT INTO datasets (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	datasetID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get dataset id: %w", err)
	}

	if err := insertLevel(ctx, tx, datasetID, sql.NullInt64{}, forest); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertLevel inserts one sibling list and recurses into children.
func insertLevel(ctx context.Context, tx *sql.Tx, datasetID int64, parent sql.NullInt64, nodes []*picker.Option) error {
	for pos, node := range nodes {
		if node == nil {
			continue
		}
		value := ""
		if s, ok := node.Value.(string); ok && s != node.Label {
			value = s
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO options (dataset_id, parent_id, position, label, value)
			VALUES (?, ?, ?, ?, ?)
		`, datasetID, parent, pos, node.Label, value)
		if err != nil {
			return fmt.Errorf("failed to insert option %q: %w", node.Label, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get option id: %w", err)
		}
		if len(node.Children) > 0 {
			childParent := sql.NullInt64{Int64: id, Valid: true}
			if err := insertLevel(ctx, tx, datasetID, childParent, node.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListDatasets returns the stored dataset names in creation order.
func (r *repository) ListDatasets(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM datasets ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteDataset removes a dataset; its options cascade.
func (r *repository) DeleteDataset(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyDatasetName
	}
	result, err := r.db.ExecContext(ctx, "DELETE FROM datasets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrDatasetNotFound
	}
	return nil
}
