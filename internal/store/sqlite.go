package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lakestash/lakestash/internal/model"
)

// SQLiteStore is the production Store backed by a SQLite items table keyed by
// (user_id, id).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an opened, migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const itemColumns = `id, user_id, name, quantity, max_quantity, unit, category, status, notes, created_at, updated_at`

func (s *SQLiteStore) Create(ctx context.Context, item *model.Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.Name, item.Quantity, item.MaxQuantity,
		item.Unit, item.Category, item.Status, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, userID string) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? ORDER BY updated_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := scanItem(rows.Scan, &item); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, userID, id string) (*model.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? AND id = ?`,
		userID, id,
	)
	item := &model.Item{}
	err := scanItem(row.Scan, item)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

func (s *SQLiteStore) Replace(ctx context.Context, item *model.Item) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE items
		 SET name = ?, quantity = ?, max_quantity = ?, unit = ?, category = ?,
		     status = ?, notes = ?, created_at = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		item.Name, item.Quantity, item.MaxQuantity, item.Unit, item.Category,
		item.Status, item.Notes, item.CreatedAt, item.UpdatedAt,
		item.UserID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("replacing item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replacing item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM items WHERE user_id = ? AND id = ?`,
		userID, id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanItem reads one row in itemColumns order.
func scanItem(scan func(...any) error, item *model.Item) error {
	return scan(
		&item.ID, &item.UserID, &item.Name, &item.Quantity, &item.MaxQuantity,
		&item.Unit, &item.Category, &item.Status, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
}
