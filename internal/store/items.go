package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/model"
)

// DeleteMode selects between removing a row and deactivating it in place.
type DeleteMode int

const (
	DeleteHard DeleteMode = iota
	DeleteSoft
)

const itemColumns = `id, name, description, price, quantity, is_active, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Quantity, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem validates a create payload, assigns an ID and inserts the item.
// Validation failures surface as *model.ValidationError.
func CreateItem(ctx context.Context, db *sql.DB, payload model.Patch) (*model.Item, error) {
	item, err := model.NewItem(payload)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.NewString()

	_, err = db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, price, quantity, is_active)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description, item.Price, item.Quantity, item.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, item.ID)
}

// GetItem returns an item by ID, or (nil, nil) if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns every stored item in a stable store-defined order.
// Deactivated items are included; callers that want to hide them must
// filter themselves.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateItem merges a partial payload into an existing item, re-validates
// the merged record and writes it back, returning the post-update row.
// A missing ID returns (nil, nil) before validation is attempted.
func UpdateItem(ctx context.Context, db *sql.DB, id string, payload model.Patch) (*model.Item, error) {
	item, err := GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	payload.ApplyTo(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, price = ?, quantity = ?,
		        is_active = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		item.Name, item.Description, item.Price, item.Quantity, item.IsActive, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// RemoveItem deletes an item. DeleteSoft leaves the row in place with
// is_active cleared and returns the updated record; DeleteHard removes the
// row permanently and returns the record as it was before deletion.
// Returns (nil, nil) in either mode if the ID does not exist.
func RemoveItem(ctx context.Context, db *sql.DB, id string, mode DeleteMode) (*model.Item, error) {
	item, err := GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if mode == DeleteSoft {
		_, err := db.ExecContext(ctx,
			`UPDATE items SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			id,
		)
		if err != nil {
			return nil, fmt.Errorf("deactivating item: %w", err)
		}
		return GetItem(ctx, db, id)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}
	return item, nil
}
