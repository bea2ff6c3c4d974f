package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shoplist/models"
)

const itemColumns = "id, name, description, quantity, completed, created_at, updated_at"

// List returns every item, newest first. An empty list is a non-nil
// empty slice so it encodes as a JSON array.
func (s *Store) List(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM shopping_items ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// Get returns the item with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM shopping_items WHERE id = ?", id)
	item, err := hydrateItem(row)
	if err == sql.ErrNoRows {
		return models.Item{}, ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// Create inserts a new item with a freshly minted ID and identical
// created_at / updated_at timestamps, and returns the persisted row.
func (s *Store) Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	item := models.Item{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Completed:   req.Completed,
	}
	// Round-trip through the storage layout so the returned timestamps
	// match what a later Get reads back exactly.
	stamp := time.Now().UTC().Format(timeLayout)
	now, _ := time.Parse(timeLayout, stamp)
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO shopping_items ("+itemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Description, item.Quantity, item.Completed,
		stamp, stamp)
	if err != nil {
		return models.Item{}, fmt.Errorf("creating item: %w", err)
	}
	return item, nil
}

// Update replaces only the fields present in the patch and refreshes
// updated_at. Returns ErrNoFields on an empty patch and ErrNotFound
// when the ID does not exist.
func (s *Store) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if patch.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Quantity != nil {
		set = append(set, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if len(set) == 0 {
		return models.Item{}, ErrNoFields
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(timeLayout), id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE shopping_items SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Item{}, fmt.Errorf("updating item %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Item{}, fmt.Errorf("updating item %s: %w", id, err)
	}
	if affected == 0 {
		return models.Item{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Toggle flips the completed flag and refreshes updated_at.
func (s *Store) Toggle(ctx context.Context, id string) (models.Item, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE shopping_items SET completed = NOT completed, updated_at = ? WHERE id = ?",
		time.Now().UTC().Format(timeLayout), id)
	if err != nil {
		return models.Item{}, fmt.Errorf("toggling item %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Item{}, fmt.Errorf("toggling item %s: %w", id, err)
	}
	if affected == 0 {
		return models.Item{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the row permanently. Returns ErrNotFound when no row
// had that ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shopping_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
