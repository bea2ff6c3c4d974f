// Package storage owns the shopping-list table: identity generation,
// timestamps, and the typed data-access operations over it.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"shoplist/models"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout is a fixed-width UTC layout so lexicographic order of the
// stored strings matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var (
	// ErrNotFound is returned when no row matches the requested ID.
	ErrNotFound = errors.New("shopping item not found")
	// ErrNoFields is returned by Update when the patch carries no fields.
	ErrNoFields = errors.New("no fields to update")
)

// Repository is the typed data-access surface over the item table.
// All operations are idempotent except Create (each call mints a new
// ID) and Toggle (each call flips state).
type Repository interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id string) (models.Item, error)
	Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)
	Toggle(ctx context.Context, id string) (models.Item, error)
	Delete(ctx context.Context, id string) error
}

// Store is a SQLite-backed Repository. It is constructed explicitly and
// passed to whoever needs it; there is no package-level handle.
type Store struct {
	db *sql.DB
}

var _ Repository = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateItem(row rowScanner) (models.Item, error) {
	var item models.Item
	var createdAt, updatedAt string
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Quantity,
		&item.Completed, &createdAt, &updatedAt)
	if err != nil {
		return models.Item{}, err
	}
	if item.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return models.Item{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return models.Item{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return item, nil
}
