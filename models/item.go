package models

import (
	"time"
)

// Item is a single shopping-list entry. The ID is generated once at
// creation and never reassigned; UpdatedAt is refreshed on every write,
// toggle included.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest is the normalized create payload produced by the
// validation gate: name trimmed, quantity defaulted to 1, completed to
// false.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Completed   bool   `json:"completed"`
}

// ItemPatch carries a partial update. Nil fields were not supplied and
// keep their stored values.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Quantity == nil && p.Completed == nil
}
