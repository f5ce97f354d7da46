package store

import (
	"context"

	"github.com/example/demo-api/internal/domain"
)

// OrderPatch describes a partial update to an order. A nil field means
// "leave unchanged". The owning user of an order cannot be changed after
// creation, so there is no UserID field here.
type OrderPatch struct {
	Item     *string
	Quantity *int
	Total    *float64
}

// OrderStore defines the interface for order data access.
//
// The cross-resource rule that an order must reference an existing user is
// enforced by the API layer at creation time, not here: the store neither
// knows about users nor re-validates the reference afterwards.
type OrderStore interface {
	// Create saves a new order to the store, assigning the next available
	// ID and writing it back to order.ID.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int) (*domain.Order, error)

	// List returns orders in insertion order, skipping offset records and
	// returning at most limit records.
	List(ctx context.Context, offset, limit int) ([]*domain.Order, error)

	// ListByUser returns all orders whose UserID equals userID, in
	// insertion order. The result is empty, not an error, when the user has
	// no orders or does not exist.
	ListByUser(ctx context.Context, userID int) ([]*domain.Order, error)

	// Replace overwrites every field of the order identified by order.ID.
	// Returns ErrOrderNotFound if the order does not exist.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Replace(ctx context.Context, order *domain.Order) error

	// Update merges the non-nil fields of patch into the stored order and
	// returns the updated record.
	// Returns ErrOrderNotFound if the order does not exist.
	// Returns ErrInvalidEntity wrapping the domain error if the merged
	// record is invalid; the stored record is left untouched in that case.
	Update(ctx context.Context, id int, patch OrderPatch) (*domain.Order, error)

	// Delete removes an order from the store by its ID.
	// Returns ErrOrderNotFound if the order does not exist.
	Delete(ctx context.Context, id int) error
}
