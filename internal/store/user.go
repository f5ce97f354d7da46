package store

import (
	"context"

	"github.com/example/demo-api/internal/domain"
)

// UserPatch describes a partial update to a user. A nil field means "leave
// unchanged"; the API layer has already resolved the absent / explicit-null
// distinction before a patch reaches the store.
type UserPatch struct {
	Name  *string
	Email *string
	Age   *int
}

// UserStore defines the interface for user data access.
type UserStore interface {
	// Create saves a new user to the store, assigning the next available ID
	// and writing it back to user.ID.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// List returns users in insertion order, skipping offset records and
	// returning at most limit records.
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)

	// Replace overwrites every field of the user identified by user.ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Replace(ctx context.Context, user *domain.User) error

	// Update merges the non-nil fields of patch into the stored user and
	// returns the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrInvalidEntity wrapping the domain error if the merged
	// record is invalid; the stored record is left untouched in that case.
	Update(ctx context.Context, id int, patch UserPatch) (*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Orders referencing the user are not touched.
	Delete(ctx context.Context, id int) error
}
