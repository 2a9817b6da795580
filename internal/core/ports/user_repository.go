package ports

import (
	"context"

	"github.com/acme/user-directory/internal/core/domain"
)

// UserRepository defines the persistence interface for directory records.
// Implementations must treat emails as unique under case-insensitive
// comparison and must return copies, never internal pointers.
type UserRepository interface {
	// List returns all records ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// FindByID returns the record with the given id or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail looks up a record by normalized (lower-case) email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new record; domain.ErrEmailExists on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the stored record with the same id.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the record and returns the deleted value.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
