package ports

import (
	"context"

	"github.com/acme/user-directory/internal/core/domain"
)

// CreateUserInput carries the already-validated fields for a new record.
// Name arrives trimmed; Email is normalized by the service.
type CreateUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

// UpdateUserInput carries a partial update. Empty strings mean "leave the
// field unchanged" — there is deliberately no way to blank a value.
type UpdateUserInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

// UserService exposes the validated CRUD operations of the directory.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
