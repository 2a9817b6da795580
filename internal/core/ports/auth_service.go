package ports

import (
	"context"

	"github.com/acme/user-directory/internal/core/domain"
)

// AuthService issues session tokens against the user store.
type AuthService interface {
	// Login verifies credentials and returns a signed session token together
	// with the authenticated user. Fails with domain.ErrInvalidCredentials on
	// unknown email or password mismatch.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
