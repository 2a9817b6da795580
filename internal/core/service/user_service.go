package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/acme/user-directory/internal/core/domain"
	"github.com/acme/user-directory/internal/core/ports"
)

// UserService implements the directory's CRUD operations on top of a
// UserRepository. Field-shape validation happens at the HTTP boundary; this
// layer owns normalization, defaults, uniqueness, and the partial-update rules.
type UserService struct {
	repo  ports.UserRepository
	clock clockwork.Clock
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, clock clockwork.Clock, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, clock: clock, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new record with a fresh id and createdAt = now. The email
// is normalized to lower case before the uniqueness check, so addresses that
// differ only in case collide.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	// The HTTP layer already rejects unknown roles; this guard keeps the
	// invariant for callers that bypass it.
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("role", "role must be one of: user, manager, viewer, admin")
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     domain.NormalizeEmail(in.Email),
		Role:      role,
		Password:  in.Password,
		CreatedAt: s.clock.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")

	return created, nil
}

// Update applies a partial update field by field. Empty fields are skipped:
// a client sending "" cannot blank a value, it reads as "no change". That
// rule is kept intentionally even though it is arguably a foot-gun — see the
// partial-update note in DESIGN.md before changing it.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != "" && !domain.ValidRole(in.Role) {
		return nil, domain.NewValidationError("role", "role must be one of: user, manager, viewer, admin")
	}

	if in.Email != "" {
		email := domain.NormalizeEmail(in.Email)
		if email != user.Email {
			switch _, err := s.repo.FindByEmail(ctx, email); {
			case err == nil:
				return nil, domain.ErrEmailExists
			case !errors.Is(err, domain.ErrUserNotFound):
				return nil, err
			}
			user.Email = email
		}
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		user.Password = in.Password
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", deleted.ID).Str("email", deleted.Email).Msg("user deleted")

	return deleted, nil
}
