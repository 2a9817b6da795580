// Package memory provides the in-process user store. Nothing here survives a
// restart: the store is rebuilt from Seed on every process start.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/acme/user-directory/internal/core/domain"
)

// UserRepository keeps all records in process memory, indexed by id and by
// normalized email. Echo serves requests concurrently, so unlike a
// single-threaded runtime the maps need explicit locking.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	emails map[string]string // normalized email -> id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[string]*domain.User),
		emails: make(map[string]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

// List returns a snapshot of all records, newest createdAt first. Ties in
// createdAt have no defined relative order.
func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, exists := r.emails[email]; exists {
		return nil, domain.ErrEmailExists
	}

	stored := cloneUser(user)
	stored.Email = email
	r.users[stored.ID] = stored
	r.emails[email] = stored.ID

	return cloneUser(stored), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	email := domain.NormalizeEmail(user.Email)
	if email != current.Email {
		if owner, exists := r.emails[email]; exists && owner != user.ID {
			return nil, domain.ErrEmailExists
		}
		delete(r.emails, current.Email)
		r.emails[email] = user.ID
	}

	stored := cloneUser(user)
	stored.Email = email
	r.users[stored.ID] = stored

	return cloneUser(stored), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	delete(r.users, id)
	delete(r.emails, u.Email)

	return cloneUser(u), nil
}
