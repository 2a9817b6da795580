package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/acme/user-directory/internal/core/domain"
)

// seedUsers is the fixed data set loaded on every start: the demo admin
// account plus seven sample records. Passwords are plain text on purpose —
// the directory stores them that way.
var seedUsers = []struct {
	name     string
	email    string
	role     domain.Role
	password string
}{
	{"Demo Admin", "demo@example.com", domain.RoleAdmin, "password"},
	{"Maya Rodriguez", "maya.rodriguez@example.com", domain.RoleManager, "tangerine"},
	{"Jonas Petersen", "jonas.petersen@example.com", domain.RoleUser, "harbor22"},
	{"Priya Nair", "priya.nair@example.com", domain.RoleViewer, "monsoon7"},
	{"Tom Okafor", "tom.okafor@example.com", domain.RoleUser, "baseline"},
	{"Lena Fischer", "lena.fischer@example.com", domain.RoleManager, "aperture"},
	{"Carlos Mendes", "carlos.mendes@example.com", domain.RoleUser, "saudade9"},
	{"Aiko Tanaka", "aiko.tanaka@example.com", domain.RoleViewer, "origami3"},
}

// SeedCount reports how many records Seed loads.
func SeedCount() int {
	return len(seedUsers)
}

// Seed fills the repository with the fixed demo data set. Creation times step
// backwards one minute per record from the clock's now, so list order (newest
// first) is deterministic: the demo admin is always the most recent.
func Seed(ctx context.Context, repo *UserRepository, clock clockwork.Clock) error {
	now := clock.Now().UTC()
	for i, s := range seedUsers {
		u := &domain.User{
			ID:        uuid.NewString(),
			Name:      s.name,
			Email:     s.email,
			Role:      s.role,
			Password:  s.password,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
		if _, err := repo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
