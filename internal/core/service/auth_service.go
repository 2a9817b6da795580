package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/acme/user-directory/internal/core/domain"
	"github.com/acme/user-directory/internal/core/ports"
)

// AuthService validates credentials against the user store and issues signed,
// time-limited session tokens. Tokens are stateless: there is no session
// table, every protected request re-verifies signature and expiry only.
type AuthService struct {
	users    ports.UserRepository
	secret   string
	tokenTTL time.Duration
	clock    clockwork.Clock
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, secret string, tokenTTL time.Duration, clock clockwork.Clock, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL, clock: clock, log: log}
}

// Login authenticates by case-insensitive email lookup and plain password
// comparison. An unknown email and a wrong password both map to
// ErrInvalidCredentials so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("session issued")

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
