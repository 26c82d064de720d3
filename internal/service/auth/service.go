// Package auth implements account registration, login and the refresh token
// lifecycle.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenRepo interface {
	Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, hash string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
	HashToken(raw string) string
	AccessTTL() time.Duration
}

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72 // bcrypt input limit
	MaxEmailLen    = 255
)

// Service provides authentication use cases.
type Service struct {
	users      userRepo
	tokens     tokenRepo
	jwt        tokenManager
	refreshTTL time.Duration
	log        *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenRepo, jwt tokenManager, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		jwt:        jwt,
		refreshTTL: refreshTTL,
		log:        log.With("service", "auth"),
	}
}

// TokenPair is the credential set handed to a client after a successful
// register, login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // access token lifetime in seconds
}

// AuthResult pairs the authenticated user with fresh credentials.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}
