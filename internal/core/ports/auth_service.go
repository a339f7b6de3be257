package ports

import (
	"context"

	"github.com/booklore/booklore/internal/core/domain"
)

// RegistrationService creates new user identities.
type RegistrationService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
}

// AuthService verifies credentials and mints token pairs.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.AuthResult, error)
}

// TokenRefreshService exchanges a valid refresh token for a fresh pair.
type TokenRefreshService interface {
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
}

// AccountService covers the account operations exposed to the HTTP layer
// outside the authentication flow itself.
type AccountService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (*domain.User, error)
}
