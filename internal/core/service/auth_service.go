package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// AuthService verifies credentials and issues token pairs.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenProvider
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenProvider) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Authenticate verifies email+password and mints a fresh token pair. The
// three denial paths (unknown email, disabled account, wrong password) all
// return the identical ErrInvalidCredentials so the caller cannot tell which
// step failed. Infrastructure failures propagate as-is; only the expected
// not-found outcome is collapsed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	addr, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, addr.String())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !user.Enabled {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("authenticate: issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("authenticate: issue refresh token: %w", err)
	}

	return &domain.AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
