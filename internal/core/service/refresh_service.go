package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// TokenRefreshService exchanges a valid refresh token for a fresh pair.
type TokenRefreshService struct {
	users  ports.UserRepository
	tokens ports.TokenProvider
}

func NewTokenRefreshService(users ports.UserRepository, tokens ports.TokenProvider) *TokenRefreshService {
	return &TokenRefreshService{users: users, tokens: tokens}
}

// Refresh validates the presented refresh token, re-loads the user, and
// rotates the pair: both returned tokens are newly minted, the old refresh
// token is never reissued. Unlike authentication, the failure causes are
// deliberately distinguishable: the caller already holds a token, so
// enumeration risk is low.
func (s *TokenRefreshService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	// Expiry first: an expired token never triggers a directory lookup.
	if s.tokens.IsExpired(refreshToken) {
		return nil, domain.ErrRefreshTokenExpired
	}

	claims, ok := s.tokens.ValidateRefreshToken(refreshToken)
	if !ok {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	// The enabled flag is re-checked at every refresh; disabling an account
	// is the only way to cut short a still-unexpired refresh token.
	if !user.Enabled {
		return nil, domain.ErrAccountDisabled
	}

	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("refresh: issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("refresh: issue refresh token: %w", err)
	}

	return &domain.AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
