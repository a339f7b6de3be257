package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// AccountService exposes the account operations consumed by the HTTP layer
// outside the authentication flow.
type AccountService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// SetEnabled flips an account's enabled flag. Disabling takes effect on the
// next refresh or login; already-issued access tokens stay valid until expiry.
func (s *AccountService) SetEnabled(ctx context.Context, id string, enabled bool) (*domain.User, error) {
	user, err := s.users.SetEnabled(ctx, id, enabled)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Bool("enabled", enabled).Msg("account enabled flag changed")
	return user, nil
}
