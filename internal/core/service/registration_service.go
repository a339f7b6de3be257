package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// RegistrationService creates new user identities.
type RegistrationService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	hasher   ports.PasswordHasher
	log      zerolog.Logger
}

func NewRegistrationService(
	users ports.UserRepository,
	profiles ports.ProfileRepository,
	hasher ports.PasswordHasher,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{users: users, profiles: profiles, hasher: hasher, log: log}
}

// Register validates the inputs, checks username then email uniqueness, and
// persists the new identity. The uniqueness checks are advisory; two
// concurrent registrations can race past them, so the repository's unique
// indexes are the real arbiter and report the same duplicate errors.
func (s *RegistrationService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	name, err := domain.NewUsername(username)
	if err != nil {
		return nil, err
	}
	addr, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("password must not be blank")
	}

	taken, err := s.users.ExistsByUsername(ctx, name.String())
	if err != nil {
		return nil, fmt.Errorf("register: check username: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameExists
	}

	taken, err = s.users.ExistsByEmail(ctx, addr.String())
	if err != nil {
		return nil, fmt.Errorf("register: check email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domain.NewUser(name, addr, hash))
	if err != nil {
		return nil, err
	}

	// Best-effort companion profile. A failure here is logged and swallowed;
	// it must never fail or roll back the registration itself.
	if err := s.profiles.Create(ctx, created.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", created.ID).Msg("profile creation failed")
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}
