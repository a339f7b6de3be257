package ports

import (
	"context"

	"github.com/booklore/booklore/internal/core/domain"
)

// UserRepository is the user directory: the durable store of identity
// records. Uniqueness of username and email is enforced atomically by the
// implementation (unique indexes), because the service-level
// check-then-write sequence is not atomic; the losing write of a race
// surfaces as ErrUsernameExists / ErrEmailExists.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SetEnabled flips the account's enabled flag and bumps updated_at.
	// Disabling is the only way to invalidate still-unexpired tokens early.
	SetEnabled(ctx context.Context, id string, enabled bool) (*domain.User, error)
}

// ProfileRepository creates the companion public-profile record for a new
// user. Invoked fire-and-forget after registration; failure must never fail
// the registration itself.
type ProfileRepository interface {
	Create(ctx context.Context, userID string) error
}
