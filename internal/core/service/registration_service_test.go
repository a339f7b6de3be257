package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/booklore/booklore/internal/core/domain"
)

func newRegistrationFixture() (*RegistrationService, *stubUserRepo, *stubProfileRepo) {
	repo := newStubUserRepo()
	profiles := &stubProfileRepo{}
	svc := NewRegistrationService(repo, profiles, stubHasher{}, zerolog.Nop())
	return svc, repo, profiles
}

func TestRegistrationService_Success(t *testing.T) {
	svc, _, profiles := newRegistrationFixture()

	user, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalised: %s", user.Email)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if !user.Enabled {
		t.Fatalf("expected new account to be enabled")
	}
	if user.CreatedAt.IsZero() || !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v / %v", user.CreatedAt, user.UpdatedAt)
	}
	if len(profiles.created) != 1 || profiles.created[0] != user.ID {
		t.Fatalf("expected profile created for %s, got %v", user.ID, profiles.created)
	}
}

func TestRegistrationService_Validation(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"blank username", "", "a@example.com", "pass1234"},
		{"short username", "ab", "a@example.com", "pass1234"},
		{"long username", strings.Repeat("x", 51), "a@example.com", "pass1234"},
		{"blank email", "alice", "", "pass1234"},
		{"malformed email", "alice", "not-an-email", "pass1234"},
		{"blank password", "alice", "a@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password); err == nil {
				t.Fatalf("expected validation error")
			}
			if repo.createCalled {
				t.Fatalf("repository Create reached on invalid input")
			}
		})
	}
}

func TestRegistrationService_DuplicateUsername(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass1234"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	repo.createCalled = false

	_, err := svc.Register(context.Background(), "bob", "other@example.com", "pass1234")
	if err != domain.ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if repo.createCalled {
		t.Fatalf("Create must not be called for a duplicate username")
	}
}

func TestRegistrationService_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newRegistrationFixture()

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "pass1234"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	repo.createCalled = false

	// Unique username, taken email: the username check runs first and
	// passes, then the email check reports the conflict.
	_, err := svc.Register(context.Background(), "carol2", "carol@example.com", "pass1234")
	if err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if repo.createCalled {
		t.Fatalf("Create must not be called for a duplicate email")
	}
}

func TestRegistrationService_DuplicateBoth_UsernameWins(t *testing.T) {
	svc, _, _ := newRegistrationFixture()

	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "pass1234"); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}

	// Both taken: the username conflict is reported because it is checked first.
	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "pass1234"); err != domain.ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestRegistrationService_ProfileFailureSwallowed(t *testing.T) {
	repo := newStubUserRepo()
	profiles := &stubProfileRepo{fail: true}
	svc := NewRegistrationService(repo, profiles, stubHasher{}, zerolog.Nop())

	user, err := svc.Register(context.Background(), "erin", "erin@example.com", "pass1234")
	if err != nil {
		t.Fatalf("registration must not fail when profile creation fails: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected created user despite profile failure")
	}
}
