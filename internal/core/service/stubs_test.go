package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/booklore/booklore/internal/core/domain"
)

// stubUserRepo is a map-backed user directory that records which methods
// were called, so tests can assert that short-circuit paths never hit it.
type stubUserRepo struct {
	users map[string]*domain.User // keyed by ID

	createCalled   bool
	findByIDCalled bool
	nextID         int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = "user-" + strconv.Itoa(r.nextID)
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findByIDCalled = true
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalled = true
	return r.add(cloneUser(user)), nil
}

func (r *stubUserRepo) SetEnabled(_ context.Context, id string, enabled bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Enabled = enabled
	return cloneUser(u), nil
}

// stubProfileRepo records calls and optionally fails every Create.
type stubProfileRepo struct {
	created []string
	fail    bool
}

func (r *stubProfileRepo) Create(_ context.Context, userID string) error {
	if r.fail {
		return errors.New("profile store unavailable")
	}
	r.created = append(r.created, userID)
	return nil
}

// stubHasher is a deterministic stand-in for bcrypt.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenProvider mints unique, inspectable token strings. The counter
// guarantees every issued token is textually distinct, which is what the
// rotation and freshness tests rely on.
type stubTokenProvider struct {
	seq     int
	expired map[string]bool   // tokens IsExpired reports true for
	valid   map[string]string // refresh token -> user id
}

func newStubTokenProvider() *stubTokenProvider {
	return &stubTokenProvider{
		expired: make(map[string]bool),
		valid:   make(map[string]string),
	}
}

func (p *stubTokenProvider) IssueAccessToken(user *domain.User) (string, error) {
	p.seq++
	return fmt.Sprintf("access-%s-%d", user.ID, p.seq), nil
}

func (p *stubTokenProvider) IssueRefreshToken(user *domain.User) (string, error) {
	p.seq++
	token := fmt.Sprintf("refresh-%s-%d", user.ID, p.seq)
	p.valid[token] = user.ID
	return token, nil
}

func (p *stubTokenProvider) IsExpired(token string) bool {
	return p.expired[token]
}

func (p *stubTokenProvider) ValidateAccessToken(token string) (domain.TokenClaims, bool) {
	return domain.TokenClaims{}, false
}

func (p *stubTokenProvider) ValidateRefreshToken(token string) (domain.TokenClaims, bool) {
	id, ok := p.valid[token]
	if !ok || p.expired[token] {
		return domain.TokenClaims{}, false
	}
	return domain.TokenClaims{UserID: id, Role: domain.RoleUser}, true
}
