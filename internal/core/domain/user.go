package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models an authenticatable identity. PasswordHash is never serialised
// and Email is always stored lowercase.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser builds a freshly registered identity with the defaults every
// account starts with: role "user", enabled, both timestamps set to the
// same instant.
func NewUser(username Username, email Email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username.String(),
		Email:        email.String(),
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
