package ports

import "github.com/booklore/booklore/internal/core/domain"

// TokenProvider issues and validates self-contained signed tokens. Access and
// refresh tokens carry distinct type markers, so one is never accepted where
// the other is expected.
//
// The validators never return an error for bad input: a malformed, badly
// signed, expired, or wrong-type token is a normal outcome reported as
// ok=false.
type TokenProvider interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	// IsExpired is fail-closed: an unparseable token counts as expired.
	IsExpired(token string) bool
	ValidateAccessToken(token string) (domain.TokenClaims, bool)
	ValidateRefreshToken(token string) (domain.TokenClaims, bool)
}
