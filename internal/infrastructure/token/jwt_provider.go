package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/booklore/booklore/internal/core/domain"
)

// Token type markers. Embedded as the "typ" claim and enforced by both
// validators, so an access token can never be replayed as a refresh token
// or vice versa.
const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// JWTProvider implements ports.TokenProvider with HS256-signed JWTs.
// Tokens are self-contained: subject, role, type, expiry, and a unique jti.
// The jti guarantees that two tokens minted for the same user in the same
// second still differ textually.
type JWTProvider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTProvider(secret string, accessTTL, refreshTTL time.Duration) *JWTProvider {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &JWTProvider{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (p *JWTProvider) IssueAccessToken(user *domain.User) (string, error) {
	return p.issue(user, typeAccess, p.accessTTL)
}

func (p *JWTProvider) IssueRefreshToken(user *domain.User) (string, error) {
	return p.issue(user, typeRefresh, p.refreshTTL)
}

func (p *JWTProvider) issue(user *domain.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"typ":  tokenType,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// IsExpired reads the expiry without verifying the signature. It is
// fail-closed: a string that does not even parse as a JWT, or one without an
// expiry, counts as expired.
func (p *JWTProvider) IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

func (p *JWTProvider) ValidateAccessToken(token string) (domain.TokenClaims, bool) {
	return p.validate(token, typeAccess)
}

func (p *JWTProvider) ValidateRefreshToken(token string) (domain.TokenClaims, bool) {
	return p.validate(token, typeRefresh)
}

// validate checks signature, expiry, and token type. Any failure is a normal
// outcome reported as ok=false; invalid input never produces an error value.
func (p *JWTProvider) validate(token, wantType string) (domain.TokenClaims, bool) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.TokenClaims{}, false
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return domain.TokenClaims{}, false
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.TokenClaims{}, false
	}
	role, _ := claims["role"].(string)

	return domain.TokenClaims{UserID: sub, Role: role}, true
}
