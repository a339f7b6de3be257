package domain

import "errors"

// Conflict errors reported by registration. Each names the offending field so
// the client can highlight the right input.
var (
	ErrUsernameExists = errors.New("username is already taken")
	ErrEmailExists    = errors.New("email is already registered")
)

// ErrInvalidCredentials is the single denial condition for authentication.
// Unknown email, disabled account, and wrong password all collapse into this
// one error so a caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Token refresh failures are differentiated: the caller already holds a
// token, so enumeration risk is low.
var (
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid")
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountDisabled     = errors.New("account is disabled")
)
