package domain

// TokenPair bundles a freshly minted access token and refresh token. Both are
// self-contained signed strings; validity is determined entirely by signature
// and expiry, never by server-side state.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenClaims is the identity a validated token proves: the subject user id
// and the role embedded at issue time.
type TokenClaims struct {
	UserID string
	Role   string
}

// AuthResult is returned by successful authentication and refresh. All three
// fields are always populated; a partially filled result is a bug.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
