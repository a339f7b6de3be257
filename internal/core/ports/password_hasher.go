package ports

// PasswordHasher hashes and verifies plaintext passwords. Hash is salted, so
// two calls with the same input produce different strings. Verify never
// returns an error for a mismatch; a wrong password is an ordinary false.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
