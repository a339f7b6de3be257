package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailShape is deliberately loose: one @, no spaces, a dot somewhere in the
// domain part. Real deliverability is not this layer's problem.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, normalised (lowercase) email address.
type Email struct {
	value string
}

// NewEmail validates the shape of raw and normalises it to lowercase.
// Validation happens before any I/O, so a malformed address never reaches
// the user directory.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, fmt.Errorf("email must not be blank")
	}
	if !emailShape.MatchString(v) {
		return Email{}, fmt.Errorf("email %q is not a valid address", raw)
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}
