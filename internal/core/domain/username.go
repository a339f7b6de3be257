package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

// Username is a validated account name, 3–50 characters.
type Username struct {
	value string
}

func NewUsername(raw string) (Username, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Username{}, fmt.Errorf("username must not be blank")
	}
	if n := utf8.RuneCountInString(v); n < usernameMinLen || n > usernameMaxLen {
		return Username{}, fmt.Errorf("username must be between %d and %d characters", usernameMinLen, usernameMaxLen)
	}
	return Username{value: v}, nil
}

func (u Username) String() string {
	return u.value
}
