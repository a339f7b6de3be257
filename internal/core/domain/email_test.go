package domain

import "testing"

func TestNewEmail_Normalises(t *testing.T) {
	e, err := NewEmail("  Alice@Example.COM ")
	if err != nil {
		t.Fatalf("NewEmail returned error: %v", err)
	}
	if e.String() != "alice@example.com" {
		t.Fatalf("expected lowercase trimmed email, got %q", e.String())
	}
}

func TestNewEmail_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "plainaddress", "no@tld", "two@@example.com", "spa ce@example.com"} {
		if _, err := NewEmail(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNewUsername_Bounds(t *testing.T) {
	if _, err := NewUsername("abc"); err != nil {
		t.Fatalf("3-char username must be valid: %v", err)
	}
	for _, raw := range []string{"", "  ", "ab"} {
		if _, err := NewUsername(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNewUsername_Trims(t *testing.T) {
	u, err := NewUsername("  alice  ")
	if err != nil {
		t.Fatalf("NewUsername returned error: %v", err)
	}
	if u.String() != "alice" {
		t.Fatalf("expected trimmed username, got %q", u.String())
	}
}
