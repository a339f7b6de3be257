package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LoginThrottle rate-limits login attempts per email with a fixed-window
// counter in Redis. It protects the bcrypt verification path from
// brute-force hammering; the auth core itself stays stateless.
// Key format: login_attempts:<email>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle wraps the given Redis client. Non-positive limits fall
// back to the defaults.
func NewLoginThrottle(client *redis.Client, maxAttempts int64, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records one attempt for email and reports whether it is still within
// the window's limit. The first attempt of a window sets the key's TTL.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("throttle expire: %w", err)
		}
	}
	return n <= t.maxAttempts, nil
}

// Reset clears the counter for email, typically after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return "login_attempts:" + email
}
