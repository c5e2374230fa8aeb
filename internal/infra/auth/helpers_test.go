package auth

import (
	"time"

	"keygate/config"
)

// fakeClock pins Now to a controllable instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestAuthConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  7 * 24 * time.Hour,
			LockoutThreshold: 5,
		},
	}
	cfg.SecretKey.Token = "test-signing-secret"

	return cfg
}
