package repository

import (
	"context"
	"time"
)

// RevocationRepository is the TTL-keyed registry of revoked tokens.
// Membership implies the token must be rejected regardless of signature
// validity. Entries disappear only by natural TTL expiry.
type RevocationRepository interface {
	// IsRevoked reports whether the token has been revoked. An error means the
	// registry could not be consulted; callers treat that as unavailable
	// rather than "not revoked".
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Revoke records the token with the given TTL. Idempotent; concurrent
	// calls for the same token are safe.
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}
