package revocation

import (
	"context"
	"time"

	"keygate/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// blacklistPrefix namespaces revocation entries in the shared Redis keyspace.
const blacklistPrefix = "auth:blacklist:"

// redisRegistry implements repository.RevocationRepository. Errors are
// returned to the caller; the registry itself never decides between
// fail-open and fail-closed.
type redisRegistry struct {
	client *redis.Client
}

// NewRedisRegistry is the constructor for redisRegistry.
func NewRedisRegistry(client *redis.Client) repository.RevocationRepository {
	return &redisRegistry{client: client}
}

// IsRevoked checks membership of the token in the blacklist.
func (r *redisRegistry) IsRevoked(ctx context.Context, token string) (bool, error) {
	count, err := r.client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check revocation registry")
	}

	return count > 0, nil
}

// Revoke inserts the token with the given TTL. Re-revoking the same token
// only refreshes the marker; the entry stays a single boolean-equivalent
// value, so concurrent calls are safe.
func (r *redisRegistry) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, blacklistPrefix+token, "revoked", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write revocation entry")
	}

	return nil
}
