package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenVersions stores the per-user token version counter in Redis.
// A missing key reads as version 0, so fresh users need no initialisation.
// Key format: tokenver:<user_id>
type TokenVersions struct {
	client *redis.Client
}

// NewTokenVersions creates a TokenVersions store wrapping the given client.
func NewTokenVersions(client *redis.Client) *TokenVersions {
	return &TokenVersions{client: client}
}

// Current returns the user's version counter.
func (t *TokenVersions) Current(ctx context.Context, userID string) (int64, error) {
	ver, err := t.client.Get(ctx, t.key(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("token version get: %w", err)
	}
	return ver, nil
}

// Bump increments the counter, revoking every token issued before the bump.
func (t *TokenVersions) Bump(ctx context.Context, userID string) (int64, error) {
	ver, err := t.client.Incr(ctx, t.key(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("token version bump: %w", err)
	}
	return ver, nil
}

func (t *TokenVersions) key(userID string) string {
	return "tokenver:" + userID
}
