package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const directoryTTL = 30 * time.Second

// DirectoryCache caches rendered directory listings with a short TTL.
// Key format: directory:<listing>
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached payload for key; ok is false on a miss.
func (d *DirectoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := d.client.Get(ctx, d.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores a payload under key (expires after directoryTTL).
func (d *DirectoryCache) Set(ctx context.Context, key string, payload []byte) error {
	return d.client.Set(ctx, d.key(key), payload, directoryTTL).Err()
}

func (d *DirectoryCache) key(key string) string {
	return "directory:" + key
}
