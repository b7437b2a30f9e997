package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// EntityCache provides read-through caching for entity lookups, backed by Redis.
// Key format: entity:<kind>:<id>
type EntityCache struct {
	client *redis.Client
}

// NewEntityCache creates an EntityCache wrapping the given Redis client.
func NewEntityCache(client *redis.Client) *EntityCache {
	return &EntityCache{client: client}
}

// Get loads the cached entry for kind/id into dest, reporting whether an entry
// was found. An undecodable entry is treated as a miss.
func (c *EntityCache) Get(ctx context.Context, kind, id string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		_ = c.client.Del(ctx, c.key(kind, id)).Err()
		return false, nil
	}
	return true, nil
}

// Set stores the entry for kind/id (expires after cacheTTL).
func (c *EntityCache) Set(ctx context.Context, kind, id string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(kind, id), raw, cacheTTL).Err()
}

// Invalidate removes the entry for kind/id.
func (c *EntityCache) Invalidate(ctx context.Context, kind, id string) error {
	return c.client.Del(ctx, c.key(kind, id)).Err()
}

func (c *EntityCache) key(kind, id string) string {
	return fmt.Sprintf("entity:%s:%s", kind, id)
}
