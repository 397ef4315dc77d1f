package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/otterhq/suilens/internal/explain"
)

// explanationKeyPrefix is the namespace prefix for all explanation cache keys.
const explanationKeyPrefix = "suilens"

// explanationKey constructs the Redis key holding the cached explanation for
// a transaction digest.
//
// Format: "suilens:explanation:{digest}"
func explanationKey(digest string) string {
	return fmt.Sprintf("%s:explanation:%s", explanationKeyPrefix, digest)
}

// GetExplanation implements the explain.CacheStorage interface.
//
// It loads the JSON-encoded entry stored for the digest. A missing key maps
// to explain.ErrCacheMiss so the service can distinguish a miss from a
// Redis failure.
func (c *client) GetExplanation(ctx context.Context, digest string) (explain.CacheEntry, error) {
	val, err := c.conn.Get(ctx, explanationKey(digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = explain.ErrCacheMiss
		}

		return explain.CacheEntry{}, err
	}

	var entry explain.CacheEntry
	return entry, json.Unmarshal(val, &entry)
}

// SaveExplanation stores the JSON-encoded entry under the digest key,
// applying the client's TTL when one is configured.
func (c *client) SaveExplanation(ctx context.Context, entry explain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, explanationKey(entry.Digest), data, c.ttl).Err()
}

// DeleteExplanation removes the entry for the digest. Deleting an absent key
// is a no-op.
func (c *client) DeleteExplanation(ctx context.Context, digest string) error {
	return c.conn.Del(ctx, explanationKey(digest)).Err()
}

// Compile-time assertion to ensure *client satisfies the explain.CacheStorage interface.
var _ explain.CacheStorage = new(client)
