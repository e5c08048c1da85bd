// Package cache is the Redis-backed result cache: completed search
// results keyed by id and by fingerprint, plus the fingerprint → search id
// mapping used for request deduplication.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/painscope/painscope/pkg/models"
)

// Cache wraps a Redis client with the result cache operations.
type Cache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// New creates a Cache with the given TTL for all entries.
func New(rdb redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// TTL returns the configured entry lifetime.
func (c *Cache) TTL() time.Duration { return c.ttl }

// GetResult loads a cached SearchResult under key. A miss returns
// (nil, nil). A corrupted entry is deleted and reported as a miss so the
// caller falls back to the store.
func (c *Cache) GetResult(ctx context.Context, key string) (*models.SearchResult, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	var result models.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Warn("Deleting corrupted cache entry", "key", key, "error", err)
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			slog.Warn("Failed to delete corrupted cache entry", "key", key, "error", delErr)
		}
		return nil, nil
	}
	return &result, nil
}

// SetResult stores a completed result under both the id and fingerprint
// keys and refreshes the fingerprint mapping, pipelined so the three
// writes go out together. Partial writes are tolerated by readers.
func (c *Cache) SetResult(ctx context.Context, searchID, fp string, result *models.SearchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result for cache: %w", err)
	}

	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, ResultByIDKey(searchID), raw, c.ttl)
	pipe.Set(ctx, ResultByFingerprintKey(fp), raw, c.ttl)
	pipe.Set(ctx, MappingKey(fp), searchID, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache result write failed: %w", err)
	}
	return nil
}

// GetMapping returns the search id mapped to a fingerprint, or "" on miss.
func (c *Cache) GetMapping(ctx context.Context, fp string) (string, error) {
	id, err := c.rdb.Get(ctx, MappingKey(fp)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache mapping get: %w", err)
	}
	return id, nil
}

// SetMappingNX claims the fingerprint mapping for searchID. Returns false
// when another intake already claimed it; the caller should re-read the
// mapping and reuse the winner's search.
func (c *Cache) SetMappingNX(ctx context.Context, fp, searchID string) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, MappingKey(fp), searchID, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache mapping setnx: %w", err)
	}
	return ok, nil
}

// DeleteMapping drops the fingerprint mapping, used when the insert that
// followed a successful claim fails.
func (c *Cache) DeleteMapping(ctx context.Context, fp string) error {
	if err := c.rdb.Del(ctx, MappingKey(fp)).Err(); err != nil {
		return fmt.Errorf("cache mapping delete: %w", err)
	}
	return nil
}

// Ping verifies connectivity, used by the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
