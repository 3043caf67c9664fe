package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized values for the read-through profile cache.
// Implementations: adapter.RedisCacheAdapter, adapter.MemoryCache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set with expiration 0 keeps the value until it is deleted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete succeeds for missing keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
