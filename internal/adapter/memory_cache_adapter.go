package adapter

import (
	"context"
	"sync"
	"time"

	"edu-perfil/internal/domain"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// sweepInterval bounds how often Set scans for expired entries.
const sweepInterval = time.Minute

// MemoryCache is an in-process domain.Cache for single-instance deployments.
// Expired entries are dropped on read and by a periodic sweep run from Set,
// so keys that are never read again do not pile up.
type MemoryCache struct {
	mu        sync.RWMutex
	items     map[string]memoryEntry
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryCache returns an empty cache. now defaults to time.Now.
func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{items: make(map[string]memoryEntry), now: now}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return "", domain.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// re-check under the write lock; a concurrent Set may have replaced it
		if cur, ok := c.items[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return "", domain.ErrCacheMiss
	}
	return e.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	now := c.now()
	e := memoryEntry{value: value}
	if expiration > 0 {
		e.expiresAt = now.Add(expiration)
	}
	c.mu.Lock()
	if !now.Before(c.nextSweep) {
		c.sweepLocked(now)
	}
	c.items[key] = e
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) sweepLocked(now time.Time) {
	for k, e := range c.items {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
	c.nextSweep = now.Add(sweepInterval)
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Ping(context.Context) error {
	return nil
}

// size reports the number of stored entries, expired ones included.
func (c *MemoryCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
