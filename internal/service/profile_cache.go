package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"edu-perfil/internal/cache"
	"edu-perfil/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProfileCache is a read-through cache of active profiles. Concurrent misses
// for the same student share one load.
//
// Each key carries a generation that Invalidate bumps. A load that started
// before an invalidation never leaves its result in the store.
type ProfileCache struct {
	store  domain.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// NewProfileCache returns a cache over store. A nil store disables caching.
func NewProfileCache(store domain.Cache, ttl time.Duration, logger *zap.Logger) *ProfileCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileCache{store: store, ttl: ttl, logger: logger, generations: make(map[string]uint64)}
}

func (c *ProfileCache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

func (c *ProfileCache) bump(key string) {
	c.mu.Lock()
	c.generations[key]++
	c.mu.Unlock()
}

func profileKey(studentID string) string {
	return cache.ActiveProfileKey(studentID)
}

// GetOrLoad returns the cached profile or calls load. A nil profile from
// load is returned as is and never cached.
func (c *ProfileCache) GetOrLoad(ctx context.Context, studentID string, load func(ctx context.Context) (*domain.StoredProfile, error)) (*domain.StoredProfile, error) {
	if c == nil || c.store == nil {
		return load(ctx)
	}
	key := profileKey(studentID)

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var p domain.StoredProfile
		jsonErr := json.Unmarshal([]byte(raw), &p)
		if jsonErr == nil {
			return &p, nil
		}
		c.logger.Warn("Discarding undecodable cached profile", zap.String("key", key), zap.Error(jsonErr))
	case errors.Is(err, domain.ErrCacheMiss):
	default:
		c.logger.Warn("Profile cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		gen := c.generation(key)
		p, err := load(ctx)
		if err != nil || p == nil {
			return p, err
		}
		if c.generation(key) != gen {
			return p, nil
		}
		data, mErr := json.Marshal(p)
		if mErr != nil {
			return p, nil
		}
		if sErr := c.store.Set(ctx, key, string(data), c.ttl); sErr != nil {
			c.logger.Warn("Profile cache write failed", zap.String("key", key), zap.Error(sErr))
			return p, nil
		}
		// an Invalidate that landed between the check and the write may
		// already have run its Delete
		if c.generation(key) != gen {
			if dErr := c.store.Delete(ctx, key); dErr != nil {
				c.logger.Warn("Profile cache rollback failed", zap.String("key", key), zap.Error(dErr))
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	p, _ := v.(*domain.StoredProfile)
	return p, nil
}

// Invalidate drops the cached profile of a student. Loads already in flight
// keep serving their callers but are not cached, and later callers start a
// fresh load.
func (c *ProfileCache) Invalidate(ctx context.Context, studentID string) {
	if c == nil || c.store == nil {
		return
	}
	key := profileKey(studentID)
	c.bump(key)
	c.group.Forget(key)
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn("Profile cache invalidation failed", zap.String("estudiante_id", studentID), zap.Error(err))
	}
}
