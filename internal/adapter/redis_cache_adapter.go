package adapter

import (
	"context"
	"errors"
	"time"

	"edu-perfil/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCacheAdapter is the domain.Cache used when cache.driver is "redis".
// It accepts any UniversalClient so a single node, sentinel or cluster
// deployment can back it.
type RedisCacheAdapter struct {
	client redis.UniversalClient
}

func NewRedisCacheAdapter(client redis.UniversalClient) domain.Cache {
	return &RedisCacheAdapter{client: client}
}

func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	return val, err
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Delete uses UNLINK so invalidating a large profile never blocks Redis.
func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Unlink(ctx, key).Err()
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
