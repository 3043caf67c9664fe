package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu-perfil/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis.address and pings it. A comma-separated
// address list yields a cluster client.
func NewRedisClient(redisCfg config.RedisConfig) (redis.UniversalClient, error) {
	if strings.TrimSpace(redisCfg.Address) == "" {
		return nil, fmt.Errorf("redis.address is empty")
	}

	addrs := strings.Split(redisCfg.Address, ",")
	for i := range addrs {
		addrs[i] = strings.TrimSpace(addrs[i])
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    addrs,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}
	return client, nil
}
