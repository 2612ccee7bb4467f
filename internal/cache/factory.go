package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/patriotcart/savings-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the cache selected by configuration. The redis backend is
// pinged once so a bad address fails at startup instead of silently
// degrading every adapter call into a miss.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		return NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
