package cache

import (
	"context"
	"errors"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a shared Redis instance, for deployments with
// more than one API replica.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warnw(ctx, "redis get failed, treating as miss", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warnw(ctx, "redis set failed, entry dropped", "key", key, "error", err)
	}
}
