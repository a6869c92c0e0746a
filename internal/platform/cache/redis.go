package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is cache backed by Redis, shared by all importer workers.
type Redis struct {
	client *redis.Client
}

// NewRedis returns new Redis cache using provided client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client: client,
	}
}

// Get returns id stored under key. Second returned value is false when key doesn't exist or expired.
func (r *Redis) Get(ctx context.Context, key string) (int64, bool, error) {
	id, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("can't get %q from redis: %w", key, err)
	}

	return id, true, nil
}

// Set stores id under key for ttl.
func (r *Redis) Set(ctx context.Context, key string, id int64, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, id, ttl).Err(); err != nil {
		return fmt.Errorf("can't set %q in redis: %w", key, err)
	}

	return nil
}
