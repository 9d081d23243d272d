package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window limiter shared by every server instance that
// points at the same Redis. Counters live under ratelimit:<key>:<window>.
type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedis connects a fixed-window limiter to the Redis server at addr.
func NewRedis(addr string, limit int, window time.Duration) *Redis {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return NewRedisWithClient(client, limit, window)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow increments the counter for the current window of key.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := r.now().UnixNano() / int64(r.window)
	counterKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= r.limit, nil
}

// Ping checks connectivity at startup.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
