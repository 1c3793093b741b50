package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a WindowStore backed by a Redis counter per key. INCR is
// atomic server-side, so concurrent callers across processes see a
// consistently updated count; the key TTL marks the window boundary.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps the client. The prefix namespaces limiter keys
// away from other users of the same database.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// IncrOrReset implements WindowStore. A fresh key begins a window; key
// expiry ends it, after which the next INCR recreates it at count 1.
func (s *RedisStore) IncrOrReset(ctx context.Context, key string, period time.Duration, now time.Time) (Window, error) {
	fullKey := s.prefix + ":" + key

	count, err := s.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return Window{}, fmt.Errorf("ratelimit redis incr: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, fullKey, period).Err(); err != nil {
			return Window{}, fmt.Errorf("ratelimit redis expire: %w", err)
		}
		return Window{Start: now, Count: count}, nil
	}

	ttl, err := s.client.TTL(ctx, fullKey).Result()
	if err != nil {
		return Window{}, fmt.Errorf("ratelimit redis ttl: %w", err)
	}
	if ttl < 0 {
		// Key lost its TTL (flushed config, manual edits); re-arm it so
		// the window still terminates.
		if err := s.client.Expire(ctx, fullKey, period).Err(); err != nil {
			return Window{}, fmt.Errorf("ratelimit redis expire: %w", err)
		}
		ttl = period
	}

	return Window{Start: now.Add(ttl - period), Count: count}, nil
}
