package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scenario-validation-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisSolutionCache implements the SolutionCache port on Redis.
type RedisSolutionCache struct {
	client *redis.Client
}

// NewRedisSolutionCache connects using a URL of the form
// redis://[:password@]host[:port][/database].
func NewRedisSolutionCache(redisURL string) (*RedisSolutionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("solution cache: parse redis URL: %w", err)
	}

	return &RedisSolutionCache{client: redis.NewClient(opts)}, nil
}

// NewRedisSolutionCacheFromClient wraps an existing client. Used by tests
// against miniredis.
func NewRedisSolutionCacheFromClient(client *redis.Client) *RedisSolutionCache {
	return &RedisSolutionCache{client: client}
}

// Get retrieves a cached value, or ports.ErrCacheMiss.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("solution cache: get %q: %w", key, err)
	}
	return val, nil
}

// Set stores a value with the given TTL.
func (c *RedisSolutionCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("solution cache: set %q: %w", key, err)
	}
	return nil
}

// Ping checks whether Redis is reachable.
func (c *RedisSolutionCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("solution cache: ping: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisSolutionCache) Close() error {
	return c.client.Close()
}
