package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by SolutionCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Port: byte-oriented cache for solver responses, keyed by scenario content
// hash. Solving is the expensive call in this system; identical scenario
// documents must never hit the solver twice within the TTL.
type SolutionCache interface {
	// Get retrieves a cached value, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
