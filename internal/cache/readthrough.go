package cache

import (
	"context"
	"log"
	"time"
)

// ReadThrough returns the cached value at key, or loads, stores, and returns it.
// Cache failures fall back to load; they never fail the read.
func ReadThrough[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
	}
	if err == nil && found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return value, nil
}
