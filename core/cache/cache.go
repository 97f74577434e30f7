package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

// Store defines the interface for the key-value cache.
type Store interface {
	// Get returns the raw value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a raw value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GetOrSet implements the cache-aside pattern for a JSON-encoded value.
// On a hit the cached value is decoded and returned. On a miss the fill
// function is invoked; its result is stored with the given TTL and returned.
// Fill errors are propagated and never cached. Cache transport errors on the
// read path are treated as a miss.
//
// Two concurrent callers may both miss and both fill; last write wins.
func GetOrSet[T any](ctx context.Context, store Store, key string, ttl time.Duration, fill func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, ok, err := store.Get(ctx, key)
	if err == nil && ok {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
		// Undecodable entry: fall through and refill.
	}

	value, err := fill(ctx)
	if err != nil {
		return zero, err
	}

	raw, err = json.Marshal(value)
	if err != nil {
		return zero, err
	}
	if err := store.Set(ctx, key, raw, ttl); err != nil {
		return zero, err
	}
	return value, nil
}
