package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer.
// Allows swapping the implementation (Redis, in-memory) without touching handlers.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (JSON-marshaled) under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
