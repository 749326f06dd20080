package common

import (
	"encoding/json"
	"time"
)

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// GetOrSet retrieves a value from cache, or loads it using the loader function if not found
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetAs fetches key and converts it to T.
func GetAs[T any](c CacheInterface, key string) (T, bool) {
	raw, found := c.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	return As[T](raw)
}

// As converts a cached value to T. Redis hands values back as decoded JSON,
// so anything that is not already a T is re-marshalled.
func As[T any](raw interface{}) (T, bool) {
	var zero T
	if v, ok := raw.(T); ok {
		return v, true
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, false
	}
	return out, true
}
