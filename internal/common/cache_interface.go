package common

import "time"

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// GetOrAdd returns the cached value for key, or stores and returns the
	// value built by loader. Concurrent callers for one key all receive the
	// same stored value.
	GetOrAdd(key string, duration time.Duration, loader func() any) interface{}

	// Set stores value under key, replacing any entry and resetting its
	// expiry
	Set(key string, value interface{}, duration time.Duration)

	// Delete removes a value from cache by key
	Delete(key string)

	// ItemCount reports the number of live entries
	ItemCount() int
}
