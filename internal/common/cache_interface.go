package common

import (
	"os"
	"time"

	"dronekids/groundcontrol/internal/logging"
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

// NewCacheFromEnv returns the Redis cache when REDIS_ENABLED is set and
// reachable, otherwise the in-memory cache. Single-instance deployments
// run fine without Redis; it only matters once several replicas need to
// share the reference-path cache.
func NewCacheFromEnv() CacheInterface {
	if os.Getenv("REDIS_ENABLED") == "true" {
		redisCache, err := NewRedisCacheService()
		if err == nil {
			logging.Info("Using Redis cache")
			return redisCache
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	return NewCacheService(300, 600)
}
