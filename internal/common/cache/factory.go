package cache

import (
	"fmt"
	"time"

	"prospect-finder/internal/redis"
)

// Type represents the cache backend type
type Type string

const (
	TypeLocal   Type = "local"
	TypeRedis   Type = "redis"
	TypeTwoTier Type = "two_tier"
)

// DefaultKeyPrefix namespaces every key this service writes
const DefaultKeyPrefix = "prospect:"

// Config holds cache configuration
type Config struct {
	Type            Type          `json:"type"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval,omitempty"`
	KeyPrefix       string        `json:"key_prefix,omitempty"`
	RedisClient     *redis.Client `json:"-"`
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		Type:            TypeLocal,
		TTL:             10 * time.Minute,
		CleanupInterval: 20 * time.Minute,
		KeyPrefix:       DefaultKeyPrefix,
	}
}

// New creates a store based on configuration
func New(config Config) (Store, error) {
	defaults := DefaultConfig()
	if config.TTL <= 0 {
		config.TTL = defaults.TTL
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 2 * config.TTL
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = defaults.KeyPrefix
	}

	switch config.Type {
	case TypeLocal:
		return NewLocalStore(config.TTL, config.CleanupInterval), nil

	case TypeRedis:
		if config.RedisClient == nil {
			return nil, fmt.Errorf("redis client required for redis cache")
		}
		return NewRedisStore(config.RedisClient, config.KeyPrefix), nil

	case TypeTwoTier:
		if config.RedisClient == nil {
			return nil, fmt.Errorf("redis client required for two-tier cache")
		}
		localTTL := config.TTL
		if localTTL > maxLocalTTL {
			localTTL = maxLocalTTL
		}
		return NewTwoTierStore(localTTL, config.CleanupInterval, NewRedisStore(config.RedisClient, config.KeyPrefix)), nil

	default:
		return nil, fmt.Errorf("unknown cache type: %s", config.Type)
	}
}
