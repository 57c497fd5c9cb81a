package cache

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"prospect-finder/internal/redis"
)

// maxLocalTTL caps how long the in-memory tier of a two-tier store keeps an
// entry, so it does not outlive a Redis eviction by much.
const maxLocalTTL = 5 * time.Minute

// Store is a byte oriented key value store with expiry
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// LocalStore wraps patrickmn/go-cache for in-memory caching
type LocalStore struct {
	cache *gocache.Cache
}

// NewLocalStore creates a new local store
func NewLocalStore(defaultTTL, cleanupInterval time.Duration) *LocalStore {
	return &LocalStore{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the local store
func (l *LocalStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, found := l.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := val.([]byte)
	return data, ok, nil
}

// Set stores a value in the local store
func (l *LocalStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	l.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the local store
func (l *LocalStore) Delete(ctx context.Context, key string) error {
	l.cache.Delete(key)
	return nil
}

// RedisStore keeps entries in Redis under a key prefix
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a new Redis store
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value from Redis
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.keyPrefix+key)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a value in Redis
func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.keyPrefix+key, value, ttl)
}

// Delete removes a value from Redis
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Delete(ctx, r.keyPrefix+key)
}

// TwoTierStore combines a local L1 with a shared L2
type TwoTierStore struct {
	l1 *LocalStore
	l2 Store
}

// NewTwoTierStore creates a store with local L1 in front of l2
func NewTwoTierStore(localTTL, cleanupInterval time.Duration, l2 Store) *TwoTierStore {
	return &TwoTierStore{
		l1: NewLocalStore(localTTL, cleanupInterval),
		l2: l2,
	}
}

// Get checks L1 first, then L2
func (t *TwoTierStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if val, found, _ := t.l1.Get(ctx, key); found {
		return val, true, nil
	}

	val, found, err := t.l2.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	t.l1.Set(ctx, key, val, gocache.DefaultExpiration)
	return val, true, nil
}

// Set stores in L2 first (source of truth), then L1 with a capped TTL
func (t *TwoTierStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := t.l2.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	l1TTL := ttl
	if ttl > maxLocalTTL {
		l1TTL = maxLocalTTL
	}
	return t.l1.Set(ctx, key, value, l1TTL)
}

// Delete removes from both tiers
func (t *TwoTierStore) Delete(ctx context.Context, key string) error {
	t.l1.Delete(ctx, key)
	return t.l2.Delete(ctx, key)
}
