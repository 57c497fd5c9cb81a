// Package redis wraps go-redis for the shared search cache. Every operation
// is bounded by a short timeout so a slow server degrades to a cache miss
// instead of delaying lookups.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("redis: key not found")

const (
	defaultPoolSize    = 10
	defaultDialTimeout = 5 * time.Second
	defaultOpTimeout   = 500 * time.Millisecond
)

type Client struct {
	rdb    *redis.Client
	config *Config
}

type Config struct {
	Address     string        `json:"address"`
	Password    string        `json:"-"`
	DB          int           `json:"db"`
	PoolSize    int           `json:"pool_size"`
	DialTimeout time.Duration `json:"dial_timeout"`
	OpTimeout   time.Duration `json:"op_timeout"` // bounds each Get, Set and Delete
}

// NewClient connects and pings the server, failing if it is unreachable
// within the dial timeout.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	if config.Address == "" {
		config.Address = "localhost:6379"
	}
	if config.PoolSize == 0 {
		config.PoolSize = defaultPoolSize
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = defaultDialTimeout
	}
	if config.OpTimeout <= 0 {
		config.OpTimeout = defaultOpTimeout
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        config.Address,
		Password:    config.Password,
		DB:          config.DB,
		PoolSize:    config.PoolSize,
		DialTimeout: config.DialTimeout,
		MaxRetries:  1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.DialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.Address, err)
	}

	return &Client{
		rdb:    rdb,
		config: config,
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Health pings the server; /health reports the result.
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.DialTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Get returns the raw bytes stored under key or ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.OpTimeout)
	defer cancel()

	value, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key. A zero ttl keeps the key until deleted.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.OpTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.config.OpTimeout)
	defer cancel()
	return c.rdb.Del(ctx, keys...).Err()
}
