// Package redis provides a Redis-backed summary cache for deployments where
// several condense processes share results.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sweetpotato0/condense/config"
)

// Config holds Redis cache configuration.
type Config struct {
	Addr     string        // Redis server address (e.g., "localhost:6379")
	Password string        // Redis password (if any)
	DB       int           // Redis database number
	Prefix   string        // Key prefix for namespacing
	TTL      time.Duration // Time-to-live for cached summaries (0 means no expiration)
}

// DefaultConfig returns the stock cache configuration for addr.
func DefaultConfig(addr string) *Config {
	return &Config{
		Addr:   addr,
		Prefix: "condense:summary:",
		TTL:    24 * time.Hour,
	}
}

// Cache implements cache.Cache on Redis.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis-backed summary cache.
func New(cfg *Config) (*Cache, error) {
	if cfg == nil {
		cfg = DefaultConfig("localhost:6379")
	}
	if err := config.ValidateRedisConfig(cfg.Addr, cfg.DB, cfg.Prefix); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Cache{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
	}, nil
}

// Get implements cache.Cache.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis cache: get: %w", err)
	}
	return val, true, nil
}

// Set implements cache.Cache.
func (c *Cache) Set(ctx context.Context, key, summary string) error {
	if err := c.client.Set(ctx, c.prefix+key, summary, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache: set: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
