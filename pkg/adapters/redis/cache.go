package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the keys written by the cache and the locker.
const DefaultPrefix = "scriptsync:"

// Cache implements ports.TranslationCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration of cached translations.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Ping checks that the server is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) key(slug, lang string) string {
	return c.prefix + "tx:" + slug + ":" + lang
}

// Get retrieves the cached strings of a resource and language.
func (c *Cache) Get(ctx context.Context, slug, lang string) (map[string]string, bool, error) {
	val, err := c.client.Get(ctx, c.key(slug, lang)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get from redis: %w", err)
	}

	var strings map[string]string
	if err := json.Unmarshal([]byte(val), &strings); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached translations: %w", err)
	}
	if strings == nil {
		strings = map[string]string{}
	}
	return strings, true, nil
}

// Set stores the strings of a resource and language.
func (c *Cache) Set(ctx context.Context, slug, lang string, strings map[string]string) error {
	if strings == nil {
		strings = map[string]string{}
	}
	data, err := json.Marshal(strings)
	if err != nil {
		return fmt.Errorf("failed to marshal translations: %w", err)
	}

	// Use 0 for no expiration if ttl is not set.
	if err := c.client.Set(ctx, c.key(slug, lang), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Locker returns a Locker sharing the cache's client and prefix.
func (c *Cache) Locker() *Locker {
	return NewLocker(c.client, c.prefix)
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
