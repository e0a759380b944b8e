package memory

import (
	"context"
	"maps"
	"sync"
)

// Cache implements ports.TranslationCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]map[string]string
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]map[string]string),
	}
}

func cacheKey(slug, lang string) string {
	return slug + ":" + lang
}

// Get returns a copy of the cached strings.
func (c *Cache) Get(ctx context.Context, slug, lang string) (map[string]string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	strings, ok := c.data[cacheKey(slug, lang)]
	if !ok {
		return nil, false, nil
	}
	return maps.Clone(strings), true, nil
}

// Set stores a copy of strings so later caller mutations do not leak in.
func (c *Cache) Set(ctx context.Context, slug, lang string, strings map[string]string) error {
	copied := maps.Clone(strings)
	if copied == nil {
		copied = map[string]string{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey(slug, lang)] = copied
	return nil
}
