// Package cache is a best-effort read-through cache in front of the
// list-oriented endpoints. Every backend failure degrades: a failed Get is a
// miss, a failed Set or Delete is logged and swallowed. The durable store is
// never bypassed on a write, so a broken cache can only mean a slower read
// or a briefly stale list, never wrong durable state.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	applog "mandi/internal/log"
)

// DefaultTTL applies when the facade is built with a zero ttl.
const DefaultTTL = time.Hour

// Store is the raw backend. Each call may fail independently of the
// database; the facade absorbs those failures.
type Store interface {
	Get(key string) (any, bool, error)
	Set(key string, val any, ttl time.Duration) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Memory is the in-process Store on patrickmn/go-cache.
type Memory struct{ c *gocache.Cache }

func NewMemory() *Memory {
	return &Memory{c: gocache.New(DefaultTTL, 10*time.Minute)}
}

func (m *Memory) Get(key string) (any, bool, error) {
	v, ok := m.c.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(key string, val any, ttl time.Duration) error {
	m.c.Set(key, val, ttl)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	items := m.c.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return keys, nil
}

// Cache is the facade handed to services.
type Cache struct {
	store Store
	ttl   time.Duration
}

func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// Get returns the cached value, or ok=false on a miss or any backend
// failure. Callers fall through to the durable store either way.
func (c *Cache) Get(key string) (any, bool) {
	v, ok, err := c.store.Get(key)
	if err != nil {
		applog.Error(nil, "cache.get.degraded", err, map[string]any{"key": key})
		return nil, false
	}
	return v, ok
}

func (c *Cache) Set(key string, val any) {
	if err := c.store.Set(key, val, c.ttl); err != nil {
		applog.Error(nil, "cache.set.dropped", err, map[string]any{"key": key})
	}
}

func (c *Cache) Delete(keys ...string) {
	for _, k := range keys {
		if err := c.store.Delete(k); err != nil {
			applog.Error(nil, "cache.delete.dropped", err, map[string]any{"key": k})
		}
	}
}

func (c *Cache) Keys() []string {
	keys, err := c.store.Keys()
	if err != nil {
		applog.Error(nil, "cache.keys.degraded", err, nil)
		return nil
	}
	return keys
}

// Reset drops every entry and returns how many were removed.
// Administrative use only.
func (c *Cache) Reset() int {
	keys := c.Keys()
	c.Delete(keys...)
	return len(keys)
}
