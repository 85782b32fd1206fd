// Package cache provides a bounded in-memory cache with per-entry TTL and
// FIFO eviction. A single instance is created at startup and injected into
// the request path; implementations are safe for concurrent use.
package cache

import (
	"sync"
	"time"
)

// entry is a stored value with its lifetime bounds.
type entry[V any] struct {
	value     V
	createdAt time.Time
	expiresAt time.Time
}

// Stats is a read-only snapshot of the cache state.
type Stats struct {
	Size       int      `json:"size"`
	MaxSize    int      `json:"max_size"`
	TTLSeconds int      `json:"ttl_seconds"`
	Keys       []string `json:"keys"`
}

// Cache is a bounded key-value store. Entries expire ttl after being set
// (checked lazily on Get) and the oldest-inserted entry is evicted when a
// new key would exceed maxSize. Re-setting an existing key refreshes its
// value and TTL but keeps its slot in the eviction order.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	order   []string // insertion order, oldest first
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache holding at most maxSize entries, each valid for ttl.
func New[V any](maxSize int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V], maxSize),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key, or false on a miss. An entry whose TTL has
// elapsed is removed and reported as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if !c.now().Before(e.expiresAt) {
		c.remove(key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, evicting the oldest entry if a new key would
// exceed the capacity bound.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e := entry[V]{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}

	if _, exists := c.entries[key]; exists {
		// Replace wholesale; the key keeps its eviction slot.
		c.entries[key] = e
		return
	}

	if len(c.entries) >= c.maxSize {
		c.remove(c.order[0])
	}

	c.entries[key] = e
	c.order = append(c.order, key)
}

// Clear removes all entries and returns how many were removed.
func (c *Cache[V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry[V], c.maxSize)
	c.order = c.order[:0]
	return n
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache state. Keys are reported in
// insertion order.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)

	return Stats{
		Size:       len(c.entries),
		MaxSize:    c.maxSize,
		TTLSeconds: int(c.ttl / time.Second),
		Keys:       keys,
	}
}

// remove deletes key from the entry map and the order slice.
// Callers must hold c.mu.
func (c *Cache[V]) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
