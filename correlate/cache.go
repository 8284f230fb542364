package correlate

import (
	"errors"
	"sync"
)

// ErrInvalidCapacity indicates a cache was constructed with capacity < 1.
var ErrInvalidCapacity = errors.New("correlate: capacity must be at least 1")

// Cache is a fixed-capacity map from string keys to values with FIFO
// eviction. The zero value is not usable; construct with New.
//
// All methods are safe for concurrent use. Add is atomic with respect to
// Find and Get: a reader never observes the evicted entry and the new entry
// at the same time.
type Cache[V any] struct {
	mu      sync.RWMutex
	keys    []string // insertion ring; "" marks a never-used slot
	cursor  int
	entries map[string]V
}

// New creates a cache holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[V]{
		keys:    make([]string, capacity),
		entries: make(map[string]V, capacity),
	}, nil
}

// Add inserts or overwrites the entry for key. Re-adding an existing key
// replaces its value in place without consuming a ring slot, so the key
// keeps its original eviction position. Otherwise the key claims the slot
// at the write cursor, evicting whatever key previously held it.
func (c *Cache[V]) Add(key string, value V) {
	if key == "" {
		// The empty string marks unused ring slots.
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}

	if old := c.keys[c.cursor]; old != "" {
		delete(c.entries, old)
	}
	c.keys[c.cursor] = key
	c.cursor = (c.cursor + 1) % len(c.keys)
	c.entries[key] = value
}

// Find returns the value of the first entry, in insertion order, whose key
// satisfies pred. The second return is false when nothing qualifies; that is
// an expected outcome, not an error.
func (c *Cache[V]) Find(pred func(key string) bool) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Scan from the oldest slot forward so matches are deterministic when
	// several registered prefixes could satisfy pred.
	n := len(c.keys)
	for i := 0; i < n; i++ {
		key := c.keys[(c.cursor+i)%n]
		if key == "" {
			continue
		}
		if v, ok := c.entries[key]; ok && pred(key) {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Get returns the value registered under exactly key.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Contains reports whether key is currently registered.
func (c *Cache[V]) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of live entries. Always <= Capacity.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Capacity returns the fixed capacity the cache was constructed with.
func (c *Cache[V]) Capacity() int {
	return len(c.keys)
}
