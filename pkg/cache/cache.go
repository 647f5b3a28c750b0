// Package cache provides a thread-safe LRU cache for resolved programs.
//
// Resolution links every call site of a filter to its definition. For a
// filter that is applied to many inputs, resolving once and reusing the
// Program avoids repeating that work.
//
// # Example
//
//	c := cache.New(1024)
//	prog, err := c.GetOrOpen("select-positive", func() (*evaluator.Program, error) {
//	    return resolver.Open(main, std.Module())
//	})
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/sandrolain/gojaq/pkg/evaluator"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU (Least Recently Used) cache of programs.
// Once the capacity is reached, the least recently accessed entry is evicted.
//
// Safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	capacity int
	lru      *lru.Cache
	evicted  uint64
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity, lru: lru.New(capacity)}
	c.lru.OnEvicted = func(lru.Key, interface{}) { c.evicted++ }
	return c
}

// Get retrieves a program from the cache and marks it most recently used.
func (c *Cache) Get(key string) (*evaluator.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*evaluator.Program), true
}

// Set inserts or replaces a program in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache) Set(key string, prog *evaluator.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, prog)
}

// GetOrOpen returns the program cached under key, or calls open to build
// it, caches the result and returns it. Errors are not cached.
func (c *Cache) GetOrOpen(key string, open func() (*evaluator.Program, error)) (*evaluator.Program, error) {
	if prog, ok := c.Get(key); ok {
		return prog, nil
	}
	prog, err := open()
	if err != nil {
		return nil, err
	}
	c.Set(key, prog)
	return prog, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Evictions returns how many entries were dropped to make room or removed
// explicitly since the cache was created.
func (c *Cache) Evictions() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evicted
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}
