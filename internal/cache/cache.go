// Package cache provides an in-process get-or-create cache with per-key
// mutual exclusion. A miss blocks only callers asking for the same key, so an
// expensive aggregate is computed at most once no matter how many requests
// race on an expired entry.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Factory computes a value for a missing key.
type Factory func(ctx context.Context) (any, error)

// OptionalFactory computes a value for a missing key, or reports that no
// value exists. Absent values are never cached.
type OptionalFactory func(ctx context.Context) (any, bool, error)

type entry struct {
	value     any
	expiresAt time.Time
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

// Cache is a TTL cache with single-flight semantics per key.
//
// Expiry is evaluated lazily on lookup; no background sweeper runs. The
// per-key lock registry grows on demand and is never pruned for the process
// lifetime, which is acceptable because the key space is one entry per
// distinct aggregate, not per request.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	keys    map[string]struct{} // secondary index, maintained via evict()
	hits    uint64
	misses  uint64

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		keys:    make(map[string]struct{}),
		locks:   make(map[string]*sync.Mutex),
		now:     time.Now,
	}
}

// GetOrCreate returns the cached value for key, or invokes factory to compute
// it. Concurrent callers for the same missing key invoke factory exactly once
// combined; callers for different keys do not block each other. Factory
// errors propagate to the caller and nothing is cached.
func (c *Cache) GetOrCreate(ctx context.Context, key string, ttl time.Duration, factory Factory) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	// Another caller may have populated the key while we waited.
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err := factory(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

// GetOrCreateOptional is GetOrCreate for factories that may legitimately
// produce no value. The second return reports whether a value exists; absent
// results are never cached, so a later caller retries the factory.
func (c *Cache) GetOrCreateOptional(ctx context.Context, key string, ttl time.Duration, factory OptionalFactory) (any, bool, error) {
	if v, ok := c.lookup(key); ok {
		return v, true, nil
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if v, ok := c.lookup(key); ok {
		return v, true, nil
	}

	v, ok, err := factory(ctx)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	c.Set(key, v, ttl)
	return v, true, nil
}

// Set stores value under key with the given TTL, replacing any prior entry.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.keys[key] = struct{}{}
}

// Remove evicts a single key. Removing a missing key is a no-op.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evict(key)
}

// RemoveByPrefix evicts every live key that starts with prefix. Used when an
// upstream mutation invalidates a whole family of cached aggregates.
func (c *Cache) RemoveByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.keys {
		if strings.HasPrefix(key, prefix) {
			c.evict(key)
		}
	}
}

// Stats returns current counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// lookup returns a live value for key, lazily evicting an expired entry.
func (c *Cache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.evict(key)
		c.misses++
		return nil, false
	}
	c.hits++
	return e.value, true
}

// evict removes the entry and its index slot. Callers hold c.mu.
func (c *Cache) evict(key string) {
	delete(c.entries, key)
	delete(c.keys, key)
}

// keyLock returns the mutex for key, creating it on first use. Locks are
// never removed; see the type comment.
func (c *Cache) keyLock(key string) *sync.Mutex {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	return lock
}
