package cache

import (
	"sync"
	"time"
)

// Observer receives cache hit/miss notifications.
type Observer interface {
	RecordCacheHit()
	RecordCacheMiss()
}

type entry struct {
	value     any
	timestamp time.Time
}

// Cache is a bounded key-value cache with TTL expiration and LRU
// eviction. All operations are serialized by a single lock; callers may
// use it from multiple goroutines without external synchronization.
type Cache struct {
	mu       sync.Mutex
	maxSize  int
	ttl      time.Duration
	entries  map[string]entry
	access   map[string]time.Time
	hits     uint64
	lookups  uint64
	observer Observer
	now      func() time.Time
}

// Stats reports cache state at a point in time.
type Stats struct {
	Size           int     `json:"size"`
	MaxSize        int     `json:"max_size"`
	ExpiredEntries int     `json:"expired_entries"`
	HitRatio       float64 `json:"hit_ratio"`
}

// New creates a cache holding at most maxSize entries, each expiring
// ttl after insertion.
func New(maxSize int, ttl time.Duration) *Cache {
	return &Cache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]entry),
		access:  make(map[string]time.Time),
		now:     time.Now,
	}
}

// SetObserver registers a hit/miss observer. Pass nil to detach.
func (c *Cache) SetObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = o
}

// Get returns the value stored under key. An entry older than the TTL,
// measured from insertion, is treated as absent and removed as a side
// effect. A hit updates the entry's access time.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lookups++
	e, ok := c.entries[key]
	if !ok {
		c.recordMiss()
		return nil, false
	}

	if c.now().Sub(e.timestamp) > c.ttl {
		delete(c.entries, key)
		delete(c.access, key)
		c.recordMiss()
		return nil, false
	}

	c.hits++
	c.access[key] = c.now()
	c.recordHit()
	return e.value, true
}

// Put stores value under key. If the cache is at capacity and key is new,
// the entry with the oldest access time is evicted first; the key being
// put is never the victim.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLRU()
	}

	now := c.now()
	c.entries[key] = entry{value: value, timestamp: now}
	c.access[key] = now
}

// evictLRU removes the entry with the oldest access time. Ties are broken
// by the lexicographically smallest key so eviction is reproducible for
// identical timestamps. Caller must hold the lock.
func (c *Cache) evictLRU() {
	if len(c.access) == 0 {
		return
	}
	var victim string
	var oldest time.Time
	first := true
	for key, at := range c.access {
		if first || at.Before(oldest) || (at.Equal(oldest) && key < victim) {
			victim = key
			oldest = at
			first = false
		}
	}
	delete(c.entries, victim)
	delete(c.access, victim)
}

// Clear removes all entries. Idempotent.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.access = make(map[string]time.Time)
}

// Size returns the raw entry count with no TTL filtering.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns current cache statistics. Expired entries are counted by
// scanning, not removed.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expired := 0
	for _, e := range c.entries {
		if now.Sub(e.timestamp) > c.ttl {
			expired++
		}
	}

	ratio := 0.0
	if c.lookups > 0 {
		ratio = float64(c.hits) / float64(c.lookups)
	}

	return Stats{
		Size:           len(c.entries),
		MaxSize:        c.maxSize,
		ExpiredEntries: expired,
		HitRatio:       ratio,
	}
}

// SetMaxSize adjusts the capacity, evicting down to the new size if
// needed.
func (c *Cache) SetMaxSize(maxSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = maxSize
	for len(c.entries) > c.maxSize {
		c.evictLRU()
	}
}

// SetTTL adjusts the time-to-live applied on subsequent reads.
func (c *Cache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Cache) recordHit() {
	if c.observer != nil {
		c.observer.RecordCacheHit()
	}
}

func (c *Cache) recordMiss() {
	if c.observer != nil {
		c.observer.RecordCacheMiss()
	}
}
