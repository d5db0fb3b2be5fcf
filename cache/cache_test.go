package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests step time forward deterministically.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestCache(maxSize int, ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(maxSize, ttl)
	c.now = clock.Now
	return c, clock
}

func TestPutGet(t *testing.T) {
	c, _ := newTestCache(10, time.Hour)

	c.Put("a", 1)
	c.Put("b", "two")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestOverwriteSameKey(t *testing.T) {
	c, _ := newTestCache(10, time.Hour)

	c.Put("a", 1)
	c.Put("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Size())
}

func TestTTLExpiry(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)

	c.Put("a", 1)
	clock.Advance(30 * time.Second)

	_, ok := c.Get("a")
	assert.True(t, ok, "entry should survive within TTL")

	clock.Advance(31 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry should expire after TTL")
	assert.Equal(t, 0, c.Size(), "expired entry should be removed on read")
}

func TestTTLMeasuredFromInsertion(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)

	c.Put("a", 1)
	// Repeated reads refresh access time but not insertion time.
	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Second)
		c.Get("a")
	}

	clock.Advance(11 * time.Second)
	_, ok := c.Get("a")
	assert.False(t, ok, "access must not extend lifetime")
}

func TestLRUEviction(t *testing.T) {
	c, clock := newTestCache(3, time.Hour)

	c.Put("a", 1)
	clock.Advance(time.Second)
	c.Put("b", 2)
	clock.Advance(time.Second)
	c.Put("c", 3)
	clock.Advance(time.Second)

	// Touch "a" so "b" becomes the least recently used entry.
	_, ok := c.Get("a")
	require.True(t, ok)
	clock.Advance(time.Second)

	c.Put("d", 4)

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently accessed entry should be evicted")
	for _, key := range []string{"a", "c", "d"} {
		_, ok := c.Get(key)
		assert.True(t, ok, "key %s should survive eviction", key)
	}
	assert.Equal(t, 3, c.Size())
}

func TestLRUEvictionTieBreak(t *testing.T) {
	c, _ := newTestCache(2, time.Hour)

	// Identical access timestamps: the smallest key loses.
	c.Put("b", 2)
	c.Put("a", 1)
	c.Put("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestPutExistingKeyAtCapacity(t *testing.T) {
	c, _ := newTestCache(2, time.Hour)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10)

	assert.Equal(t, 2, c.Size(), "overwriting must not evict")
	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(10, time.Hour)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Size())
	_, ok := c.Get("a")
	assert.False(t, ok)

	// Clearing an empty cache is a no-op.
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestStats(t *testing.T) {
	c, clock := newTestCache(5, time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)

	c.Get("a")       // hit
	c.Get("a")       // hit
	c.Get("missing") // miss

	clock.Advance(2 * time.Minute)
	c.Put("c", 3)

	stats := c.Stats()
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 5, stats.MaxSize)
	assert.Equal(t, 2, stats.ExpiredEntries, "a and b are past TTL, c is fresh")
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
}

func TestStatsEmptyCache(t *testing.T) {
	c, _ := newTestCache(5, time.Minute)

	stats := c.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Zero(t, stats.HitRatio)
}

func TestSetMaxSizeEvictsDown(t *testing.T) {
	c, clock := newTestCache(5, time.Hour)

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Second)
	}

	c.SetMaxSize(2)
	assert.Equal(t, 2, c.Size())

	// The two most recently inserted entries remain.
	_, ok := c.Get("k3")
	assert.True(t, ok)
	_, ok = c.Get("k4")
	assert.True(t, ok)
}

func TestSetTTLAppliesToExistingEntries(t *testing.T) {
	c, clock := newTestCache(5, time.Hour)

	c.Put("a", 1)
	clock.Advance(2 * time.Minute)

	c.SetTTL(time.Minute)
	_, ok := c.Get("a")
	assert.False(t, ok, "shortened TTL applies on next read")
}

type countingObserver struct {
	mu     sync.Mutex
	hits   int
	misses int
}

func (o *countingObserver) RecordCacheHit() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hits++
}

func (o *countingObserver) RecordCacheMiss() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.misses++
}

func TestObserverNotifications(t *testing.T) {
	c, clock := newTestCache(5, time.Minute)
	obs := &countingObserver{}
	c.SetObserver(obs)

	c.Put("a", 1)
	c.Get("a")       // hit
	c.Get("missing") // miss
	clock.Advance(2 * time.Minute)
	c.Get("a") // expired counts as miss

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 2, obs.misses)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(100, time.Hour)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%50)
				c.Put(key, g*1000+i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Size(), 100)
	assert.Greater(t, c.Size(), 0)
}
