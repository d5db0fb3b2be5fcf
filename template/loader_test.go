package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisrjensen/styles-gallery/cache"
)

type countingLoadObserver struct {
	loads int
}

func (o *countingLoadObserver) RecordTemplateLoad() {
	o.loads++
}

func newTestLoader() *Loader {
	return NewLoader(NewManager(), cache.New(100, time.Hour))
}

func TestLoaderGet(t *testing.T) {
	l := newTestLoader()

	s, ok := l.Get("ieee_standard")
	require.True(t, ok)
	assert.Equal(t, "IEEE Standard", s.Schema().Metadata.Name)

	_, ok = l.Get("nonexistent")
	assert.False(t, ok)

	loaded, live := l.Counts()
	assert.Equal(t, 1, loaded, "miss must not populate the strong cache")
	assert.Equal(t, 1, live)
}

func TestLoaderSharesLiveInstance(t *testing.T) {
	l := newTestLoader()

	a, ok := l.Get("ieee_standard")
	require.True(t, ok)
	b, ok := l.Get("ieee_standard")
	require.True(t, ok)

	assert.Same(t, a, b, "concurrent holders share one instance")
	_, live := l.Counts()
	assert.Equal(t, 1, live)
}

func TestLoaderReleaseDropsAtZero(t *testing.T) {
	l := newTestLoader()

	first, _ := l.Get("ieee_standard")
	l.Get("ieee_standard")

	l.Release("ieee_standard")
	_, live := l.Counts()
	assert.Equal(t, 1, live, "one reference still held")

	l.Release("ieee_standard")
	loaded, live := l.Counts()
	assert.Equal(t, 0, live, "zero references drops the live entry")
	assert.Equal(t, 1, loaded, "strong cache is untouched by release")

	// Re-deriving from the strong cache yields a fresh instance.
	second, ok := l.Get("ieee_standard")
	require.True(t, ok)
	assert.NotSame(t, first, second)
}

func TestLoaderReleaseUnknownName(t *testing.T) {
	l := newTestLoader()
	l.Release("never_loaded")

	_, live := l.Counts()
	assert.Equal(t, 0, live)
}

func TestLoaderLoadsRegistryOnce(t *testing.T) {
	l := newTestLoader()
	obs := &countingLoadObserver{}
	l.Observe(obs)

	l.Get("nature_style")
	l.Release("nature_style")
	l.Get("nature_style")
	l.Release("nature_style")

	assert.Equal(t, 1, obs.loads, "second get must come from the strong cache")
}

func TestLoaderPreload(t *testing.T) {
	l := newTestLoader()

	l.Preload([]string{"ieee_standard", "nature_style", "no_such_template"})

	loaded, live := l.Counts()
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 0, live, "preload must not pin live instances")
}

func TestLoaderSweep(t *testing.T) {
	l := newTestLoader()
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	l.Get("ieee_standard")
	l.Release("ieee_standard")

	clock = clock.Add(3 * time.Hour)
	l.Get("nature_style")

	removed := l.Sweep(2 * time.Hour)
	assert.Equal(t, 1, removed)

	loaded, live := l.Counts()
	assert.Equal(t, 1, loaded, "fresh document survives")
	assert.Equal(t, 1, live, "live instances are never swept")
}

func TestLoaderClear(t *testing.T) {
	l := newTestLoader()

	l.Get("ieee_standard")
	l.Get("nature_style")
	l.Clear()

	loaded, live := l.Counts()
	assert.Equal(t, 0, loaded)
	assert.Equal(t, 0, live)
}
