package template

import (
	"time"

	"github.com/krisrjensen/styles-gallery/cache"
	"github.com/krisrjensen/styles-gallery/style"
)

// LoadObserver is notified when the loader fetches a template from the
// registry.
type LoadObserver interface {
	RecordTemplateLoad()
}

type liveEntry struct {
	style *style.Cached
	refs  int
}

// Loader lazily loads templates from a registry. Raw documents go into a
// strong load cache with a load timestamp; wrapped style instances go
// into a live cache governed by explicit reference counts rather than
// age. Every successful Get hands out one reference that the caller
// returns with Release.
type Loader struct {
	registry  *Manager
	cache     *cache.Cache
	loaded    map[string]style.Document
	lives     map[string]*liveEntry
	loadTimes map[string]time.Time
	observer  LoadObserver
	now       func() time.Time
}

// NewLoader creates a loader over a registry. The style cache backs the
// memoized accessors of loaded instances and may be nil.
func NewLoader(registry *Manager, c *cache.Cache) *Loader {
	return &Loader{
		registry:  registry,
		cache:     c,
		loaded:    make(map[string]style.Document),
		lives:     make(map[string]*liveEntry),
		loadTimes: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Observe registers a load observer. Pass nil to detach.
func (l *Loader) Observe(o LoadObserver) {
	l.observer = o
}

// Get returns a cache-aware style for a template name. Lookup order:
// a still-referenced live instance, then the strong document cache, then
// the registry. A registry miss returns absent. Callers Release the
// returned reference when done with it.
func (l *Loader) Get(name string) (*style.Cached, bool) {
	if lv, ok := l.lives[name]; ok && lv.refs > 0 {
		lv.refs++
		return lv.style, true
	}

	if doc, ok := l.loaded[name]; ok {
		return l.wrap(name, doc), true
	}

	doc, ok := l.registry.Document(name)
	if !ok {
		return nil, false
	}
	l.loaded[name] = doc
	l.loadTimes[name] = l.now()
	if l.observer != nil {
		l.observer.RecordTemplateLoad()
	}
	return l.wrap(name, doc), true
}

// Release returns one reference for name. When the count reaches zero
// the live instance is dropped; the strong document cache is untouched,
// so the next Get re-derives the instance without hitting the registry.
func (l *Loader) Release(name string) {
	lv, ok := l.lives[name]
	if !ok {
		return
	}
	lv.refs--
	if lv.refs <= 0 {
		delete(l.lives, name)
	}
}

// Preload loads each named template for its caching side effect.
// References taken by the loads are released immediately so preloading
// never pins live instances.
func (l *Loader) Preload(names []string) {
	for _, name := range names {
		if _, ok := l.Get(name); ok {
			l.Release(name)
		}
	}
}

// Sweep removes strong-cache documents and timestamps loaded more than
// maxAge ago and returns how many were removed. Live instances are
// governed purely by reference counts and are never swept.
func (l *Loader) Sweep(maxAge time.Duration) int {
	now := l.now()
	var stale []string
	for name, loadedAt := range l.loadTimes {
		if now.Sub(loadedAt) > maxAge {
			stale = append(stale, name)
		}
	}
	for _, name := range stale {
		delete(l.loaded, name)
		delete(l.loadTimes, name)
	}
	return len(stale)
}

// Counts returns the strong-cache and live-instance entry counts.
func (l *Loader) Counts() (loaded, live int) {
	return len(l.loaded), len(l.lives)
}

// Clear drops the strong cache, timestamps, and live instances.
func (l *Loader) Clear() {
	l.loaded = make(map[string]style.Document)
	l.lives = make(map[string]*liveEntry)
	l.loadTimes = make(map[string]time.Time)
}

func (l *Loader) wrap(name string, doc style.Document) *style.Cached {
	s, err := style.Decode(doc)
	if err != nil {
		s = style.Default()
	}
	wrapped := style.NewCached(s, l.cache)
	l.lives[name] = &liveEntry{style: wrapped, refs: 1}
	return wrapped
}
