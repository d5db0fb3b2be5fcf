package gallery

import (
	"time"

	"github.com/krisrjensen/styles-gallery/cache"
	"github.com/krisrjensen/styles-gallery/config"
	"github.com/krisrjensen/styles-gallery/engine"
	"github.com/krisrjensen/styles-gallery/logging"
	"github.com/krisrjensen/styles-gallery/monitoring"
	"github.com/krisrjensen/styles-gallery/style"
	"github.com/krisrjensen/styles-gallery/template"
)

// batchPreloads are the templates warmed before large rendering runs.
var batchPreloads = []string{
	"ieee_standard",
	"nature_style",
	"scientific_report",
	"corporate_presentation",
	"slide_deck",
}

// Gallery wires the style cache, template registry, loader, and
// metrics into a single context object.
type Gallery struct {
	cfg *config.Config
	log *logging.Logger

	Cache    *cache.Cache
	Registry *template.Manager
	Loader   *template.Loader
	Metrics  *monitoring.Metrics
}

// Stats aggregates the state of every cache layer plus the
// performance report.
type Stats struct {
	StyleCache    cache.Stats        `json:"style_cache"`
	TemplateCache TemplateCacheStats `json:"template_cache"`
	Performance   monitoring.Report  `json:"performance"`
}

// TemplateCacheStats counts loader occupancy.
type TemplateCacheStats struct {
	Loaded int `json:"loaded"`
	Live   int `json:"live"`
}

// New creates a gallery from the given configuration. A nil cfg uses
// defaults and a nil log builds one from the configured level.
func New(cfg *config.Config, log *logging.Logger) *Gallery {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NewFor(cfg.Logging.Level, cfg.Logging.Development)
	}

	g := &Gallery{
		cfg:      cfg,
		log:      log.Named("gallery"),
		Cache:    cache.New(cfg.Cache.MaxSize, cfg.Cache.TTL),
		Registry: template.NewManager(),
		Metrics:  monitoring.NewMetrics(),
	}
	g.Loader = template.NewLoader(g.Registry, g.Cache)

	g.Cache.SetObserver(g.Metrics)
	g.Loader.Observe(g.Metrics)

	return g
}

// Engine builds an image engine for the given schema, sharing the
// gallery's logger, metrics, and output throttle.
func (g *Gallery) Engine(s *style.Schema) *engine.Engine {
	e := engine.New(s, g.log.Logger)
	e.Observe(g.Metrics)
	if rps := g.cfg.Output.SavesPerSecond; rps > 0 {
		e.SetRateLimit(float64(rps))
	}
	return e
}

// Style resolves a named template through the loader, timing the
// creation on a miss. Callers must Release the name when done.
func (g *Gallery) Style(name string) (*style.Cached, bool) {
	start := time.Now()
	loadedBefore, _ := g.Loader.Counts()

	s, ok := g.Loader.Get(name)
	if !ok {
		return nil, false
	}

	loadedAfter, _ := g.Loader.Counts()
	if loadedAfter > loadedBefore {
		g.Metrics.RecordStyleCreation(time.Since(start))
	}
	return s, true
}

// Release drops one live reference to a named style.
func (g *Gallery) Release(name string) {
	g.Loader.Release(name)
}

// Stats returns a snapshot of every cache layer plus the performance
// report.
func (g *Gallery) Stats() Stats {
	loaded, live := g.Loader.Counts()
	return Stats{
		StyleCache: g.Cache.Stats(),
		TemplateCache: TemplateCacheStats{
			Loaded: loaded,
			Live:   live,
		},
		Performance: g.Metrics.Report(),
	}
}

// ClearCaches empties the style cache and the loader.
func (g *Gallery) ClearCaches() {
	g.Cache.Clear()
	g.Loader.Clear()
	g.log.Info("caches cleared")
}

// Sweep drops loaded templates older than the configured maximum age
// and returns how many were removed.
func (g *Gallery) Sweep() int {
	return g.Loader.Sweep(g.cfg.Loader.MaxAge)
}

// OptimizeForBatch grows the style cache and warms the templates most
// commonly used in batch rendering runs.
func (g *Gallery) OptimizeForBatch() {
	preset := config.BatchPreset()
	g.Cache.SetMaxSize(preset.Cache.MaxSize)
	g.Cache.SetTTL(preset.Cache.TTL)
	g.Loader.Preload(batchPreloads)
	g.log.Info("optimized for batch rendering")
}

// Close flushes the logger. The gallery must not be used afterwards.
func (g *Gallery) Close() error {
	return g.log.Sync()
}
