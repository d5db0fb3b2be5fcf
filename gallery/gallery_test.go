package gallery

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisrjensen/styles-gallery/adapters"
	"github.com/krisrjensen/styles-gallery/config"
	"github.com/krisrjensen/styles-gallery/engine"
)

func TestNewDefaults(t *testing.T) {
	g := New(nil, nil)

	assert.NotNil(t, g.Cache)
	assert.NotNil(t, g.Registry)
	assert.NotNil(t, g.Loader)
	assert.NotNil(t, g.Metrics)
	assert.Equal(t, 16, g.Registry.Len())
}

func TestStyleLifecycle(t *testing.T) {
	g := New(nil, nil)

	s, ok := g.Style("ieee_standard")
	require.True(t, ok)
	assert.Equal(t, "IEEE Standard", s.Schema().Metadata.Name)

	_, live := g.Loader.Counts()
	assert.Equal(t, 1, live)

	g.Release("ieee_standard")
	_, live = g.Loader.Counts()
	assert.Equal(t, 0, live)

	_, ok = g.Style("no_such_template")
	assert.False(t, ok)
}

func TestStyleRecordsMetrics(t *testing.T) {
	g := New(nil, nil)

	g.Style("ieee_standard")
	g.Release("ieee_standard")
	g.Style("ieee_standard")
	g.Release("ieee_standard")

	report := g.Metrics.Report()
	assert.Equal(t, int64(1), report.Operations.TemplateLoads, "second resolve comes from the strong cache")
	assert.Equal(t, 1, report.StyleCreation.Total, "only registry loads are timed")
}

func TestCacheTrafficReachesMetrics(t *testing.T) {
	g := New(nil, nil)

	s, ok := g.Style("nature_style")
	require.True(t, ok)

	s.DPI() // miss, then stored
	s.DPI() // hit

	report := g.Metrics.Report()
	assert.Equal(t, int64(1), report.Cache.TotalHits)
	assert.GreaterOrEqual(t, report.Cache.TotalMisses, int64(1))
}

func TestEngineSharesObservers(t *testing.T) {
	g := New(nil, nil)

	s, ok := g.Style("ieee_standard")
	require.True(t, ok)

	e := g.Engine(s.Schema())
	fig := adapters.NewFigure("matplotlib", map[string]any{"data": []any{}})

	_, err := e.SaveImage(fig, filepath.Join(t.TempDir(), "fig"), engine.SaveOptions{Format: "json"})
	require.NoError(t, err)

	report := g.Metrics.Report()
	assert.Equal(t, int64(1), report.Operations.ImageSaves)
}

func TestStats(t *testing.T) {
	g := New(nil, nil)

	s, _ := g.Style("ieee_standard")
	s.FigureSize()

	stats := g.Stats()
	assert.Equal(t, 1000, stats.StyleCache.MaxSize)
	assert.Equal(t, 1, stats.StyleCache.Size)
	assert.Equal(t, 1, stats.TemplateCache.Loaded)
	assert.Equal(t, 1, stats.TemplateCache.Live)
	assert.GreaterOrEqual(t, stats.Performance.UptimeSeconds, 0.0)
}

func TestClearCaches(t *testing.T) {
	g := New(nil, nil)

	s, _ := g.Style("ieee_standard")
	s.FigureSize()
	g.ClearCaches()

	stats := g.Stats()
	assert.Equal(t, 0, stats.StyleCache.Size)
	assert.Equal(t, 0, stats.TemplateCache.Loaded)
	assert.Equal(t, 0, stats.TemplateCache.Live)
}

func TestSweep(t *testing.T) {
	cfg := config.Default()
	cfg.Loader.MaxAge = time.Nanosecond
	g := New(cfg, nil)

	g.Style("ieee_standard")
	g.Release("ieee_standard")
	time.Sleep(time.Millisecond)

	assert.Equal(t, 1, g.Sweep())
	loaded, _ := g.Loader.Counts()
	assert.Equal(t, 0, loaded)
}

func TestOptimizeForBatch(t *testing.T) {
	g := New(nil, nil)

	g.OptimizeForBatch()

	stats := g.Stats()
	assert.Equal(t, 5000, stats.StyleCache.MaxSize)
	assert.Equal(t, len(batchPreloads), stats.TemplateCache.Loaded)
	assert.Equal(t, 0, stats.TemplateCache.Live, "preloading must not pin instances")
}

func TestEngineRateLimitFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.SavesPerSecond = 5
	g := New(cfg, nil)

	e := g.Engine(nil)
	assert.NotNil(t, e)
}
