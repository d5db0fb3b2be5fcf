package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordTemplateLoad()
	m.RecordImageSave()
	m.RecordImageSave()
	m.RecordImageSave()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TemplateLoads))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImageSaves))
}

func TestReport(t *testing.T) {
	m := NewMetrics()

	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.RecordTemplateLoad()
	m.RecordImageSave()
	m.RecordStyleCreation(10 * time.Millisecond)
	m.RecordStyleCreation(30 * time.Millisecond)

	report := m.Report()

	assert.InDelta(t, 0.75, report.Cache.HitRate, 1e-9)
	assert.Equal(t, int64(3), report.Cache.TotalHits)
	assert.Equal(t, int64(1), report.Cache.TotalMisses)

	assert.Equal(t, 2, report.StyleCreation.Total)
	assert.InDelta(t, 0.02, report.StyleCreation.Average, 1e-9)
	assert.InDelta(t, 0.01, report.StyleCreation.Min, 1e-9)
	assert.InDelta(t, 0.03, report.StyleCreation.Max, 1e-9)

	assert.Equal(t, int64(1), report.Operations.TemplateLoads)
	assert.Equal(t, int64(1), report.Operations.ImageSaves)
	assert.GreaterOrEqual(t, report.UptimeSeconds, 0.0)
}

func TestReportEmpty(t *testing.T) {
	m := NewMetrics()
	report := m.Report()

	assert.Zero(t, report.Cache.HitRate)
	assert.Zero(t, report.StyleCreation.Total)
	assert.Zero(t, report.StyleCreation.Average)
}

func TestCreationSamplesBounded(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < maxCreationSamples+100; i++ {
		m.RecordStyleCreation(time.Millisecond)
	}

	report := m.Report()
	assert.Equal(t, maxCreationSamples, report.StyleCreation.Total)
}

func TestIndependentRegistries(t *testing.T) {
	// Two collectors must not collide on metric names.
	a := NewMetrics()
	b := NewMetrics()

	a.RecordCacheHit()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))

	count, err := testutil.GatherAndCount(a.Registry(), "styles_cache_hits_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
