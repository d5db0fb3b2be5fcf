package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// maxCreationSamples bounds the retained style creation timings.
const maxCreationSamples = 1000

// Metrics holds all Prometheus metrics plus the counters backing the
// JSON report.
type Metrics struct {
	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Operation metrics
	TemplateLoads    prometheus.Counter
	ImageSaves       prometheus.Counter
	CreationDuration prometheus.Histogram

	// System metrics
	Uptime prometheus.Gauge

	registry  *prometheus.Registry
	startTime time.Time

	mu        sync.Mutex
	hits      int64
	misses    int64
	loads     int64
	saves     int64
	creations []float64
}

// Report is a point-in-time performance snapshot for JSON consumers.
type Report struct {
	UptimeSeconds float64         `json:"uptime_seconds"`
	Cache         CacheReport     `json:"cache_performance"`
	StyleCreation CreationReport  `json:"style_creation"`
	Operations    OperationReport `json:"operations"`
}

// CacheReport summarizes cache traffic.
type CacheReport struct {
	HitRate     float64 `json:"hit_rate"`
	TotalHits   int64   `json:"total_hits"`
	TotalMisses int64   `json:"total_misses"`
}

// CreationReport summarizes style creation timings in seconds.
type CreationReport struct {
	Total   int     `json:"total_creations"`
	Average float64 `json:"average_time"`
	Min     float64 `json:"min_time"`
	Max     float64 `json:"max_time"`
}

// OperationReport counts tracked operations.
type OperationReport struct {
	TemplateLoads int64 `json:"template_loads"`
	ImageSaves    int64 `json:"image_saves"`
}

// NewMetrics creates a metrics collector with its own Prometheus
// registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry:  registry,
		startTime: time.Now(),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "styles_cache_hits_total",
			Help: "Total number of style cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "styles_cache_misses_total",
			Help: "Total number of style cache misses",
		}),
		TemplateLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "styles_template_loads_total",
			Help: "Total number of template loads from the registry",
		}),
		ImageSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "styles_image_saves_total",
			Help: "Total number of figure save operations",
		}),
		CreationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "styles_creation_duration_seconds",
			Help:    "Style creation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		Uptime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "styles_uptime_seconds",
			Help: "Process uptime in seconds",
		}),
	}

	return m
}

// Registry exposes the private Prometheus registry for embedders that
// want to serve or push the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCacheHit records a style cache hit.
func (m *Metrics) RecordCacheHit() {
	m.CacheHits.Inc()
	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
}

// RecordCacheMiss records a style cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.CacheMisses.Inc()
	m.mu.Lock()
	m.misses++
	m.mu.Unlock()
}

// RecordTemplateLoad records a registry template load.
func (m *Metrics) RecordTemplateLoad() {
	m.TemplateLoads.Inc()
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
}

// RecordImageSave records a figure save operation.
func (m *Metrics) RecordImageSave() {
	m.ImageSaves.Inc()
	m.mu.Lock()
	m.saves++
	m.mu.Unlock()
}

// RecordStyleCreation records a style creation duration. Only the last
// maxCreationSamples measurements are retained for the report.
func (m *Metrics) RecordStyleCreation(d time.Duration) {
	seconds := d.Seconds()
	m.CreationDuration.Observe(seconds)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.creations = append(m.creations, seconds)
	if len(m.creations) > maxCreationSamples {
		m.creations = m.creations[len(m.creations)-maxCreationSamples:]
	}
}

// Report returns the current performance snapshot and refreshes the
// uptime gauge.
func (m *Metrics) Report() Report {
	uptime := time.Since(m.startTime).Seconds()
	m.Uptime.Set(uptime)

	m.mu.Lock()
	defer m.mu.Unlock()

	hitRate := 0.0
	if total := m.hits + m.misses; total > 0 {
		hitRate = float64(m.hits) / float64(total)
	}

	creation := CreationReport{Total: len(m.creations)}
	if len(m.creations) > 0 {
		min, max, sum := m.creations[0], m.creations[0], 0.0
		for _, v := range m.creations {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			sum += v
		}
		creation.Average = sum / float64(len(m.creations))
		creation.Min = min
		creation.Max = max
	}

	return Report{
		UptimeSeconds: uptime,
		Cache: CacheReport{
			HitRate:     hitRate,
			TotalHits:   m.hits,
			TotalMisses: m.misses,
		},
		StyleCreation: creation,
		Operations: OperationReport{
			TemplateLoads: m.loads,
			ImageSaves:    m.saves,
		},
	}
}
