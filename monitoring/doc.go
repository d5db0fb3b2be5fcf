// Package monitoring collects performance metrics for the styles
// gallery.
//
// Metrics exports Prometheus counters and histograms for cache traffic,
// template loads, image saves, and style creation timing, and can render
// the same data as a point-in-time Report for JSON consumers. Each
// Metrics instance carries a private Prometheus registry so multiple
// galleries can coexist in one process.
//
// Example Usage:
//
//	m := monitoring.NewMetrics()
//	m.RecordCacheHit()
//	report := m.Report()
package monitoring
