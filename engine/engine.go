package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/krisrjensen/styles-gallery/adapters"
	"github.com/krisrjensen/styles-gallery/style"
)

// Observer receives image save notifications.
type Observer interface {
	RecordImageSave()
}

// SaveOptions control a save operation. Zero values mean png at high
// quality with no extra metadata.
type SaveOptions struct {
	Format        string
	Quality       string
	Metadata      map[string]any
	AutoTimestamp bool
}

func (o SaveOptions) withDefaults() SaveOptions {
	if o.Format == "" {
		o.Format = "png"
	}
	if o.Quality == "" {
		o.Quality = "high"
	}
	return o
}

// Engine saves figures from any supported plotting library using a
// shared style.
type Engine struct {
	style    *style.Schema
	adapters map[string]adapters.Adapter
	log      *zap.Logger
	limiter  *rate.Limiter
	observer Observer
	now      func() time.Time
}

// New creates an engine for the given style. A nil schema falls back to
// the default style; a nil logger disables logging.
func New(s *style.Schema, log *zap.Logger) *Engine {
	if s == nil {
		s = style.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		style: s,
		adapters: map[string]adapters.Adapter{
			"matplotlib": adapters.NewMatplotlib(s),
			"plotly":     adapters.NewPlotly(s),
			"bokeh":      adapters.NewBokeh(s),
		},
		log: log,
		now: time.Now,
	}
}

// SetRateLimit throttles batch saves to savesPerSecond. Zero or negative
// disables throttling.
func (e *Engine) SetRateLimit(savesPerSecond float64) {
	if savesPerSecond <= 0 {
		e.limiter = nil
		return
	}
	e.limiter = rate.NewLimiter(rate.Limit(savesPerSecond), 1)
}

// Observe registers a save observer. Pass nil to detach.
func (e *Engine) Observe(o Observer) {
	e.observer = o
}

// DetectBackend returns the plotting library a figure belongs to. An
// unrecognized backend is a programmer error, not a recoverable miss.
func (e *Engine) DetectBackend(fig adapters.Figure) (string, error) {
	if fig == nil {
		return "", fmt.Errorf("nil figure")
	}
	backend := fig.Backend()
	if _, ok := e.adapters[backend]; !ok {
		return "", fmt.Errorf("unsupported figure type: %q", backend)
	}
	return backend, nil
}

// SaveImage saves a figure and returns the final written filename. When
// the adapter's renderer is unavailable the engine logs the failure and
// writes an HTML fallback document instead; the returned filename then
// carries the .html extension.
func (e *Engine) SaveImage(fig adapters.Figure, filename string, opts SaveOptions) (string, error) {
	opts = opts.withDefaults()

	backend, err := e.DetectBackend(fig)
	if err != nil {
		return "", err
	}

	final := e.processFilename(filename, opts.Format, opts.AutoTimestamp)
	if dir := filepath.Dir(final); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	meta := e.exportMetadata(backend, opts.Metadata)

	err = e.adapters[backend].SaveFigure(fig, final, opts.Format, opts.Quality, meta)
	switch {
	case err == nil:
		e.recordSave()
		return final, nil
	case errors.Is(err, adapters.ErrRendererUnavailable):
		e.log.Warn("figure export degraded to markup fallback",
			zap.String("backend", backend),
			zap.String("format", opts.Format),
			zap.Error(err),
		)
		fallback, ferr := e.writeFallback(fig, final, meta)
		if ferr != nil {
			return "", fmt.Errorf("fallback write failed: %w", ferr)
		}
		e.recordSave()
		return fallback, nil
	default:
		return "", err
	}
}

// SaveMultiple saves figures under numbered filenames derived from base
// and returns the written names in order.
func (e *Engine) SaveMultiple(figs []adapters.Figure, base string, opts SaveOptions) ([]string, error) {
	saved := make([]string, 0, len(figs))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for i, fig := range figs {
		numbered := fmt.Sprintf("%s_%03d", stem, i+1)
		name, err := e.SaveImage(fig, numbered, opts)
		if err != nil {
			return saved, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}

// BatchSave saves named figures into outputDir, applying the configured
// rate limit, and returns a name-to-filename mapping. Names are
// processed in sorted order so failures are reproducible.
func (e *Engine) BatchSave(ctx context.Context, figs map[string]adapters.Figure, outputDir string, opts SaveOptions) (map[string]string, error) {
	names := make([]string, 0, len(figs))
	for name := range figs {
		names = append(names, name)
	}
	sort.Strings(names)

	saved := make(map[string]string, len(figs))
	for _, name := range names {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				return saved, fmt.Errorf("batch save interrupted: %w", err)
			}
		}
		filename, err := e.SaveImage(figs[name], filepath.Join(outputDir, name), opts)
		if err != nil {
			return saved, err
		}
		saved[name] = filename
	}
	return saved, nil
}

// SupportedFormats returns the format list for a backend, empty for
// unknown backends.
func (e *Engine) SupportedFormats(backend string) []string {
	adapter, ok := e.adapters[backend]
	if !ok {
		return nil
	}
	return adapter.SupportedFormats()
}

// AllFormats returns supported formats for every backend.
func (e *Engine) AllFormats() map[string][]string {
	out := make(map[string][]string, len(e.adapters))
	for name, adapter := range e.adapters {
		out[name] = adapter.SupportedFormats()
	}
	return out
}

// processFilename strips any existing extension, optionally appends a
// timestamp suffix, and appends the format extension.
func (e *Engine) processFilename(filename, format string, autoTimestamp bool) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if autoTimestamp {
		stem = fmt.Sprintf("%s_%s", stem, e.now().Format("20060102_150405"))
	}
	return fmt.Sprintf("%s.%s", stem, format)
}

// exportMetadata merges caller metadata with the engine defaults.
func (e *Engine) exportMetadata(backend string, extra map[string]any) map[string]any {
	meta := make(map[string]any, len(extra)+5)
	for k, v := range extra {
		meta[k] = v
	}
	meta["export_id"] = uuid.NewString()
	meta["created_by"] = "styles-gallery image engine"
	meta["style_version"] = e.style.Version
	meta["figure_type"] = backend
	meta["timestamp"] = e.now().Format(time.RFC3339)
	return meta
}

// writeFallback writes the degraded markup document next to the
// requested output and returns its filename.
func (e *Engine) writeFallback(fig adapters.Figure, requested string, meta map[string]any) (string, error) {
	target := strings.TrimSuffix(requested, filepath.Ext(requested)) + ".html"

	payload, err := sonic.ConfigDefault.MarshalIndent(map[string]any{
		"figure":   fig.Payload(),
		"metadata": meta,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal fallback payload: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>Figure Export</title></head>\n<body>\n")
	b.WriteString("<p>Rasterized export was unavailable; the figure data is embedded below.</p>\n")
	b.WriteString("<pre>\n")
	b.Write(payload)
	b.WriteString("\n</pre>\n</body>\n</html>\n")

	if err := os.WriteFile(target, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write fallback document: %w", err)
	}
	return target, nil
}

func (e *Engine) recordSave() {
	if e.observer != nil {
		e.observer.RecordImageSave()
	}
}
