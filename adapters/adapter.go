package adapters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"

	"github.com/krisrjensen/styles-gallery/style"
)

// ErrRendererUnavailable reports that a format needs a rasterization
// backend this module does not ship. The save engine treats it as a
// recoverable boundary failure and falls back to markup output.
var ErrRendererUnavailable = errors.New("rendering backend not available")

// Figure is a figure produced by one of the supported plotting
// libraries. Payload carries the library's own figure description.
type Figure interface {
	Backend() string
	Payload() map[string]any
}

// Adapter applies the universal style to one plotting library.
type Adapter interface {
	Name() string
	Config(s *style.Schema) (map[string]any, error)
	SupportedFormats() []string
	SaveFigure(fig Figure, filename, format, quality string, meta map[string]any) error
}

// BasicFigure is a plain Figure value for callers that assemble figure
// payloads directly.
type BasicFigure struct {
	backend string
	payload map[string]any
}

// NewFigure creates a figure for the given backend.
func NewFigure(backend string, payload map[string]any) *BasicFigure {
	return &BasicFigure{backend: backend, payload: payload}
}

func (f *BasicFigure) Backend() string {
	return f.backend
}

func (f *BasicFigure) Payload() map[string]any {
	return f.payload
}

// resolveDPI maps a quality level onto an output DPI: "high" uses the
// schema DPI, anything else drops to 150.
func resolveDPI(s *style.Schema, quality string) int {
	if quality == "high" {
		return s.Figure.DPI
	}
	return 150
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeGzip(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish %s: %w", path, err)
	}
	return nil
}

// figureDocument is the common json output shape: resolved config plus
// the figure payload and export metadata.
func figureDocument(config map[string]any, fig Figure, meta map[string]any) ([]byte, error) {
	doc := map[string]any{
		"config":   config,
		"figure":   fig.Payload(),
		"metadata": meta,
	}
	data, err := sonic.ConfigDefault.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal figure document: %w", err)
	}
	return data, nil
}
