package adapters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krisrjensen/styles-gallery/style"
)

// Matplotlib translates the universal style into rcParams-style
// configuration.
type Matplotlib struct {
	style *style.Schema
}

// NewMatplotlib creates a matplotlib adapter. A nil schema falls back to
// the default style.
func NewMatplotlib(s *style.Schema) *Matplotlib {
	if s == nil {
		s = style.Default()
	}
	return &Matplotlib{style: s}
}

func (a *Matplotlib) Name() string {
	return "matplotlib"
}

// Config returns the rcParams map for the wrapped style.
func (a *Matplotlib) Config(s *style.Schema) (map[string]any, error) {
	if s == nil {
		s = a.style
	}
	margins := s.Layout.Margins
	return map[string]any{
		"figure.figsize":         []float64{s.Figure.Size.Width, s.Figure.Size.Height},
		"figure.dpi":             s.Figure.DPI,
		"figure.facecolor":       s.Figure.Background,
		"axes.facecolor":         s.Figure.Background,
		"font.family":            s.Fonts.Family,
		"font.size":              s.Fonts.Size.Default,
		"font.weight":            s.Fonts.Weight,
		"axes.titlesize":         s.Fonts.Size.Title,
		"axes.labelsize":         s.Fonts.Size.Label,
		"axes.grid":              true,
		"grid.alpha":             s.Layout.Grid.Alpha,
		"grid.linewidth":         s.Layout.Grid.LineWidth,
		"grid.color":             s.Colors.Grid,
		"figure.subplot.left":    margins.Left,
		"figure.subplot.right":   1 - margins.Right,
		"figure.subplot.top":     1 - margins.Top,
		"figure.subplot.bottom":  margins.Bottom,
		"axes.prop_cycle.colors": a.ColorCycle(s),
	}, nil
}

// ColorCycle returns the default color cycle: the viridis ramp sampled
// at the standard anchors, or the primary/secondary pair for any other
// palette.
func (a *Matplotlib) ColorCycle(s *style.Schema) []string {
	if s == nil {
		s = a.style
	}
	if s.Colors.Palette == "viridis" {
		return sampleRamp(viridisControls, viridisAnchors())
	}
	return []string{s.Colors.Primary, s.Colors.Secondary}
}

// SupportedFormats lists the formats matplotlib itself can produce.
func (a *Matplotlib) SupportedFormats() []string {
	return []string{"png", "pdf", "svg", "eps", "ps", "jpg", "jpeg"}
}

// SaveFigure writes the figure in the requested format. Raster and
// vector formats need matplotlib's own renderer and report
// ErrRendererUnavailable; json and conf are produced natively.
func (a *Matplotlib) SaveFigure(fig Figure, filename, format, quality string, meta map[string]any) error {
	config, err := a.Config(a.style)
	if err != nil {
		return err
	}
	config["savefig.dpi"] = resolveDPI(a.style, quality)

	switch format {
	case "json":
		data, err := figureDocument(config, fig, meta)
		if err != nil {
			return err
		}
		return writeFile(filename, data)
	case "conf":
		return writeFile(filename, []byte(formatRC(config)))
	case "png", "pdf", "svg", "svgz", "eps", "ps", "jpg", "jpeg":
		return fmt.Errorf("matplotlib %s output: %w", format, ErrRendererUnavailable)
	default:
		return fmt.Errorf("unsupported format %q for matplotlib", format)
	}
}

// formatRC renders a config map as sorted key: value lines, the
// matplotlibrc file shape.
func formatRC(config map[string]any) string {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, config[k])
	}
	return b.String()
}
