package adapters

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/krisrjensen/styles-gallery/style"
)

// Bokeh translates the universal style into bokeh figure and theme
// configuration.
type Bokeh struct {
	style *style.Schema
}

// NewBokeh creates a bokeh adapter. A nil schema falls back to the
// default style.
func NewBokeh(s *style.Schema) *Bokeh {
	if s == nil {
		s = style.Default()
	}
	return &Bokeh{style: s}
}

func (a *Bokeh) Name() string {
	return "bokeh"
}

// Config returns the bokeh figure configuration: pixel sizes at 96 dpi
// plus background fills.
func (a *Bokeh) Config(s *style.Schema) (map[string]any, error) {
	if s == nil {
		s = a.style
	}
	return map[string]any{
		"width":                 int(s.Figure.Size.Width * webDPI),
		"height":                int(s.Figure.Size.Height * webDPI),
		"background_fill_color": s.Figure.Background,
		"border_fill_color":     s.Figure.Background,
		"toolbar_location":      nil,
		"outline_line_color":    nil,
	}, nil
}

// Theme returns the style as a bokeh theme document (the attrs shape
// bokeh theme YAML files use).
func (a *Bokeh) Theme(s *style.Schema) map[string]any {
	if s == nil {
		s = a.style
	}
	return map[string]any{
		"attrs": map[string]any{
			"figure": map[string]any{
				"background_fill_color": s.Figure.Background,
				"border_fill_color":     s.Figure.Background,
			},
			"title": map[string]any{
				"text_font":      s.Fonts.Family,
				"text_font_size": fmt.Sprintf("%dpt", s.Fonts.Size.Title),
			},
			"axis": map[string]any{
				"axis_label_text_font":       s.Fonts.Family,
				"axis_label_text_font_size":  fmt.Sprintf("%dpt", s.Fonts.Size.Label),
				"major_label_text_font":      s.Fonts.Family,
				"major_label_text_font_size": fmt.Sprintf("%dpt", s.Fonts.Size.Default),
			},
			"grid": map[string]any{
				"grid_line_color": s.Colors.Grid,
				"grid_line_alpha": s.Layout.Grid.Alpha,
				"grid_line_width": s.Layout.Grid.LineWidth,
			},
		},
	}
}

// ColorPalette returns the trace color sequence.
func (a *Bokeh) ColorPalette(s *style.Schema) []string {
	if s == nil {
		s = a.style
	}
	if s.Colors.Palette == "viridis" {
		return sampleRamp(viridisControls, floats8())
	}
	return []string{s.Colors.Primary, s.Colors.Secondary}
}

// SupportedFormats lists the formats bokeh itself can produce.
func (a *Bokeh) SupportedFormats() []string {
	return []string{"png", "svg", "html"}
}

// SaveFigure writes the figure in the requested format. png and svg need
// bokeh's selenium/chromedriver export pipeline and report
// ErrRendererUnavailable; json, yaml (theme), and html are produced
// natively.
func (a *Bokeh) SaveFigure(fig Figure, filename, format, quality string, meta map[string]any) error {
	config, err := a.Config(a.style)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := figureDocument(config, fig, meta)
		if err != nil {
			return err
		}
		return writeFile(filename, data)
	case "yaml":
		data, err := yaml.Marshal(a.Theme(a.style))
		if err != nil {
			return fmt.Errorf("failed to marshal bokeh theme: %w", err)
		}
		return writeFile(filename, data)
	case "html":
		page, err := a.htmlPage(config, fig, meta)
		if err != nil {
			return err
		}
		return writeFile(filename, page)
	case "png", "svg":
		return fmt.Errorf("bokeh %s output: %w", format, ErrRendererUnavailable)
	default:
		return fmt.Errorf("unsupported format %q for bokeh", format)
	}
}

// htmlPage embeds the figure payload and config into a standalone
// document for the BokehJS CDN build.
func (a *Bokeh) htmlPage(config map[string]any, fig Figure, meta map[string]any) ([]byte, error) {
	payload, err := sonic.Marshal(map[string]any{
		"figure": fig.Payload(),
		"config": config,
		"theme":  a.Theme(a.style),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal figure payload: %w", err)
	}

	title := "Figure"
	if t, ok := meta["name"].(string); ok && t != "" {
		title = t
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString(`<script src="https://cdn.bokeh.org/bokeh/release/bokeh-3.6.0.min.js"></script>` + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(`<div id="figure"></div>` + "\n<script>\n")
	fmt.Fprintf(&b, "var doc = %s;\n", payload)
	b.WriteString("Bokeh.embed.embed_item(doc.figure, \"figure\");\n")
	b.WriteString("</script>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}

// floats8 returns eight evenly spaced sample positions over [0, 1], the
// size of the palette bokeh requests by default.
func floats8() []float64 {
	out := make([]float64, 8)
	for i := range out {
		out[i] = float64(i) / 7
	}
	return out
}
