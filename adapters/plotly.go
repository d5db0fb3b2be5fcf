package adapters

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/krisrjensen/styles-gallery/style"
)

// webDPI converts inch sizes to pixels for browser output.
const webDPI = 96

// Plotly translates the universal style into a plotly layout document.
type Plotly struct {
	style *style.Schema
}

// NewPlotly creates a plotly adapter. A nil schema falls back to the
// default style.
func NewPlotly(s *style.Schema) *Plotly {
	if s == nil {
		s = style.Default()
	}
	return &Plotly{style: s}
}

func (a *Plotly) Name() string {
	return "plotly"
}

// Config returns the plotly layout for the wrapped style. Sizes convert
// from inches at 96 dpi; margins convert from fractions to pixels.
func (a *Plotly) Config(s *style.Schema) (map[string]any, error) {
	if s == nil {
		s = a.style
	}
	widthPx := int(s.Figure.Size.Width * webDPI)
	heightPx := int(s.Figure.Size.Height * webDPI)
	margins := s.Layout.Margins

	return map[string]any{
		"width":         widthPx,
		"height":        heightPx,
		"paper_bgcolor": s.Figure.Background,
		"plot_bgcolor":  s.Figure.Background,
		"font": map[string]any{
			"family": s.Fonts.Family,
			"size":   s.Fonts.Size.Default,
			"color":  "black",
		},
		"title": map[string]any{
			"font": map[string]any{"size": s.Fonts.Size.Title},
		},
		"xaxis": map[string]any{
			"title":     map[string]any{"font": map[string]any{"size": s.Fonts.Size.Label}},
			"showgrid":  true,
			"gridcolor": s.Colors.Grid,
			"gridwidth": s.Layout.Grid.LineWidth,
			"zeroline":  false,
		},
		"yaxis": map[string]any{
			"title":     map[string]any{"font": map[string]any{"size": s.Fonts.Size.Label}},
			"showgrid":  true,
			"gridcolor": s.Colors.Grid,
			"gridwidth": s.Layout.Grid.LineWidth,
			"zeroline":  false,
		},
		"margin": map[string]any{
			"l": int(margins.Left * float64(widthPx)),
			"r": int(margins.Right * float64(widthPx)),
			"t": int(margins.Top * float64(heightPx)),
			"b": int(margins.Bottom * float64(heightPx)),
		},
	}, nil
}

// ColorPalette returns the trace color sequence.
func (a *Plotly) ColorPalette(s *style.Schema) []string {
	if s == nil {
		s = a.style
	}
	if s.Colors.Palette == "viridis" {
		return append([]string(nil), viridisControls...)
	}
	return []string{s.Colors.Primary, s.Colors.Secondary}
}

// SupportedFormats lists the formats plotly itself can produce.
func (a *Plotly) SupportedFormats() []string {
	return []string{"png", "jpg", "jpeg", "svg", "pdf", "html"}
}

// SaveFigure writes the figure in the requested format. Static image
// formats need the kaleido export engine and report
// ErrRendererUnavailable; json, html, and html.gz are produced natively.
func (a *Plotly) SaveFigure(fig Figure, filename, format, quality string, meta map[string]any) error {
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
	case "html":
		page, err := a.htmlPage(config, fig, meta)
		if err != nil {
			return err
		}
		return writeFile(filename, page)
	case "html.gz":
		page, err := a.htmlPage(config, fig, meta)
		if err != nil {
			return err
		}
		return writeGzip(filename, page)
	case "png", "jpg", "jpeg", "svg", "pdf":
		return fmt.Errorf("plotly %s output: %w", format, ErrRendererUnavailable)
	default:
		return fmt.Errorf("unsupported format %q for plotly", format)
	}
}

// htmlPage embeds the figure payload and layout into a standalone page
// that renders through the plotly.js CDN build.
func (a *Plotly) htmlPage(config map[string]any, fig Figure, meta map[string]any) ([]byte, error) {
	payload, err := sonic.Marshal(fig.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal figure payload: %w", err)
	}
	layout, err := sonic.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout: %w", err)
	}

	title := "Figure"
	if t, ok := meta["name"].(string); ok && t != "" {
		title = t
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString(`<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>` + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(`<div id="figure"></div>` + "\n<script>\n")
	fmt.Fprintf(&b, "var fig = %s;\n", payload)
	fmt.Fprintf(&b, "Plotly.newPlot(\"figure\", fig.data || [], %s);\n", layout)
	b.WriteString("</script>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}
