package template

import "github.com/krisrjensen/styles-gallery/style"

// Demo styles ship alongside the built-ins but are never seeded: they
// register through Add as custom templates, so unlike built-ins they can
// be removed again.

var demoOrder = []string{
	"demo_scientific",
	"demo_presentation",
	"demo_web_interface",
	"demo_analysis",
	"demo_verification",
}

var demoStyles = map[string]style.Document{
	"demo_scientific": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Demo Scientific",
			"description": "Demo-compliant scientific style",
			"category":    "demo",
			"use_case":    "All demo scientific plots",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 6.4, "height": 4.8},
			"dpi":        150,
			"background": "#ffffff",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 10, "title": 12, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "demo",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"demo_presentation": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Demo Presentation",
			"description": "Demo-compliant presentation style",
			"category":    "demo",
			"use_case":    "All demo presentations and slides",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 6.0},
			"dpi":        150,
			"background": "#ffffff",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 12, "title": 16, "label": 11, "caption": 10},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "demo",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.08, "right": 0.05, "top": 0.05, "bottom": 0.08},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"demo_web_interface": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Demo Web Interface",
			"description": "Demo-compliant web interface style",
			"category":    "demo",
			"use_case":    "All demo web interfaces and dashboards",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 10.0, "height": 6.0},
			"dpi":        150,
			"background": "#ffffff",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 11, "title": 14, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "demo",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.06, "right": 0.04, "top": 0.04, "bottom": 0.06},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"demo_analysis": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Demo Analysis",
			"description": "Demo-compliant analysis and ML plots",
			"category":    "demo",
			"use_case":    "Analysis outputs",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 6.0},
			"dpi":        150,
			"background": "#ffffff",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 10, "title": 12, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "demo",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"demo_verification": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Demo Verification",
			"description": "Demo-compliant verification and distance plots",
			"category":    "demo",
			"use_case":    "Verification outputs",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 7.0, "height": 5.0},
			"dpi":        150,
			"background": "#ffffff",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 10, "title": 12, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "demo",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},
}

// DemoTemplates returns deep copies of the demo style documents keyed by
// name.
func DemoTemplates() map[string]style.Document {
	out := make(map[string]style.Document, len(demoStyles))
	for name, doc := range demoStyles {
		out[name] = style.Clone(doc)
	}
	return out
}

// SeedDemo registers the demo styles as custom templates on m and
// returns how many were added. Names already present are skipped, which
// is the normal Add duplicate behavior.
func SeedDemo(m *Manager) int {
	added := 0
	for _, name := range demoOrder {
		if m.Add(name, style.Clone(demoStyles[name])) {
			added++
		}
	}
	return added
}
