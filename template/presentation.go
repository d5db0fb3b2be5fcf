package template

import "github.com/krisrjensen/styles-gallery/style"

var presentationOrder = []string{
	"corporate_presentation",
	"slide_deck",
	"dashboard_style",
	"infographic",
	"web_display",
}

var presentationStyles = map[string]style.Document{
	"corporate_presentation": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Corporate Presentation",
			"description": "Professional corporate presentation style",
			"category":    "presentation",
			"use_case":    "Business presentations and reports",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 6.0},
			"dpi":        150,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 12, "title": 16, "label": 11, "caption": 10},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "corporate",
			"primary":   "#003366", // corporate blue
			"secondary": "#FF6600", // corporate orange
			"grid":      "#e6e6e6",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.08, "right": 0.05, "top": 0.05, "bottom": 0.08},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"slide_deck": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Slide Deck",
			"description": "Optimized for PowerPoint/slide presentations",
			"category":    "presentation",
			"use_case":    "PowerPoint and slide presentations",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 10.0, "height": 7.5}, // 4:3 aspect ratio
			"dpi":        96,                                           // screen resolution
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Calibri",
			"size":   map[string]any{"default": 14, "title": 18, "label": 12, "caption": 11},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "office",
			"primary":   "#4472C4", // office blue
			"secondary": "#E7E6E6", // office gray
			"grid":      "#d9d9d9",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.06, "right": 0.04, "top": 0.04, "bottom": 0.06},
			"grid":    map[string]any{"alpha": 0.25, "linewidth": 0.4},
		},
	},

	"dashboard_style": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Dashboard",
			"description": "Style for executive dashboards",
			"category":    "presentation",
			"use_case":    "Executive dashboards and KPI displays",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 12.0, "height": 8.0}, // wide format
			"dpi":        100,
			"background": "#f8f9fa",
		},
		"fonts": map[string]any{
			"family": "Segoe UI",
			"size":   map[string]any{"default": 11, "title": 14, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "dashboard",
			"primary":   "#28a745", // success green
			"secondary": "#dc3545", // alert red
			"grid":      "#dee2e6",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.05, "right": 0.03, "top": 0.03, "bottom": 0.05},
			"grid":    map[string]any{"alpha": 0.2, "linewidth": 0.3},
		},
	},

	"infographic": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Infographic",
			"description": "Colorful style for infographics",
			"category":    "presentation",
			"use_case":    "Infographics and visual communications",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 10.0}, // portrait orientation
			"dpi":        150,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Open Sans",
			"size":   map[string]any{"default": 13, "title": 20, "label": 11, "caption": 10},
			"weight": "bold",
		},
		"colors": map[string]any{
			"palette":   "vibrant",
			"primary":   "#FF5733",
			"secondary": "#3498DB",
			"grid":      "#ecf0f1",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.06, "right": 0.04, "top": 0.04, "bottom": 0.06},
			"grid":    map[string]any{"alpha": 0.15, "linewidth": 0.2},
		},
	},

	"web_display": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Web Display",
			"description": "Optimized for web display and social media",
			"category":    "presentation",
			"use_case":    "Web graphics and social media posts",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 8.0}, // square format
			"dpi":        72,                                          // web resolution
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Roboto",
			"size":   map[string]any{"default": 12, "title": 16, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "web_safe",
			"primary":   "#007bff", // bootstrap blue
			"secondary": "#6c757d", // bootstrap gray
			"grid":      "#e9ecef",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.08, "right": 0.05, "top": 0.05, "bottom": 0.08},
			"grid":    map[string]any{"alpha": 0.2, "linewidth": 0.3},
		},
	},
}
