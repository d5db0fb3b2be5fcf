package template

import "github.com/krisrjensen/styles-gallery/style"

var academicOrder = []string{
	"ieee_standard",
	"nature_style",
	"acs_journal",
	"thesis_style",
	"conference_poster",
}

var academicStyles = map[string]style.Document{
	"ieee_standard": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "IEEE Standard",
			"description": "IEEE publication standard style",
			"category":    "academic",
			"use_case":    "IEEE journal submissions",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 3.5, "height": 2.625}, // single column IEEE
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "serif",
			"size":   map[string]any{"default": 8, "title": 10, "label": 8, "caption": 7},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "grayscale",
			"primary":   "#000000",
			"secondary": "#666666",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.12, "right": 0.05, "top": 0.05, "bottom": 0.12},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"nature_style": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Nature Journal",
			"description": "Nature journal publication style",
			"category":    "academic",
			"use_case":    "Nature journal submissions",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 5.2, "height": 4.0}, // Nature single column
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 7, "title": 9, "label": 7, "caption": 6},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "colorbrewer_set1",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#e0e0e0",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.2, "linewidth": 0.3},
		},
	},

	"acs_journal": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "ACS Journal",
			"description": "American Chemical Society journal style",
			"category":    "academic",
			"use_case":    "ACS journal submissions",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 3.25, "height": 2.5}, // ACS single column
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Times",
			"size":   map[string]any{"default": 8, "title": 10, "label": 8, "caption": 7},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "viridis",
			"primary":   "#2E86AB",
			"secondary": "#A23B72",
			"grid":      "#d3d3d3",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.15, "right": 0.05, "top": 0.05, "bottom": 0.15},
			"grid":    map[string]any{"alpha": 0.25, "linewidth": 0.4},
		},
	},

	"thesis_style": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Thesis Standard",
			"description": "Standard thesis/dissertation style",
			"category":    "academic",
			"use_case":    "PhD thesis and dissertations",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 6.0, "height": 4.5},
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "serif",
			"size":   map[string]any{"default": 11, "title": 14, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "tab10",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"conference_poster": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Conference Poster",
			"description": "Style for conference poster figures",
			"category":    "academic",
			"use_case":    "Conference posters and presentations",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 6.0},
			"dpi":        150, // lower DPI for posters
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "sans-serif",
			"size":   map[string]any{"default": 14, "title": 18, "label": 12, "caption": 11},
			"weight": "bold",
		},
		"colors": map[string]any{
			"palette":   "bright",
			"primary":   "#E31A1C",
			"secondary": "#1F78B4",
			"grid":      "#888888",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.08, "right": 0.05, "top": 0.05, "bottom": 0.08},
			"grid":    map[string]any{"alpha": 0.4, "linewidth": 0.8},
		},
	},
}
