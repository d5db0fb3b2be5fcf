package template

import "github.com/krisrjensen/styles-gallery/style"

var publicationOrder = []string{
	"scientific_report",
	"book_chapter",
	"technical_manual",
	"white_paper",
	"patent_figure",
	"high_impact_journal",
}

var publicationStyles = map[string]style.Document{
	"scientific_report": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Scientific Report",
			"description": "General scientific report style",
			"category":    "publication",
			"use_case":    "Scientific reports and technical documentation",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 6.4, "height": 4.8},
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Computer Modern",
			"size":   map[string]any{"default": 10, "title": 12, "label": 9, "caption": 8},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "scientific",
			"primary":   "#1f77b4",
			"secondary": "#ff7f0e",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"book_chapter": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Book Chapter",
			"description": "Style for book chapters and textbooks",
			"category":    "publication",
			"use_case":    "Academic books and textbook chapters",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 5.0, "height": 3.75},
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Times New Roman",
			"size":   map[string]any{"default": 9, "title": 11, "label": 8, "caption": 7},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "monochrome",
			"primary":   "#000000",
			"secondary": "#666666",
			"grid":      "#dddddd",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.12, "right": 0.05, "top": 0.05, "bottom": 0.12},
			"grid":    map[string]any{"alpha": 0.25, "linewidth": 0.4},
		},
	},

	"technical_manual": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Technical Manual",
			"description": "Style for technical manuals and documentation",
			"category":    "publication",
			"use_case":    "Technical manuals and user guides",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 6.0, "height": 4.0},
			"dpi":        200,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Helvetica",
			"size":   map[string]any{"default": 10, "title": 12, "label": 9, "caption": 8},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "technical",
			"primary":   "#2E4057", // dark blue-gray
			"secondary": "#048A81", // teal
			"grid":      "#e0e0e0",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	},

	"white_paper": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "White Paper",
			"description": "Professional white paper style",
			"category":    "publication",
			"use_case":    "Business white papers and research reports",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 7.0, "height": 5.0},
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Calibri",
			"size":   map[string]any{"default": 11, "title": 14, "label": 10, "caption": 9},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "professional",
			"primary":   "#17365D", // professional navy
			"secondary": "#5B9BD5", // professional blue
			"grid":      "#d6d6d6",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.08, "right": 0.05, "top": 0.05, "bottom": 0.08},
			"grid":    map[string]any{"alpha": 0.25, "linewidth": 0.4},
		},
	},

	"patent_figure": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "Patent Figure",
			"description": "Style for patent application figures",
			"category":    "publication",
			"use_case":    "Patent applications and IP documentation",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 6.5, "height": 8.5}, // patent page size
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Arial",
			"size":   map[string]any{"default": 8, "title": 10, "label": 7, "caption": 6},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "patent",
			"primary":   "#000000", // black only for patents
			"secondary": "#000000",
			"grid":      "#000000",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.15, "right": 0.1, "top": 0.1, "bottom": 0.15},
			"grid":    map[string]any{"alpha": 0.5, "linewidth": 0.8},
		},
	},

	"high_impact_journal": {
		"version": "1.0",
		"metadata": map[string]any{
			"name":        "High Impact Journal",
			"description": "Style for high-impact scientific journals",
			"category":    "publication",
			"use_case":    "Science, Cell, Nature-level publications",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 4.5, "height": 3.375}, // compact high-impact
			"dpi":        300,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "Helvetica Neue",
			"size":   map[string]any{"default": 6, "title": 8, "label": 6, "caption": 5},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "high_contrast",
			"primary":   "#000000",
			"secondary": "#E74C3C", // high-impact red
			"grid":      "#f0f0f0",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.12, "right": 0.05, "top": 0.05, "bottom": 0.12},
			"grid":    map[string]any{"alpha": 0.2, "linewidth": 0.3},
		},
	},
}
