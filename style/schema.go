package style

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Document is the raw style schema document. Registry storage, validation,
// and merging operate on this form; adapters consume the typed Schema.
type Document = map[string]any

// RequiredKeys are the top-level keys every template must carry.
var RequiredKeys = []string{"version", "figure", "fonts", "colors", "layout"}

// Metadata describes a template for search and categorization.
type Metadata struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	UseCase     string `json:"use_case,omitempty" yaml:"use_case,omitempty" toml:"use_case,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Created     string `json:"created,omitempty" yaml:"created,omitempty" toml:"created,omitempty"`
}

// Size is a figure size in inches.
type Size struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// Figure holds figure-level parameters.
type Figure struct {
	Size       Size   `json:"size" yaml:"size" toml:"size"`
	DPI        int    `json:"dpi" yaml:"dpi" toml:"dpi"`
	Background string `json:"background" yaml:"background" toml:"background"`
}

// FontSize holds per-role point sizes. Caption is optional and omitted
// when zero.
type FontSize struct {
	Default int `json:"default" yaml:"default" toml:"default"`
	Title   int `json:"title" yaml:"title" toml:"title"`
	Label   int `json:"label" yaml:"label" toml:"label"`
	Caption int `json:"caption,omitempty" yaml:"caption,omitempty" toml:"caption,omitempty"`
}

// Fonts holds font parameters.
type Fonts struct {
	Family string   `json:"family" yaml:"family" toml:"family"`
	Size   FontSize `json:"size" yaml:"size" toml:"size"`
	Weight string   `json:"weight" yaml:"weight" toml:"weight"`
}

// Colors holds the palette name and core colors.
type Colors struct {
	Palette   string `json:"palette" yaml:"palette" toml:"palette"`
	Primary   string `json:"primary" yaml:"primary" toml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary" toml:"secondary"`
	Grid      string `json:"grid" yaml:"grid" toml:"grid"`
}

// Margins are fractional figure margins.
type Margins struct {
	Left   float64 `json:"left" yaml:"left" toml:"left"`
	Right  float64 `json:"right" yaml:"right" toml:"right"`
	Top    float64 `json:"top" yaml:"top" toml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom"`
}

// GridStyle holds grid line parameters.
type GridStyle struct {
	Alpha     float64 `json:"alpha" yaml:"alpha" toml:"alpha"`
	LineWidth float64 `json:"linewidth" yaml:"linewidth" toml:"linewidth"`
}

// Layout holds margins and grid styling.
type Layout struct {
	Margins Margins   `json:"margins" yaml:"margins" toml:"margins"`
	Grid    GridStyle `json:"grid" yaml:"grid" toml:"grid"`
}

// Schema is the typed style schema.
type Schema struct {
	Version  string   `json:"version" yaml:"version" toml:"version"`
	Metadata Metadata `json:"metadata" yaml:"metadata" toml:"metadata"`
	Figure   Figure   `json:"figure" yaml:"figure" toml:"figure"`
	Fonts    Fonts    `json:"fonts" yaml:"fonts" toml:"fonts"`
	Colors   Colors   `json:"colors" yaml:"colors" toml:"colors"`
	Layout   Layout   `json:"layout" yaml:"layout" toml:"layout"`
}

// Validate checks that a document carries every required top-level key.
func Validate(doc Document) error {
	var missing []string
	for _, key := range RequiredKeys {
		if _, ok := doc[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema missing required keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Decode converts a raw document into a typed schema. The document is
// validated first; decode errors surface type mismatches introduced by
// merges or imports.
func Decode(doc Document) (*Schema, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	data, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var s Schema
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return &s, nil
}

// Document converts a typed schema back to the raw document form.
func (s *Schema) Document() (Document, error) {
	data, err := sonic.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	var doc Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// Default returns the universal base schema: serif fonts, 6.4x4.8 inch
// figure at 300 dpi, viridis palette.
func Default() *Schema {
	return &Schema{
		Version: "1.0",
		Metadata: Metadata{
			Name:        "Scientific Publication Style",
			Description: "IEEE standard publication style",
			Author:      "System",
		},
		Figure: Figure{
			Size:       Size{Width: 6.4, Height: 4.8},
			DPI:        300,
			Background: "white",
		},
		Fonts: Fonts{
			Family: "serif",
			Size:   FontSize{Default: 12, Title: 14, Label: 10},
			Weight: "normal",
		},
		Colors: Colors{
			Palette:   "viridis",
			Primary:   "#1f77b4",
			Secondary: "#ff7f0e",
			Grid:      "#cccccc",
		},
		Layout: Layout{
			Margins: Margins{Left: 0.1, Right: 0.05, Top: 0.05, Bottom: 0.1},
			Grid:    GridStyle{Alpha: 0.3, LineWidth: 0.5},
		},
	}
}
