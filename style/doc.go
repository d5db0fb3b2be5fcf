// Package style defines the universal style schema shared by all
// plotting front-ends.
//
// A style is a versioned document describing figure size, fonts, colors,
// and layout, independent of any plotting library. The package offers two
// views of the same data:
//   - Document: the raw nested map, used for validation, merging, and
//     registry storage
//   - Schema: the typed struct, used by adapters and accessors
//
// Features:
//   - JSON, YAML, and TOML codecs with file round-trip
//   - Deep merge for template derivation
//   - Required-key validation for custom templates
//   - Cached: a memoizing wrapper whose accessors go through the style
//     cache, invalidated by schema content hash
//
// Example Usage:
//
//	s := style.Default()
//	w, h := s.Figure.Size.Width, s.Figure.Size.Height
//	data, err := s.ToJSON()
//	loaded, err := style.FromJSON(data)
package style
