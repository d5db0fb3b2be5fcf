// Package template provides the style template registry and lazy loader.
//
// The registry is seeded at construction from three built-in groups:
// academic, presentation, and publication. Built-in template names can
// never be removed. Custom templates may be added and removed at runtime,
// subject to required-key validation.
//
// Components:
//   - Manager: template lookup, search, category grouping, recommendation,
//     custom add/remove, JSON export/import, and derivation with deep merge
//   - Loader: lazy loading with a strong document cache plus a
//     reference-counted live instance cache
//
// Neither component holds an internal lock; drive them from one goroutine
// or guard them externally. Only the style cache itself is safe for
// concurrent use.
//
// Example Usage:
//
//	m := template.NewManager()
//	names := m.List(nil)
//	s, ok := m.Get("ieee_standard")
//	derived, ok := m.Derive("ieee_standard", style.Document{
//		"fonts": map[string]any{"size": map[string]any{"title": 16}},
//	})
package template
