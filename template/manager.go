package template

import (
	"strings"

	"github.com/bytedance/sonic"

	"github.com/krisrjensen/styles-gallery/style"
)

// Manager is the template registry. It is seeded once at construction
// and read-mostly thereafter. Not safe for concurrent mutation; see the
// package documentation.
type Manager struct {
	docs     map[string]style.Document
	order    []string
	builtins map[string]struct{}
}

// NewManager creates a registry seeded with the built-in template groups.
func NewManager() *Manager {
	m := &Manager{
		docs:     make(map[string]style.Document),
		builtins: make(map[string]struct{}),
	}
	m.seed()
	return m
}

// insert stores a document, preserving first-seen position on overwrite.
func (m *Manager) insert(name string, doc style.Document) {
	if _, exists := m.docs[name]; !exists {
		m.order = append(m.order, name)
	}
	m.docs[name] = doc
}

// List returns template names in insertion order, optionally filtered by
// metadata category.
func (m *Manager) List(category *string) []string {
	names := make([]string, 0, len(m.order))
	for _, name := range m.order {
		if category != nil && m.metadataField(name, "category") != *category {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Get returns the typed schema for a template name.
func (m *Manager) Get(name string) (*style.Schema, bool) {
	doc, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	s, err := style.Decode(doc)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Document returns a deep copy of the raw template document.
func (m *Manager) Document(name string) (style.Document, bool) {
	doc, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	return style.Clone(doc), true
}

// Info returns the metadata for a template name.
func (m *Manager) Info(name string) (*style.Metadata, bool) {
	doc, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	meta := &style.Metadata{}
	if raw, ok := doc["metadata"].(map[string]any); ok {
		data, err := sonic.Marshal(raw)
		if err != nil {
			return nil, false
		}
		if err := sonic.Unmarshal(data, meta); err != nil {
			return nil, false
		}
	}
	return meta, true
}

// Search returns the names whose name or metadata name/description/use
// case contains query as a case-insensitive substring.
func (m *Manager) Search(query string) []string {
	q := strings.ToLower(query)
	var matches []string
	for _, name := range m.order {
		fields := []string{
			strings.ToLower(name),
			strings.ToLower(m.metadataField(name, "name")),
			strings.ToLower(m.metadataField(name, "description")),
			strings.ToLower(m.metadataField(name, "use_case")),
		}
		for _, field := range fields {
			if strings.Contains(field, q) {
				matches = append(matches, name)
				break
			}
		}
	}
	return matches
}

// Categories groups template names by metadata category. Templates
// without a category land under "uncategorized".
func (m *Manager) Categories() map[string][]string {
	categories := make(map[string][]string)
	for _, name := range m.order {
		category := m.metadataField(name, "category")
		if category == "" {
			category = "uncategorized"
		}
		categories[category] = append(categories[category], name)
	}
	return categories
}

// Recommend returns template names recommended for a use-case
// description, deduplicated in first-seen order.
func (m *Manager) Recommend(useCase string) []string {
	text := strings.ToLower(useCase)
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range recommendations {
		if !strings.Contains(text, rec.keyword) {
			continue
		}
		for _, name := range rec.templates {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Add registers a custom template. Returns false when the name already
// exists or the document is missing required keys.
func (m *Manager) Add(name string, doc style.Document) bool {
	if _, exists := m.docs[name]; exists {
		return false
	}
	if err := style.Validate(doc); err != nil {
		return false
	}
	m.insert(name, doc)
	return true
}

// Remove deletes a custom template. Returns false for built-in or
// unknown names.
func (m *Manager) Remove(name string) bool {
	if _, builtin := m.builtins[name]; builtin {
		return false
	}
	if _, exists := m.docs[name]; !exists {
		return false
	}
	delete(m.docs, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Export serializes a template to indented JSON.
func (m *Manager) Export(name string) (string, bool) {
	doc, ok := m.docs[name]
	if !ok {
		return "", false
	}
	data, err := sonic.ConfigDefault.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Import registers a template from JSON text. Malformed JSON returns
// false rather than propagating the parse failure.
func (m *Manager) Import(name, jsonText string) bool {
	var doc style.Document
	if err := sonic.UnmarshalString(jsonText, &doc); err != nil {
		return false
	}
	return m.Add(name, doc)
}

// Derive produces a schema from a base template with modifications deep
// merged in. The base template is never mutated.
func (m *Manager) Derive(name string, modifications style.Document) (*style.Schema, bool) {
	base, ok := m.docs[name]
	if !ok {
		return nil, false
	}
	merged := style.Clone(base)
	if modifications != nil {
		merged = style.Merge(base, modifications)
	}
	s, err := style.Decode(merged)
	if err != nil {
		return nil, false
	}
	return s, true
}

// IsBuiltin reports whether name is one of the seeded templates.
func (m *Manager) IsBuiltin(name string) bool {
	_, ok := m.builtins[name]
	return ok
}

// Len returns the number of registered templates.
func (m *Manager) Len() int {
	return len(m.docs)
}

func (m *Manager) metadataField(name, field string) string {
	doc, ok := m.docs[name]
	if !ok {
		return ""
	}
	meta, ok := doc["metadata"].(map[string]any)
	if !ok {
		return ""
	}
	value, _ := meta[field].(string)
	return value
}
