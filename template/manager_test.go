package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisrjensen/styles-gallery/style"
)

func customDoc(name string) style.Document {
	return style.Document{
		"version": "1.0",
		"metadata": map[string]any{
			"name":     name,
			"category": "custom",
		},
		"figure": map[string]any{
			"size":       map[string]any{"width": 8.0, "height": 6.0},
			"dpi":        150,
			"background": "white",
		},
		"fonts": map[string]any{
			"family": "sans-serif",
			"size":   map[string]any{"default": 12, "title": 16, "label": 10},
			"weight": "normal",
		},
		"colors": map[string]any{
			"palette":   "viridis",
			"primary":   "#123456",
			"secondary": "#654321",
			"grid":      "#cccccc",
		},
		"layout": map[string]any{
			"margins": map[string]any{"left": 0.1, "right": 0.05, "top": 0.05, "bottom": 0.1},
			"grid":    map[string]any{"alpha": 0.3, "linewidth": 0.5},
		},
	}
}

func TestNewManagerSeedsBuiltins(t *testing.T) {
	m := NewManager()

	assert.Equal(t, 16, m.Len())
	for _, name := range []string{"ieee_standard", "corporate_presentation", "scientific_report"} {
		assert.True(t, m.IsBuiltin(name), "%s should be builtin", name)
	}
}

func TestListOrder(t *testing.T) {
	m := NewManager()
	names := m.List(nil)

	require.Len(t, names, 16)
	assert.Equal(t, "ieee_standard", names[0], "academic group seeds first")
	assert.Equal(t, "corporate_presentation", names[5], "presentation group follows")
	assert.Equal(t, "scientific_report", names[10], "publication group seeds last")
	assert.Equal(t, "high_impact_journal", names[15])
}

func TestListByCategory(t *testing.T) {
	m := NewManager()

	academic := "academic"
	names := m.List(&academic)
	assert.Equal(t, []string{
		"ieee_standard", "nature_style", "acs_journal", "thesis_style", "conference_poster",
	}, names)

	nothing := "no_such_category"
	assert.Empty(t, m.List(&nothing))
}

func TestGet(t *testing.T) {
	m := NewManager()

	s, ok := m.Get("ieee_standard")
	require.True(t, ok)
	assert.Equal(t, "1.0", s.Version)
	assert.Equal(t, "IEEE Standard", s.Metadata.Name)

	_, ok = m.Get("nonexistent")
	assert.False(t, ok)
}

func TestDocumentReturnsCopy(t *testing.T) {
	m := NewManager()

	doc, ok := m.Document("ieee_standard")
	require.True(t, ok)
	doc["version"] = "tampered"
	doc["metadata"].(map[string]any)["name"] = "tampered"

	fresh, ok := m.Document("ieee_standard")
	require.True(t, ok)
	assert.Equal(t, "1.0", fresh["version"])
	assert.Equal(t, "IEEE Standard", fresh["metadata"].(map[string]any)["name"])
}

func TestInfo(t *testing.T) {
	m := NewManager()

	meta, ok := m.Info("nature_style")
	require.True(t, ok)
	assert.Equal(t, "Nature Journal", meta.Name)
	assert.Equal(t, "academic", meta.Category)

	_, ok = m.Info("nonexistent")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	m := NewManager()

	matches := m.Search("journal")
	for _, want := range []string{"ieee_standard", "nature_style", "acs_journal", "high_impact_journal"} {
		assert.Contains(t, matches, want)
	}

	assert.Contains(t, m.Search("JOURNAL"), "nature_style", "search is case-insensitive")
	assert.Empty(t, m.Search("zzz_no_match"))
}

func TestCategories(t *testing.T) {
	m := NewManager()
	categories := m.Categories()

	assert.Len(t, categories["academic"], 5)
	assert.Len(t, categories["presentation"], 5)
	assert.Len(t, categories["publication"], 6)

	doc := customDoc("bare")
	delete(doc, "metadata")
	require.True(t, m.Add("bare", doc))
	assert.Contains(t, m.Categories()["uncategorized"], "bare")
}

func TestRecommend(t *testing.T) {
	m := NewManager()

	assert.Equal(t,
		[]string{"ieee_standard", "nature_style", "acs_journal", "high_impact_journal"},
		m.Recommend("submitting to a journal"))

	// Multiple keyword hits deduplicate in first-seen order.
	recs := m.Recommend("journal publication report")
	assert.Equal(t, []string{
		"ieee_standard", "nature_style", "acs_journal", "high_impact_journal",
		"scientific_report", "book_chapter", "white_paper",
		"technical_manual",
	}, recs)

	assert.Empty(t, m.Recommend("nothing relevant here"))
}

func TestAdd(t *testing.T) {
	m := NewManager()

	assert.True(t, m.Add("my_style", customDoc("My Style")))
	assert.Equal(t, 17, m.Len())

	s, ok := m.Get("my_style")
	require.True(t, ok)
	assert.Equal(t, 150, s.Figure.DPI)

	assert.False(t, m.Add("my_style", customDoc("Duplicate")), "duplicate names are rejected")
	assert.False(t, m.Add("ieee_standard", customDoc("Shadow")), "builtin names are occupied")
	assert.False(t, m.Add("invalid", style.Document{"version": "1.0"}), "invalid documents are rejected")
	assert.Equal(t, 17, m.Len())
}

func TestRemove(t *testing.T) {
	m := NewManager()
	require.True(t, m.Add("my_style", customDoc("My Style")))

	assert.True(t, m.Remove("my_style"))
	_, ok := m.Get("my_style")
	assert.False(t, ok)
	assert.NotContains(t, m.List(nil), "my_style")

	assert.False(t, m.Remove("my_style"), "second removal finds nothing")
	assert.False(t, m.Remove("nonexistent"))
}

func TestRemoveBuiltinRefused(t *testing.T) {
	m := NewManager()

	assert.False(t, m.Remove("ieee_standard"))

	s, ok := m.Get("ieee_standard")
	require.True(t, ok, "builtin must survive the removal attempt")
	assert.Equal(t, "IEEE Standard", s.Metadata.Name)
	assert.Equal(t, 16, m.Len())
}

func TestExportImport(t *testing.T) {
	m := NewManager()

	text, ok := m.Export("ieee_standard")
	require.True(t, ok)
	assert.Contains(t, text, `"IEEE Standard"`)

	assert.True(t, m.Import("ieee_copy", text))
	s, ok := m.Get("ieee_copy")
	require.True(t, ok)
	assert.Equal(t, "IEEE Standard", s.Metadata.Name)

	_, ok = m.Export("nonexistent")
	assert.False(t, ok)

	assert.False(t, m.Import("bad", "{not json"), "malformed JSON is rejected")
	assert.False(t, m.Import("ieee_copy", text), "duplicate name is rejected")
}

func TestDerive(t *testing.T) {
	m := NewManager()

	derived, ok := m.Derive("ieee_standard", style.Document{
		"figure": map[string]any{"dpi": 600},
	})
	require.True(t, ok)
	assert.Equal(t, 600, derived.Figure.DPI)

	// The base template is untouched.
	base, ok := m.Get("ieee_standard")
	require.True(t, ok)
	assert.NotEqual(t, 600, base.Figure.DPI)

	_, ok = m.Derive("nonexistent", nil)
	assert.False(t, ok)
}

func TestDeriveNestedFontSize(t *testing.T) {
	m := NewManager()

	derived, ok := m.Derive("ieee_standard", style.Document{
		"fonts": map[string]any{"size": map[string]any{"title": 99}},
	})
	require.True(t, ok)

	base, ok := m.Get("ieee_standard")
	require.True(t, ok)

	assert.Equal(t, 99, derived.Fonts.Size.Title)
	assert.Equal(t, base.Fonts.Size.Default, derived.Fonts.Size.Default)
	assert.Equal(t, base.Fonts.Size.Label, derived.Fonts.Size.Label)
	assert.Equal(t, base.Fonts.Family, derived.Fonts.Family)
}

func TestDeriveNilModifications(t *testing.T) {
	m := NewManager()

	derived, ok := m.Derive("nature_style", nil)
	require.True(t, ok)

	base, ok := m.Get("nature_style")
	require.True(t, ok)
	assert.Equal(t, base, derived)
}

func TestDeriveBadModifications(t *testing.T) {
	m := NewManager()

	_, ok := m.Derive("ieee_standard", style.Document{
		"figure": map[string]any{"dpi": "very high"},
	})
	assert.False(t, ok, "type mismatches surface as failure")
}

func TestSeedDemo(t *testing.T) {
	m := NewManager()

	added := SeedDemo(m)
	assert.Equal(t, 5, added)
	assert.Equal(t, 21, m.Len())

	s, ok := m.Get("demo_scientific")
	require.True(t, ok)
	assert.Equal(t, "demo", s.Metadata.Category)

	// Demo styles are ordinary customs: removable and re-seedable.
	assert.False(t, m.IsBuiltin("demo_scientific"))
	assert.True(t, m.Remove("demo_scientific"))
	assert.Equal(t, 1, SeedDemo(m), "only the removed name is re-added")
}

func TestSeedCollisionLastWriteWins(t *testing.T) {
	// Overwriting through insert keeps the first-seen position while the
	// later document wins, mirroring how the seed groups are applied.
	m := NewManager()
	positionBefore := indexOf(m.List(nil), "nature_style")

	m.insert("nature_style", customDoc("Replacement"))

	assert.Equal(t, positionBefore, indexOf(m.List(nil), "nature_style"))
	meta, ok := m.Info("nature_style")
	require.True(t, ok)
	assert.Equal(t, "Replacement", meta.Name)
	assert.Equal(t, 16, m.Len())
}

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}
	return -1
}
