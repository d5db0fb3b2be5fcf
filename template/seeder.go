package template

import "github.com/krisrjensen/styles-gallery/style"

// builtinGroup is one static seed group. Groups are applied in order;
// a name collision across groups is resolved last-write-wins.
type builtinGroup struct {
	order []string
	docs  map[string]style.Document
}

// builtinGroups returns the seed groups in their fixed application order:
// academic, then presentation, then publication.
func builtinGroups() []builtinGroup {
	return []builtinGroup{
		{order: academicOrder, docs: academicStyles},
		{order: presentationOrder, docs: presentationStyles},
		{order: publicationOrder, docs: publicationStyles},
	}
}

// seed populates a manager with every built-in template and marks the
// names immutable.
func (m *Manager) seed() {
	for _, group := range builtinGroups() {
		for _, name := range group.order {
			m.insert(name, style.Clone(group.docs[name]))
			m.builtins[name] = struct{}{}
		}
	}
}

// recommendations maps use-case keywords to template names. Matched by
// substring containment against the lowercased use-case text.
var recommendations = []struct {
	keyword   string
	templates []string
}{
	{"journal", []string{"ieee_standard", "nature_style", "acs_journal", "high_impact_journal"}},
	{"publication", []string{"scientific_report", "book_chapter", "white_paper"}},
	{"presentation", []string{"corporate_presentation", "slide_deck", "infographic"}},
	{"thesis", []string{"thesis_style", "book_chapter"}},
	{"poster", []string{"conference_poster", "infographic"}},
	{"web", []string{"web_display", "dashboard_style"}},
	{"report", []string{"scientific_report", "technical_manual", "white_paper"}},
	{"business", []string{"corporate_presentation", "dashboard_style", "white_paper"}},
}
