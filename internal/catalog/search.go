package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchTemplatesByTags returns current templates matching at least one of
// the requested tags, ranked by how many tags they match. Tag comparison is
// case-insensitive and exact.
func SearchTemplatesByTags(tags []string) []Template {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(tag)] = true
	}

	type scored struct {
		t    Template
		hits int
	}
	var matches []scored
	for _, t := range AllTemplates() {
		hits := 0
		for _, tag := range t.Tags {
			if wanted[strings.ToLower(tag)] {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{t, hits})
		}
	}

	// stable: preserve catalog order among equal hit counts
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].hits > matches[j-1].hits; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	out := make([]Template, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.t)
	}
	return out
}

// SearchTemplates fuzzy-matches a free-text query against template names and
// descriptions, for the interactive template picker.
func SearchTemplates(query string) []Template {
	if query == "" {
		return AllTemplates()
	}

	all := AllTemplates()
	corpus := make([]string, len(all))
	for i, t := range all {
		corpus[i] = t.Name + " " + t.Description
	}

	results := fuzzy.Find(query, corpus)
	out := make([]Template, 0, len(results))
	for _, r := range results {
		out = append(out, all[r.Index])
	}
	return out
}
