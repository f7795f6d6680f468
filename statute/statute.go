// Package statute implements the IPC statute lookup used by the chat
// assistant. Matching is a pure function over a compiled-in table; there is
// no index, no ranking and no state.
package statute

import (
	"fmt"
	"strings"
)

// Case is a reported judgment attached to a statute record. The first case
// in a record's list is the primary one surfaced in match results.
type Case struct {
	Name     string `json:"name"`
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
}

// Record is one section of the Indian Penal Code. Records are immutable
// after load; SectionID is unique across the table.
type Record struct {
	SectionID    string   `json:"section"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	RelatedCases []Case   `json:"relatedCases"`
}

// Result is the outcome of a match. When Found is false, Guidance carries a
// user-facing message explaining why.
type Result struct {
	Found       bool   `json:"found"`
	SectionID   string `json:"section,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	RelatedCase string `json:"relatedCase,omitempty"`
	Guidance    string `json:"guidance,omitempty"`
}

// combinedText flattens a record into the lowercase haystack used by the
// synonym and loose-word stages: section id, title, description, keywords
// and every related case's name, summary and analysis.
func combinedText(r Record) string {
	parts := []string{r.SectionID, r.Title, r.Description}
	parts = append(parts, r.Keywords...)
	for _, c := range r.RelatedCases {
		parts = append(parts, fmt.Sprintf("%s %s %s", c.Name, c.Summary, c.Analysis))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// formatRelatedCase renders the primary related case for a result.
func formatRelatedCase(c Case) string {
	return fmt.Sprintf("%s (%s): %s - %s", c.Name, c.Citation, c.Summary, c.Analysis)
}
