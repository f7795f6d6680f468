package statute

import (
	"strings"
	"sync/atomic"
)

// Guidance messages returned for queries the matcher cannot act on.
const (
	guidanceEmptyQuery = "Please provide a query with more information about the legal situation."
	guidanceNoMatch    = "No specific IPC section found for this query. Try adding more details or legal-specific terms related to the incident."
)

// Matcher matches free text against a statute table. It is safe for
// concurrent use: all fields are set at construction and never mutated.
type Matcher struct {
	records  []Record
	combined []string   // combinedText per record, same order
	groups   [][]string // synonym surface forms, one slice per group

	// scans counts full-table passes; used by tests to assert the empty
	// query short-circuits before touching the table.
	scans atomic.Int64
}

// NewMatcher builds a matcher over the given table. Records keep their
// declaration order; on ties the earliest record wins.
func NewMatcher(records []Record) *Matcher {
	m := &Matcher{records: records}
	m.combined = make([]string, len(records))
	for i, r := range records {
		m.combined[i] = combinedText(r)
	}
	for _, forms := range synonymGroups {
		m.groups = append(m.groups, forms)
	}
	return m
}

var defaultMatcher = NewMatcher(Sections)

// Match runs the default table matcher. See (*Matcher).Match.
func Match(query string) Result {
	return defaultMatcher.Match(query)
}

// Match returns the best-matching statute for the query, or a NotFound
// result with guidance. Three stages run in order and the first stage that
// produces any candidate wins entirely; within a stage the first record in
// table order is returned. Pure and deterministic.
func (m *Matcher) Match(query string) Result {
	if strings.TrimSpace(query) == "" {
		return Result{Guidance: guidanceEmptyQuery}
	}
	queryLower := strings.ToLower(query)

	if i, ok := m.synonymBridged(queryLower); ok {
		return m.found(i)
	}
	if i, ok := m.keywordContained(queryLower); ok {
		return m.found(i)
	}
	if i, ok := m.looseWord(queryLower); ok {
		return m.found(i)
	}
	return Result{Guidance: guidanceNoMatch}
}

// synonymBridged is stage 1: a statute is a candidate when the query
// contains any surface form of a synonym group and the statute's combined
// text contains a surface form of that same group. The same-group
// requirement is deliberate; it lets "he stole my car" reach a record that
// only says "theft" without letting unrelated groups bridge.
func (m *Matcher) synonymBridged(queryLower string) (int, bool) {
	m.scans.Add(1)
	for i := range m.records {
		for _, forms := range m.groups {
			if containsAny(queryLower, forms) && containsAny(m.combined[i], forms) {
				return i, true
			}
		}
	}
	return 0, false
}

// keywordContained is stage 2: the raw query contains one of the statute's
// own keyword strings.
func (m *Matcher) keywordContained(queryLower string) (int, bool) {
	m.scans.Add(1)
	for i, r := range m.records {
		for _, k := range r.Keywords {
			if strings.Contains(queryLower, k) {
				return i, true
			}
		}
	}
	return 0, false
}

// looseWord is stage 3: any query word longer than three characters appears
// as a substring of the statute's combined text.
func (m *Matcher) looseWord(queryLower string) (int, bool) {
	words := splitWords(queryLower)
	if len(words) == 0 {
		return 0, false
	}
	m.scans.Add(1)
	for i := range m.records {
		for _, w := range words {
			if strings.Contains(m.combined[i], w) {
				return i, true
			}
		}
	}
	return 0, false
}

func (m *Matcher) found(i int) Result {
	r := m.records[i]
	res := Result{
		Found:       true,
		SectionID:   r.SectionID,
		Title:       r.Title,
		Description: r.Description,
	}
	if len(r.RelatedCases) > 0 {
		res.RelatedCase = formatRelatedCase(r.RelatedCases[0])
	}
	return res
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// splitWords splits on non-alphanumeric runes and keeps words longer than
// three characters.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	var words []string
	for _, f := range fields {
		if len(f) > 3 {
			words = append(words, f)
		}
	}
	return words
}
