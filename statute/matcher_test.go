package statute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyQueryReturnsGuidanceWithoutScanning(t *testing.T) {
	m := NewMatcher(Sections)

	for _, q := range []string{"", "   ", "\t\n"} {
		res := m.Match(q)
		assert.False(t, res.Found)
		assert.Equal(t, guidanceEmptyQuery, res.Guidance)
		assert.Empty(t, res.SectionID)
	}
	assert.Equal(t, int64(0), m.scans.Load(), "empty queries must not touch the table")
}

// Bare section numbers are not searchable terms: the loose word stage drops
// words of 3 characters or fewer and no keyword contains an id. Number
// lookups belong to BySectionID.
func TestMatchBareSectionIDReturnsGuidance(t *testing.T) {
	for _, q := range []string{"302", "420", "392"} {
		res := Match(q)
		assert.False(t, res.Found, "query %q", q)
		assert.Equal(t, guidanceNoMatch, res.Guidance)
	}
}

func TestMatchNoMatchGuidance(t *testing.T) {
	res := Match("the weather is lovely in goa right now")
	assert.False(t, res.Found)
	assert.Equal(t, guidanceNoMatch, res.Guidance)
	assert.Empty(t, res.SectionID)
	assert.Empty(t, res.RelatedCase)
}

// Every section's own title used as the query must resolve to some section:
// the title's words are part of that record's searchable text, so the loose
// word stage is a guaranteed floor.
func TestMatchTitleSelfMatch(t *testing.T) {
	for _, r := range Sections {
		res := Match(r.Title)
		assert.True(t, res.Found, "title of section %s did not match", r.SectionID)
	}
}

func TestMatchSynonymBridging(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		section string
	}{
		{"kill maps to murder", "someone tried to kill my brother", "302"},
		{"homicide maps to murder", "a homicide took place in our village", "302"},
		{"fraud maps to cheating", "he committed fraud against my company", "420"},
		{"ransom maps to kidnapping", "they demanded a ransom for my son", "363"},
		{"domestic violence maps to cruelty", "I am facing domestic violence at home", "498A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(tt.query)
			require.True(t, res.Found)
			assert.Equal(t, tt.section, res.SectionID)
			assert.NotEmpty(t, res.Title)
			assert.NotEmpty(t, res.RelatedCase)
		})
	}
}

func TestMatchStolePropertyQuery(t *testing.T) {
	res := Match("he stole my car last night")
	require.True(t, res.Found)
	assert.Equal(t, "411", res.SectionID)
	assert.NotEmpty(t, res.RelatedCase)
}

func TestMatchKeywordStage(t *testing.T) {
	// "sedition" is a keyword of 124A but belongs to no synonym group, so
	// only the keyword stage can surface it.
	res := Match("is sedition still a crime")
	require.True(t, res.Found)
	assert.Equal(t, "124A", res.SectionID)
}

func TestMatchLooseWordStage(t *testing.T) {
	// "defame" is not a keyword of any record but is a substring match
	// against 499's description via "defame that person".
	res := Match("can I sue someone who tried to defame me")
	require.True(t, res.Found)
	assert.Equal(t, "499", res.SectionID)
}

func TestMatchDeterministicTieBreak(t *testing.T) {
	// Both 392 and 395 carry robbery vocabulary; 392 comes first in the
	// table so it must win every time.
	for i := 0; i < 5; i++ {
		res := Match("there was a robbery at the shop")
		require.True(t, res.Found)
		assert.Equal(t, "392", res.SectionID)
	}
}

func TestMatchStagePrecedence(t *testing.T) {
	// "ransom kidnapping" hits the synonym stage via the kidnapping group.
	// The earliest record whose text carries a kidnapping form is 363, even
	// though 364's keywords mention ransom explicitly.
	res := Match("kidnapping for ransom")
	require.True(t, res.Found)
	assert.Equal(t, "363", res.SectionID)
}

func TestBySectionID(t *testing.T) {
	r, ok := BySectionID("420")
	require.True(t, ok)
	assert.Equal(t, "Cheating and dishonestly inducing delivery of property", r.Title)

	_, ok = BySectionID("9999")
	assert.False(t, ok)
}

func TestFormatRelatedCase(t *testing.T) {
	c := Case{Name: "A v. B", Citation: "AIR 2000 SC 1", Summary: "sum", Analysis: "ana"}
	assert.Equal(t, "A v. B (AIR 2000 SC 1): sum - ana", formatRelatedCase(c))
}
