package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCandidateOrdinalAndBareDigit(t *testing.T) {
	assigned := []string{"3rd Year"}

	assert.True(t, IsCandidate(assigned, "3rd Year CS"))
	assert.True(t, IsCandidate(assigned, "Year 3"))
	assert.True(t, IsCandidate(assigned, "third year mechanical"))
	assert.True(t, IsCandidate(assigned, "THIRD YEAR"))

	assert.False(t, IsCandidate(assigned, "Year 2"))
	assert.False(t, IsCandidate(assigned, "2nd Year"))
	assert.False(t, IsCandidate(assigned, "Year 30"))
}

func TestIsCandidateWordBoundaries(t *testing.T) {
	// "3" must not match inside a longer number, "third" not inside a word.
	assert.False(t, IsCandidate([]string{"3rd Year"}, "Batch 2023"))
	assert.False(t, IsCandidate([]string{"first year"}, "firstly"))
}

func TestIsCandidateEmptyAndAll(t *testing.T) {
	assert.True(t, IsCandidate(nil, "anything at all"))
	assert.True(t, IsCandidate([]string{}, "Year 2"))
	assert.True(t, IsCandidate([]string{"ALL"}, "Year 2"))
	assert.True(t, IsCandidate([]string{"2nd Year", "all"}, "Year 9"))
}

func TestIsCandidateOrdinalWordTag(t *testing.T) {
	// Word-form tags resolve to digits too.
	assigned := []string{"Second Year"}
	assert.True(t, IsCandidate(assigned, "Year 2"))
	assert.True(t, IsCandidate(assigned, "2nd year ECE"))
	assert.False(t, IsCandidate(assigned, "Year 3"))
}

func TestIsCandidateLiteralWithRegexMeta(t *testing.T) {
	// Tags with regex metacharacters must match only literally.
	assigned := []string{"B.Tech CS"}
	assert.True(t, IsCandidate(assigned, "3rd Year B.Tech CS"))
	assert.False(t, IsCandidate(assigned, "3rd Year BxTech CS"))
}

func TestYearTokenForms(t *testing.T) {
	forms := yearTokenForms("3rd Year")
	assert.Contains(t, forms, "3")
	assert.Contains(t, forms, "3rd")
	assert.Contains(t, forms, "third")
	assert.Contains(t, forms, `3rd Year`)
}

func TestBuildYearPatternMultipleTags(t *testing.T) {
	rx, matchAll, err := BuildYearPattern([]string{"1st Year", "2nd Year"})
	require.NoError(t, err)
	require.False(t, matchAll)

	assert.True(t, rx.MatchString("Year 1"))
	assert.True(t, rx.MatchString("second year"))
	assert.False(t, rx.MatchString("Year 3"))
}

func TestMatchesAllYears(t *testing.T) {
	assert.True(t, MatchesAllYears(nil))
	assert.True(t, MatchesAllYears([]string{" All "}))
	assert.False(t, MatchesAllYears([]string{"1st Year"}))
}
