package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The "results" tag and the CultureResults struct share a name on the wire
// but must stay distinct identifiers in this package.
func TestResultsTagDistinctFromResultsStruct(t *testing.T) {
	assert.Equal(t, CultureType("results"), CultureTagResults)

	var r CultureResults
	r.Set(CultureTagResults, 42)
	assert.Equal(t, 42, r.Results)
	assert.Equal(t, 42, r.Get(CultureTagResults))
}

func TestCultureTypesRoundTrip(t *testing.T) {
	require.Len(t, CultureTypes, 8)

	for _, tag := range CultureTypes {
		parsed, ok := ParseCultureType(string(tag))
		require.True(t, ok, "tag %s should parse", tag)
		assert.Equal(t, tag, parsed)
	}

	_, ok := ParseCultureType("Results")
	assert.False(t, ok, "tags are case sensitive")
}

func TestResultsGetSetAllTags(t *testing.T) {
	var r CultureResults
	for i, tag := range CultureTypes {
		r.Set(tag, i+1)
	}
	for i, tag := range CultureTypes {
		assert.Equal(t, i+1, r.Get(tag))
	}
}
