package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturelens/culturelens-backend/internal/model"
)

func TestFilterKeepsOnlyRecognizedTags(t *testing.T) {
	raw := map[string]any{
		"1": "caring",
		"2": "results",
		"3": "not-a-real-type",
		"4": "",
		"5": 42,   // coerced to "42", dropped
		"6": true, // coerced to "true", dropped
		"7": nil,
	}

	filtered := Filter(raw)

	require.Len(t, filtered, 2)
	assert.Equal(t, model.CultureCaring, filtered["1"])
	assert.Equal(t, model.CultureTagResults, filtered["2"])
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(map[string]any{}))
	assert.Empty(t, Filter(nil))
}

func TestFilterIsCaseSensitive(t *testing.T) {
	filtered := Filter(map[string]any{"1": "Caring", "2": "ORDER"})
	assert.Empty(t, filtered)
}

func TestComputeSingleResponse(t *testing.T) {
	results := Compute(map[string]model.CultureType{"1": model.CulturePurpose})

	assert.Equal(t, 100, results.Purpose)
	for _, tag := range model.CultureTypes {
		if tag == model.CulturePurpose {
			continue
		}
		assert.Zero(t, results.Get(tag), "expected 0%% for %s", tag)
	}
}

func TestComputeAllSameTag(t *testing.T) {
	responses := make(map[string]model.CultureType)
	for _, qid := range []string{"1", "2", "3", "4", "5"} {
		responses[qid] = model.CultureSafety
	}

	results := Compute(responses)

	assert.Equal(t, 100, results.Safety)
	assert.Equal(t, 0, results.Caring)
	assert.Equal(t, 0, results.Order)
}

// One response per tag: 1/8 = 12.5%, which rounds half-up to 13 for every
// type. The sum is 104; percentages are intentionally not renormalized.
func TestComputeOneOfEachRoundsHalfUp(t *testing.T) {
	responses := make(map[string]model.CultureType, len(model.CultureTypes))
	for i, tag := range model.CultureTypes {
		responses[string(rune('a'+i))] = tag
	}

	results := Compute(responses)

	sum := 0
	for _, tag := range model.CultureTypes {
		assert.Equal(t, 13, results.Get(tag))
		sum += results.Get(tag)
	}
	assert.Equal(t, 104, sum)
}

func TestComputeMatchesPerTagRounding(t *testing.T) {
	// 3 caring, 2 results, 1 order out of 6:
	// 50%, round(33.33)=33, round(16.67)=17.
	responses := map[string]model.CultureType{
		"1": model.CultureCaring,
		"2": model.CultureCaring,
		"3": model.CultureCaring,
		"4": model.CultureTagResults,
		"5": model.CultureTagResults,
		"6": model.CultureOrder,
	}

	results := Compute(responses)

	assert.Equal(t, 50, results.Caring)
	assert.Equal(t, 33, results.Results)
	assert.Equal(t, 17, results.Order)
	assert.Equal(t, 0, results.Purpose)
}

func TestComputePercentagesWithinBounds(t *testing.T) {
	responses := map[string]model.CultureType{
		"1": model.CultureLearning,
		"2": model.CultureEnjoyment,
		"3": model.CultureLearning,
	}

	results := Compute(responses)

	for _, tag := range model.CultureTypes {
		pct := results.Get(tag)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}
