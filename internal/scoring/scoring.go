// Package scoring converts a raw response map into a percentage breakdown
// across the eight culture types. Both stages are pure functions.
package scoring

import (
	"fmt"
	"math"

	"github.com/culturelens/culturelens-backend/internal/model"
)

// Filter coerces each raw response value to a string and keeps only entries
// whose value is a recognized culture type tag. Unrecognized values are
// silently dropped rather than failing the submission; client payload shapes
// vary and availability wins over strictness here. An empty result means the
// submission has nothing scoreable and must be rejected by the caller.
func Filter(raw map[string]any) map[string]model.CultureType {
	filtered := make(map[string]model.CultureType, len(raw))
	for qid, v := range raw {
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		if tag, ok := model.ParseCultureType(s); ok {
			filtered[qid] = tag
		}
	}
	return filtered
}

// Compute tallies tag frequency and converts counts to integer percentages.
// Rounding is math.Round, which rounds halves away from zero; for the
// non-negative ratios here that is round-half-up, so 12.5% becomes 13.
// Each percentage is rounded independently and the sum is deliberately not
// normalized to 100 (eight answers, one per tag, yields eight 13s).
//
// responses must be non-empty; Filter plus the validation layer guarantee
// that before Compute runs.
func Compute(responses map[string]model.CultureType) model.CultureResults {
	counts := make(map[model.CultureType]int, len(model.CultureTypes))
	for _, tag := range responses {
		counts[tag]++
	}

	total := len(responses)
	var results model.CultureResults
	for _, tag := range model.CultureTypes {
		pct := math.Round(float64(counts[tag]) / float64(total) * 100)
		results.Set(tag, int(pct))
	}
	return results
}
