package model

import "time"

// Assessment is a completed quiz submission. Created once at submit time and
// immutable afterwards; it lives only in process memory.
type Assessment struct {
	ID          string                 `json:"id"`
	Responses   map[string]CultureType `json:"responses"`
	Results     CultureResults         `json:"results"`
	CompletedAt time.Time              `json:"completedAt"`
}

// CreateAssessmentRequest is the submit payload. Responses is deliberately
// loose-typed: values are coerced to strings and filtered against the culture
// tag set by the scoring engine, so client payload shape variations do not
// fail the whole request. No required tag: an empty object must bind cleanly
// and be rejected later as "no valid responses", not as a missing field.
type CreateAssessmentRequest struct {
	Responses map[string]any `json:"responses"`
}
