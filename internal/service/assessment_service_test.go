package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturelens/culturelens-backend/internal/catalog"
	"github.com/culturelens/culturelens-backend/internal/metrics"
	"github.com/culturelens/culturelens-backend/internal/model"
	"github.com/culturelens/culturelens-backend/internal/store"
)

func newTestService() *AssessmentService {
	st := store.NewMemoryStore(catalog.Questions())
	return NewAssessmentService(st, metrics.New(), zerolog.Nop())
}

func TestCreateFiltersAndScores(t *testing.T) {
	svc := newTestService()

	raw := map[string]any{
		"1": "caring",
		"2": "caring",
		"3": "results",
		"4": "bogus-tag", // dropped silently
	}

	a, err := svc.Create(context.Background(), raw)
	require.NoError(t, err)

	assert.Len(t, a.Responses, 3, "unrecognized tags are dropped, not stored")
	assert.NotContains(t, a.Responses, "4")
	assert.Equal(t, 67, a.Results.Caring)
	assert.Equal(t, 33, a.Results.Results)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.CompletedAt.IsZero())
}

func TestCreateNothingValid(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), map[string]any{"1": "not-a-real-type"})
	assert.ErrorIs(t, err, ErrNoValidResponses)

	_, err = svc.Create(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, ErrNoValidResponses)
}

func TestGetRoundTrip(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), map[string]any{"7": "enjoyment"})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, 100, fetched.Results.Enjoyment)
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestQuestionsPassthrough(t *testing.T) {
	svc := newTestService()

	questions := svc.Questions(context.Background())
	require.Len(t, questions, 18)
	assert.Equal(t, "1", questions[0].ID)

	// The catalog includes a caring option for question 1 per reference data.
	var hasCaring bool
	for _, opt := range questions[0].Options {
		if opt.Value == model.CultureCaring {
			hasCaring = true
		}
	}
	assert.True(t, hasCaring)
}
