package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/culturelens/culturelens-backend/internal/metrics"
	"github.com/culturelens/culturelens-backend/internal/model"
	"github.com/culturelens/culturelens-backend/internal/scoring"
	"github.com/culturelens/culturelens-backend/internal/store"
)

// ErrNoValidResponses is returned when a submission contains no entry that
// maps to a recognized culture type after filtering.
var ErrNoValidResponses = errors.New("no valid responses provided")

// ErrAssessmentNotFound is returned for lookups of unknown assessment ids.
var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentService composes the scoring engine and the assessment store.
type AssessmentService struct {
	store   store.Store
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewAssessmentService(st store.Store, m *metrics.Metrics, log zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		store:   st,
		metrics: m,
		log:     log.With().Str("component", "assessment_service").Logger(),
	}
}

// Questions returns the fixed catalog in display order.
func (s *AssessmentService) Questions(ctx context.Context) []model.Question {
	return s.store.GetQuestions()
}

// Create filters the raw responses, scores them, and stores the resulting
// assessment. Unrecognized tags are dropped silently; if nothing valid
// remains the submission is rejected with ErrNoValidResponses.
func (s *AssessmentService) Create(ctx context.Context, raw map[string]any) (*model.Assessment, error) {
	filtered := scoring.Filter(raw)
	if len(filtered) == 0 {
		return nil, ErrNoValidResponses
	}

	results := scoring.Compute(filtered)
	assessment := s.store.CreateAssessment(filtered, results)

	s.metrics.AssessmentsCreated.Inc()
	s.log.Info().
		Str("assessment_id", assessment.ID).
		Int("responses", len(filtered)).
		Int("dropped", len(raw)-len(filtered)).
		Msg("Assessment created")

	return assessment, nil
}

// Get fetches a stored assessment by id.
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	assessment, ok := s.store.GetAssessment(id)
	if !ok {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}
