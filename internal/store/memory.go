// Package store provides the in-memory assessment store. Questions are
// seeded once at construction; assessments accumulate for the process
// lifetime and are lost on restart, which is accepted for this service.
package store

import (
	"sync"
	"time"

	"github.com/culturelens/culturelens-backend/internal/model"
	"github.com/google/uuid"
)

// Store is the persistence contract the service layer depends on.
type Store interface {
	GetQuestions() []model.Question
	CreateAssessment(responses map[string]model.CultureType, results model.CultureResults) *model.Assessment
	GetAssessment(id string) (*model.Assessment, bool)
}

// MemoryStore keeps everything in process memory. Safe for concurrent use:
// the question catalog is read-only and assessment writes are mutex-guarded.
// Growth is unbounded; no eviction is performed.
type MemoryStore struct {
	mu          sync.RWMutex
	questions   []model.Question
	assessments map[string]*model.Assessment
}

// NewMemoryStore seeds the store with the given question catalog.
func NewMemoryStore(questions []model.Question) *MemoryStore {
	return &MemoryStore{
		questions:   questions,
		assessments: make(map[string]*model.Assessment),
	}
}

// GetQuestions returns the seeded catalog in catalog order.
func (s *MemoryStore) GetQuestions() []model.Question {
	return s.questions
}

// CreateAssessment generates a fresh UUID, stamps the completion time, and
// stores the record. Each concurrent call produces a distinct id; records
// are never mutated after insertion.
func (s *MemoryStore) CreateAssessment(responses map[string]model.CultureType, results model.CultureResults) *model.Assessment {
	a := &model.Assessment{
		ID:          uuid.New().String(),
		Responses:   responses,
		Results:     results,
		CompletedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.assessments[a.ID] = a
	s.mu.Unlock()

	return a
}

// GetAssessment looks up a stored record by exact id. The second return
// value reports whether the record exists.
func (s *MemoryStore) GetAssessment(id string) (*model.Assessment, bool) {
	s.mu.RLock()
	a, ok := s.assessments[id]
	s.mu.RUnlock()
	return a, ok
}
