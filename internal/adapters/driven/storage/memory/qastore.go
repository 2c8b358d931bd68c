package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
)

// Ensure QAStore implements the interface.
var _ driven.QAStore = (*QAStore)(nil)

// QAStore is an in-memory implementation of driven.QAStore.
type QAStore struct {
	mu           sync.RWMutex
	interactions map[string][]domain.QAInteraction
}

// NewQAStore creates a new in-memory Q&A store.
func NewQAStore() *QAStore {
	return &QAStore{interactions: make(map[string][]domain.QAInteraction)}
}

// SaveInteraction stores a question/answer pair.
func (s *QAStore) SaveInteraction(_ context.Context, qa *domain.QAInteraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions[qa.DocumentID] = append(s.interactions[qa.DocumentID], *qa)
	return nil
}

// ListInteractions returns all interactions for a document, oldest first.
func (s *QAStore) ListInteractions(_ context.Context, documentID string) ([]domain.QAInteraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.interactions[documentID]
	if !ok {
		return nil, nil
	}
	result := make([]domain.QAInteraction, len(stored))
	copy(result, stored)
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

// DeleteInteractions removes all interactions for a document.
func (s *QAStore) DeleteInteractions(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.interactions, documentID)
	return nil
}
