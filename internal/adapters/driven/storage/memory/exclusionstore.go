package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure ExclusionStore implements the interface.
var _ driven.ExclusionStore = (*ExclusionStore)(nil)

// ExclusionStore is an in-memory implementation of driven.ExclusionStore.
// Exclusions are keyed by ID; several exclusions may name the same country.
type ExclusionStore struct {
	mu         sync.RWMutex
	exclusions map[string]domain.Exclusion
}

// NewExclusionStore creates a new in-memory exclusion store.
func NewExclusionStore() *ExclusionStore {
	return &ExclusionStore{
		exclusions: make(map[string]domain.Exclusion),
	}
}

// Add records a new exclusion.
func (s *ExclusionStore) Add(_ context.Context, exclusion *domain.Exclusion) error {
	if exclusion == nil || exclusion.ID == "" || exclusion.RunID == "" || exclusion.Country == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.exclusions[exclusion.ID]; ok {
		return domain.ErrDuplicateEntry
	}
	s.exclusions[exclusion.ID] = *exclusion
	return nil
}

// List returns the exclusions of runID ordered by country, then ID.
func (s *ExclusionStore) List(_ context.Context, runID string) ([]domain.Exclusion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Exclusion, 0)
	for _, exclusion := range s.exclusions {
		if exclusion.RunID == runID {
			result = append(result, exclusion)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Country != result[j].Country {
			return result[i].Country < result[j].Country
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
