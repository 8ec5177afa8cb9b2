package driven

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// ExclusionStore holds the countries excluded during a run.
// Excluded countries are removed from every source.
type ExclusionStore interface {
	// Add records a new exclusion.
	Add(ctx context.Context, exclusion *domain.Exclusion) error

	// List returns the exclusions recorded by a run, ordered by country.
	List(ctx context.Context, runID string) ([]domain.Exclusion, error)
}
