package driving

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// Analyzer runs the load, clean, align and report pipeline.
type Analyzer interface {
	// Analyze computes the composite ranking for the target year.
	Analyze(ctx context.Context, year string) (*domain.Ranking, error)
}
