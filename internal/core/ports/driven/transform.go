package driven

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// TableTransform is one step applied to a wide table.
// Transforms are chained in a pipeline (e.g., insert year, interpolate).
type TableTransform interface {
	// Name returns the transform name for logging.
	Name() string

	// Apply modifies the table in place.
	Apply(ctx context.Context, table *domain.Table) error
}

// TransformPipeline chains multiple TableTransforms.
type TransformPipeline interface {
	// Apply runs the table through all transforms in order.
	Apply(ctx context.Context, table *domain.Table) error
}
