package transforms

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure Interpolate implements the interface.
var _ driven.TableTransform = (*Interpolate)(nil)

// Interpolate fills gaps along the year axis of every row.
type Interpolate struct{}

// NewInterpolate creates an interpolation transform.
func NewInterpolate() *Interpolate {
	return &Interpolate{}
}

// Name returns the transform name.
func (t *Interpolate) Name() string {
	return "interpolate"
}

// Apply interpolates the table in place.
func (t *Interpolate) Apply(_ context.Context, table *domain.Table) error {
	table.Interpolate()
	return nil
}
