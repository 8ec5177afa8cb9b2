package transforms

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/logger"
)

// Ensure InsertYear implements the interface.
var _ driven.TableTransform = (*InsertYear)(nil)

// InsertYear adds an empty column for a year at its sorted position.
// An existing column is reused.
type InsertYear struct {
	year string
}

// NewInsertYear creates a transform inserting year.
func NewInsertYear(year string) *InsertYear {
	return &InsertYear{year: year}
}

// Name returns the transform name.
func (t *InsertYear) Name() string {
	return "insert_year"
}

// Apply inserts the year column.
func (t *InsertYear) Apply(_ context.Context, table *domain.Table) error {
	pos, inserted, err := table.InsertYear(t.year)
	if err != nil {
		return err
	}
	if !inserted {
		logger.Warn("%s already has a %s column; using the existing values", table.Name, t.year)
		return nil
	}
	logger.Debug("%s: inserted column %s at position %d", table.Name, t.year, pos)
	return nil
}
