// Package jsonstat decodes JSON-stat datasets into long Records.
//
// Each observation becomes one row. Columns are the dimension labels in
// dimension order followed by "value"; cells hold category labels.
package jsonstat

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// ValueColumn names the observation column.
const ValueColumn = "value"

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder reads JSON-stat 2.0 datasets and 1.x bundles.
type Decoder struct{}

// New creates a JSON-stat decoder.
func New() *Decoder {
	return &Decoder{}
}

// Format returns the format this decoder handles.
func (d *Decoder) Format() domain.SourceFormat {
	return domain.SourceFormatJSONStat
}

// Decode converts raw JSON-stat content into Records, one row per
// observation in row-major order.
func (d *Decoder) Decode(
	ctx context.Context, raw *domain.RawDataset, _ domain.SourceSettings,
) (*domain.Records, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	ds, err := parse(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	axes, err := ds.axes()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	total := 1
	for _, n := range ds.Size {
		total *= n
	}

	values, err := ds.values(total)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	columns := make([]string, 0, len(axes)+1)
	for _, a := range axes {
		columns = append(columns, a.name)
	}
	records := domain.NewRecords(append(columns, ValueColumn)...)

	pos := make([]int, len(axes))
	row := make([]string, len(axes)+1)
	for i := 0; i < total; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for d, a := range axes {
			row[d] = a.labels[pos[d]]
		}
		row[len(axes)] = formatValue(values[i])
		if err := records.Append(row...); err != nil {
			return nil, err
		}
		advance(pos, ds.Size)
	}

	return records, nil
}

// advance increments a row-major position; the last dimension varies fastest.
func advance(pos, size []int) {
	for d := len(pos) - 1; d >= 0; d-- {
		pos[d]++
		if pos[d] < size[d] {
			return
		}
		pos[d] = 0
	}
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
