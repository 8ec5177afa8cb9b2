// Package transforms provides the table-level steps applied to each source
// after it is reshaped: inserting the target year column and interpolating.
package transforms

import (
	"context"
	"fmt"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TransformPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TableTransforms and runs them in order.
type Pipeline struct {
	transforms []driven.TableTransform
}

// NewPipeline creates a pipeline with the given transforms.
// Transforms are executed in the order provided.
func NewPipeline(transforms ...driven.TableTransform) *Pipeline {
	return &Pipeline{
		transforms: transforms,
	}
}

// Apply runs the table through all transforms in order.
func (p *Pipeline) Apply(ctx context.Context, table *domain.Table) error {
	if table == nil {
		return fmt.Errorf("table is nil")
	}

	for _, transform := range p.transforms {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := transform.Apply(ctx, table); err != nil {
			return fmt.Errorf("transform %s: %w", transform.Name(), err)
		}
	}

	return nil
}

// Add appends a transform to the pipeline.
func (p *Pipeline) Add(transform driven.TableTransform) {
	p.transforms = append(p.transforms, transform)
}

// Names returns the transform names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name()
	}
	return names
}

// ForSource builds the pipeline for a source: an insert-year step when the
// source asks for one, then interpolation.
func ForSource(source domain.SourceSettings, year string) *Pipeline {
	p := NewPipeline()
	if source.InsertYear {
		p.Add(NewInsertYear(year))
	}
	p.Add(NewInterpolate())
	return p
}
