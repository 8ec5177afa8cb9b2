package decoders

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.DecoderRegistry = (*Registry)(nil)

// Registry maps source formats to decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[domain.SourceFormat]driven.Decoder
}

// NewRegistry creates a registry holding the given decoders.
func NewRegistry(decoders ...driven.Decoder) *Registry {
	r := &Registry{decoders: make(map[domain.SourceFormat]driven.Decoder)}
	for _, d := range decoders {
		r.Register(d)
	}
	return r
}

// Register adds a decoder, replacing any decoder for the same format.
func (r *Registry) Register(decoder driven.Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[decoder.Format()] = decoder
}

// Formats returns the registered formats, sorted.
func (r *Registry) Formats() []domain.SourceFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]domain.SourceFormat, 0, len(r.decoders))
	for f := range r.decoders {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Decode parses raw with the decoder registered for the source format.
func (r *Registry) Decode(
	ctx context.Context, raw *domain.RawDataset, source domain.SourceSettings,
) (*domain.Records, error) {
	r.mu.RLock()
	decoder, ok := r.decoders[source.Format]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no decoder for format %q (registered: %v)",
			domain.ErrUnsupportedType, source.Format, r.Formats())
	}

	records, err := decoder.Decode(ctx, raw, source)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source.Name, err)
	}
	return records, nil
}
