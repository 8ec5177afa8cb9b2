package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/logger"
)

// Loader fetches a source and decodes it into Records.
type Loader struct {
	fetcher  driven.Fetcher
	decoders driven.DecoderRegistry
}

// NewLoader creates a new loader.
func NewLoader(fetcher driven.Fetcher, decoders driven.DecoderRegistry) *Loader {
	return &Loader{
		fetcher:  fetcher,
		decoders: decoders,
	}
}

// Load fetches and decodes one source. Errors are returned unretried.
func (l *Loader) Load(ctx context.Context, source domain.SourceSettings) (*domain.Records, error) {
	raw, err := l.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w%s", source.Name, err, fetchHint(source, err))
	}

	records, err := l.decoders.Decode(ctx, raw, source)
	if err != nil {
		return nil, err
	}

	logger.Debug("%s: %d rows, %d columns", source.Name, records.Len(), len(records.Columns))
	return records, nil
}

// fetchHint suggests a fix for failures the user can act on.
func fetchHint(source domain.SourceSettings, err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf(" (check sources.%s.url)", source.Name)
	case errors.Is(err, domain.ErrRateLimited):
		return " (lower http.rate and try again later)"
	default:
		return ""
	}
}
