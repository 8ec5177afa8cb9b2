package driven

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// Fetcher downloads the bytes of a configured source.
// Implementations decide transport by URI scheme (http, https, file).
type Fetcher interface {
	// Fetch retrieves the source content.
	Fetch(ctx context.Context, source domain.SourceSettings) (*domain.RawDataset, error)
}
