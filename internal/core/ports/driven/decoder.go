package driven

import (
	"context"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// Decoder turns raw source bytes into long Records.
// Each decoder handles one source format.
type Decoder interface {
	// Format returns the source format this decoder handles.
	Format() domain.SourceFormat

	// Decode parses the raw dataset using the source's settings.
	Decode(ctx context.Context, raw *domain.RawDataset, source domain.SourceSettings) (*domain.Records, error)
}

// DecoderRegistry selects the decoder for a source.
type DecoderRegistry interface {
	// Decode parses the raw dataset with the decoder registered for the source format.
	// Returns ErrUnsupportedType when no decoder handles the format.
	Decode(ctx context.Context, raw *domain.RawDataset, source domain.SourceSettings) (*domain.Records, error)

	// Register adds a decoder, replacing any decoder for the same format.
	Register(decoder Decoder)

	// Formats returns the registered formats.
	Formats() []domain.SourceFormat
}
