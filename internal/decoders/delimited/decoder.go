// Package delimited decodes delimiter-separated text with a header row.
package delimited

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultDelimiter is used when a source does not configure one.
const DefaultDelimiter = ','

// Decoder reads delimited text into Records. Every cell is kept as a
// string; numbers are parsed later with the source's decimal separator.
type Decoder struct{}

// New creates a delimited-text decoder.
func New() *Decoder {
	return &Decoder{}
}

// Format returns the format this decoder handles.
func (d *Decoder) Format() domain.SourceFormat {
	return domain.SourceFormatDelimited
}

// Decode parses raw content. The first line is the header.
func (d *Decoder) Decode(
	_ context.Context, raw *domain.RawDataset, source domain.SourceSettings,
) (*domain.Records, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := bytes.TrimPrefix(raw.Content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidInput, raw.URI)
	}

	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.WithDelimiter(delimiter(source.Delimiter)),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, raw.URI, df.Err)
	}

	rows := df.Records()
	records := domain.NewRecords(rows[0]...)
	for _, row := range rows[1:] {
		if err := records.Append(row...); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func delimiter(s string) rune {
	if s == "" {
		return DefaultDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
