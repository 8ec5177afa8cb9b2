package domain

import (
	"fmt"
	"strings"
)

// RawDataset represents opaque bytes fetched from a source endpoint.
// It is the fetcher's output before decoding.
type RawDataset struct {
	// Source names the configured source (first, second, third).
	Source string

	// URI is the original location (URL or file path).
	URI string

	// MIMEType is the content type reported by the server, if any.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// Records is a long table of string cells as produced by a decoder.
// Every row has exactly len(Columns) cells.
type Records struct {
	// Columns holds the column names in order.
	Columns []string

	// Rows holds the cells, row by row.
	Rows [][]string
}

// NewRecords creates an empty table with the given columns.
func NewRecords(columns ...string) *Records {
	return &Records{Columns: append([]string(nil), columns...)}
}

// Append adds a row. The row must have one cell per column.
func (r *Records) Append(row ...string) error {
	if len(row) != len(r.Columns) {
		return fmt.Errorf("%w: row has %d cells, want %d", ErrInvalidInput, len(row), len(r.Columns))
	}
	r.Rows = append(r.Rows, append([]string(nil), row...))
	return nil
}

// Len returns the number of rows.
func (r *Records) Len() int {
	return len(r.Rows)
}

// ColumnIndex returns the position of a column, or an ErrColumnNotFound error.
func (r *Records) ColumnIndex(name string) (int, error) {
	for i, c := range r.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q (have %s)", ErrColumnNotFound, name, strings.Join(r.Columns, ", "))
}

// Column returns every cell of the named column.
func (r *Records) Column(name string) ([]string, error) {
	idx, err := r.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// IsMissingCell reports whether a cell holds no value.
func IsMissingCell(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "NaN", "nan", "<nil>":
		return true
	default:
		return false
	}
}
