// Package frames implements tabular operations on Records with gota dataframes.
package frames

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Ensure Frames implements the interface.
var _ driven.Frames = (*Frames)(nil)

// Frames converts Records to gota dataframes for row selection and column
// drops, and builds wide Tables from them.
type Frames struct{}

// New creates a Frames adapter.
func New() *Frames {
	return &Frames{}
}

// MatchKeyword returns the keyColumn values of rows where any cell contains
// keyword, case-insensitively. Values are returned once, in row order.
func (f *Frames) MatchKeyword(records *domain.Records, keyColumn, keyword string) ([]string, error) {
	if records == nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := records.ColumnIndex(keyColumn); err != nil {
		return nil, err
	}
	keyword = strings.ToLower(keyword)
	if keyword == "" || records.Len() == 0 {
		return nil, nil
	}

	contains := func(el series.Element) bool {
		return !el.IsNA() && strings.Contains(strings.ToLower(el.String()), keyword)
	}

	// Filter ORs its arguments, so one filter per column matches any cell.
	filters := make([]dataframe.F, len(records.Columns))
	for i, col := range records.Columns {
		filters[i] = dataframe.F{Colname: col, Comparator: series.CompFunc, Comparando: contains}
	}

	df, err := load(records)
	if err != nil {
		return nil, err
	}
	matched := df.Filter(filters...)
	if matched.Err != nil {
		return nil, fmt.Errorf("keyword filter: %w", matched.Err)
	}
	if matched.Nrow() == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, v := range matched.Col(keyColumn).Records() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// Filter returns the rows that satisfy every condition of filter.
func (f *Frames) Filter(records *domain.Records, filter driven.RowFilter) (*domain.Records, error) {
	if records == nil {
		return nil, domain.ErrInvalidInput
	}

	keys := make([]string, 0, len(filter.Match))
	for k := range filter.Match {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := records.ColumnIndex(k); err != nil {
			return nil, err
		}
	}
	if filter.Allow != nil || len(filter.Deny) > 0 {
		if _, err := records.ColumnIndex(filter.Column); err != nil {
			return nil, err
		}
	}
	if records.Len() == 0 {
		return domain.NewRecords(records.Columns...), nil
	}

	df, err := load(records)
	if err != nil {
		return nil, err
	}

	var steps []dataframe.F
	for _, k := range keys {
		steps = append(steps, dataframe.F{Colname: k, Comparator: series.Eq, Comparando: filter.Match[k]})
	}
	if filter.Allow != nil {
		allow := filter.Allow
		steps = append(steps, dataframe.F{
			Colname:    filter.Column,
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool { return allow.Contains(el.String()) },
		})
	}
	if len(filter.Deny) > 0 {
		deny := filter.Deny
		steps = append(steps, dataframe.F{
			Colname:    filter.Column,
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool { return !deny.Contains(el.String()) },
		})
	}

	// Chained filters AND the conditions.
	for _, step := range steps {
		df = df.Filter(step)
		if df.Err != nil {
			return nil, fmt.Errorf("filter %s: %w", step.Colname, df.Err)
		}
		if df.Nrow() == 0 {
			return domain.NewRecords(records.Columns...), nil
		}
	}
	return fromFrame(df)
}

// DropColumns removes the named columns. Unknown names are ignored.
func (f *Frames) DropColumns(records *domain.Records, columns []string) (*domain.Records, error) {
	if records == nil {
		return nil, domain.ErrInvalidInput
	}

	var present []string
	for _, c := range columns {
		if _, err := records.ColumnIndex(c); err == nil {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return copyRecords(records), nil
	}
	if records.Len() == 0 {
		return domain.NewRecords(without(records.Columns, present)...), nil
	}

	df, err := load(records)
	if err != nil {
		return nil, err
	}
	df = df.Drop(present)
	if df.Err != nil {
		return nil, fmt.Errorf("drop columns: %w", df.Err)
	}
	return fromFrame(df)
}

// load converts Records to a dataframe with every column typed as string.
func load(records *domain.Records) (dataframe.DataFrame, error) {
	rows := make([][]string, 0, records.Len()+1)
	rows = append(rows, records.Columns)
	rows = append(rows, records.Rows...)

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("%w: %v", domain.ErrInvalidInput, df.Err)
	}
	return df, nil
}

func fromFrame(df dataframe.DataFrame) (*domain.Records, error) {
	all := df.Records()
	out := domain.NewRecords(all[0]...)
	for _, row := range all[1:] {
		if err := out.Append(row...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func copyRecords(r *domain.Records) *domain.Records {
	out := domain.NewRecords(r.Columns...)
	for _, row := range r.Rows {
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out
}

func without(columns, drop []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !containsString(drop, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
