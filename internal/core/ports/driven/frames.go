package driven

import "github.com/custodia-labs/triscore/internal/core/domain"

// RowFilter selects rows of a Records table.
// All conditions must hold for a row to be kept.
type RowFilter struct {
	// Match keeps rows whose column equals the value, per entry.
	Match map[string]string

	// Column is the column checked against Allow and Deny.
	Column string

	// Allow keeps only rows whose Column value is in the set. Nil disables the check.
	Allow domain.CountrySet

	// Deny removes rows whose Column value is in the set.
	Deny domain.CountrySet
}

// PivotSpec describes a long-to-wide reshape.
type PivotSpec struct {
	// Name is given to the resulting table.
	Name string

	// Index is the column whose values become rows.
	Index string

	// Columns is the column whose values become year columns.
	Columns string

	// Values is the column holding the observations.
	Values string

	// Decimal is the decimal separator of the observations.
	Decimal string
}

// Frames performs tabular operations on Records.
type Frames interface {
	// MatchKeyword returns the rows (as values of keyColumn) where any cell
	// contains keyword, compared case-insensitively.
	MatchKeyword(records *domain.Records, keyColumn, keyword string) ([]string, error)

	// Filter returns the rows satisfying the filter.
	Filter(records *domain.Records, filter RowFilter) (*domain.Records, error)

	// DropColumns removes columns. Columns that do not exist are ignored.
	DropColumns(records *domain.Records, columns []string) (*domain.Records, error)

	// Pivot reshapes a long table to a wide table: one row per index value,
	// one column per distinct Columns value. Rows and columns are sorted.
	Pivot(records *domain.Records, spec PivotSpec) (*domain.Table, error)

	// IndexBy turns an already-wide table into a Table keyed by the index
	// column. Columns whose header is an integer become year columns; the
	// rest are ignored.
	IndexBy(records *domain.Records, name, index, decimal string) (*domain.Table, error)
}
