package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Table is a wide country x year table.
// Rows are keyed by country name and keep insertion order; columns are
// year labels in order. Missing values are NaN.
type Table struct {
	// Name identifies the source the table was built from.
	Name string

	// IndexName is the name of the country column in the source.
	IndexName string

	years     []string
	countries []string
	rows      map[string][]float64
}

// NewTable creates an empty table with the given year columns.
func NewTable(name, indexName string, years []string) *Table {
	return &Table{
		Name:      name,
		IndexName: indexName,
		years:     append([]string(nil), years...),
		rows:      make(map[string][]float64),
	}
}

// AddRow appends a country with one value per year column.
func (t *Table) AddRow(country string, values []float64) error {
	if len(values) != len(t.years) {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrInvalidInput, country, len(values), len(t.years))
	}
	if _, ok := t.rows[country]; ok {
		return fmt.Errorf("%w: country %q in %s", ErrDuplicateEntry, country, t.Name)
	}
	t.countries = append(t.countries, country)
	t.rows[country] = append([]float64(nil), values...)
	return nil
}

// Len returns the number of countries.
func (t *Table) Len() int {
	return len(t.countries)
}

// Years returns the year columns in order.
func (t *Table) Years() []string {
	return append([]string(nil), t.years...)
}

// Countries returns the countries in row order.
func (t *Table) Countries() []string {
	return append([]string(nil), t.countries...)
}

// CountrySet returns the countries as a set.
func (t *Table) CountrySet() CountrySet {
	return NewCountrySet(t.countries...)
}

// HasCountry reports whether the table has a row for the country.
func (t *Table) HasCountry(country string) bool {
	_, ok := t.rows[country]
	return ok
}

// YearIndex returns the position of a year column, or -1.
func (t *Table) YearIndex(year string) int {
	for i, y := range t.years {
		if y == year {
			return i
		}
	}
	return -1
}

// Value returns the value at (country, year). The boolean is false when
// either the country or the year is absent; a present cell may still be NaN.
func (t *Table) Value(country, year string) (float64, bool) {
	row, ok := t.rows[country]
	if !ok {
		return math.NaN(), false
	}
	idx := t.YearIndex(year)
	if idx < 0 {
		return math.NaN(), false
	}
	return row[idx], true
}

// InsertYear adds an empty column for year at the bisect-right position
// among the existing year columns, all of which must be integers.
//
// If the year is already a column nothing is inserted: the existing
// position is returned with inserted set to false.
func (t *Table) InsertYear(year string) (pos int, inserted bool, err error) {
	target, err := strconv.Atoi(year)
	if err != nil {
		return 0, false, fmt.Errorf("%w: year %q is not an integer", ErrInvalidInput, year)
	}

	numeric := make([]int, len(t.years))
	for i, y := range t.years {
		n, err := strconv.Atoi(y)
		if err != nil {
			return 0, false, fmt.Errorf("%w: column %q of %s is not an integer year", ErrInvalidInput, y, t.Name)
		}
		if n == target {
			return i, false, nil
		}
		numeric[i] = n
	}

	pos = sort.Search(len(numeric), func(i int) bool { return numeric[i] > target })

	t.years = insertAt(t.years, pos, year)
	for c, row := range t.rows {
		t.rows[c] = insertAt(row, pos, math.NaN())
	}
	return pos, true, nil
}

// Interpolate fills missing values of every row along the year axis.
// See InterpolateLinear.
func (t *Table) Interpolate() {
	for c, row := range t.rows {
		t.rows[c] = InterpolateLinear(row)
	}
}

// Drop removes the given countries and returns how many rows were removed.
func (t *Table) Drop(countries CountrySet) int {
	return t.filter(func(c string) bool { return !countries.Contains(c) })
}

func (t *Table) filter(keep func(string) bool) int {
	kept := t.countries[:0]
	removed := 0
	for _, c := range t.countries {
		if keep(c) {
			kept = append(kept, c)
			continue
		}
		delete(t.rows, c)
		removed++
	}
	t.countries = kept
	return removed
}

// MissingAt returns the countries whose value at year is NaN.
func (t *Table) MissingAt(year string) ([]string, error) {
	idx := t.YearIndex(year)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrYearNotFound, year, t.Name)
	}
	var missing []string
	for _, c := range t.countries {
		if math.IsNaN(t.rows[c][idx]) {
			missing = append(missing, c)
		}
	}
	return missing, nil
}

func insertAt[T any](s []T, pos int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:pos]...)
	out = append(out, v)
	return append(out, s[pos:]...)
}
