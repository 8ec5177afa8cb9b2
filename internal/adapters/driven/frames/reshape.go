package frames

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
)

// Pivot reshapes long records into a wide Table. Year columns are sorted
// numerically when every label is an integer, lexicographically otherwise.
// Countries are sorted.
func (f *Frames) Pivot(records *domain.Records, spec driven.PivotSpec) (*domain.Table, error) {
	if records == nil {
		return nil, domain.ErrInvalidInput
	}
	index, err := records.Column(spec.Index)
	if err != nil {
		return nil, err
	}
	columns, err := records.Column(spec.Columns)
	if err != nil {
		return nil, err
	}
	values, err := records.Column(spec.Values)
	if err != nil {
		return nil, err
	}

	years := sortLabels(distinct(columns))
	countries := distinct(index)
	sort.Strings(countries)

	pos := make(map[string]int, len(years))
	for i, y := range years {
		pos[y] = i
	}
	cells := make(map[string][]float64, len(countries))
	filled := make(map[string][]bool, len(countries))
	for _, c := range countries {
		cells[c] = nanRow(len(years))
		filled[c] = make([]bool, len(years))
	}

	for i := range index {
		c, y := index[i], columns[i]
		j := pos[y]
		if filled[c][j] {
			return nil, fmt.Errorf("%w: %s has two values for (%s, %s)", domain.ErrDuplicateEntry, spec.Name, c, y)
		}
		filled[c][j] = true

		v, err := parseNumber(values[i], spec.Decimal)
		if err != nil {
			return nil, fmt.Errorf("%s (%s, %s): %w", spec.Name, c, y, err)
		}
		cells[c][j] = v
	}

	table := domain.NewTable(spec.Name, spec.Index, years)
	for _, c := range countries {
		if err := table.AddRow(c, cells[c]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// IndexBy builds a Table from wide records. Columns whose header is an
// integer become year columns in their original order; other columns are
// ignored. Rows keep their order.
func (f *Frames) IndexBy(records *domain.Records, name, index, decimal string) (*domain.Table, error) {
	if records == nil {
		return nil, domain.ErrInvalidInput
	}
	key, err := records.ColumnIndex(index)
	if err != nil {
		return nil, err
	}

	var years []string
	var positions []int
	for i, col := range records.Columns {
		label := strings.TrimSpace(col)
		if _, err := strconv.Atoi(label); err == nil && i != key {
			years = append(years, label)
			positions = append(positions, i)
		}
	}

	table := domain.NewTable(name, index, years)
	for _, row := range records.Rows {
		vals := make([]float64, len(positions))
		for j, p := range positions {
			v, err := parseNumber(row[p], decimal)
			if err != nil {
				return nil, fmt.Errorf("%s (%s, %s): %w", name, row[key], years[j], err)
			}
			vals[j] = v
		}
		if err := table.AddRow(row[key], vals); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// parseNumber parses a cell using the given decimal separator.
// Missing cells yield NaN.
func parseNumber(cell, decimal string) (float64, error) {
	if domain.IsMissingCell(cell) {
		return math.NaN(), nil
	}
	s := strings.TrimSpace(cell)
	if decimal != "" && decimal != "." {
		s = strings.Replace(s, decimal, ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, cell)
	}
	return v, nil
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// sortLabels sorts numerically when every label is an integer.
func sortLabels(labels []string) []string {
	nums := make([]int, len(labels))
	numeric := true
	for i, l := range labels {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			numeric = false
			break
		}
		nums[i] = n
	}

	if !numeric {
		sort.Strings(labels)
		return labels
	}
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })
	out := make([]string, len(labels))
	for i, j := range idx {
		out[i] = labels[j]
	}
	return out
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}
	return row
}
