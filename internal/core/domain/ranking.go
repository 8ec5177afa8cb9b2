package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Score is the composite value of one country.
type Score struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Ranking is the result of one analysis run.
type Ranking struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`

	// Year is the target year.
	Year string `json:"year"`

	// Scores are ordered by value, highest first.
	Scores []Score `json:"scores"`

	// Excluded lists the countries removed by the keyword scan.
	Excluded []string `json:"excluded"`

	// Dropped lists the countries removed during alignment.
	Dropped []string `json:"dropped"`
}

// SortScores orders scores by value descending, then by country ascending.
func SortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Country < scores[j].Country
	})
}

// RoundTo rounds v to the given number of decimals, halves to even.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

// ParseYear checks that a year is given and is an integer.
func ParseYear(year string) (int, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return 0, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not an integer", ErrInvalidInput, year)
	}
	return n, nil
}
