package domain

import (
	"sort"
	"time"
)

// Exclusion represents a country that has been excluded from the analysis.
// A country is excluded when any cell of its row in the first source
// contains the configured keyword; the exclusion then applies to every source.
type Exclusion struct {
	// ID is the unique identifier for the exclusion.
	ID string

	// RunID identifies the analysis run that recorded the exclusion.
	RunID string

	// Country is the excluded country name.
	Country string

	// Source names the source whose row triggered the exclusion.
	Source string

	// Reason is an explanation for the exclusion.
	Reason string

	// ExcludedAt is when the exclusion was recorded.
	ExcludedAt time.Time
}

// CountrySet is a set of country names.
type CountrySet map[string]struct{}

// NewCountrySet creates a set holding the given countries.
func NewCountrySet(countries ...string) CountrySet {
	s := make(CountrySet, len(countries))
	for _, c := range countries {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a country into the set.
func (s CountrySet) Add(country string) {
	s[country] = struct{}{}
}

// Contains reports whether the country is in the set.
func (s CountrySet) Contains(country string) bool {
	_, ok := s[country]
	return ok
}

// Sorted returns the countries in ascending order.
func (s CountrySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ExcludedCountries collects the countries of a list of exclusions.
func ExcludedCountries(exclusions []Exclusion) CountrySet {
	s := make(CountrySet, len(exclusions))
	for i := range exclusions {
		s.Add(exclusions[i].Country)
	}
	return s
}
