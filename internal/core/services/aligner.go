package services

import (
	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/logger"
)

// Aligner makes tables share one country index with data at the target year.
type Aligner struct{}

// NewAligner creates a new aligner.
func NewAligner() *Aligner {
	return &Aligner{}
}

// Align drops from every table the countries that are not in all tables,
// then the countries missing a value at year in any table. It returns the
// dropped countries, sorted.
func (a *Aligner) Align(year string, tables ...*domain.Table) ([]string, error) {
	if len(tables) == 0 {
		return nil, nil
	}

	common := tables[0].CountrySet()
	for _, t := range tables[1:] {
		for c := range common {
			if !t.HasCountry(c) {
				delete(common, c)
			}
		}
	}

	dropped := domain.NewCountrySet()
	for _, t := range tables {
		for _, c := range t.Countries() {
			if !common.Contains(c) {
				dropped.Add(c)
			}
		}
	}

	for _, t := range tables {
		missing, err := t.MissingAt(year)
		if err != nil {
			return nil, err
		}
		for _, c := range missing {
			logger.Debug("%s has no %s value for %s", t.Name, year, c)
			dropped.Add(c)
		}
	}

	for _, t := range tables {
		t.Drop(dropped)
	}

	return dropped.Sorted(), nil
}
