package services

import (
	"fmt"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// ScoreDecimals is the precision of reported scores.
const ScoreDecimals = 2

// Reporter combines aligned tables into ranked scores.
type Reporter struct{}

// NewReporter creates a new reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Score multiplies the tables' values at year per country, rounds them and
// sorts them highest first. Tables must already be aligned.
func (r *Reporter) Score(year string, tables ...*domain.Table) ([]domain.Score, error) {
	if len(tables) == 0 {
		return nil, nil
	}

	countries := tables[0].Countries()
	scores := make([]domain.Score, 0, len(countries))
	for _, c := range countries {
		product := 1.0
		for _, t := range tables {
			v, ok := t.Value(c, year)
			if !ok {
				return nil, fmt.Errorf("%w: %s has no value for %s in %s", domain.ErrYearNotFound, t.Name, c, year)
			}
			product *= v
		}
		scores = append(scores, domain.Score{Country: c, Value: domain.RoundTo(product, ScoreDecimals)})
	}

	domain.SortScores(scores)
	return scores, nil
}
