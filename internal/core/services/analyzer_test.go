package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

func TestAnalyzerService_EndToEnd(t *testing.T) {
	h := newHarness()

	ranking, err := h.analyzer.Analyze(context.Background(), "2019")
	require.NoError(t, err)

	_, err = uuid.Parse(ranking.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "2019", ranking.Year)
	assert.Equal(t, []string{"Borduria"}, ranking.Excluded)
	assert.Empty(t, ranking.Dropped)

	// Aland: 2.0 * 20 * 3 (2019 halfway between 2017 and 2020 by position).
	// Carpania: 3.5 (interpolated) * 6 (interpolated) * 1 (forward filled).
	require.Len(t, ranking.Scores, 2)
	assert.Equal(t, "Aland", ranking.Scores[0].Country)
	assert.InDelta(t, 120.0, ranking.Scores[0].Value, 1e-9)
	assert.Equal(t, "Carpania", ranking.Scores[1].Country)
	assert.InDelta(t, 21.0, ranking.Scores[1].Value, 1e-9)

	assert.Equal(t, []string{"first", "second", "third"}, h.fetcher.calls)

	excluded, err := h.exclusions.List(context.Background(), ranking.RunID)
	require.NoError(t, err)
	require.Len(t, excluded, 1)
	assert.Equal(t, "first", excluded[0].Source)
}

func TestAnalyzerService_ExclusionsDoNotCarryOver(t *testing.T) {
	h := newHarness()

	first, err := h.analyzer.Analyze(context.Background(), "2019")
	require.NoError(t, err)
	assert.Equal(t, []string{"Borduria"}, first.Excluded)

	_ = h.config.Set("keyword", "nomatchanywhere")

	second, err := h.analyzer.Analyze(context.Background(), "2019")
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Empty(t, second.Excluded)

	// Borduria is back in play and scores in the second run.
	countries := make([]string, len(second.Scores))
	for i, s := range second.Scores {
		countries[i] = s.Country
	}
	assert.Contains(t, countries, "Borduria")
}

func TestAnalyzerService_RoundsScores(t *testing.T) {
	h := newHarness()
	h.fetcher.content[domain.SourceFirst] = "Country|2019\nAland|0,333\nCarpania|1,005\n"

	ranking, err := h.analyzer.Analyze(context.Background(), "2019")
	require.NoError(t, err)

	require.Len(t, ranking.Scores, 2)
	// 0.333 * 20 * 3 = 19.98; 1.005 * 6 * 1 = 6.03
	assert.Equal(t, "Aland", ranking.Scores[0].Country)
	assert.InDelta(t, 19.98, ranking.Scores[0].Value, 1e-9)
	assert.InDelta(t, 6.03, ranking.Scores[1].Value, 1e-9)
}

func TestAnalyzerService_DropsCountriesWithoutData(t *testing.T) {
	h := newHarness()
	h.fetcher.content[domain.SourceFirst] = "Country|2019|2020\n" +
		"Aland|2|2\n" +
		"Carpania|NA|3\n" +
		"Dunland|1|1\n"

	ranking, err := h.analyzer.Analyze(context.Background(), "2019")
	require.NoError(t, err)

	// Carpania has no value at or before 2019; Dunland is only in the first source.
	assert.Equal(t, []string{"Carpania", "Dunland"}, ranking.Dropped)
	require.Len(t, ranking.Scores, 1)
	assert.Equal(t, "Aland", ranking.Scores[0].Country)
}

func TestAnalyzerService_ExistingYearIsNotDuplicated(t *testing.T) {
	h := newHarness()

	ranking, err := h.analyzer.Analyze(context.Background(), "2020")
	require.NoError(t, err)

	// Aland: 3 * 30 * 4; Carpania: 4.5 * 8 * 1.
	require.Len(t, ranking.Scores, 2)
	assert.InDelta(t, 360.0, ranking.Scores[0].Value, 1e-9)
	assert.InDelta(t, 36.0, ranking.Scores[1].Value, 1e-9)
}

func TestAnalyzerService_InvalidYear(t *testing.T) {
	h := newHarness()

	_, err := h.analyzer.Analyze(context.Background(), "twenty")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = h.analyzer.Analyze(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, h.fetcher.calls)
}

func TestAnalyzerService_YearNotInTable(t *testing.T) {
	h := newHarness()

	_, err := h.analyzer.Analyze(context.Background(), "2030")
	assert.ErrorIs(t, err, domain.ErrYearNotFound)
}

func TestAnalyzerService_InvalidSettings(t *testing.T) {
	h := newHarness()
	_ = h.config.Set("sources.second.format", "xml")

	_, err := h.analyzer.Analyze(context.Background(), "2019")
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.Empty(t, h.fetcher.calls)
}

func TestAnalyzerService_FetchError(t *testing.T) {
	h := newHarness()
	h.fetcher.err = domain.ErrFetchFailed

	_, err := h.analyzer.Analyze(context.Background(), "2019")
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "fetch first")
}

func TestAnalyzerService_DuplicateObservation(t *testing.T) {
	h := newHarness()
	h.fetcher.content[domain.SourceSecond] = `{
	  "id": ["geo", "time", "class"],
	  "size": [1, 1, 2],
	  "dimension": {
	    "geo": {"label": "Country name", "category": {"index": ["Aland"]}},
	    "time": {"label": "Time", "category": {"index": ["2019"]}},
	    "class": {"label": "Kind", "category": {"index": ["x", "y"]}}
	  },
	  "value": [1, 2]
	}`
	_ = h.config.Set("sources.second.match.Class", "")

	_, err := h.analyzer.Analyze(context.Background(), "2019")
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}
