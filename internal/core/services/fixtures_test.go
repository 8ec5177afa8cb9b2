package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/triscore/internal/adapters/driven/frames"
	"github.com/custodia-labs/triscore/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/triscore/internal/adapters/driven/validation"
	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/decoders"
)

// firstFixture is pipe-delimited with comma decimals. Borduria's note
// carries the keyword and Carpania has a gap in 2019.
const firstFixture = "Country|Note|2018|2019|2020\n" +
	"Aland|ok|1,0|2,0|3,0\n" +
	"Borduria|KEYWORD: provisional|5,0|5,0|5,0\n" +
	"Carpania||2,5|NA|4,5\n"

// secondFixture has two classes; only Total rows are kept.
const secondFixture = `{
  "version": "2.0",
  "class": "dataset",
  "id": ["freq", "geo", "class", "time"],
  "size": [1, 3, 2, 3],
  "dimension": {
    "freq": {"label": "Frequency", "category": {"index": ["A"], "label": {"A": "Annual"}}},
    "geo": {
      "label": "Country name",
      "category": {"index": ["AL", "BO", "CA"], "label": {"AL": "Aland", "BO": "Borduria", "CA": "Carpania"}}
    },
    "class": {"label": "Class", "category": {"index": ["T", "P"], "label": {"T": "Total", "P": "Partial"}}},
    "time": {"label": "Time", "category": {"index": ["2018", "2019", "2020"]}}
  },
  "value": [10, 20, 30, 99, 99, 99, 1, 1, 1, 9, 9, 9, 4, null, 8, 0, 0, 0]
}`

// thirdFixture lacks 2019, which is inserted and interpolated.
const thirdFixture = `{
  "version": "2.0",
  "class": "dataset",
  "id": ["geo", "time", "size"],
  "size": [3, 2, 1],
  "dimension": {
    "geo": {
      "label": "Country name",
      "category": {"index": {"AL": 0, "BO": 1, "CA": 2}, "label": {"AL": "Aland", "BO": "Borduria", "CA": "Carpania"}}
    },
    "time": {"label": "Time", "category": {"index": ["2017", "2020"]}},
    "size": {"label": "Size", "category": {"index": ["ALL"]}}
  },
  "value": [2, 4, 7, 7, 1, null]
}`

// fakeFetcher serves fixtures by source name.
type fakeFetcher struct {
	mu      sync.Mutex
	content map[string]string
	err     error
	calls   []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{content: map[string]string{
		domain.SourceFirst:  firstFixture,
		domain.SourceSecond: secondFixture,
		domain.SourceThird:  thirdFixture,
	}}
}

func (f *fakeFetcher) Fetch(_ context.Context, source domain.SourceSettings) (*domain.RawDataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, source.Name)
	if f.err != nil {
		return nil, f.err
	}
	content, ok := f.content[source.Name]
	if !ok {
		return nil, fmt.Errorf("%w: no fixture for %s", domain.ErrFetchFailed, source.Name)
	}
	return &domain.RawDataset{Source: source.Name, URI: source.URL, Content: []byte(content)}, nil
}

// testConfig returns a config store holding a complete, valid configuration.
func testConfig() *memory.ConfigStore {
	store := memory.NewConfigStore()
	_ = store.Set("keyword", "keyword")
	_ = store.Set("sources.first.url", "file:///fixtures/first.csv")
	_ = store.Set("sources.second.url", "file:///fixtures/second.json")
	_ = store.Set("sources.third.url", "file:///fixtures/third.json")
	return store
}

type harness struct {
	fetcher    *fakeFetcher
	exclusions *memory.ExclusionStore
	config     *memory.ConfigStore
	analyzer   *AnalyzerService
}

func newHarness() *harness {
	h := &harness{
		fetcher:    newFakeFetcher(),
		exclusions: memory.NewExclusionStore(),
		config:     testConfig(),
	}
	registry := decoders.NewRegistry()
	decoders.RegisterDefaults(registry)

	settings := NewSettingsService(h.config, validation.NewSettingsValidator())
	h.analyzer = NewAnalyzerService(settings, h.fetcher, registry, frames.New(), h.exclusions)
	return h
}
