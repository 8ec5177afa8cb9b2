package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/core/ports/driving"
	"github.com/custodia-labs/triscore/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService runs the load, clean, align and report stages in order.
// Tables are passed from stage to stage; nothing is kept between runs
// except the exclusions recorded in the store.
type AnalyzerService struct {
	settings driving.SettingsService
	loader   *Loader
	cleaner  *Cleaner
	aligner  *Aligner
	reporter *Reporter
}

// NewAnalyzerService creates a new analyzer service.
func NewAnalyzerService(
	settings driving.SettingsService,
	fetcher driven.Fetcher,
	decoders driven.DecoderRegistry,
	frames driven.Frames,
	exclusions driven.ExclusionStore,
) *AnalyzerService {
	return &AnalyzerService{
		settings: settings,
		loader:   NewLoader(fetcher, decoders),
		cleaner:  NewCleaner(frames, exclusions),
		aligner:  NewAligner(),
		reporter: NewReporter(),
	}
}

// Analyze computes the composite ranking for year.
func (s *AnalyzerService) Analyze(ctx context.Context, year string) (*domain.Ranking, error) {
	n, err := domain.ParseYear(year)
	if err != nil {
		return nil, err
	}
	year = strconv.Itoa(n)

	if err := s.settings.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	runID := uuid.New().String()
	logger.Info("Run %s for year %s", runID, year)

	// 1. Load every source before doing any work on them
	done := logger.Stage("Load")
	sources := settings.Sources()
	records := make([]*domain.Records, len(sources))
	for i, source := range sources {
		records[i], err = s.loader.Load(ctx, source)
		if err != nil {
			return nil, err
		}
	}
	done()

	// 2. Keyword exclusion, taken from the first source only
	done = logger.Stage("Clean")
	excluded, err := s.cleaner.Exclude(ctx, runID, records[0], settings.First, settings.Keyword)
	if err != nil {
		return nil, err
	}
	logger.Debug("%d countries excluded", len(excluded))

	tables := make([]*domain.Table, len(sources))
	tables[0], err = s.cleaner.Clean(ctx, records[0], settings.First, Scope{Excluded: excluded}, year)
	if err != nil {
		return nil, err
	}

	// 3. The other sources keep only the first source's countries
	scope := Scope{Excluded: excluded, Allowed: tables[0].CountrySet()}
	for i := 1; i < len(sources); i++ {
		tables[i], err = s.cleaner.Clean(ctx, records[i], sources[i], scope, year)
		if err != nil {
			return nil, err
		}
	}
	done()

	// 4. Align on countries with data for the year
	done = logger.Stage("Align")
	dropped, err := s.aligner.Align(year, tables...)
	if err != nil {
		return nil, err
	}
	logger.Debug("%d countries dropped, %d remain", len(dropped), tables[0].Len())
	done()

	// 5. Score
	done = logger.Stage("Report")
	scores, err := s.reporter.Score(year, tables...)
	if err != nil {
		return nil, err
	}
	done()

	return &domain.Ranking{
		RunID:    runID,
		Year:     year,
		Scores:   scores,
		Excluded: excluded.Sorted(),
		Dropped:  dropped,
	}, nil
}
