package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/logger"
	"github.com/custodia-labs/triscore/internal/transforms"
)

// Scope restricts which countries a source keeps.
type Scope struct {
	// Excluded countries are removed.
	Excluded domain.CountrySet

	// Allowed countries are the only ones kept. Nil keeps every country.
	Allowed domain.CountrySet
}

// Cleaner turns decoded Records into interpolated wide tables.
type Cleaner struct {
	frames     driven.Frames
	exclusions driven.ExclusionStore
}

// NewCleaner creates a new cleaner.
func NewCleaner(frames driven.Frames, exclusions driven.ExclusionStore) *Cleaner {
	return &Cleaner{
		frames:     frames,
		exclusions: exclusions,
	}
}

// Exclude records every country whose row contains keyword under runID and
// returns the countries excluded by that run.
func (c *Cleaner) Exclude(
	ctx context.Context, runID string, records *domain.Records, source domain.SourceSettings, keyword string,
) (domain.CountrySet, error) {
	countries, err := c.frames.MatchKeyword(records, source.CountryColumn, keyword)
	if err != nil {
		return nil, fmt.Errorf("keyword scan of %s: %w", source.Name, err)
	}

	now := time.Now()
	for _, country := range countries {
		exclusion := &domain.Exclusion{
			ID:         uuid.New().String(),
			RunID:      runID,
			Country:    country,
			Source:     source.Name,
			Reason:     fmt.Sprintf("row contains %q", keyword),
			ExcludedAt: now,
		}
		if err := c.exclusions.Add(ctx, exclusion); err != nil {
			return nil, fmt.Errorf("record exclusion of %s: %w", country, err)
		}
		logger.Debug("excluding %s (%s)", country, exclusion.Reason)
	}

	exclusions, err := c.exclusions.List(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("list exclusions: %w", err)
	}
	return domain.ExcludedCountries(exclusions), nil
}

// Clean filters, reshapes and fills one source. Long sources are pivoted;
// wide sources are indexed by their country column.
func (c *Cleaner) Clean(
	ctx context.Context, records *domain.Records, source domain.SourceSettings, scope Scope, year string,
) (*domain.Table, error) {
	filtered, err := c.frames.Filter(records, driven.RowFilter{
		Match:  source.Match,
		Column: source.CountryColumn,
		Allow:  scope.Allowed,
		Deny:   scope.Excluded,
	})
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", source.Name, err)
	}
	logger.Debug("%s: %d of %d rows kept", source.Name, filtered.Len(), records.Len())

	var table *domain.Table
	if source.IsLong() {
		table, err = c.pivot(filtered, source)
	} else {
		table, err = c.frames.IndexBy(filtered, source.Name, source.CountryColumn, source.Decimal)
	}
	if err != nil {
		return nil, fmt.Errorf("reshape %s: %w", source.Name, err)
	}

	pipeline := transforms.ForSource(source, year)
	logger.Debug("%s: transforms %s", source.Name, strings.Join(pipeline.Names(), ", "))
	if err := pipeline.Apply(ctx, table); err != nil {
		return nil, fmt.Errorf("clean %s: %w", source.Name, err)
	}

	logger.Debug("%s: %d countries x %d years", source.Name, table.Len(), len(table.Years()))
	return table, nil
}

func (c *Cleaner) pivot(records *domain.Records, source domain.SourceSettings) (*domain.Table, error) {
	trimmed, err := c.frames.DropColumns(records, source.DropColumns)
	if err != nil {
		return nil, err
	}
	return c.frames.Pivot(trimmed, driven.PivotSpec{
		Name:    source.Name,
		Index:   source.CountryColumn,
		Columns: source.TimeColumn,
		Values:  source.ValueColumn,
		Decimal: source.Decimal,
	})
}
