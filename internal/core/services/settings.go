package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyKeyword       = "keyword"
	keyHTTPTimeout   = "http.timeout"
	keyHTTPRate      = "http.rate"
	keyHTTPUserAgent = "http.user_agent"
	keySourcesPrefix = "sources."
)

// Per-source keys, below sources.<name>.
const (
	fieldURL           = "url"
	fieldFormat        = "format"
	fieldDelimiter     = "delimiter"
	fieldDecimal       = "decimal"
	fieldCountryColumn = "country_column"
	fieldTimeColumn    = "time_column"
	fieldValueColumn   = "value_column"
	fieldDropColumns   = "drop_columns"
	fieldMatch         = "match"
	fieldInsertYear    = "insert_year"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.SettingsValidator
}

// NewSettingsService creates a new settings service.
// The validator is optional; without it Validate always succeeds.
func NewSettingsService(configStore driven.ConfigStore, validator driven.SettingsValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validator:   validator,
	}
}

// Get retrieves the effective settings: stored values over defaults.
func (s *SettingsService) Get() (*domain.PipelineSettings, error) {
	defaults := domain.DefaultPipelineSettings()

	settings := &domain.PipelineSettings{
		Keyword: s.getString(keyKeyword, defaults.Keyword),
		HTTP: domain.HTTPSettings{
			Timeout:   s.getDuration(keyHTTPTimeout, defaults.HTTP.Timeout),
			Rate:      s.getFloat(keyHTTPRate, defaults.HTTP.Rate),
			UserAgent: s.getString(keyHTTPUserAgent, defaults.HTTP.UserAgent),
		},
		First:  s.getSource(defaults.First),
		Second: s.getSource(defaults.Second),
		Third:  s.getSource(defaults.Third),
	}

	return settings, nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Validate checks the effective settings.
func (s *SettingsService) Validate() error {
	if s.validator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.validator.ValidatePipeline(settings)
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Overridden returns the keys whose values come from the environment.
// Stores that only read the config file report none.
func (s *SettingsService) Overridden() []string {
	if r, ok := s.configStore.(driven.OverrideReporter); ok {
		return r.Overridden()
	}
	return nil
}

func sourceKey(name, field string) string {
	return keySourcesPrefix + name + "." + field
}

func (s *SettingsService) getSource(defaults domain.SourceSettings) domain.SourceSettings {
	name := defaults.Name
	src := defaults

	src.URL = s.getString(sourceKey(name, fieldURL), defaults.URL)
	src.Format = domain.SourceFormat(s.getString(sourceKey(name, fieldFormat), defaults.Format.String()))
	src.Delimiter = s.getString(sourceKey(name, fieldDelimiter), defaults.Delimiter)
	src.Decimal = s.getString(sourceKey(name, fieldDecimal), defaults.Decimal)
	src.CountryColumn = s.getString(sourceKey(name, fieldCountryColumn), defaults.CountryColumn)
	src.TimeColumn = s.getString(sourceKey(name, fieldTimeColumn), defaults.TimeColumn)
	src.ValueColumn = s.getString(sourceKey(name, fieldValueColumn), defaults.ValueColumn)
	src.DropColumns = s.getStringSlice(sourceKey(name, fieldDropColumns), defaults.DropColumns)
	src.InsertYear = s.getBool(sourceKey(name, fieldInsertYear), defaults.InsertYear)

	// Stored match entries replace the defaults; an empty value removes a column.
	if stored := s.configStore.GetStringMap(sourceKey(name, fieldMatch)); stored != nil {
		match := make(map[string]string, len(stored))
		for col, val := range stored {
			if val != "" {
				match[col] = val
			}
		}
		src.Match = match
	}

	return src
}

// parseSetting converts CLI input to the value stored for key.
func parseSetting(key, value string) (any, error) {
	switch key {
	case keyKeyword, keyHTTPUserAgent:
		return value, nil
	case keyHTTPTimeout:
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive duration such as 30s", domain.ErrInvalidInput, key)
		}
		return d.String(), nil
	case keyHTTPRate:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return f, nil
	}

	name, field, ok := splitSourceKey(key)
	if !ok {
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	switch field {
	case fieldURL, fieldDelimiter, fieldDecimal, fieldCountryColumn, fieldTimeColumn, fieldValueColumn:
		return value, nil
	case fieldFormat:
		if !domain.SourceFormat(value).IsValid() {
			return nil, fmt.Errorf("%w: %s must be one of %v", domain.ErrInvalidInput, key, domain.AllSourceFormats())
		}
		return value, nil
	case fieldDropColumns:
		return splitList(value), nil
	case fieldInsertYear:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	}

	if col, found := strings.CutPrefix(field, fieldMatch+"."); found && col != "" {
		return value, nil
	}
	return nil, fmt.Errorf("%w: unknown setting %q for source %s", domain.ErrInvalidInput, key, name)
}

// splitSourceKey splits sources.<name>.<field>.
func splitSourceKey(key string) (name, field string, ok bool) {
	rest, found := strings.CutPrefix(key, keySourcesPrefix)
	if !found {
		return "", "", false
	}
	name, field, found = strings.Cut(rest, ".")
	if !found || field == "" {
		return "", "", false
	}
	switch name {
	case domain.SourceFirst, domain.SourceSecond, domain.SourceThird:
		return name, field, true
	default:
		return "", "", false
	}
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return append([]string(nil), defaultVal...)
	}
	return s.configStore.GetStringSlice(key)
}

// getDuration accepts "30s" style strings and bare numbers of seconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	if str, ok := val.(string); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(str)); err == nil {
			return d
		}
	}
	return time.Duration(s.configStore.GetFloat(key) * float64(time.Second))
}
