package domain

import "time"

const unknownDescription = "Unknown"

// SourceFormat identifies how a source's bytes are decoded.
type SourceFormat string

// Available source formats.
const (
	// SourceFormatDelimited is delimiter-separated text with a header row.
	SourceFormatDelimited SourceFormat = "delimited"

	// SourceFormatJSONStat is a JSON-stat dataset.
	SourceFormatJSONStat SourceFormat = "jsonstat"
)

// IsValid returns true if the format is recognised.
func (f SourceFormat) IsValid() bool {
	switch f {
	case SourceFormatDelimited, SourceFormatJSONStat:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f SourceFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f SourceFormat) Description() string {
	switch f {
	case SourceFormatDelimited:
		return "Delimited text"
	case SourceFormatJSONStat:
		return "JSON-stat dataset"
	default:
		return unknownDescription
	}
}

// Source names.
const (
	SourceFirst  = "first"
	SourceSecond = "second"
	SourceThird  = "third"
)

// SourceSettings describes one of the three input datasets.
type SourceSettings struct {
	// Name is the source name (first, second, third).
	Name string `validate:"required"`

	// URL is an http(s) URL, a file:// URL or a file path.
	URL string `validate:"required,source_uri"`

	// Format selects the decoder.
	Format SourceFormat `validate:"required,oneof=delimited jsonstat"`

	// Delimiter separates fields in delimited sources.
	Delimiter string `validate:"required_if=Format delimited,max=1"`

	// Decimal is the decimal separator of numeric cells.
	Decimal string `validate:"required,len=1"`

	// CountryColumn holds the country name.
	CountryColumn string `validate:"required"`

	// TimeColumn holds the observation year (long sources only).
	TimeColumn string `validate:"required_if=Format jsonstat"`

	// ValueColumn holds the observation value (long sources only).
	ValueColumn string `validate:"required_if=Format jsonstat"`

	// Match keeps only rows whose column equals the given value.
	Match map[string]string

	// DropColumns lists categorical columns removed before pivoting.
	DropColumns []string

	// InsertYear adds an interpolated column for the target year.
	InsertYear bool
}

// IsLong reports whether the source holds one row per observation.
func (s SourceSettings) IsLong() bool {
	return s.Format == SourceFormatJSONStat
}

// HTTPSettings holds fetcher configuration.
type HTTPSettings struct {
	// Timeout bounds each request.
	Timeout time.Duration `validate:"gt=0"`

	// Rate is the maximum number of requests per second.
	Rate float64 `validate:"gt=0"`

	// UserAgent is sent with every request.
	UserAgent string
}

// PipelineSettings holds all settings of an analysis run.
type PipelineSettings struct {
	// Keyword flags countries in the first source for exclusion.
	Keyword string `validate:"required"`

	// HTTP holds fetcher settings.
	HTTP HTTPSettings

	// First is the delimited reference table.
	First SourceSettings

	// Second is the first JSON-stat dataset.
	Second SourceSettings

	// Third is the second JSON-stat dataset; the target year is inserted here.
	Third SourceSettings
}

// Sources returns the three sources in pipeline order.
func (p PipelineSettings) Sources() []SourceSettings {
	return []SourceSettings{p.First, p.Second, p.Third}
}

// DefaultPipelineSettings returns settings with sensible defaults.
// Source URLs and the keyword are left empty; they must be configured.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		HTTP: HTTPSettings{
			Timeout:   60 * time.Second,
			Rate:      2,
			UserAgent: "triscore",
		},
		First: SourceSettings{
			Name:          SourceFirst,
			Format:        SourceFormatDelimited,
			Delimiter:     "|",
			Decimal:       ",",
			CountryColumn: "Country",
		},
		Second: SourceSettings{
			Name:          SourceSecond,
			Format:        SourceFormatJSONStat,
			Decimal:       ".",
			CountryColumn: "Country name",
			TimeColumn:    "Time",
			ValueColumn:   "value",
			Match:         map[string]string{"Class": "Total"},
			DropColumns:   []string{"Frequency", "Class"},
		},
		Third: SourceSettings{
			Name:          SourceThird,
			Format:        SourceFormatJSONStat,
			Decimal:       ".",
			CountryColumn: "Country name",
			TimeColumn:    "Time",
			ValueColumn:   "value",
			DropColumns:   []string{"Frequency", "Size", "Class", "Indicator", "Unit"},
			InsertYear:    true,
		},
	}
}

// AllSourceFormats returns all available source formats.
func AllSourceFormats() []SourceFormat {
	return []SourceFormat{
		SourceFormatDelimited,
		SourceFormatJSONStat,
	}
}
