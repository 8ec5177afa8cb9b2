package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestSourceFormat_IsValid tests valid and invalid source formats
func TestSourceFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   SourceFormat
		expected bool
	}{
		{"delimited is valid", SourceFormatDelimited, true},
		{"jsonstat is valid", SourceFormatJSONStat, true},
		{"empty is invalid", SourceFormat(""), false},
		{"csv is invalid", SourceFormat("csv"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestSourceFormat_Description(t *testing.T) {
	assert.Equal(t, "Delimited text", SourceFormatDelimited.Description())
	assert.Equal(t, "JSON-stat dataset", SourceFormatJSONStat.Description())
	assert.Equal(t, "Unknown", SourceFormat("xml").Description())
}

func TestAllSourceFormats(t *testing.T) {
	for _, f := range AllSourceFormats() {
		assert.True(t, f.IsValid())
	}
}

func TestDefaultPipelineSettings(t *testing.T) {
	s := DefaultPipelineSettings()

	assert.Empty(t, s.Keyword)
	assert.Equal(t, 60*time.Second, s.HTTP.Timeout)
	assert.Equal(t, 2.0, s.HTTP.Rate)

	assert.Equal(t, SourceFirst, s.First.Name)
	assert.Equal(t, "|", s.First.Delimiter)
	assert.Equal(t, ",", s.First.Decimal)
	assert.False(t, s.First.IsLong())

	assert.Equal(t, map[string]string{"Class": "Total"}, s.Second.Match)
	assert.True(t, s.Second.IsLong())
	assert.False(t, s.Second.InsertYear)

	assert.Empty(t, s.Third.Match)
	assert.True(t, s.Third.InsertYear)
	assert.Contains(t, s.Third.DropColumns, "Indicator")
}

func TestPipelineSettings_Sources(t *testing.T) {
	s := DefaultPipelineSettings()

	sources := s.Sources()

	assert.Len(t, sources, 3)
	assert.Equal(t, []string{SourceFirst, SourceSecond, SourceThird},
		[]string{sources[0].Name, sources[1].Name, sources[2].Name})
}
