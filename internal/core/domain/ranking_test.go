package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortScores(t *testing.T) {
	scores := []Score{
		{"Chile", 1.5},
		{"Norway", 9.25},
		{"Austria", 1.5},
		{"Peru", 3},
	}

	SortScores(scores)

	assert.Equal(t, []Score{
		{"Norway", 9.25},
		{"Peru", 3},
		{"Austria", 1.5},
		{"Chile", 1.5},
	}, scores)
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{-1.236, -1.24},
		{2.5, 2.5},
		{0.125, 0.12},
		{100, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundTo(tt.in, 2), 1e-12, "RoundTo(%v)", tt.in)
	}
}

func TestParseYear(t *testing.T) {
	n, err := ParseYear(" 2015 ")
	require.NoError(t, err)
	assert.Equal(t, 2015, n)
}

func TestParseYear_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "20x5", "2015.5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseYear(in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
