package values

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, 42, Int(42))
	assert.Equal(t, 42, Int(int64(42)))
	assert.Equal(t, 42, Int(42.9))
	assert.Equal(t, 42, Int(" 42 "))
	assert.Equal(t, 0, Int("forty"))
	assert.Equal(t, 0, Int(true))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 2.5, Float(2.5))
	assert.Equal(t, 2.0, Float(int64(2)))
	assert.Equal(t, 0.5, Float("0.5"))
	assert.Equal(t, 0.0, Float("half"))
	assert.Equal(t, 0.0, Float(nil))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(true))
	assert.True(t, Bool("true"))
	assert.True(t, Bool("1"))
	assert.False(t, Bool("nope"))
	assert.False(t, Bool(1))
}

func TestString(t *testing.T) {
	assert.Equal(t, "x", String("x"))
	assert.Equal(t, "", String(1))
	assert.Equal(t, "", String(nil))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "c"}, StringSlice([]any{"a", 1, "c"}))
	assert.Equal(t, []string{"Frequency", "Class"}, StringSlice("Frequency, Class"))
	assert.Nil(t, StringSlice(""))
	assert.Nil(t, StringSlice(7))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, Duration("30s"))
	assert.Equal(t, 90*time.Second, Duration("90"))
	assert.Equal(t, 5*time.Second, Duration(int64(5)))
	assert.Equal(t, 1500*time.Millisecond, Duration(1.5))
	assert.Equal(t, time.Minute, Duration(time.Minute))
	assert.Equal(t, time.Duration(0), Duration("soon"))
}

func TestStringMap(t *testing.T) {
	data := map[string]any{
		"sources.second.match.Class":  "Total",
		"sources.second.match.Sex":    "Both",
		"sources.second.match.Weight": int64(3),
		"sources.second.url":          "https://example.org",
		"sources.second.matchless":    "x",
	}

	m := StringMap(data, "sources.second.match")

	assert.Equal(t, map[string]string{"Class": "Total", "Sex": "Both"}, m)
	assert.Nil(t, StringMap(data, "sources.third.match"))
}

func TestFlattenAndNest(t *testing.T) {
	nested := map[string]any{
		"keyword": "suspended",
		"http":    map[string]any{"rate": 2.0},
		"sources": map[string]any{
			"first": map[string]any{"url": "https://example.org/a.csv"},
		},
	}

	flat := Flatten(nested, "")

	assert.Equal(t, map[string]any{
		"keyword":           "suspended",
		"http.rate":         2.0,
		"sources.first.url": "https://example.org/a.csv",
	}, flat)
	assert.Equal(t, nested, Nest(flat))
}
