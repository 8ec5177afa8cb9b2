package jsonstat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

const denseDataset = `{
  "version": "2.0",
  "class": "dataset",
  "id": ["country", "time"],
  "size": [2, 3],
  "dimension": {
    "country": {
      "label": "Country name",
      "category": {
        "index": ["A", "B"],
        "label": {"A": "Aland", "B": "Borduria"}
      }
    },
    "time": {
      "label": "Time",
      "category": {
        "index": {"2019": 0, "2020": 1, "2021": 2}
      }
    }
  },
  "value": [1.5, null, 3, 4, 5, 6]
}`

func decode(t *testing.T, content string) (*domain.Records, error) {
	t.Helper()
	raw := &domain.RawDataset{Source: "second", URI: "test.json", Content: []byte(content)}
	return New().Decode(context.Background(), raw, domain.SourceSettings{})
}

func TestDecoder_Format(t *testing.T) {
	assert.Equal(t, domain.SourceFormatJSONStat, New().Format())
}

func TestDecoder_Dense(t *testing.T) {
	records, err := decode(t, denseDataset)
	require.NoError(t, err)

	assert.Equal(t, []string{"Country name", "Time", "value"}, records.Columns)
	assert.Equal(t, [][]string{
		{"Aland", "2019", "1.5"},
		{"Aland", "2020", "NaN"},
		{"Aland", "2021", "3"},
		{"Borduria", "2019", "4"},
		{"Borduria", "2020", "5"},
		{"Borduria", "2021", "6"},
	}, records.Rows)
}

func TestDecoder_SparseValues(t *testing.T) {
	content := `{
	  "class": "dataset",
	  "id": ["geo", "year"],
	  "size": [1, 2],
	  "dimension": {
	    "geo": {"category": {"label": {"X": "Xanadu"}}},
	    "year": {"label": "Time", "category": {"index": ["2000", "2001"]}}
	  },
	  "value": {"1": 7.25}
	}`

	records, err := decode(t, content)
	require.NoError(t, err)

	// Without a label the dimension id names the column.
	assert.Equal(t, []string{"geo", "Time", "value"}, records.Columns)
	assert.Equal(t, [][]string{
		{"Xanadu", "2000", "NaN"},
		{"Xanadu", "2001", "7.25"},
	}, records.Rows)
}

func TestDecoder_Bundle(t *testing.T) {
	content := `{
	  "dataset": {
	    "label": "Legacy",
	    "dimension": {
	      "id": ["c", "t"],
	      "size": [1, 1],
	      "c": {"label": "Country name", "category": {"index": {"Q": 0}, "label": {"Q": "Qumran"}}},
	      "t": {"label": "Time", "category": {"index": {"2010": 0}}}
	    },
	    "value": [42]
	  }
	}`

	records, err := decode(t, content)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Qumran", "2010", "42"}}, records.Rows)
}

func TestDecoder_RowMajorOrder(t *testing.T) {
	content := `{
	  "id": ["a", "b", "c"],
	  "size": [2, 1, 2],
	  "dimension": {
	    "a": {"category": {"index": ["a0", "a1"]}},
	    "b": {"category": {"index": ["b0"]}},
	    "c": {"category": {"index": ["c0", "c1"]}}
	  },
	  "value": [0, 1, 2, 3]
	}`

	records, err := decode(t, content)
	require.NoError(t, err)
	require.Equal(t, 4, records.Len())

	c, err := records.Column("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1", "c0", "c1"}, c)

	a, err := records.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a0", "a1", "a1"}, a)
}

func TestDecoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "Country|2019"},
		{"no dataset", `{"foo": {"bar": 1}}`},
		{"size mismatch", `{"id":["a"],"size":[2],"dimension":{"a":{"category":{"index":["x","y"]}}},"value":[1,2,3]}`},
		{"category count mismatch", `{"id":["a"],"size":[3],"dimension":{"a":{"category":{"index":["x","y"]}}},"value":[1,2,3]}`},
		{"missing dimension", `{"id":["a"],"size":[1],"dimension":{},"value":[1]}`},
		{"sparse out of range", `{"id":["a"],"size":[1],"dimension":{"a":{"category":{"index":["x"]}}},"value":{"5":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.content)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDecoder_NilInput(t *testing.T) {
	_, err := New().Decode(context.Background(), nil, domain.SourceSettings{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderedKeys(t *testing.T) {
	keys, err := orderedKeys([]byte(`{"z": 1, "a": {"n": [1, 2]}, "m": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}
