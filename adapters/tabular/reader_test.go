package tabular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autoviz/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = "date,sales,region\n" +
	"2024-01-01,100,north\n" +
	"2024-01-02,120,south\n" +
	"2024-01-03,,north\n"

func TestReadCSV(t *testing.T) {
	loader := NewLoader(time.Second)

	tbl, err := loader.Read(strings.NewReader(salesCSV), "sales.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, []string{"date", "sales", "region"}, tbl.ColumnNames())

	dateCol, ok := tbl.Column("date")
	require.True(t, ok)
	ts, ok := dateCol.Values[0].Time()
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())

	salesCol, _ := tbl.Column("sales")
	assert.True(t, salesCol.Values[2].IsNull, "empty cell should be null")
}

func TestReadCSVHeaderOnly(t *testing.T) {
	loader := NewLoader(time.Second)

	tbl, err := loader.Read(strings.NewReader("a,b,c\n"), "empty.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, 0, tbl.NumRows())
}

func TestReadCSVNoRows(t *testing.T) {
	loader := NewLoader(time.Second)

	_, err := loader.Read(strings.NewReader(""), "empty.csv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeLoadError, errors.GetCode(err))
}

func TestReadRaggedRowsPadWithNulls(t *testing.T) {
	loader := NewLoader(time.Second)

	tbl, err := loader.Read(strings.NewReader("a,b,c\n1,2\n"), "ragged.csv")
	require.NoError(t, err)

	col, _ := tbl.Column("c")
	assert.True(t, col.Values[0].IsNull)
}

func TestReadUnsupportedFormat(t *testing.T) {
	loader := NewLoader(time.Second)

	_, err := loader.Read(strings.NewReader("{}"), "data.json")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedFormat, errors.GetCode(err))
}

func TestNormalizeSheetURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain sheet URL is rewritten",
			input:    "https://docs.google.com/spreadsheets/d/abc123_-X/edit#gid=0",
			expected: "https://docs.google.com/spreadsheets/d/abc123_-X/gviz/tq?tqx=out:csv",
		},
		{
			name:     "export URL passes through",
			input:    "https://docs.google.com/spreadsheets/d/abc/gviz/tq?tqx=out:csv",
			expected: "https://docs.google.com/spreadsheets/d/abc/gviz/tq?tqx=out:csv",
		},
		{
			name:     "non-sheet URL passes through",
			input:    "https://example.com/data.csv",
			expected: "https://example.com/data.csv",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, NormalizeSheetURL(test.input))
		})
	}
}

func TestFetchSheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(salesCSV))
	}))
	defer server.Close()

	loader := NewLoader(time.Second)
	tbl, err := loader.FetchSheet(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "GoogleSheets.csv", tbl.SourceName)
	assert.Equal(t, 3, tbl.NumRows())
}

func TestFetchSheetServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	loader := NewLoader(time.Second)
	_, err := loader.FetchSheet(context.Background(), server.URL)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNetworkError, errors.GetCode(err))
}

func TestFetchSheetUnreachable(t *testing.T) {
	loader := NewLoader(200 * time.Millisecond)
	_, err := loader.FetchSheet(context.Background(), "http://127.0.0.1:1/no-such-host")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNetworkError, errors.GetCode(err))
}

// Loaded CSV columns should classify as expected downstream; this keeps
// the coercion and the profiler thresholds honest together
func TestLoadedColumnKinds(t *testing.T) {
	loader := NewLoader(time.Second)
	tbl, err := loader.Read(strings.NewReader(salesCSV), "sales.csv")
	require.NoError(t, err)

	dateCol, _ := tbl.Column("date")
	for _, v := range dateCol.Values {
		_, ok := v.Time()
		assert.True(t, ok, "date cells should coerce to timestamps")
	}

	regionCol, _ := tbl.Column("region")
	assert.Equal(t, "north", regionCol.Values[0].String())
}
