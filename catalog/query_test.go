package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuerySinglePredicate(t *testing.T) {
	q, err := ParseQuery([]byte(`{"experiment":"rcp45"}`))
	require.NoError(t, err)
	require.False(t, q.Autocomplete)
	require.Equal(t, "SELECT name FROM cmip5 WHERE experiment='rcp45';", q.SQL)
}

func TestParseQueryMultiplePredicatesPreserveOrder(t *testing.T) {
	q, err := ParseQuery([]byte(`{"experiment":"rcp45","variable":"tas"}`))
	require.NoError(t, err)
	require.Equal(t, "SELECT name FROM cmip5 WHERE experiment='rcp45' AND variable='tas';", q.SQL)
}

func TestParseQueryAutocomplete(t *testing.T) {
	q, err := ParseQuery([]byte(`{"?":"cmip5.output1.NOAA-GFDL"}`))
	require.NoError(t, err)
	require.True(t, q.Autocomplete)
	require.Equal(t, "SELECT name FROM cmip5 WHERE name REGEXP '^cmip5.output1.NOAA-GFDL';", q.SQL)
}

func TestParseQueryEmptyObject(t *testing.T) {
	q, err := ParseQuery([]byte(`{}`))
	require.NoError(t, err)
	require.False(t, q.Autocomplete)
	require.Equal(t, "SELECT name FROM cmip5 limit 0;", q.SQL)
}

func TestParseQueryEmptyBlob(t *testing.T) {
	_, err := ParseQuery(nil)
	require.ErrorIs(t, err, ErrEmptyQuery)

	_, err = ParseQuery([]byte{})
	require.ErrorIs(t, err, ErrEmptyQuery)
}

func TestParseQueryMalformedInput(t *testing.T) {
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`["an", "array"]`),
		[]byte(`{"nested":{"a":"b"}}`),
		[]byte(`{"nested":["a","b"]}`),
		[]byte(`{"key":`),
		[]byte(`"just a string"`),
	}
	for _, c := range cases {
		_, err := ParseQuery(c)
		require.Error(t, err, "expected error for input %q", c)
	}
}

func TestParseQueryNonStringValueTypesCoerceToString(t *testing.T) {
	q, err := ParseQuery([]byte(`{"year":1999,"active":true,"note":null}`))
	require.NoError(t, err)
	require.Equal(t, "SELECT name FROM cmip5 WHERE year='1999' AND active='true' AND note='';", q.SQL)
}

func TestParseQueryDeterministic(t *testing.T) {
	blob := []byte(`{"b":"2","a":"1"}`)
	q1, err := ParseQuery(blob)
	require.NoError(t, err)
	q2, err := ParseQuery(blob)
	require.NoError(t, err)
	require.Equal(t, q1, q2)
}
