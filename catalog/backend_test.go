package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemBackendIteratesRowsInOrder(t *testing.T) {
	b := NewMemBackend("a.nc", "b.nc", "c.nc")

	rows, err := b.Query(context.Background(), "SELECT name FROM cmip5;")
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		got = append(got, rows.Name())
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"a.nc", "b.nc", "c.nc"}, got)
}

func TestMemBackendEmptyResultSet(t *testing.T) {
	b := NewMemBackend()

	rows, err := b.Query(context.Background(), "SELECT name FROM cmip5 limit 0;")
	require.NoError(t, err)
	defer rows.Close()

	require.False(t, rows.Next())
	require.NoError(t, rows.Err())
}

func TestMemBackendFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	b := &MemBackend{Fail: wantErr}

	_, err := b.Query(context.Background(), "SELECT name FROM cmip5;")
	require.ErrorIs(t, err, wantErr)
}
