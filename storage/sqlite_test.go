package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadnav/core"
	"roadnav/storage"
)

func openTempSQLite(t *testing.T) *storage.SQLiteSource {
	t.Helper()
	src, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "nodes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	return src
}

func TestSQLite_SeedAndLoad(t *testing.T) {
	ctx := context.Background()
	src := openTempSQLite(t)

	want := []core.NodeRecord{
		{ID: "gate", X: 0.25, Y: -1, Neighbors: []string{"quad", "bridge"}},
		{ID: "island", X: 9, Y: 9},
		{ID: "quad", X: 1, Y: 2, Neighbors: []string{"gate"}},
	}
	require.NoError(t, src.Seed(ctx, want))

	got, report, err := src.Load(ctx)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, want, got, "Load returns rows in id order")
}

func TestSQLite_SeedReplacesByID(t *testing.T) {
	ctx := context.Background()
	src := openTempSQLite(t)

	require.NoError(t, src.Seed(ctx, []core.NodeRecord{{ID: "gate", X: 0, Y: 0}}))
	require.NoError(t, src.Seed(ctx, []core.NodeRecord{{ID: "gate", X: 5, Y: 6, Neighbors: []string{"quad"}}}))

	got, _, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.NodeRecord{ID: "gate", X: 5, Y: 6, Neighbors: []string{"quad"}}, got[0])
}

func TestSQLite_SkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	src := openTempSQLite(t)

	require.NoError(t, src.Seed(ctx, []core.NodeRecord{{ID: "gate", X: 0, Y: 0}}))
	// bypass Seed to plant rows the loader must refuse
	require.NoError(t, src.Exec(ctx, `INSERT INTO nodes (id, x, y, neighbors) VALUES ('', 1, 2, '')`))
	require.NoError(t, src.Exec(ctx, `INSERT INTO nodes (id, x, y, neighbors) VALUES ('hall', NULL, 2, '')`))

	got, report, err := src.Load(ctx)
	require.NoError(t, err, "malformed rows must not fail the load")
	require.Len(t, got, 1)
	assert.Equal(t, "gate", got[0].ID)

	require.Len(t, report.Skipped, 2)
	assert.Equal(t, "missing id", report.Skipped[0].Reason)
	assert.Equal(t, "hall", report.Skipped[1].Row)
	assert.Equal(t, "null coordinate", report.Skipped[1].Reason)
}
