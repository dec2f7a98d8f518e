package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadnav/core"
	"roadnav/storage"
)

func TestLoadYAML_WellFormed(t *testing.T) {
	in := strings.NewReader(`
- id: gate
  x: 0.5
  y: 1.25
  neighbors: [quad, bridge]
- id: island
  x: 9
  y: 9
`)
	records, report, err := storage.LoadYAML(in)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	require.Len(t, records, 2)
	assert.Equal(t, core.NodeRecord{ID: "gate", X: 0.5, Y: 1.25, Neighbors: []string{"quad", "bridge"}}, records[0])
	assert.Equal(t, core.NodeRecord{ID: "island", X: 9, Y: 9}, records[1])
}

func TestLoadYAML_SkipsMalformedEntries(t *testing.T) {
	in := strings.NewReader(`
- id: gate
  x: 0
  y: 0
- x: 1
  y: 2
- id: quad
  x: north
  y: 2
- id: lab
  x: 3
  y: 4
`)
	records, report, err := storage.LoadYAML(in)
	require.NoError(t, err, "malformed entries must not fail the load")

	require.Len(t, records, 2)
	assert.Equal(t, "gate", records[0].ID)
	assert.Equal(t, "lab", records[1].ID)

	require.Len(t, report.Skipped, 2)
	assert.Equal(t, "row 2", report.Skipped[0].Row)
	assert.Equal(t, "missing id", report.Skipped[0].Reason)
	assert.Equal(t, "row 3", report.Skipped[1].Row)
}

func TestLoadYAML_Shape(t *testing.T) {
	// a mapping instead of a sequence is a document-level error
	_, _, err := storage.LoadYAML(strings.NewReader("id: gate\nx: 0\ny: 0\n"))
	assert.ErrorIs(t, err, storage.ErrYAMLShape)

	// an empty document is an empty map, not an error
	records, report, err := storage.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.True(t, report.Clean())
}
