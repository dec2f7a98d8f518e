package render_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadnav/core"
	"roadnav/graph"
	"roadnav/render"
)

func fixture(t *testing.T) (*core.Registry, *graph.Graph) {
	t.Helper()
	reg, err := core.NewRegistry([]core.NodeRecord{
		{ID: "gate", X: 0, Y: 0, Neighbors: []string{"quad"}},
		{ID: "quad", X: 10, Y: 5, Neighbors: []string{"hall"}},
		{ID: "hall", X: 20, Y: 0},
	})
	require.NoError(t, err)
	g, _, err := graph.Build(reg, graph.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	return reg, g
}

func TestContext_DrawNetworkAndRoute(t *testing.T) {
	reg, g := fixture(t)
	var buf bytes.Buffer

	ctx, err := render.NewContext(&buf, 800, 600)
	require.NoError(t, err)
	require.NoError(t, ctx.DrawNetwork(reg, g))
	require.NoError(t, ctx.DrawRoute(reg, []string{"gate", "quad", "hall"}))
	require.NoError(t, ctx.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	// two edges, three labeled nodes, one highlighted polyline
	assert.Equal(t, 2, strings.Count(out, "<line "))
	assert.Equal(t, 3, strings.Count(out, "font-size"))
	assert.Equal(t, 1, strings.Count(out, "<polyline "))
	// start and end markers are distinct from plain node dots
	assert.Contains(t, out, `fill="#2a2"`)
	assert.Equal(t, 2, strings.Count(out, `r="6"`))
}

func TestContext_RouteRequiresNetwork(t *testing.T) {
	reg, _ := fixture(t)
	ctx, err := render.NewContext(&bytes.Buffer{}, 100, 100)
	require.NoError(t, err)

	assert.ErrorIs(t, ctx.DrawRoute(reg, []string{"gate"}), render.ErrNotFitted)
}

func TestContext_ClosedIsClosed(t *testing.T) {
	reg, g := fixture(t)
	ctx, err := render.NewContext(&bytes.Buffer{}, 100, 100)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close(), "Close is idempotent")

	assert.ErrorIs(t, ctx.DrawNetwork(reg, g), render.ErrClosed)
	assert.ErrorIs(t, ctx.DrawRoute(reg, nil), render.ErrClosed)
}

func TestContext_EmptyRegistry(t *testing.T) {
	reg, err := core.NewRegistry(nil)
	require.NoError(t, err)
	g, _, err := graph.Build(reg)
	require.NoError(t, err)

	ctx, err := render.NewContext(&bytes.Buffer{}, 100, 100)
	require.NoError(t, err)
	assert.ErrorIs(t, ctx.DrawNetwork(reg, g), render.ErrNoNodes)
}

func TestContext_RouteUnknownID(t *testing.T) {
	reg, g := fixture(t)
	ctx, err := render.NewContext(&bytes.Buffer{}, 100, 100)
	require.NoError(t, err)
	require.NoError(t, ctx.DrawNetwork(reg, g))

	err = ctx.DrawRoute(reg, []string{"gate", "ghost"})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
