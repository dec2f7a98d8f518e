package route_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"roadnav/core"
	"roadnav/graph"
	"roadnav/route"
)

// ExampleShortestPath routes across a toy campus where a footbridge
// shortcuts the long way around the quad.
func ExampleShortestPath() {
	reg, _ := core.NewRegistry([]core.NodeRecord{
		{ID: "gate", Neighbors: []string{"quad", "bridge"}},
		{ID: "quad", Neighbors: []string{"hall"}},
		{ID: "hall", Neighbors: []string{"lab"}},
		{ID: "bridge", Neighbors: []string{"lab"}},
		{ID: "lab"},
	})
	discard := graph.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g, _, _ := graph.Build(reg, discard)

	path, err := route.ShortestPath(g, "gate", "lab")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, route.Distance(path), "hops")

	// a node that is not on the map is a typed outcome, not a crash
	_, err = route.ShortestPath(g, "gate", "pool")
	fmt.Println(errors.Is(err, route.ErrUnknownNode))
	// Output:
	// [gate bridge lab] 2 hops
	// true
}
