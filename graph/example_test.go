package graph_test

import (
	"fmt"
	"io"
	"log/slog"

	"roadnav/core"
	"roadnav/graph"
)

// ExampleBuild repairs a one-directional declaration and drops a
// reference to a node that was never loaded.
func ExampleBuild() {
	reg, _ := core.NewRegistry([]core.NodeRecord{
		{ID: "gate", Neighbors: []string{"quad"}},
		{ID: "quad", Neighbors: []string{"hall", "old-wing"}}, // old-wing was demolished
		{ID: "hall"},
	})

	discard := graph.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g, report, err := graph.Build(reg, discard)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbrs, _ := g.Neighbors("quad")
	fmt.Println("quad neighbors:", nbrs)
	fmt.Println("edges:", g.Size())
	for _, ref := range report.Dangling {
		fmt.Printf("dropped %s -> %s\n", ref.From, ref.To)
	}
	// Output:
	// quad neighbors: [gate hall]
	// edges: 2
	// dropped quad -> old-wing
}
