package graph

import (
	"fmt"
	"sort"
)

// Graph is the immutable symmetric adjacency structure over all
// registered nodes. Construct with Build; the zero value is empty.
type Graph struct {
	adj  map[string]map[string]struct{}
	size int // distinct unordered edge pairs
}

// Has reports whether id is a vertex of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.size }

// IDs returns every vertex id in sorted order.
func (g *Graph) IDs() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the ids adjacent to id, sorted lex asc.
// The slice is a fresh copy. Returns ErrUnknownVertex for absent ids.
// Sorted order makes traversal over the map-backed sets deterministic.
func (g *Graph) Neighbors(id string) ([]string, error) {
	set, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// HasEdge reports whether an undirected edge a–b exists.
func (g *Graph) HasEdge(a, b string) bool {
	set, ok := g.adj[a]
	if !ok {
		return false
	}
	_, ok = set[b]

	return ok
}

// addEdge inserts the undirected pair a–b, idempotently, and keeps the
// edge count in step. Callers guarantee a != b and both keys exist.
func (g *Graph) addEdge(a, b string) {
	if _, dup := g.adj[a][b]; dup {
		return
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.size++
}
