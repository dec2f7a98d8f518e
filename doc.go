// Package roadnav turns a flat list of campus node records into an
// undirected road-network graph and answers fewest-hop route queries
// over it.
//
// The pipeline runs in dependency order:
//
//	storage/ — load NodeRecords from CSV, YAML or SQLite (malformed rows
//	           are skipped and reported, never fatal)
//	core/    — Registry of immutable NodeRecords (unique, non-empty ids)
//	graph/   — symmetric adjacency built from raw declarations
//	           (one-directional inputs repaired, self-loops and dangling
//	           references dropped and reported)
//	route/   — BFS shortest path with parent-link reconstruction
//	render/  — SVG map with the found route highlighted
//	config/  — YAML application configuration
//
// A route query is a pure function of the immutable Graph, so any number
// of queries may run concurrently against one build.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	route.ShortestPath(g, "A", "D") → [A B D] (or [A C D], tie broken
//	by sorted neighbor order, so [A B D] deterministically).
//
// The cmd/roadnav binary wires the whole flow behind an interactive
// prompt: load → build → ask for two endpoint ids → print directions and
// write the rendered overlay.
package roadnav
