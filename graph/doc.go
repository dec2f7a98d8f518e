// Package graph builds the undirected road-network Graph from a
// core.Registry and exposes read-only adjacency queries over it.
//
// What
//
//   - Graph: a mapping node id → set of neighbor ids with membership
//     guaranteed symmetric: b ∈ adj[a] ⟺ a ∈ adj[b].
//   - Build: one pass over every record's declared neighbors that
//     enforces the symmetry invariant, drops self-loops, drops
//     references to ids absent from the registry, and reports both.
//
// Why
//
//	Source data declares adjacency per node and is allowed to be sloppy:
//	one-directional ("A lists B, B forgot A"), self-referential, or
//	pointing at nodes that were never loaded. Queries downstream must
//	never have to re-check any of that, so the builder repairs what it
//	can (reverse edges) and drops what it cannot (loops, dangling refs),
//	surfacing every drop in a BuildReport rather than failing the build.
//
// Invariants (hold for every Graph returned by Build)
//
//   - Symmetry: b ∈ Neighbors(a) ⟺ a ∈ Neighbors(b).
//   - No self-loops: a ∉ Neighbors(a).
//   - Closed over the registry: every id in any neighbor set is a key.
//
// The Graph is immutable after Build; any number of concurrent readers
// are safe without locking.
//
// Complexity
//
//	Build is O(n + d) for n records and d total neighbor declarations.
//	Neighbors(id) is O(k log k) for k neighbors (sorted copy).
package graph
