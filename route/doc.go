// Package route finds the fewest-hop path between two nodes of a
// graph.Graph via breadth-first search with parent-link reconstruction.
//
// What
//
//   - ShortestPath(g, start, end) returns the ordered id sequence
//     [start ... end] with the minimum number of edges, as a typed
//     outcome: a path, ErrUnknownNode (endpoint absent from the graph,
//     checked before any search), or ErrNoPath (endpoints disconnected).
//   - start == end short-circuits to the single-element path [start].
//   - Distance(path) converts a path into its hop count.
//
// Why
//
//	BFS visits vertices in non-decreasing edge distance from start and
//	fixes each vertex's parent at first discovery, so walking parent
//	links back from end yields a chain of exactly distance(start, end)
//	edges — any shorter chain would have been discovered earlier.
//
// Determinism
//
//	Neighbors are iterated in graph.Neighbors sorted order, so ties
//	between equally short paths always break the same way and repeated
//	queries return the identical path.
//
// Options
//
//   - WithContext(ctx):  cancellation between dequeues.
//   - WithMaxHops(n):    give up beyond n hops (n == 0 means no limit,
//     n < 0 is ErrOptionViolation); an out-of-range end yields ErrNoPath.
//   - WithOnVisit(fn):   hook per dequeued vertex; an error aborts.
//
// The search never mutates the Graph; one immutable build serves any
// number of concurrent queries. Complexity: O(V + E) time, O(V) memory.
package route
