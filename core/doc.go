// Package core defines the NodeRecord and Registry types shared by the
// rest of roadnav.
//
// What
//
//   - NodeRecord: one point of the road network as loaded from storage —
//     identifier, 2D coordinate, declared neighbor ids.
//   - Registry: the validated, immutable set of all NodeRecords, keyed by
//     id, with deterministic (id-sorted) iteration order.
//
// Why
//
//	Every downstream stage (graph construction, route queries, rendering)
//	needs one authoritative answer to "which nodes exist and where are
//	they". The Registry is built once at load time and never mutated, so
//	it is safe to share across any number of concurrent queries.
//
// Validation
//
//	NewRegistry rejects records with an empty id (ErrEmptyNodeID) and
//	records whose id was already seen (ErrDuplicateNode) — ambiguous
//	identity cannot be silently resolved. Neighbor declarations are NOT
//	validated here; dangling references are the graph builder's concern.
//
// Complexity
//
//   - NewRegistry: O(n log n) for n records (sorting the id index).
//   - Lookup/Has: O(1).
package core
