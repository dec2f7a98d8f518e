// Package core declares NodeRecord, Registry, and their sentinel errors.
package core

import "errors"

// Sentinel errors for registry construction and lookup.
var (
	// ErrEmptyNodeID indicates a record with an empty identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two records sharing one identifier.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates a lookup for an id absent from the registry.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeRecord is one point of the road network as declared in storage.
//
// Neighbors lists the ids the source data connects this node to, in
// declaration order. Declarations may be one-directional; the graph
// builder repairs symmetry. Records are immutable after load.
type NodeRecord struct {
	// ID uniquely identifies this node within its Registry.
	ID string

	// X, Y are the node's map coordinates, used only for rendering.
	X, Y float64

	// Neighbors holds the declared adjacent node ids.
	Neighbors []string
}

// clone returns a copy of r with an independent Neighbors slice, so the
// Registry never aliases caller-owned or callee-returned storage.
func (r NodeRecord) clone() NodeRecord {
	if r.Neighbors == nil {
		return r
	}
	nbrs := make([]string, len(r.Neighbors))
	copy(nbrs, r.Neighbors)
	r.Neighbors = nbrs

	return r
}
