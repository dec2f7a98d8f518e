package graph

import "errors"

var (
	// ErrNilRegistry indicates Build was called with a nil registry.
	ErrNilRegistry = errors.New("graph: registry is nil")
	// ErrUnknownVertex indicates a neighbor query for an id absent from the graph.
	ErrUnknownVertex = errors.New("graph: unknown vertex")
)
