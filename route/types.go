// Package route declares sentinel errors and functional options for the
// breadth-first path search.
package route

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for route queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrUnknownNode is returned when an endpoint id is absent from the
	// graph; the wrapped message names every missing id.
	ErrUnknownNode = errors.New("route: unknown node")

	// ErrNoPath is returned when start and end lie in disjoint
	// components. It is a normal negative result, not a failure.
	ErrNoPath = errors.New("route: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("route: neighbor iteration error")
)

// Option configures ShortestPath via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the query runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing the search.
type Options struct {
	// Ctx allows cancellation and deadlines, checked between dequeues.
	Ctx context.Context

	// MaxHops, if > 0, abandons routes longer than MaxHops edges.
	// 0 disables the limit.
	MaxHops int

	// OnVisit is called for each dequeued vertex with its hop distance
	// from start. Returning an error aborts the search.
	OnVisit func(id string, hops int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no hop
// limit, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxHops: 0,
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds the search radius.
//
//	n > 0:  abandon routes beyond n hops (yields ErrNoPath)
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithOnVisit registers a callback per visited vertex; returning an
// error from it stops the search.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Distance returns the number of edges a path traverses: len-1 for a
// non-empty path, 0 for a nil or single-element one.
func Distance(path []string) int {
	if len(path) < 2 {
		return 0
	}

	return len(path) - 1
}
