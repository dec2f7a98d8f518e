package graph

import (
	"log/slog"

	"roadnav/core"
)

// Option configures Build via functional arguments.
type Option func(*buildOptions)

type buildOptions struct {
	log *slog.Logger
}

// WithLogger routes the builder's dangling-reference and self-loop
// warnings to log instead of slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *buildOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// Reference is one dropped neighbor declaration: From declared To, but
// To is not a registered node.
type Reference struct {
	From, To string
}

// BuildReport collects everything Build dropped. Drops are tolerated,
// never fatal; callers decide whether to surface them.
type BuildReport struct {
	// Dangling lists declarations pointing at unregistered ids.
	Dangling []Reference
	// SelfLoops lists ids that declared themselves as a neighbor.
	SelfLoops []string
}

// Clean reports whether nothing was dropped.
func (r *BuildReport) Clean() bool {
	return len(r.Dangling) == 0 && len(r.SelfLoops) == 0
}

// Build derives the symmetric Graph from every record in reg.
//
// Each declared neighbor m of record r becomes the undirected edge
// r.ID–m unless m is unregistered (dropped into BuildReport.Dangling)
// or m == r.ID (dropped into BuildReport.SelfLoops). Insertion is
// idempotent, so duplicate and mirrored declarations collapse into one
// edge. The returned Graph always satisfies the symmetry invariant.
//
// Returns ErrNilRegistry for a nil registry; malformed declarations
// never fail the build. Complexity: O(n + d) over n records and d
// declarations.
func Build(reg *core.Registry, opts ...Option) (*Graph, *BuildReport, error) {
	if reg == nil {
		return nil, nil, ErrNilRegistry
	}
	o := buildOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	records := reg.All()
	g := &Graph{adj: make(map[string]map[string]struct{}, len(records))}
	report := &BuildReport{}

	// seed one empty neighbor set per id so isolated nodes are vertices too
	for _, rec := range records {
		g.adj[rec.ID] = make(map[string]struct{})
	}

	for _, rec := range records {
		for _, nbr := range rec.Neighbors {
			switch {
			case nbr == rec.ID:
				report.SelfLoops = append(report.SelfLoops, rec.ID)
				o.log.Warn("dropping self-loop declaration", "node", rec.ID)
			case !reg.Has(nbr):
				report.Dangling = append(report.Dangling, Reference{From: rec.ID, To: nbr})
				o.log.Warn("dropping dangling neighbor reference", "node", rec.ID, "neighbor", nbr)
			default:
				g.addEdge(rec.ID, nbr)
			}
		}
	}

	return g, report, nil
}
