package route

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"roadnav/graph"
)

// walker encapsulates mutable search state for one query.
type walker struct {
	g        *graph.Graph
	opts     Options
	frontier *arrayqueue.Queue // FIFO of discovered, unexpanded ids
	visited  map[string]bool
	parent   map[string]string
	hops     map[string]int
}

// ShortestPath runs breadth-first search on g from start to end and
// returns the minimal-hop id sequence [start ... end].
//
// Both endpoints are validated before the search: absent ids produce
// ErrUnknownNode naming every missing one. start == end returns the
// trivial path [start] without searching. Disconnected endpoints (or an
// end beyond WithMaxHops) produce ErrNoPath. The graph is read-only
// throughout, so concurrent queries against one Graph are safe.
func ShortestPath(g *graph.Graph, start, end string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// endpoint precondition, before any traversal
	var missing []string
	if !g.Has(start) {
		missing = append(missing, start)
	}
	if end != start && !g.Has(end) {
		missing = append(missing, end)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, strings.Join(missing, ", "))
	}

	// trivial query: zero edges, no search loop
	if start == end {
		return []string{start}, nil
	}

	w := &walker{
		g:        g,
		opts:     o,
		frontier: arrayqueue.New(),
		visited:  make(map[string]bool, g.Order()),
		parent:   make(map[string]string, g.Order()),
		hops:     make(map[string]int, g.Order()),
	}

	return w.search(start, end)
}

// search drives the BFS loop until end is discovered or the frontier
// drains.
func (w *walker) search(start, end string) ([]string, error) {
	w.visited[start] = true
	w.frontier.Enqueue(start)

	for !w.frontier.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item, _ := w.frontier.Dequeue()
		u := item.(string)
		if err := w.opts.OnVisit(u, w.hops[u]); err != nil {
			return nil, fmt.Errorf("route: OnVisit error at %q: %w", u, err)
		}

		if found, err := w.expand(u, end); err != nil {
			return nil, err
		} else if found {
			return w.reconstruct(start, end), nil
		}
	}

	return nil, fmt.Errorf("%w between %q and %q", ErrNoPath, start, end)
}

// expand discovers u's unvisited neighbors, fixing their parent at
// first discovery. Reports whether end was discovered.
func (w *walker) expand(u, end string) (bool, error) {
	nbrs, err := w.g.Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, u, err)
	}
	next := w.hops[u] + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return false, nil
	}
	for _, nbr := range nbrs { // sorted order: deterministic tie-break
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.parent[nbr] = u
		w.hops[nbr] = next
		if nbr == end {
			// early exit: first discovery is already minimal
			return true, nil
		}
		w.frontier.Enqueue(nbr)
	}

	return false, nil
}

// reconstruct walks parent links backward from end to start, then
// reverses into start → end order.
func (w *walker) reconstruct(start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
