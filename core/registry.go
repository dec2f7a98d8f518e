package core

import (
	"fmt"
	"sort"
)

// Registry holds the validated, immutable set of NodeRecords.
//
// Construct with NewRegistry; the zero value is an empty registry.
type Registry struct {
	byID map[string]NodeRecord
	ids  []string // sorted lex asc, fixes iteration order
}

// NewRegistry validates records and builds a Registry over them.
//
// Returns ErrEmptyNodeID if any record has an empty id, or
// ErrDuplicateNode (wrapped with the offending id) if two records share
// one. Input order is irrelevant: iteration order is always id-sorted.
// Complexity: O(n log n).
func NewRegistry(records []NodeRecord) (*Registry, error) {
	reg := &Registry{
		byID: make(map[string]NodeRecord, len(records)),
		ids:  make([]string, 0, len(records)),
	}
	for _, rec := range records {
		if rec.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, seen := reg.byID[rec.ID]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, rec.ID)
		}
		reg.byID[rec.ID] = rec.clone()
		reg.ids = append(reg.ids, rec.ID)
	}
	sort.Strings(reg.ids)

	return reg, nil
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int { return len(r.ids) }

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the record for id, or ErrNodeNotFound.
// The returned record is a copy; mutating it does not affect the Registry.
func (r *Registry) Lookup(id string) (NodeRecord, error) {
	rec, ok := r.byID[id]
	if !ok {
		return NodeRecord{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return rec.clone(), nil
}

// All returns copies of every record in id-sorted order.
// Complexity: O(n).
func (r *Registry) All() []NodeRecord {
	out := make([]NodeRecord, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id].clone())
	}

	return out
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)

	return out
}
