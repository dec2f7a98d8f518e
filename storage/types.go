package storage

import "strings"

// NeighborSep separates neighbor ids inside the single CSV/SQLite
// neighbors field.
const NeighborSep = ";"

// RowError describes one malformed storage row that was skipped.
type RowError struct {
	// Row locates the offending row: a 1-based data-row number for
	// text sources ("row 3"), the primary key for table sources.
	Row string

	// Reason says what failed to parse.
	Reason string
}

// LoadReport collects every skipped row of one load pass.
type LoadReport struct {
	Skipped []RowError
}

// Clean reports whether every row parsed.
func (r *LoadReport) Clean() bool { return len(r.Skipped) == 0 }

// skip records one malformed row.
func (r *LoadReport) skip(row, reason string) {
	r.Skipped = append(r.Skipped, RowError{Row: row, Reason: reason})
}

// splitNeighbors breaks a ";"-separated neighbor field into ids,
// trimming whitespace and dropping empty entries.
func splitNeighbors(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, NeighborSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

// joinNeighbors is the inverse of splitNeighbors.
func joinNeighbors(ids []string) string {
	return strings.Join(ids, NeighborSep)
}
