// Package storage loads core.NodeRecords from flat storage: CSV, YAML,
// or a SQLite table.
//
// Every source returns the same triple: the records that parsed, a
// LoadReport of the rows that did not, and an error only for failures
// of the source itself (unreadable stream, broken database). A
// malformed row — missing id, non-numeric coordinate, undecodable
// shape — is skipped and reported, never fatal: the whole input is
// always consumed before anything is surfaced.
//
// Record shape, common to all three formats:
//
//	id         unique node identifier (string)
//	x, y       map coordinates (float)
//	neighbors  declared adjacent ids; a single ";"-separated field in
//	           CSV and SQLite, a native sequence in YAML
//
// Duplicate ids are not a storage concern: sources pass them through
// and core.NewRegistry rejects them, so identity errors carry the
// registry's semantics no matter where the data came from.
package storage
