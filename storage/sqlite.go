package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"roadnav/core"
)

// Columns stay nullable on purpose: external databases are allowed to
// be sloppy, and Load degrades bad rows into the LoadReport.
const nodesSchema = `
CREATE TABLE IF NOT EXISTS nodes (
	id        TEXT PRIMARY KEY,
	x         REAL,
	y         REAL,
	neighbors TEXT DEFAULT ''
);`

// SQLiteSource reads node records from the nodes table of a SQLite
// database file. The schema is created on open if absent.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed initializes) the database at path.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}
	if _, err = db.Exec(nodesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate sqlite: %w", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }

// Exec runs one statement against the database. Escape hatch for tools
// and tests; Load and Seed cover the normal paths.
func (s *SQLiteSource) Exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// Seed inserts or replaces records, one transaction for all of them.
// Intended for tools and tests that prepare a database.
func (s *SQLiteSource) Seed(ctx context.Context, records []core.NodeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: seed sqlite: %w", err)
	}
	const insert = `INSERT OR REPLACE INTO nodes (id, x, y, neighbors) VALUES (?, ?, ?, ?)`
	for _, rec := range records {
		if _, err = tx.ExecContext(ctx, insert, rec.ID, rec.X, rec.Y, joinNeighbors(rec.Neighbors)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: seed sqlite: insert %q: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// Load reads every row of the nodes table in id order. Rows with a null
// or empty id or null coordinates are skipped into the LoadReport; only
// database failures are errors.
func (s *SQLiteSource) Load(ctx context.Context) ([]core.NodeRecord, *LoadReport, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, x, y, neighbors FROM nodes ORDER BY id`)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: query sqlite: %w", err)
	}
	defer rows.Close()

	var (
		records []core.NodeRecord
		report  = &LoadReport{}
	)
	for rows.Next() {
		var (
			id        sql.NullString
			x, y      sql.NullFloat64
			neighbors sql.NullString
		)
		if err = rows.Scan(&id, &x, &y, &neighbors); err != nil {
			return nil, nil, fmt.Errorf("storage: scan sqlite: %w", err)
		}
		switch {
		case !id.Valid || id.String == "":
			report.skip("(null)", "missing id")
		case !x.Valid || !y.Valid:
			report.skip(id.String, "null coordinate")
		default:
			records = append(records, core.NodeRecord{
				ID: id.String, X: x.Float64, Y: y.Float64,
				Neighbors: splitNeighbors(neighbors.String),
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("storage: iterate sqlite: %w", err)
	}

	return records, report, nil
}
