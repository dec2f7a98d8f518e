package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"roadnav/core"
)

// csvHeader is the expected first row of a node CSV file.
var csvHeader = []string{"id", "x", "y", "neighbors"}

// ErrCSVHeader indicates the input does not start with the expected
// "id,x,y,neighbors" header row.
var ErrCSVHeader = errors.New("storage: missing or wrong CSV header")

// LoadCSV reads node records from r.
//
// The format is one header row "id,x,y,neighbors" followed by one row
// per node, neighbors ";"-separated inside the single last column (the
// column may be empty). Malformed rows are skipped into the returned
// LoadReport; only an unreadable stream or a wrong header is an error.
func LoadCSV(r io.Reader) ([]core.NodeRecord, *LoadReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field-count problems are per-row, not fatal
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCSVHeader, err)
	}
	if len(header) != len(csvHeader) {
		return nil, nil, fmt.Errorf("%w: got %v", ErrCSVHeader, header)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, nil, fmt.Errorf("%w: got %v", ErrCSVHeader, header)
		}
	}

	var (
		records []core.NodeRecord
		report  = &LoadReport{}
		row     int // 1-based data-row counter
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		locator := fmt.Sprintf("row %d", row)
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				report.skip(locator, perr.Err.Error())
				continue
			}

			return nil, nil, fmt.Errorf("storage: read csv: %w", err)
		}

		rec, reason := parseCSVRow(fields)
		if reason != "" {
			report.skip(locator, reason)
			continue
		}
		records = append(records, rec)
	}

	return records, report, nil
}

// parseCSVRow turns one data row into a NodeRecord, or a non-empty
// reason why it cannot.
func parseCSVRow(fields []string) (core.NodeRecord, string) {
	if len(fields) < 3 || len(fields) > 4 {
		return core.NodeRecord{}, fmt.Sprintf("want 3 or 4 columns, got %d", len(fields))
	}
	if fields[0] == "" {
		return core.NodeRecord{}, "missing id"
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.NodeRecord{}, fmt.Sprintf("bad x coordinate %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.NodeRecord{}, fmt.Sprintf("bad y coordinate %q", fields[2])
	}
	rec := core.NodeRecord{ID: fields[0], X: x, Y: y}
	if len(fields) == 4 {
		rec.Neighbors = splitNeighbors(fields[3])
	}

	return rec, ""
}

// WriteCSV writes records to w in the LoadCSV format, header included.
// Together with LoadCSV it round-trips the NodeRecord shape.
func WriteCSV(w io.Writer, records []core.NodeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("storage: write csv: %w", err)
	}
	for _, rec := range records {
		fields := []string{
			rec.ID,
			strconv.FormatFloat(rec.X, 'f', -1, 64),
			strconv.FormatFloat(rec.Y, 'f', -1, 64),
			joinNeighbors(rec.Neighbors),
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("storage: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
