package storage

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"roadnav/core"
)

// ErrYAMLShape indicates the document is not a sequence of node entries.
var ErrYAMLShape = errors.New("storage: YAML document must be a sequence of nodes")

// nodeDoc is the YAML shape of one node entry.
type nodeDoc struct {
	ID        string   `yaml:"id"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Neighbors []string `yaml:"neighbors"`
}

// LoadYAML reads node records from a YAML sequence:
//
//	- id: gate
//	  x: 0.5
//	  y: 1.25
//	  neighbors: [quad, bridge]
//
// Each entry is decoded independently, so one undecodable entry (wrong
// type, missing id) lands in the LoadReport without poisoning the rest.
// Only an unreadable stream or a non-sequence document is an error.
func LoadYAML(r io.Reader) ([]core.NodeRecord, *LoadReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("storage: read yaml: %w", err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("storage: parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		// empty input is an empty node set
		return nil, &LoadReport{}, nil
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, nil, ErrYAMLShape
	}

	var (
		records []core.NodeRecord
		report  = &LoadReport{}
	)
	for i, item := range seq.Content {
		locator := fmt.Sprintf("row %d", i+1)
		var nd nodeDoc
		if err = item.Decode(&nd); err != nil {
			report.skip(locator, err.Error())
			continue
		}
		if nd.ID == "" {
			report.skip(locator, "missing id")
			continue
		}
		records = append(records, core.NodeRecord{
			ID: nd.ID, X: nd.X, Y: nd.Y, Neighbors: nd.Neighbors,
		})
	}

	return records, report, nil
}
