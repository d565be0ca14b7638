// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscout/pkg/types"
)

// ReportFile is the on-disk representation of a fetch run and its rows.
// The researcher can save a run to a file and reload it later without
// re-querying the API.
type ReportFile struct {
	Query   QueryParams       `yaml:"query"`
	Rows    []types.ReportRow `yaml:"rows"`
	Summary RunSummary        `yaml:"summary"`
}

// QueryParams stores the fetch parameters in a serializable form.
type QueryParams struct {
	Term       string `yaml:"term"`
	MaxResults int    `yaml:"max_results"`
}

// RunSummary stores row statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReportFile saves the fetch parameters and rows to a YAML file.
func WriteReportFile(path, term string, maxResults int, rows []types.ReportRow) error {
	rf := ReportFile{
		Query: QueryParams{
			Term:       term,
			MaxResults: maxResults,
		},
		Rows: rows,
		Summary: RunSummary{
			Total:     len(rows),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report file from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
