// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscout/pkg/types"
)

// Export holds one archived run with its rows for serialization.
type Export struct {
	Run  types.Run         `json:"run" yaml:"run"`
	Rows []types.ReportRow `json:"rows" yaml:"rows"`
}

// ExportYAML writes one archived run and its rows to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, runID int64, path string) error {
	export, err := s.exportRun(ctx, runID)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes one archived run and its rows to path as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, runID int64, path string) error {
	export, err := s.exportRun(ctx, runID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRun(ctx context.Context, runID int64) (Export, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return Export{}, err
	}
	rows, err := s.RunRows(ctx, runID)
	if err != nil {
		return Export{}, err
	}
	return Export{Run: run, Rows: rows}, nil
}
