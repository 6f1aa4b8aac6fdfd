// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/brep-axis/pkg/types"
)

// ExportYAML writes all committed lines (optionally filtered by kind)
// to a YAML file.
func (s *Store) ExportYAML(ctx context.Context, path string, kind types.PrimitiveKind) error {
	lines, err := s.Lines(ctx, kind)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes all committed lines (optionally filtered by kind)
// to a JSON file.
func (s *Store) ExportJSON(ctx context.Context, path string, kind types.PrimitiveKind) error {
	lines, err := s.Lines(ctx, kind)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
