// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brep-axis/internal/store"
	"github.com/pdiddy/brep-axis/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export committed axis lines to YAML or JSON",
	Long: `Export dumps the committed axis lines from the line store, optionally
filtered by primitive kind, for downstream tooling.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	kindStr, _ := cmd.Flags().GetString("kind")

	var kind types.PrimitiveKind
	switch kindStr {
	case "":
	case "cylinder":
		kind = types.KindCylinder
	case "cone":
		kind = types.KindCone
	default:
		return fmt.Errorf("unsupported kind filter %q: use cylinder or cone", kindStr)
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	switch format {
	case "yaml", "":
		if out == "" {
			out = "axes.yaml"
		}
		if err := st.ExportYAML(context.Background(), out, kind); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "axes.json"
		}
		if err := st.ExportJSON(context.Background(), out, kind); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default: axes.yaml or axes.json)")
	exportCmd.Flags().String("kind", "", "filter by kind: cylinder or cone")
	exportCmd.Flags().String("db", "", "line store database path (default: configured store.db_path)")

	rootCmd.AddCommand(exportCmd)
}
