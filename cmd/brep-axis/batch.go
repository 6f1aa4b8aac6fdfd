// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brep-axis/internal/batch"
	"github.com/pdiddy/brep-axis/internal/store"
	"github.com/pdiddy/brep-axis/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [scene.yaml]",
	Short: "Classify a whole scene and commit axis lines",
	Long: `Batch classifies every surface in a scene, projects axis segments for
the cylinders and cones, and commits the lines to the store (green for
cylinders, red for cones). Per-item failures are reported and the batch
continues; the aggregate report is stored alongside the lines.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := loadScene(args[0])
	if err != nil {
		return err
	}

	cfg := batchConfig(cmd)
	p := batch.New(toleranceContext(cmd), cfg)
	if cfg.ProgressEvery > 0 {
		every := cfg.ProgressEvery
		p.OnProgress(func(done, total int) {
			if done%every == 0 && done < total {
				fmt.Fprintf(os.Stderr, "  processed %d/%d surfaces...\n", done, total)
			}
		})
	}

	report, err := p.Process(inputs)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	var st *store.Store
	if !dryRun {
		st, err = store.Open(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer st.Close()
	}

	committed := 0
	for _, item := range report.Items {
		switch {
		case item.Error != "":
			fmt.Printf("%-9s %s (%s)\n", item.Error, item.Name, item.Detail)
		case item.Axis != nil:
			kind := item.Classification.Kind
			fmt.Printf("%-9s %s  length %.2f\n", kind, item.Name, item.Axis.Length())
			if st != nil {
				if _, err := st.CommitLine(context.Background(), item.Name, kind, *item.Axis); err != nil {
					fmt.Fprintf(os.Stderr, "warning: committing line for %s: %v\n", item.Name, err)
					continue
				}
				committed++
			}
		default:
			fmt.Printf("%-9s %s\n", item.Classification.Kind, item.Name)
		}
	}

	fmt.Printf("\nBatch summary: %d surfaces, %d cylinders, %d cones, %d planes, %d free-form",
		report.Total,
		report.Count(types.KindCylinder), report.Count(types.KindCone),
		report.Count(types.KindPlane), report.Count(types.KindFreeForm))
	if report.Filtered > 0 {
		fmt.Printf(", %d filtered", report.Filtered)
	}
	if report.Skipped > 0 {
		fmt.Printf(", %d skipped", report.Skipped)
	}
	fmt.Println()

	if st != nil {
		if _, err := st.CommitReport(context.Background(), report); err != nil {
			return fmt.Errorf("storing report: %w", err)
		}
		fmt.Printf("Committed %d axis lines\n", committed)
	}
	return nil
}

func init() {
	batchCmd.Flags().Float64("min-diameter", 0, "exclude cylinders below this diameter (0 = off)")
	batchCmd.Flags().Int("workers", 0, "concurrent workers (0 = configured default)")
	batchCmd.Flags().String("db", "", "line store database path (default: configured store.db_path)")
	batchCmd.Flags().Bool("dry-run", false, "process without committing lines")
	batchCmd.Flags().Bool("json", false, "output the full report as JSON and skip committing")

	rootCmd.AddCommand(batchCmd)
}
