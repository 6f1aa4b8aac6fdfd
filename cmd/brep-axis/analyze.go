// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brep-axis/internal/batch"
	"github.com/pdiddy/brep-axis/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scene.yaml]",
	Short: "Count surface types across a scene",
	Long: `Analyze classifies every surface in a scene and prints per-kind counts.
Cylinders below the minimum diameter are tallied separately, matching the
turning-workflow convention of ignoring bores too thin to machine.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputs, err := loadScene(args[0])
	if err != nil {
		return err
	}

	cfg := batchConfig(cmd)
	p := batch.New(toleranceContext(cmd), cfg)
	every := cfg.ProgressEvery
	if every > 0 {
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

	fmt.Printf("Surfaces analyzed: %d\n", report.Total)
	fmt.Printf("  cylinders:  %d\n", report.Count(types.KindCylinder))
	if cfg.MinDiameter > 0 {
		fmt.Printf("    below %.1f diameter: %d (excluded)\n", cfg.MinDiameter, report.Filtered)
	}
	fmt.Printf("  cones:      %d\n", report.Count(types.KindCone))
	fmt.Printf("  planes:     %d\n", report.Count(types.KindPlane))
	fmt.Printf("  free-form:  %d\n", report.Count(types.KindFreeForm))
	if report.Skipped > 0 {
		fmt.Printf("  skipped:    %d (invalid domains)\n", report.Skipped)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().Float64("min-diameter", 3.2, "exclude cylinders below this diameter from the tally (0 = off)")
	analyzeCmd.Flags().Int("workers", 0, "concurrent workers (0 = configured default)")
	analyzeCmd.Flags().Bool("json", false, "output the full report as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
