// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brep-axis/internal/axisproj"
	"github.com/pdiddy/brep-axis/internal/classify"
	"github.com/pdiddy/brep-axis/internal/store"
	"github.com/pdiddy/brep-axis/pkg/types"
)

var axisCmd = &cobra.Command{
	Use:   "axis [scene.yaml]",
	Short: "Create the axis line for one rotational surface",
	Long: `Axis classifies a single surface, derives the axis segment bounded by
the surface's own parametric footprint, and commits it to the line store
(green for cylinders, red for cones). Use --dry-run to print the segment
without committing.`,
	Args: cobra.ExactArgs(1),
	RunE: runAxis,
}

func runAxis(cmd *cobra.Command, args []string) error {
	inputs, err := loadScene(args[0])
	if err != nil {
		return err
	}
	in, err := pickSurface(cmd, inputs)
	if err != nil {
		return err
	}

	tol := toleranceContext(cmd)
	c, err := classify.Classify(in.Surface, tol)
	if err != nil {
		return err
	}
	if c.Kind != types.KindCylinder && c.Kind != types.KindCone {
		return fmt.Errorf("surface %s is a %s, not a rotational primitive", in.Name, c.Kind)
	}

	seg, err := axisproj.Project(in.Surface, c, tol)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", c.Kind, in.Name)
	if c.Kind == types.KindCylinder {
		fmt.Printf("  diameter: %.3f\n", 2*c.Cylinder.Radius)
	} else {
		fmt.Printf("  half angle: %.2f deg\n", c.Cone.HalfAngleDeg)
	}
	fmt.Printf("  start:  (%.2f, %.2f, %.2f)\n", seg.Start.X, seg.Start.Y, seg.Start.Z)
	fmt.Printf("  end:    (%.2f, %.2f, %.2f)\n", seg.End.X, seg.End.Y, seg.End.Z)
	fmt.Printf("  length: %.3f\n", seg.Length())

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		return nil
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.CommitLine(context.Background(), in.Name, c.Kind, seg)
	if err != nil {
		return err
	}
	fmt.Printf("Committed %s line #%d\n", store.ColorFor(c.Kind), id)
	return nil
}

func init() {
	selectFlags(axisCmd)
	axisCmd.Flags().String("db", "", "line store database path (default: configured store.db_path)")
	axisCmd.Flags().Bool("dry-run", false, "print the segment without committing it")

	rootCmd.AddCommand(axisCmd)
}
