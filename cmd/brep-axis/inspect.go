// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brep-axis/internal/classify"
	"github.com/pdiddy/brep-axis/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [scene.yaml]",
	Short: "Show the classification and geometry of one surface",
	Long: `Inspect classifies a single surface from the scene and prints its
primitive kind, fitted parameters, UV domain, and sampled bounding box.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputs, err := loadScene(args[0])
	if err != nil {
		return err
	}
	in, err := pickSurface(cmd, inputs)
	if err != nil {
		return err
	}

	dom := in.Surface.Domain()
	fmt.Printf("Surface: %s\n", in.Name)
	fmt.Printf("Domain:  u [%g, %g]  v [%g, %g]\n",
		dom.U.Min, dom.U.Max, dom.V.Min, dom.V.Max)

	lo, hi := boundingBox(in.Surface)
	fmt.Printf("Bounds:  x %.2f to %.2f, y %.2f to %.2f, z %.2f to %.2f\n",
		lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)

	c, err := classify.Classify(in.Surface, toleranceContext(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Kind:    %s\n", c.Kind)
	switch c.Kind {
	case types.KindCylinder:
		p := c.Cylinder
		fmt.Printf("  radius:   %.4f (diameter %.4f)\n", p.Radius, 2*p.Radius)
		fmt.Printf("  axis:     (%.4f, %.4f, %.4f)\n", p.Axis.X, p.Axis.Y, p.Axis.Z)
		fmt.Printf("  origin:   (%.2f, %.2f, %.2f)\n", p.Origin.X, p.Origin.Y, p.Origin.Z)
	case types.KindCone:
		p := c.Cone
		fmt.Printf("  half angle: %.2f deg\n", p.HalfAngleDeg)
		fmt.Printf("  apex:       (%.2f, %.2f, %.2f)\n", p.Apex.X, p.Apex.Y, p.Apex.Z)
		fmt.Printf("  axis:       (%.4f, %.4f, %.4f)\n", p.Axis.X, p.Axis.Y, p.Axis.Z)
		fmt.Printf("  radius:     %.4f (at reference station)\n", p.Radius)
	case types.KindPlane:
		p := c.Plane
		fmt.Printf("  normal:   (%.4f, %.4f, %.4f)\n", p.Normal.X, p.Normal.Y, p.Normal.Z)
		fmt.Printf("  offset:   %.4f\n", p.Offset)
	case types.KindFreeForm:
		if c.Reason != "" {
			fmt.Printf("  reason:   %s\n", c.Reason)
		}
	}
	return nil
}

// boundingBox samples the surface on a coarse grid and returns the
// component-wise min and max.
func boundingBox(s types.Surface) (lo, hi types.Point) {
	const stations = 9
	dom := s.Domain()
	lo = types.Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = types.Point{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < stations; i++ {
		u := dom.U.Min + dom.U.Length()*float64(i)/float64(stations-1)
		for j := 0; j < stations; j++ {
			v := dom.V.Min + dom.V.Length()*float64(j)/float64(stations-1)
			p := s.PointAt(u, v)
			lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
			lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
			lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
		}
	}
	return lo, hi
}

func init() {
	selectFlags(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}
