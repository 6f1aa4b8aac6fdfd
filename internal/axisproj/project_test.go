// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package axisproj

import (
	"math"
	"testing"

	"github.com/pdiddy/brep-axis/internal/classify"
	"github.com/pdiddy/brep-axis/internal/surf"
	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

func zCylinder(radius, length float64) surf.Cylinder {
	return surf.Cylinder{
		Origin: types.Point{},
		Axis:   types.Vector{Z: 1},
		Radius: radius,
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: 2 * math.Pi},
			V: types.Interval{Min: 0, Max: length},
		},
	}
}

func TestProjectCylinderAxis(t *testing.T) {
	tol := tolerance.Default()
	s := zCylinder(5, 50)
	c, err := classify.Classify(s, tol)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	seg, err := Project(s, c, tol)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	// Endpoints are (0,0,0) and (0,0,50), in either order.
	a, b := seg.Start, seg.End
	if a.Z > b.Z {
		a, b = b, a
	}
	if a.DistanceTo(types.Point{}) > 0.01 {
		t.Errorf("low endpoint = %v, want origin", a)
	}
	if b.DistanceTo(types.Point{Z: 50}) > 0.01 {
		t.Errorf("high endpoint = %v, want (0,0,50)", b)
	}
	if math.Abs(seg.Length()-50) > 0.01 {
		t.Errorf("Length = %v, want 50", seg.Length())
	}
}

func TestProjectEndpointsOnAxisLine(t *testing.T) {
	tol := tolerance.Default()
	s := surf.Cone{
		Apex:         types.Point{X: 1, Y: -2},
		Axis:         types.Vector{X: 1, Y: 2, Z: 2},
		HalfAngleDeg: 20,
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: 2 * math.Pi},
			V: types.Interval{Min: 4, Max: 16},
		},
	}
	c, err := classify.Classify(s, tol)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCone {
		t.Fatalf("Kind = %s, want cone", c.Kind)
	}

	seg, err := Project(s, c, tol)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	origin, dir, _ := c.AxisLine()
	for _, p := range []types.Point{seg.Start, seg.End} {
		rel := p.Sub(origin)
		perp := rel.Sub(dir.Scale(rel.Dot(dir))).Length()
		if perp > tol.Distance() {
			t.Errorf("endpoint %v off the axis line by %g", p, perp)
		}
	}
	if seg.Length() <= 0 {
		t.Error("segment should span the cone's axial extent")
	}
}

func TestProjectUnsupportedKind(t *testing.T) {
	tol := tolerance.Default()
	s := surf.Plane{
		DU:  types.Vector{X: 1},
		DV:  types.Vector{Y: 1},
		Dom: types.Domain{U: types.Interval{Min: 0, Max: 1}, V: types.Interval{Min: 0, Max: 1}},
	}
	c := types.Classification{Kind: types.KindPlane, Plane: &types.PlaneParams{Normal: types.Vector{Z: 1}}}

	_, err := Project(s, c, tol)
	if err == nil {
		t.Fatal("Project should fail for a plane")
	}
	kind, ok := types.FailureKindOf(err)
	if !ok || kind != types.FailUnsupportedKind {
		t.Errorf("failure kind = %v, want unsupported_kind", kind)
	}
}

func TestProjectDegenerateAxis(t *testing.T) {
	tol := tolerance.Default()
	s := zCylinder(5, 50)
	c := types.Classification{
		Kind: types.KindCylinder,
		Cylinder: &types.CylinderParams{
			Origin: types.Point{},
			Axis:   types.Vector{Z: 2}, // not unit length
			Radius: 5,
		},
	}

	_, err := Project(s, c, tol)
	if err == nil {
		t.Fatal("Project should fail for a non-unit axis")
	}
	kind, ok := types.FailureKindOf(err)
	if !ok || kind != types.FailDegenerateAxis {
		t.Errorf("failure kind = %v, want degenerate_axis", kind)
	}
}
