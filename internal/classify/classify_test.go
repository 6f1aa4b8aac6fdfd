// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pdiddy/brep-axis/internal/surf"
	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

func tol() tolerance.Context {
	return tolerance.Default()
}

func fullRevolve(vMin, vMax float64) types.Domain {
	return types.Domain{
		U: types.Interval{Min: 0, Max: 2 * math.Pi},
		V: types.Interval{Min: vMin, Max: vMax},
	}
}

func zCylinder(radius, length float64) surf.Cylinder {
	return surf.Cylinder{
		Origin: types.Point{},
		Axis:   types.Vector{Z: 1},
		Radius: radius,
		Dom:    fullRevolve(0, length),
	}
}

// --- plane ---

func TestClassifyPlane(t *testing.T) {
	s := surf.Plane{
		Origin: types.Point{X: 1, Y: 2, Z: 3},
		DU:     types.Vector{X: 1},
		DV:     types.Vector{Y: 1},
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: 10},
			V: types.Interval{Min: 0, Max: 5},
		},
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindPlane {
		t.Fatalf("Kind = %s, want plane", c.Kind)
	}
	if math.Abs(math.Abs(c.Plane.Normal.Z)-1) > 1e-6 {
		t.Errorf("Normal = %v, want ±Z", c.Plane.Normal)
	}
	if math.Abs(math.Abs(c.Plane.Offset)-3) > 1e-6 {
		t.Errorf("Offset = %v, want ±3", c.Plane.Offset)
	}
}

func TestPlaneNormalIndependentOfParameterization(t *testing.T) {
	// Two patches of the same tilted plane with different edge vectors
	// and domains must yield parallel normals.
	a := surf.Plane{
		Origin: types.Point{},
		DU:     types.Vector{X: 1, Z: 1},
		DV:     types.Vector{Y: 1},
		Dom:    types.Domain{U: types.Interval{Min: 0, Max: 4}, V: types.Interval{Min: 0, Max: 4}},
	}
	b := surf.Plane{
		Origin: types.Point{X: 2, Y: 1, Z: 2},
		DU:     types.Vector{X: -2, Z: -2},
		DV:     types.Vector{X: 1, Y: 3, Z: 1},
		Dom:    types.Domain{U: types.Interval{Min: -1, Max: 1}, V: types.Interval{Min: 0, Max: 2}},
	}
	ca, err := Classify(a, tol())
	if err != nil {
		t.Fatalf("Classify(a): %v", err)
	}
	cb, err := Classify(b, tol())
	if err != nil {
		t.Fatalf("Classify(b): %v", err)
	}
	if ca.Kind != types.KindPlane || cb.Kind != types.KindPlane {
		t.Fatalf("kinds = %s, %s, want plane, plane", ca.Kind, cb.Kind)
	}
	if !tol().IsParallel(ca.Plane.Normal, cb.Plane.Normal) {
		t.Errorf("normals differ: %v vs %v", ca.Plane.Normal, cb.Plane.Normal)
	}
}

// --- cylinder ---

func TestClassifyCylinder(t *testing.T) {
	s := zCylinder(5, 50)
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCylinder {
		t.Fatalf("Kind = %s, want cylinder", c.Kind)
	}
	if math.Abs(c.Cylinder.Radius-5) > 0.01 {
		t.Errorf("Radius = %v, want 5.0", c.Cylinder.Radius)
	}
	if math.Abs(math.Abs(c.Cylinder.Axis.Z)-1) > 1e-4 {
		t.Errorf("Axis = %v, want ±Z", c.Cylinder.Axis)
	}
}

func TestClassifyCylinderResampledDeviation(t *testing.T) {
	s := zCylinder(5, 50)
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCylinder {
		t.Fatalf("Kind = %s, want cylinder", c.Kind)
	}

	// 20 fresh random samples must sit on the fitted cylinder.
	rng := rand.New(rand.NewSource(42))
	dom := s.Domain()
	for i := 0; i < 20; i++ {
		u := dom.U.Min + dom.U.Length()*rng.Float64()
		v := dom.V.Min + dom.V.Length()*rng.Float64()
		p := s.PointAt(u, v)
		dev := math.Abs(distToLine(p, c.Cylinder.Origin, c.Cylinder.Axis) - c.Cylinder.Radius)
		if dev > tol().Distance() {
			t.Errorf("sample %d deviates by %g", i, dev)
		}
	}
}

func TestClassifyCylinderTiltedAxis(t *testing.T) {
	axis := types.Vector{X: 1, Y: 1, Z: 1}
	s := surf.Cylinder{
		Origin: types.Point{X: 3, Y: -2, Z: 7},
		Axis:   axis,
		Radius: 2.5,
		Dom:    fullRevolve(0, 12),
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCylinder {
		t.Fatalf("Kind = %s, want cylinder", c.Kind)
	}
	if !tol().IsParallel(c.Cylinder.Axis, axis) {
		t.Errorf("Axis = %v, want parallel to %v", c.Cylinder.Axis, axis)
	}
	if math.Abs(c.Cylinder.Radius-2.5) > 0.01 {
		t.Errorf("Radius = %v, want 2.5", c.Cylinder.Radius)
	}
}

func TestClassifyCylinderPartialArc(t *testing.T) {
	s := surf.Cylinder{
		Origin: types.Point{},
		Axis:   types.Vector{Z: 1},
		Radius: 8,
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: math.Pi / 2}, // quarter wrap
			V: types.Interval{Min: 0, Max: 20},
		},
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCylinder {
		t.Fatalf("Kind = %s, want cylinder (quarter arc must not alias as plane)", c.Kind)
	}
	if math.Abs(c.Cylinder.Radius-8) > 0.01 {
		t.Errorf("Radius = %v, want 8", c.Cylinder.Radius)
	}
}

// swapped parameterization: circles run along v, axis along u.
type swapped struct {
	inner types.Surface
}

func (s swapped) Domain() types.Domain {
	d := s.inner.Domain()
	return types.Domain{U: d.V, V: d.U}
}

func (s swapped) PointAt(u, v float64) types.Point {
	return s.inner.PointAt(v, u)
}

func TestClassifyCylinderSwappedParameters(t *testing.T) {
	s := swapped{inner: zCylinder(4, 30)}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCylinder {
		t.Fatalf("Kind = %s, want cylinder", c.Kind)
	}
	if math.Abs(c.Cylinder.Radius-4) > 0.01 {
		t.Errorf("Radius = %v, want 4", c.Cylinder.Radius)
	}
}

// --- cone ---

func TestClassifyCone(t *testing.T) {
	s := surf.Cone{
		Apex:         types.Point{},
		Axis:         types.Vector{Z: 1},
		HalfAngleDeg: 30,
		Dom:          fullRevolve(10, 30),
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCone {
		t.Fatalf("Kind = %s, want cone", c.Kind)
	}
	if math.Abs(c.Cone.HalfAngleDeg-30) > 0.1 {
		t.Errorf("HalfAngleDeg = %v, want 30", c.Cone.HalfAngleDeg)
	}
	if c.Cone.Apex.DistanceTo(types.Point{}) > 0.01 {
		t.Errorf("Apex = %v, want origin", c.Cone.Apex)
	}
	if math.Abs(c.Cone.Axis.Z-1) > 1e-4 {
		t.Errorf("Axis = %v, want +Z (toward the opening)", c.Cone.Axis)
	}
	if c.Cone.Radius <= 0 {
		t.Errorf("reference Radius = %v, want > 0", c.Cone.Radius)
	}
}

func TestClassifyConeReversedAxis(t *testing.T) {
	// Radius shrinks along +Z; the fitted axis must flip to point from
	// the apex into the opening.
	s := surf.Cone{
		Apex:         types.Point{Z: 40},
		Axis:         types.Vector{Z: -1},
		HalfAngleDeg: 15,
		Dom:          fullRevolve(5, 25),
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindCone {
		t.Fatalf("Kind = %s, want cone", c.Kind)
	}
	if math.Abs(c.Cone.Axis.Z+1) > 1e-4 {
		t.Errorf("Axis = %v, want -Z", c.Cone.Axis)
	}
	if c.Cone.Apex.DistanceTo(types.Point{Z: 40}) > 0.01 {
		t.Errorf("Apex = %v, want (0,0,40)", c.Cone.Apex)
	}
}

// --- free-form fallbacks ---

func TestClassifySphereIsFreeForm(t *testing.T) {
	s := surf.Sphere{
		Center: types.Point{},
		Radius: 10,
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: 2 * math.Pi},
			V: types.Interval{Min: -math.Pi / 3, Max: math.Pi / 3},
		},
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindFreeForm {
		t.Errorf("Kind = %s, want free_form (sphere fits no supported primitive)", c.Kind)
	}
}

func TestClassifyWaveIsFreeForm(t *testing.T) {
	s := surf.Wave{
		Amplitude: 2,
		Dom: types.Domain{
			U: types.Interval{Min: 0, Max: 3},
			V: types.Interval{Min: 0, Max: 3},
		},
	}
	c, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if c.Kind != types.KindFreeForm {
		t.Errorf("Kind = %s, want free_form", c.Kind)
	}
	if c.Reason == "" {
		t.Error("free-form result should carry a diagnostic reason")
	}
}

// --- preconditions and idempotence ---

func TestClassifyInvalidDomain(t *testing.T) {
	tests := []struct {
		name string
		dom  types.Domain
	}{
		{"zero-width u", types.Domain{U: types.Interval{Min: 1, Max: 1}, V: types.Interval{Min: 0, Max: 1}}},
		{"reversed v", types.Domain{U: types.Interval{Min: 0, Max: 1}, V: types.Interval{Min: 2, Max: 1}}},
		{"both empty", types.Domain{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := surf.Plane{DU: types.Vector{X: 1}, DV: types.Vector{Y: 1}, Dom: tt.dom}
			_, err := Classify(s, tol())
			if err == nil {
				t.Fatal("Classify should fail for a degenerate domain")
			}
			kind, ok := types.FailureKindOf(err)
			if !ok || kind != types.FailInvalidDomain {
				t.Errorf("failure kind = %v, want invalid_domain", kind)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	s := zCylinder(5, 50)
	c1, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("first Classify: %v", err)
	}
	c2, err := Classify(s, tol())
	if err != nil {
		t.Fatalf("second Classify: %v", err)
	}
	if c1.Kind != c2.Kind {
		t.Fatalf("kinds differ: %s vs %s", c1.Kind, c2.Kind)
	}
	if math.Abs(c1.Cylinder.Radius-c2.Cylinder.Radius) > tol().Distance() {
		t.Errorf("radii differ: %v vs %v", c1.Cylinder.Radius, c2.Cylinder.Radius)
	}
	if !tol().IsParallel(c1.Cylinder.Axis, c2.Cylinder.Axis) {
		t.Errorf("axes differ: %v vs %v", c1.Cylinder.Axis, c2.Cylinder.Axis)
	}
}

// --- internal fitting helpers ---

func TestFitCircleExact(t *testing.T) {
	pts := make([]types.Point, 12)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / 11
		pts[i] = types.Point{X: 3 + 5*math.Cos(a), Y: -1 + 5*math.Sin(a), Z: 2}
	}
	c, err := fitCircle(pts, tol())
	if err != nil {
		t.Fatalf("fitCircle: %v", err)
	}
	if math.Abs(c.radius-5) > 1e-9 {
		t.Errorf("radius = %v, want 5", c.radius)
	}
	if c.center.DistanceTo(types.Point{X: 3, Y: -1, Z: 2}) > 1e-9 {
		t.Errorf("center = %v, want (3,-1,2)", c.center)
	}
	if math.Abs(math.Abs(c.normal.Z)-1) > 1e-9 {
		t.Errorf("normal = %v, want ±Z", c.normal)
	}
}

func TestFitCircleRejectsLine(t *testing.T) {
	pts := make([]types.Point, 8)
	for i := range pts {
		pts[i] = types.Point{X: float64(i), Y: 2 * float64(i), Z: 0}
	}
	if _, err := fitCircle(pts, tol()); err == nil {
		t.Error("fitCircle should reject colinear points")
	}
}

func TestFitLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 1 + 2x
	intercept, slope, maxResid := fitLine(x, y)
	if math.Abs(intercept-1) > 1e-12 || math.Abs(slope-2) > 1e-12 {
		t.Errorf("fit = %v + %v*x, want 1 + 2x", intercept, slope)
	}
	if maxResid > 1e-12 {
		t.Errorf("maxResid = %v, want ~0", maxResid)
	}
}
