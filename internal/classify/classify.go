// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify fits parametric surfaces to canonical primitives.
// Probing runs in a fixed priority order (plane, cylinder, cone, then
// free-form fallback) so the ambiguity that a plane is also a degenerate
// cylinder resolves the same way every time.
package classify

import (
	"math"

	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

const (
	// verifyStations is the per-direction grid density for the final
	// deviation check of each candidate fit. At least 3 stations per
	// direction are required so curvature cannot alias as planar.
	verifyStations = 9

	// circleSamples is the number of samples taken along the candidate
	// circumferential direction when fitting iso-curve circles.
	circleSamples = 12

	// axialStations is the number of iso-curve circles fitted along the
	// candidate axial direction.
	axialStations = 5
)

// Classify fits s to each supported primitive in priority order and
// returns the first fit whose sampled deviation stays within the
// distance tolerance. It fails only for a degenerate UV domain; an
// unrecognized shape degrades to a free-form result instead.
func Classify(s types.Surface, tol tolerance.Context) (types.Classification, error) {
	dom := s.Domain()
	if !dom.Valid() {
		return types.Classification{}, types.Failf(types.FailInvalidDomain,
			"u [%g, %g], v [%g, %g]", dom.U.Min, dom.U.Max, dom.V.Min, dom.V.Max)
	}

	grid := sampleGrid(s, verifyStations, verifyStations)

	if p, ok := fitPlane(s, grid, tol); ok {
		return types.Classification{Kind: types.KindPlane, Plane: p}, nil
	}
	if cyl, ok := fitCylinder(s, grid, tol); ok {
		return types.Classification{Kind: types.KindCylinder, Cylinder: cyl}, nil
	}
	if cone, ok := fitCone(s, grid, tol); ok {
		return types.Classification{Kind: types.KindCone, Cone: cone}, nil
	}

	return types.Classification{
		Kind:   types.KindFreeForm,
		Reason: "no closed-form fit within tolerance",
	}, nil
}

// sampleGrid evaluates s on an nu x nv grid spanning the full UV domain,
// endpoints included.
func sampleGrid(s types.Surface, nu, nv int) [][]types.Point {
	dom := s.Domain()
	grid := make([][]types.Point, nu)
	for i := 0; i < nu; i++ {
		u := dom.U.Min + dom.U.Length()*float64(i)/float64(nu-1)
		row := make([]types.Point, nv)
		for j := 0; j < nv; j++ {
			v := dom.V.Min + dom.V.Length()*float64(j)/float64(nv-1)
			row[j] = s.PointAt(u, v)
		}
		grid[i] = row
	}
	return grid
}

// fitPlane fits a plane through the domain corners and center, then
// verifies every grid sample against it.
func fitPlane(s types.Surface, grid [][]types.Point, tol tolerance.Context) (*types.PlaneParams, bool) {
	dom := s.Domain()
	corners := []types.Point{
		s.PointAt(dom.U.Min, dom.V.Min),
		s.PointAt(dom.U.Max, dom.V.Min),
		s.PointAt(dom.U.Max, dom.V.Max),
		s.PointAt(dom.U.Min, dom.V.Max),
	}
	center := s.PointAt(dom.U.Mid(), dom.V.Mid())

	centroid := meanPoint(append(corners, center))

	// Newell accumulation over the corner loop gives a normal that
	// tolerates one degenerate corner pair.
	var n types.Vector
	for i := range corners {
		a := corners[i].Sub(centroid)
		b := corners[(i+1)%len(corners)].Sub(centroid)
		n = n.Add(a.Cross(b))
	}
	if n.Length() == 0 {
		return nil, false
	}
	n = n.Unit()
	offset := n.Dot(centroid.Sub(types.Point{}))

	for _, row := range grid {
		for _, p := range row {
			d := n.Dot(p.Sub(types.Point{})) - offset
			if math.Abs(d) > tol.Distance() {
				return nil, false
			}
		}
	}
	return &types.PlaneParams{Normal: n, Offset: offset}, true
}

// meanPoint returns the centroid of pts. pts must be non-empty.
func meanPoint(pts []types.Point) types.Point {
	var x, y, z float64
	for _, p := range pts {
		x += p.X
		y += p.Y
		z += p.Z
	}
	n := float64(len(pts))
	return types.Point{X: x / n, Y: y / n, Z: z / n}
}
