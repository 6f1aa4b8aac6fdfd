// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"math"

	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// stationSweep is the result of fitting iso-curve circles along one
// parametric direction: per-station circles, the axis line through
// their centers, and each center's signed position on that line.
type stationSweep struct {
	circles []circle3
	origin  types.Point  // first station center
	dir     types.Vector // unit axis direction, first toward last center
	t       []float64    // axial position of each center relative to origin
}

// sweep fits circles to iso-curves at axialStations stations. When
// circAlongU is true, u is the circumferential parameter and the
// stations step along v; otherwise the roles swap. It fails unless
// every station is a circle, the centers are colinear within the
// distance tolerance, and the circle planes are perpendicular to the
// center line within the angular tolerance.
func sweep(s types.Surface, tol tolerance.Context, circAlongU bool) (stationSweep, error) {
	dom := s.Domain()
	circ, axial := dom.U, dom.V
	if !circAlongU {
		circ, axial = dom.V, dom.U
	}

	circles := make([]circle3, axialStations)
	for j := 0; j < axialStations; j++ {
		w := axial.Min + axial.Length()*float64(j)/float64(axialStations-1)
		pts := make([]types.Point, circleSamples)
		for i := 0; i < circleSamples; i++ {
			q := circ.Min + circ.Length()*float64(i)/float64(circleSamples-1)
			if circAlongU {
				pts[i] = s.PointAt(q, w)
			} else {
				pts[i] = s.PointAt(w, q)
			}
		}
		c, err := fitCircle(pts, tol)
		if err != nil {
			return stationSweep{}, fmt.Errorf("station %d: %w", j, err)
		}
		circles[j] = c
	}

	origin := circles[0].center
	span := circles[axialStations-1].center.Sub(origin)
	if span.Length() <= tol.Distance() {
		return stationSweep{}, fmt.Errorf("station centers coincide")
	}
	dir := span.Unit()

	t := make([]float64, axialStations)
	for j, c := range circles {
		rel := c.center.Sub(origin)
		t[j] = rel.Dot(dir)
		// Centers must sit on the axis line.
		if rel.Sub(dir.Scale(t[j])).Length() > tol.Distance() {
			return stationSweep{}, fmt.Errorf("station %d center off axis", j)
		}
		if !tol.IsParallel(c.normal, dir) {
			return stationSweep{}, fmt.Errorf("station %d plane tilted against axis", j)
		}
	}

	return stationSweep{circles: circles, origin: origin, dir: dir, t: t}, nil
}

// fitCylinder probes both parametric orientations for constant-radius
// circular iso-curves and verifies the winning candidate against the
// full sample grid.
func fitCylinder(s types.Surface, grid [][]types.Point, tol tolerance.Context) (*types.CylinderParams, bool) {
	for _, circAlongU := range []bool{true, false} {
		sw, err := sweep(s, tol, circAlongU)
		if err != nil {
			continue
		}

		var sum float64
		for _, c := range sw.circles {
			sum += c.radius
		}
		radius := sum / float64(len(sw.circles))

		constant := true
		for _, c := range sw.circles {
			if !tol.ApproxEqual(c.radius, radius) {
				constant = false
				break
			}
		}
		if !constant {
			continue
		}

		if !verifyCylinder(grid, sw.origin, sw.dir, radius, tol) {
			continue
		}
		return &types.CylinderParams{Origin: sw.origin, Axis: sw.dir, Radius: radius}, true
	}
	return nil, false
}

// fitCone probes both orientations for circular iso-curves whose radius
// varies linearly along the axis, derives the apex and half-angle, and
// verifies against the full grid. The axis is oriented so radius grows
// along it, pointing from the apex into the cone.
func fitCone(s types.Surface, grid [][]types.Point, tol tolerance.Context) (*types.ConeParams, bool) {
	for _, circAlongU := range []bool{true, false} {
		sw, err := sweep(s, tol, circAlongU)
		if err != nil {
			continue
		}

		radii := make([]float64, len(sw.circles))
		for j, c := range sw.circles {
			radii[j] = c.radius
		}

		intercept, slope, maxResid := fitLine(sw.t, radii)
		if maxResid > tol.Distance() {
			continue
		}
		halfAngle := math.Atan(math.Abs(slope))
		// A near-zero slope is a cylinder; that probe already ran and
		// rejected this surface, so a degenerate cone is not accepted.
		if halfAngle <= tol.AngleRad() {
			continue
		}

		// Orient the axis so radius grows along it. Flipping the axis
		// negates the station coordinates, so r(t) keeps the same
		// intercept with the slope sign flipped.
		origin, dir := sw.origin, sw.dir
		if slope < 0 {
			dir = dir.Scale(-1)
			slope = -slope
		}

		// r(t) = intercept + slope*t crosses zero at the apex.
		tApex := -intercept / slope
		apex := origin.Add(dir.Scale(tApex))

		if !verifyCone(grid, apex, dir, halfAngle, tol) {
			continue
		}
		refRadius := radii[len(radii)/2]
		return &types.ConeParams{
			Apex:         apex,
			Axis:         dir,
			HalfAngleDeg: halfAngle * 180 / math.Pi,
			Radius:       refRadius,
		}, true
	}
	return nil, false
}

// verifyCylinder checks that every grid sample lies on the cylinder
// surface within the distance tolerance.
func verifyCylinder(grid [][]types.Point, origin types.Point, dir types.Vector, radius float64, tol tolerance.Context) bool {
	for _, row := range grid {
		for _, p := range row {
			if !tol.ApproxEqual(distToLine(p, origin, dir), radius) {
				return false
			}
		}
	}
	return true
}

// verifyCone checks that every grid sample lies on the cone's forward
// nappe within the distance tolerance.
func verifyCone(grid [][]types.Point, apex types.Point, dir types.Vector, halfAngle float64, tol tolerance.Context) bool {
	sin, cos := math.Sin(halfAngle), math.Cos(halfAngle)
	for _, row := range grid {
		for _, p := range row {
			t := p.Sub(apex).Dot(dir)
			if t < -tol.Distance() {
				return false
			}
			rho := distToLine(p, apex, dir)
			if math.Abs(rho*cos-t*sin) > tol.Distance() {
				return false
			}
		}
	}
	return true
}

// distToLine returns the perpendicular distance from p to the line
// through origin along unit direction dir.
func distToLine(p, origin types.Point, dir types.Vector) float64 {
	rel := p.Sub(origin)
	return rel.Sub(dir.Scale(rel.Dot(dir))).Length()
}

// fitLine fits y = intercept + slope*x by least squares and returns the
// largest absolute residual.
func fitLine(x, y []float64) (intercept, slope, maxResid float64) {
	n := float64(len(x))
	var sx, sy, sxx, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		sxy += x[i] * y[i]
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return y[0], 0, math.Inf(1)
	}
	slope = (n*sxy - sx*sy) / den
	intercept = (sy - slope*sx) / n
	for i := range x {
		r := math.Abs(y[i] - (intercept + slope*x[i]))
		if r > maxResid {
			maxResid = r
		}
	}
	return intercept, slope, maxResid
}
