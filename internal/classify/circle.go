// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"math"

	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// circle3 is a circle in 3D: center, unit plane normal, and radius.
type circle3 struct {
	center types.Point
	normal types.Vector
	radius float64
}

// fitCircle fits a circle to an ordered point sequence, typically the
// samples of one iso-parametric curve. The points must be coplanar and
// equidistant from a common center within the distance tolerance.
//
// The center comes from the determinant formula for the circle through
// three points:
//
//	D  = 2(x1(y2-y3) + x2(y3-y1) + x3(y1-y2))
//	cx = ((x1²+y1²)(y2-y3) + (x2²+y2²)(y3-y1) + (x3²+y3²)(y1-y2)) / D
//	cy = ((x1²+y1²)(x3-x2) + (x2²+y2²)(x1-x3) + (x3²+y3²)(x2-x1)) / D
//
// evaluated in the fitted plane. The three anchor points sit at 0, 1/3,
// and 2/3 of the sequence so a closed circle, whose first and last
// samples coincide, still yields three distinct anchors.
func fitCircle(pts []types.Point, tol tolerance.Context) (circle3, error) {
	if len(pts) < 3 {
		return circle3{}, fmt.Errorf("need at least 3 points, got %d", len(pts))
	}

	centroid := meanPoint(pts)

	// Plane normal by Newell accumulation along the sequence.
	var n types.Vector
	for i := 0; i+1 < len(pts); i++ {
		a := pts[i].Sub(centroid)
		b := pts[i+1].Sub(centroid)
		n = n.Add(a.Cross(b))
	}
	if n.Length() < 1e-12 {
		return circle3{}, fmt.Errorf("points are colinear")
	}
	n = n.Unit()

	// Coplanarity check before trusting the projection.
	for _, p := range pts {
		if math.Abs(n.Dot(p.Sub(centroid))) > tol.Distance() {
			return circle3{}, fmt.Errorf("points are not coplanar")
		}
	}

	// In-plane orthonormal basis.
	e1 := pts[0].Sub(centroid)
	e1 = e1.Sub(n.Scale(n.Dot(e1)))
	if e1.Length() < 1e-12 {
		return circle3{}, fmt.Errorf("degenerate in-plane basis")
	}
	e1 = e1.Unit()
	e2 := n.Cross(e1)

	project := func(p types.Point) (x, y float64) {
		d := p.Sub(centroid)
		return d.Dot(e1), d.Dot(e2)
	}

	i1, i2, i3 := 0, len(pts)/3, 2*len(pts)/3
	x1, y1 := project(pts[i1])
	x2, y2 := project(pts[i2])
	x3, y3 := project(pts[i3])

	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < 1e-12 {
		return circle3{}, fmt.Errorf("anchor points are colinear")
	}
	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	cx := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	cy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d

	center := centroid.Add(e1.Scale(cx)).Add(e2.Scale(cy))

	// Radius as the mean distance, with every sample checked against it.
	var sum float64
	for _, p := range pts {
		sum += p.DistanceTo(center)
	}
	radius := sum / float64(len(pts))
	if radius <= tol.Distance() {
		return circle3{}, fmt.Errorf("radius %g below tolerance", radius)
	}
	for _, p := range pts {
		if !tol.ApproxEqual(p.DistanceTo(center), radius) {
			return circle3{}, fmt.Errorf("point deviates from circle by %g",
				math.Abs(p.DistanceTo(center)-radius))
		}
	}

	return circle3{center: center, normal: n, radius: radius}, nil
}
