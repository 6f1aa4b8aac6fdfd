// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package axisproj derives the bounded axis segment for surfaces
// classified as rotational primitives.
package axisproj

import (
	"github.com/pdiddy/brep-axis/internal/tolerance"
	"github.com/pdiddy/brep-axis/pkg/types"
)

// Project computes the line segment on the classified axis bounded by
// the surface's own parametric footprint: the surface is sampled at the
// two v-extremes of its domain at mid-u, and both samples are projected
// onto the axis line. The segment approximates the surface's extent
// along the axis; it is not a true bound for non-rectangular trims.
//
// The classification must be a cylinder or cone with a unit axis
// direction. A zero-length segment is possible when both edge samples
// project to the same axis station; callers treat that as degenerate.
func Project(s types.Surface, c types.Classification, tol tolerance.Context) (types.AxisSegment, error) {
	origin, dir, ok := c.AxisLine()
	if !ok {
		return types.AxisSegment{}, types.Failf(types.FailUnsupportedKind,
			"axis projection needs a cylinder or cone, got %s", c.Kind)
	}
	if !tol.IsUnit(dir) {
		return types.AxisSegment{}, types.Failf(types.FailDegenerateAxis,
			"axis direction has length %g", dir.Length())
	}

	dom := s.Domain()
	uMid := dom.U.Mid()
	p1 := s.PointAt(uMid, dom.V.Min)
	p2 := s.PointAt(uMid, dom.V.Max)

	t1 := p1.Sub(origin).Dot(dir)
	t2 := p2.Sub(origin).Dot(dir)

	return types.AxisSegment{
		Start: origin.Add(dir.Scale(t1)),
		End:   origin.Add(dir.Scale(t2)),
	}, nil
}
