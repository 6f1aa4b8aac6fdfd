// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package surf provides analytic parametric surfaces and loads scene
// files describing them. It is the surface source collaborator: a scene
// is assumed to already be separated into individual surfaces, and the
// loader does not verify topological separateness.
package surf

import (
	"math"

	"github.com/pdiddy/brep-axis/pkg/types"
)

// Named pairs a surface with its caller-assigned scene name.
type Named struct {
	Name string
	types.Surface
}

// frame returns two unit vectors spanning the plane perpendicular to
// axis. axis need not be unit length but must be non-zero.
func frame(axis types.Vector) (e1, e2 types.Vector) {
	ref := types.Vector{X: 1}
	if math.Abs(axis.X) > 0.9*axis.Length() {
		ref = types.Vector{Y: 1}
	}
	e1 = ref.Cross(axis).Unit()
	e2 = axis.Unit().Cross(e1)
	return e1, e2
}

// Plane is a flat patch: PointAt(u,v) = Origin + DU*u + DV*v.
type Plane struct {
	Origin types.Point
	DU, DV types.Vector
	Dom    types.Domain
}

func (p Plane) Domain() types.Domain { return p.Dom }

func (p Plane) PointAt(u, v float64) types.Point {
	return p.Origin.Add(p.DU.Scale(u)).Add(p.DV.Scale(v))
}

// Cylinder is a right circular cylinder patch. u is the angle around
// the axis in radians; v is the axial distance from Origin.
type Cylinder struct {
	Origin types.Point  // point on the axis at v = 0
	Axis   types.Vector // axis direction, normalized on evaluation
	Radius float64
	Dom    types.Domain
}

func (c Cylinder) Domain() types.Domain { return c.Dom }

func (c Cylinder) PointAt(u, v float64) types.Point {
	e1, e2 := frame(c.Axis)
	radial := e1.Scale(math.Cos(u)).Add(e2.Scale(math.Sin(u))).Scale(c.Radius)
	return c.Origin.Add(c.Axis.Unit().Scale(v)).Add(radial)
}

// Cone is a right circular cone patch. u is the angle around the axis;
// v is the axial distance from the apex, so the local radius is
// v*tan(half-angle).
type Cone struct {
	Apex         types.Point
	Axis         types.Vector
	HalfAngleDeg float64
	Dom          types.Domain
}

func (c Cone) Domain() types.Domain { return c.Dom }

func (c Cone) PointAt(u, v float64) types.Point {
	e1, e2 := frame(c.Axis)
	r := v * math.Tan(c.HalfAngleDeg*math.Pi/180)
	radial := e1.Scale(math.Cos(u)).Add(e2.Scale(math.Sin(u))).Scale(r)
	return c.Apex.Add(c.Axis.Unit().Scale(v)).Add(radial)
}

// Sphere is a sphere patch. u is the azimuth; v is the latitude in
// radians, zero at the equator.
type Sphere struct {
	Center types.Point
	Radius float64
	Dom    types.Domain
}

func (s Sphere) Domain() types.Domain { return s.Dom }

func (s Sphere) PointAt(u, v float64) types.Point {
	cosV := math.Cos(v)
	return s.Center.Add(types.Vector{
		X: s.Radius * cosV * math.Cos(u),
		Y: s.Radius * cosV * math.Sin(u),
		Z: s.Radius * math.Sin(v),
	})
}

// Wave is a doubly-curved free-form patch over the XY plane:
// z = Amplitude * sin(u) * cos(v). It fits none of the closed forms at
// any useful amplitude and stands in for generic NURBS patches.
type Wave struct {
	Origin    types.Point
	Amplitude float64
	Dom       types.Domain
}

func (w Wave) Domain() types.Domain { return w.Dom }

func (w Wave) PointAt(u, v float64) types.Point {
	return w.Origin.Add(types.Vector{
		X: u,
		Y: v,
		Z: w.Amplitude * math.Sin(u) * math.Cos(v),
	})
}

// Grid is a tabulated surface: a rectangular lattice of 3D points with
// bilinear interpolation between them. The domain is the unit square
// scaled by the lattice dimensions.
type Grid struct {
	Points [][]types.Point // Points[i][j], i along u, j along v
}

func (g Grid) Domain() types.Domain {
	return types.Domain{
		U: types.Interval{Min: 0, Max: float64(len(g.Points) - 1)},
		V: types.Interval{Min: 0, Max: float64(len(g.Points[0]) - 1)},
	}
}

func (g Grid) PointAt(u, v float64) types.Point {
	nu, nv := len(g.Points), len(g.Points[0])
	i := int(math.Floor(u))
	j := int(math.Floor(v))
	if i < 0 {
		i = 0
	}
	if i > nu-2 {
		i = nu - 2
	}
	if j < 0 {
		j = 0
	}
	if j > nv-2 {
		j = nv - 2
	}
	fu, fv := u-float64(i), v-float64(j)

	lerp := func(a, b types.Point, t float64) types.Point {
		return a.Add(b.Sub(a).Scale(t))
	}
	p0 := lerp(g.Points[i][j], g.Points[i+1][j], fu)
	p1 := lerp(g.Points[i][j+1], g.Points[i+1][j+1], fu)
	return lerp(p0, p1, fv)
}
