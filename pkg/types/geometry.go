// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model: geometry primitives,
// classification results, batch reports, and stage configuration.
package types

import "math"

// Point is a position in 3D model space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vector is a displacement or direction in 3D model space.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference of v and w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product of v and w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. A zero vector is returned
// unchanged; callers check length before relying on direction.
func (v Vector) Unit() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Interval is a closed parameter range.
type Interval struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Mid returns the interval midpoint.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// Length returns Max - Min.
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// Domain is the rectangular UV parameter extent of a surface.
type Domain struct {
	U Interval `json:"u" yaml:"u"`
	V Interval `json:"v" yaml:"v"`
}

// Valid reports whether both parameter intervals have positive length.
func (d Domain) Valid() bool {
	return d.U.Length() > 0 && d.V.Length() > 0
}

// Surface is a parametric map from a rectangular UV domain to 3D points.
// Implementations are read-only inputs; nothing in this module mutates
// a surface.
type Surface interface {
	// Domain returns the rectangular parameter extent over which the
	// surface is evaluable.
	Domain() Domain

	// PointAt evaluates the surface at (u, v). Behavior outside the
	// domain is implementation-defined; callers stay inside it.
	PointAt(u, v float64) Point
}
