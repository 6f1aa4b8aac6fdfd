// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tolerance provides the shared numeric precision used by every
// geometric comparison in the pipeline. One immutable Context is built
// from configuration and passed by value to the fitting and projection
// stages; there is no mutable global.
package tolerance

import (
	"math"

	"github.com/pdiddy/brep-axis/pkg/types"
)

const (
	// DefaultDistance is the distance tolerance in model units.
	DefaultDistance = 0.01

	// DefaultAngleDeg is the angular tolerance in degrees.
	DefaultAngleDeg = 0.1
)

// Context holds a positive distance tolerance and a derived angular
// tolerance. The zero Context is not usable; construct with New or
// Default.
type Context struct {
	dist     float64
	angleRad float64
}

// New builds a Context from configuration, substituting defaults for
// non-positive values.
func New(cfg types.ToleranceConfig) Context {
	d := cfg.Distance
	if d <= 0 {
		d = DefaultDistance
	}
	a := cfg.AngleDeg
	if a <= 0 {
		a = DefaultAngleDeg
	}
	return Context{dist: d, angleRad: a * math.Pi / 180}
}

// Default returns the process-wide default Context for convenience
// callers.
func Default() Context {
	return New(types.ToleranceConfig{})
}

// Distance returns the distance tolerance in model units.
func (c Context) Distance() float64 { return c.dist }

// AngleRad returns the angular tolerance in radians.
func (c Context) AngleRad() float64 { return c.angleRad }

// ApproxEqual reports whether a and b differ by at most the distance
// tolerance.
func (c Context) ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= c.dist
}

// IsZero reports whether x is within the distance tolerance of zero.
func (c Context) IsZero(x float64) bool {
	return math.Abs(x) <= c.dist
}

// IsUnit reports whether v has unit length within the angular tolerance.
func (c Context) IsUnit(v types.Vector) bool {
	return math.Abs(v.Length()-1) <= c.angleRad
}

// IsParallel reports whether u and v point along the same line, in
// either direction, within the angular tolerance. Zero vectors are
// never parallel to anything.
func (c Context) IsParallel(u, v types.Vector) bool {
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return false
	}
	// sin of the angle between the lines, from the cross product.
	sin := u.Cross(v).Length() / (lu * lv)
	return sin <= math.Sin(c.angleRad)
}
