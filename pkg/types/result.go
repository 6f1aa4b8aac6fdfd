// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// PrimitiveKind identifies the canonical shape a surface was fitted to.
// Exactly one kind is assigned per surface; FreeForm is the fallback
// when no closed-form fit holds within tolerance.
type PrimitiveKind string

const (
	KindCylinder PrimitiveKind = "cylinder"
	KindCone     PrimitiveKind = "cone"
	KindPlane    PrimitiveKind = "plane"
	KindFreeForm PrimitiveKind = "free_form"
)

// Kinds lists all primitive kinds in classification priority order.
var Kinds = []PrimitiveKind{KindPlane, KindCylinder, KindCone, KindFreeForm}

// CylinderParams describes a fitted cylinder.
type CylinderParams struct {
	// Origin is a point on the axis line.
	Origin Point `json:"origin" yaml:"origin"`

	// Axis is the unit axis direction.
	Axis Vector `json:"axis" yaml:"axis"`

	// Radius is the cylinder radius, strictly positive.
	Radius float64 `json:"radius" yaml:"radius"`
}

// ConeParams describes a fitted cone.
type ConeParams struct {
	// Apex is the cone apex.
	Apex Point `json:"apex" yaml:"apex"`

	// Axis is the unit axis direction, pointing from the apex into the
	// opening cone.
	Axis Vector `json:"axis" yaml:"axis"`

	// HalfAngleDeg is the half-angle between axis and generator lines,
	// strictly inside (0, 90) degrees.
	HalfAngleDeg float64 `json:"half_angle_deg" yaml:"half_angle_deg"`

	// Radius is the radius at the reference station where the fit was
	// anchored. Reporting only; it does not constrain the cone.
	Radius float64 `json:"radius" yaml:"radius"`
}

// PlaneParams describes a fitted plane in Hessian normal form:
// points p on the plane satisfy Normal·p = Offset.
type PlaneParams struct {
	Normal Vector  `json:"normal" yaml:"normal"`
	Offset float64 `json:"offset" yaml:"offset"`
}

// Classification is the typed result of fitting one surface. Exactly one
// of the parameter fields is set, matching Kind.
type Classification struct {
	Kind PrimitiveKind `json:"kind" yaml:"kind"`

	Cylinder *CylinderParams `json:"cylinder,omitempty" yaml:"cylinder,omitempty"`
	Cone     *ConeParams     `json:"cone,omitempty" yaml:"cone,omitempty"`
	Plane    *PlaneParams    `json:"plane,omitempty" yaml:"plane,omitempty"`

	// Reason carries an optional diagnostic for free-form results.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// AxisLine returns the axis origin and unit direction for rotational
// kinds. ok is false for planes and free-form surfaces.
func (c Classification) AxisLine() (origin Point, dir Vector, ok bool) {
	switch c.Kind {
	case KindCylinder:
		if c.Cylinder != nil {
			return c.Cylinder.Origin, c.Cylinder.Axis, true
		}
	case KindCone:
		if c.Cone != nil {
			return c.Cone.Apex, c.Cone.Axis, true
		}
	}
	return Point{}, Vector{}, false
}

// AxisSegment is the bounded line on a rotational primitive's axis,
// clipped to the surface's own parametric footprint.
type AxisSegment struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// Length returns the segment length. Zero-length segments are possible
// when both domain edge samples project to the same axis station.
func (s AxisSegment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// FailureKind labels a per-item failure or policy exclusion.
type FailureKind string

const (
	// FailInvalidDomain marks a surface whose UV domain is degenerate.
	FailInvalidDomain FailureKind = "invalid_domain"

	// FailUnsupportedKind marks an axis projection attempted on a
	// non-rotational classification. Indicates a wiring bug.
	FailUnsupportedKind FailureKind = "unsupported_kind"

	// FailDegenerateAxis marks a classification whose axis direction is
	// not unit length. Indicates a wiring bug.
	FailDegenerateAxis FailureKind = "degenerate_axis"

	// FailBelowDiameter marks a cylinder excluded by the caller's
	// minimum-diameter filter. A policy exclusion, not a true error.
	FailBelowDiameter FailureKind = "below_diameter_threshold"
)

// Failure is an error carrying a FailureKind so batch orchestration can
// record machine-readable outcomes without parsing messages.
type Failure struct {
	Kind   FailureKind
	Detail string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Detail == "" {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Failf builds a Failure with a formatted detail message.
func Failf(kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// FailureKindOf extracts the FailureKind from err, unwrapping as needed.
// ok is false if err carries no kind.
func FailureKindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}

// ItemResult records the outcome for one surface in a batch. A failed
// item still records which surface failed and why; a filtered item keeps
// its classification but carries the exclusion kind in Error.
type ItemResult struct {
	// Index is the position of the surface in the input sequence.
	Index int `json:"index" yaml:"index"`

	// Name is the caller-assigned surface name, if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Source is a non-owning back-reference to the input surface.
	Source Surface `json:"-" yaml:"-"`

	Classification *Classification `json:"classification,omitempty" yaml:"classification,omitempty"`
	Axis           *AxisSegment    `json:"axis,omitempty" yaml:"axis,omitempty"`

	// Error is the failure or exclusion kind, empty on clean success.
	Error FailureKind `json:"error,omitempty" yaml:"error,omitempty"`

	// Detail is the human-readable failure message, if any.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// OK reports whether the item classified cleanly (policy exclusions are
// not OK in this sense; check Error for FailBelowDiameter to tell the
// two apart).
func (r ItemResult) OK() bool {
	return r.Error == "" && r.Classification != nil
}

// Report aggregates a batch run. Items preserves input order 1:1 with
// the processed sequence, including failed items.
type Report struct {
	Total        int                   `json:"total" yaml:"total"`
	CountsByKind map[PrimitiveKind]int `json:"counts_by_kind" yaml:"counts_by_kind"`

	// Skipped counts surfaces rejected before classification
	// (invalid domains).
	Skipped int `json:"skipped" yaml:"skipped"`

	// Filtered counts cylinders excluded by the minimum-diameter filter.
	Filtered int `json:"filtered" yaml:"filtered"`

	Items []ItemResult `json:"items" yaml:"items"`
}

// Count returns the tally for one kind.
func (r Report) Count(kind PrimitiveKind) int {
	return r.CountsByKind[kind]
}
