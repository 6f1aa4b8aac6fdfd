// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tolerance

import (
	"testing"

	"github.com/pdiddy/brep-axis/pkg/types"
)

func TestNewDefaults(t *testing.T) {
	c := New(types.ToleranceConfig{})
	if c.Distance() != DefaultDistance {
		t.Errorf("Distance() = %v, want %v", c.Distance(), DefaultDistance)
	}
	if c.AngleRad() <= 0 {
		t.Errorf("AngleRad() = %v, want > 0", c.AngleRad())
	}
}

func TestNewExplicit(t *testing.T) {
	c := New(types.ToleranceConfig{Distance: 0.5, AngleDeg: 1})
	if c.Distance() != 0.5 {
		t.Errorf("Distance() = %v, want 0.5", c.Distance())
	}
}

func TestApproxEqual(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"equal", 1.0, 1.0, true},
		{"within", 1.0, 1.005, true},
		{"boundary", 1.0, 1.01, true},
		{"outside", 1.0, 1.02, false},
		{"negative", -3.0, -3.001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ApproxEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsUnit(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		v    types.Vector
		want bool
	}{
		{"axis", types.Vector{X: 0, Y: 0, Z: 1}, true},
		{"diagonal", types.Vector{X: 0.5773502692, Y: 0.5773502692, Z: 0.5773502692}, true},
		{"zero", types.Vector{}, false},
		{"double", types.Vector{X: 0, Y: 0, Z: 2}, false},
		{"slightly off", types.Vector{X: 0, Y: 0, Z: 1.0005}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsUnit(tt.v); got != tt.want {
				t.Errorf("IsUnit(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestIsParallel(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		u, v types.Vector
		want bool
	}{
		{"same", types.Vector{Z: 1}, types.Vector{Z: 1}, true},
		{"opposite", types.Vector{Z: 1}, types.Vector{Z: -1}, true},
		{"scaled", types.Vector{Z: 1}, types.Vector{Z: 7.5}, true},
		{"perpendicular", types.Vector{Z: 1}, types.Vector{X: 1}, false},
		{"slightly skew", types.Vector{Z: 1}, types.Vector{X: 0.1, Z: 1}, false},
		{"zero", types.Vector{}, types.Vector{Z: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsParallel(tt.u, tt.v); got != tt.want {
				t.Errorf("IsParallel(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}
