// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package surf

import (
	"fmt"
	"math"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/brep-axis/pkg/types"
)

// Scene is the on-disk representation of a surface collection.
type Scene struct {
	Surfaces []Entry `yaml:"surfaces"`
}

// Entry describes one surface in a scene file. Shape selects which of
// the parameter fields apply; Domain overrides the shape's default
// parameter extent when present (including deliberately degenerate
// extents, which the pipeline reports as invalid rather than rejecting
// at load time).
type Entry struct {
	Name  string `yaml:"name,omitempty"`
	Shape string `yaml:"shape"`

	Origin *types.Point  `yaml:"origin,omitempty"`
	Apex   *types.Point  `yaml:"apex,omitempty"`
	Center *types.Point  `yaml:"center,omitempty"`
	Axis   *types.Vector `yaml:"axis,omitempty"`
	DU     *types.Vector `yaml:"du,omitempty"`
	DV     *types.Vector `yaml:"dv,omitempty"`

	Radius       float64 `yaml:"radius,omitempty"`
	Length       float64 `yaml:"length,omitempty"`
	HalfAngleDeg float64 `yaml:"half_angle_deg,omitempty"`
	Amplitude    float64 `yaml:"amplitude,omitempty"`

	// ArcDeg is the circumferential wrap for cylinders and cones
	// (default 360 for a closed surface of revolution).
	ArcDeg float64 `yaml:"arc_deg,omitempty"`

	Points [][]types.Point `yaml:"points,omitempty"`

	Domain *types.Domain `yaml:"domain,omitempty"`
}

// Load reads a scene file and builds its surfaces in file order.
func Load(path string) ([]Named, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds surfaces from scene YAML.
func Parse(data []byte) ([]Named, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if len(scene.Surfaces) == 0 {
		return nil, fmt.Errorf("scene contains no surfaces")
	}

	out := make([]Named, 0, len(scene.Surfaces))
	for i, e := range scene.Surfaces {
		s, err := e.Build()
		if err != nil {
			return nil, fmt.Errorf("surface %d (%s): %w", i, e.Shape, err)
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", e.Shape, i)
		}
		out = append(out, Named{Name: name, Surface: s})
	}
	return out, nil
}

// Build constructs the surface described by the entry.
func (e Entry) Build() (types.Surface, error) {
	switch e.Shape {
	case "plane":
		if e.Origin == nil || e.DU == nil || e.DV == nil {
			return nil, fmt.Errorf("plane requires origin, du, dv")
		}
		return Plane{
			Origin: *e.Origin,
			DU:     *e.DU,
			DV:     *e.DV,
			Dom:    e.domainOr(unitSquare()),
		}, nil

	case "cylinder":
		if e.Origin == nil || e.Axis == nil {
			return nil, fmt.Errorf("cylinder requires origin and axis")
		}
		if e.Radius <= 0 {
			return nil, fmt.Errorf("cylinder radius must be positive, got %g", e.Radius)
		}
		return Cylinder{
			Origin: *e.Origin,
			Axis:   *e.Axis,
			Radius: e.Radius,
			Dom:    e.domainOr(revolveDomain(e.ArcDeg, 0, e.Length)),
		}, nil

	case "cone":
		if e.Apex == nil || e.Axis == nil {
			return nil, fmt.Errorf("cone requires apex and axis")
		}
		if e.HalfAngleDeg <= 0 || e.HalfAngleDeg >= 90 {
			return nil, fmt.Errorf("cone half angle must be in (0, 90), got %g", e.HalfAngleDeg)
		}
		if e.Domain == nil {
			return nil, fmt.Errorf("cone requires an explicit domain (v is the axial range)")
		}
		return Cone{
			Apex:         *e.Apex,
			Axis:         *e.Axis,
			HalfAngleDeg: e.HalfAngleDeg,
			Dom:          *e.Domain,
		}, nil

	case "sphere":
		if e.Center == nil {
			return nil, fmt.Errorf("sphere requires center")
		}
		if e.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", e.Radius)
		}
		dom := types.Domain{
			U: types.Interval{Min: 0, Max: 2 * math.Pi},
			V: types.Interval{Min: -math.Pi / 3, Max: math.Pi / 3},
		}
		return Sphere{Center: *e.Center, Radius: e.Radius, Dom: e.domainOr(dom)}, nil

	case "wave":
		origin := types.Point{}
		if e.Origin != nil {
			origin = *e.Origin
		}
		amp := e.Amplitude
		if amp == 0 {
			amp = 1
		}
		dom := types.Domain{
			U: types.Interval{Min: 0, Max: 3},
			V: types.Interval{Min: 0, Max: 3},
		}
		return Wave{Origin: origin, Amplitude: amp, Dom: e.domainOr(dom)}, nil

	case "grid":
		if len(e.Points) < 2 || len(e.Points[0]) < 2 {
			return nil, fmt.Errorf("grid requires at least a 2x2 point lattice")
		}
		width := len(e.Points[0])
		for i, row := range e.Points {
			if len(row) != width {
				return nil, fmt.Errorf("grid row %d has %d points, want %d", i, len(row), width)
			}
		}
		return Grid{Points: e.Points}, nil

	default:
		return nil, fmt.Errorf("unknown shape %q", e.Shape)
	}
}

func (e Entry) domainOr(dom types.Domain) types.Domain {
	if e.Domain != nil {
		return *e.Domain
	}
	return dom
}

func unitSquare() types.Domain {
	return types.Domain{
		U: types.Interval{Min: 0, Max: 1},
		V: types.Interval{Min: 0, Max: 1},
	}
}

// revolveDomain builds the default domain for surfaces of revolution:
// u wraps arcDeg degrees (360 when zero), v spans the axial interval.
func revolveDomain(arcDeg, vMin, vMax float64) types.Domain {
	if arcDeg <= 0 {
		arcDeg = 360
	}
	return types.Domain{
		U: types.Interval{Min: 0, Max: arcDeg * math.Pi / 180},
		V: types.Interval{Min: vMin, Max: vMax},
	}
}
