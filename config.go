package scenegen

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidConfig = errors.New("scenegen: invalid config")

// GridConfig describes the jittered placement grid. Coordinates run from Min
// (inclusive) to Max (exclusive) in Step increments on both axes.
type GridConfig struct {
	Min    int
	Max    int
	Step   int
	Offset float64
	Jitter float64
	Height float64 // y of every small sphere center
	Radius float64

	// Candidates within Clearance of ClearPoint are dropped.
	ClearPoint mgl64.Vec3
	Clearance  float64
}

type MaterialConfig struct {
	DiffuseBelow    float64
	ReflectiveBelow float64
	Fuzz            float64
	IOR             float64
}

// Placement is a fixed sphere with its material.
type Placement struct {
	Sphere Sphere
	BRDF   BRDF
}

type ArrayNames struct {
	SphereType string
	SphereVar  string
	BRDFType   string
	BRDFVar    string
}

type Config struct {
	Grid      GridConfig
	Materials MaterialConfig
	Prelude   []Placement
	Postlude  []Placement
	Names     ArrayNames
}

// DefaultConfig returns the layout of the classic "many spheres" scene: a
// ground sphere, a 12x12 jittered grid of small spheres, then one large
// sphere per material kind.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Min:        -12,
			Max:        12,
			Step:       2,
			Offset:     -5,
			Jitter:     0.9,
			Height:     0.2,
			Radius:     0.2,
			ClearPoint: mgl64.Vec3{4, 0.2, 0},
			Clearance:  0.9,
		},
		Materials: MaterialConfig{
			DiffuseBelow:    0.6,
			ReflectiveBelow: 0.8,
			Fuzz:            0.5,
			IOR:             1.5,
		},
		Prelude: []Placement{
			{Sphere{Center: mgl64.Vec3{0, -1000, 0}, Radius: 1000}, DiffuseBRDF(mgl64.Vec3{0.5, 0.5, 0.5})},
		},
		Postlude: []Placement{
			{Sphere{Center: mgl64.Vec3{-4, 1, 0}, Radius: 1}, DiffuseBRDF(mgl64.Vec3{0.4, 0.2, 0.1})},
			{Sphere{Center: mgl64.Vec3{4, 1, 0}, Radius: 1}, ReflectiveBRDF(mgl64.Vec3{0.7, 0.6, 0.5}, 0)},
			{Sphere{Center: mgl64.Vec3{0, 1, 0}, Radius: 1}, RefractiveBRDF(1.5)},
		},
		Names: ArrayNames{
			SphereType: "Sphere",
			SphereVar:  "spheres",
			BRDFType:   "BRDF",
			BRDFVar:    "brdfs",
		},
	}
}

// Axis returns the grid coordinates visited along one axis, in scan order.
func (g GridConfig) Axis() []int {
	var coords []int
	for c := g.Min; c < g.Max; c += g.Step {
		coords = append(coords, c)
	}
	return coords
}

// Cells is the upper bound on grid spheres.
func (g GridConfig) Cells() int {
	n := len(g.Axis())
	return n * n
}

func (c Config) Validate() error {
	g := c.Grid
	if g.Step <= 0 {
		return fmt.Errorf("%w: grid step %d must be positive", ErrInvalidConfig, g.Step)
	}
	if g.Min >= g.Max {
		return fmt.Errorf("%w: grid range [%d,%d) is empty", ErrInvalidConfig, g.Min, g.Max)
	}
	if g.Jitter < 0 || g.Radius < 0 || g.Clearance < 0 {
		return fmt.Errorf("%w: jitter, radius and clearance must not be negative", ErrInvalidConfig)
	}
	m := c.Materials
	if m.DiffuseBelow < 0 || m.DiffuseBelow > m.ReflectiveBelow || m.ReflectiveBelow > 1 {
		return fmt.Errorf("%w: material thresholds %.2f, %.2f out of order", ErrInvalidConfig, m.DiffuseBelow, m.ReflectiveBelow)
	}
	for _, p := range append(append([]Placement{}, c.Prelude...), c.Postlude...) {
		if p.Sphere.Radius < 0 {
			return fmt.Errorf("%w: fixed sphere at %v has negative radius", ErrInvalidConfig, p.Sphere.Center)
		}
	}
	n := c.Names
	if n.SphereType == "" || n.SphereVar == "" || n.BRDFType == "" || n.BRDFVar == "" {
		return fmt.Errorf("%w: array names must be set", ErrInvalidConfig)
	}
	return nil
}
