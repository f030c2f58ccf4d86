package scenegen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Generator struct {
	cfg    Config
	rnd    RandomSource
	logger Logger
}

// NewGenerator validates cfg. A nil logger is replaced by a no-op one.
func NewGenerator(cfg Config, rnd RandomSource, logger Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Generator{cfg: cfg, rnd: rnd, logger: logger}, nil
}

// Generate builds a new scene. Elements are emitted in a fixed order: the
// prelude placements, then accepted grid cells in ascending a then ascending
// b, then the postlude placements.
func (g *Generator) Generate() *Scene {
	scene := NewScene()
	for _, p := range g.cfg.Prelude {
		scene.Add(p.Sphere, p.BRDF)
	}

	grid := g.cfg.Grid
	axis := grid.Axis()
	for _, a := range axis {
		for _, b := range axis {
			center := mgl64.Vec3{
				float64(a) + grid.Offset + grid.Jitter*g.rnd.Float64(),
				grid.Height,
				float64(b) + grid.Offset + grid.Jitter*g.rnd.Float64(),
			}
			if !g.Accept(center) {
				scene.Rejected++
				g.logger.Debugf("cell (%d,%d) rejected: center %v too close to %v", a, b, center, grid.ClearPoint)
				continue
			}
			scene.Add(Sphere{Center: center, Radius: grid.Radius}, g.SampleMaterial())
		}
	}

	for _, p := range g.cfg.Postlude {
		scene.Add(p.Sphere, p.BRDF)
	}
	return scene
}

// Accept reports whether a grid candidate is outside the clearance zone.
func (g *Generator) Accept(center mgl64.Vec3) bool {
	return center.Sub(g.cfg.Grid.ClearPoint).Len() > g.cfg.Grid.Clearance
}

// SampleMaterial draws the material selector and then the chosen kind's
// color channels.
func (g *Generator) SampleMaterial() BRDF {
	m := g.cfg.Materials
	sel := g.rnd.Float64()
	switch {
	case sel < m.DiffuseBelow:
		// product of two uniforms per channel skews towards dark colors
		var c mgl64.Vec3
		for i := range c {
			c[i] = g.rnd.Float64() * g.rnd.Float64()
		}
		return DiffuseBRDF(c)
	case sel < m.ReflectiveBelow:
		var c mgl64.Vec3
		for i := range c {
			c[i] = 0.5 * (1 + g.rnd.Float64())
		}
		return ReflectiveBRDF(c, m.Fuzz)
	default:
		return RefractiveBRDF(m.IOR)
	}
}
