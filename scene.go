package scenegen

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

var (
	ErrMisaligned = errors.New("scenegen: sphere and brdf sequences differ in length")
	ErrEmptyScene = errors.New("scenegen: scene has no spheres")
)

// BRDFKind is the discriminant the renderer switches on.
type BRDFKind int

const (
	Diffuse BRDFKind = iota
	Reflective
	Refractive
)

func (k BRDFKind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	}
	return "unknown"
}

// Sphere is one geometry record of the output.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// BRDF is a flat material record. Fuzz is only meaningful for Reflective,
// IOR only for Refractive; the unused field stays zero.
type BRDF struct {
	Kind  BRDFKind
	Color mgl64.Vec3
	Fuzz  float64
	IOR   float64
}

func DiffuseBRDF(color mgl64.Vec3) BRDF {
	return BRDF{Kind: Diffuse, Color: color}
}

func ReflectiveBRDF(color mgl64.Vec3, fuzz float64) BRDF {
	return BRDF{Kind: Reflective, Color: color, Fuzz: fuzz}
}

func RefractiveBRDF(ior float64) BRDF {
	return BRDF{Kind: Refractive, Color: mgl64.Vec3{1, 1, 1}, IOR: ior}
}

// Scene holds the two output sequences. Element i of Spheres is shaded by
// element i of BRDFs.
type Scene struct {
	ID       string
	Spheres  []Sphere
	BRDFs    []BRDF
	Rejected int
}

func NewScene() *Scene {
	return &Scene{ID: uuid.NewString()}
}

// Add appends a sphere and its material in one step.
func (s *Scene) Add(sphere Sphere, brdf BRDF) {
	s.Spheres = append(s.Spheres, sphere)
	s.BRDFs = append(s.BRDFs, brdf)
}

func (s *Scene) Len() int {
	return len(s.Spheres)
}

// Validate checks the index alignment of the two sequences.
func (s *Scene) Validate() error {
	if len(s.Spheres) != len(s.BRDFs) {
		return ErrMisaligned
	}
	if len(s.Spheres) == 0 {
		return ErrEmptyScene
	}
	return nil
}
