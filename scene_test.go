package scenegen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestScene_AddKeepsAlignment(t *testing.T) {
	s := NewScene()
	assert.NotEmpty(t, s.ID)
	assert.ErrorIs(t, s.Validate(), ErrEmptyScene)

	s.Add(Sphere{Radius: 1}, DiffuseBRDF(mgl64.Vec3{0.1, 0.2, 0.3}))
	s.Add(Sphere{Radius: 2}, RefractiveBRDF(1.5))
	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.BRDFs, 2)
	assert.NoError(t, s.Validate())
}

func TestNewScene_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewScene().ID, NewScene().ID)
}

func TestBRDFKind_String(t *testing.T) {
	assert.Equal(t, "diffuse", Diffuse.String())
	assert.Equal(t, "reflective", Reflective.String())
	assert.Equal(t, "refractive", Refractive.String())
	assert.Equal(t, "unknown", BRDFKind(7).String())
}

func TestStats_String(t *testing.T) {
	st := Stats{Total: 10, Diffuse: 6, Reflective: 2, Refractive: 2, Rejected: 3}
	assert.Equal(t, "10 spheres (6 diffuse, 2 reflective, 2 refractive), 3 cells rejected", st.String())
}

func TestSequenceSource_Wraps(t *testing.T) {
	src := &SequenceSource{Values: []float64{0.1, 0.2}}
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.2, src.Float64())
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 3, src.Draws())

	assert.Zero(t, (&SequenceSource{}).Float64())
}

func TestNewRandomSource_Seeded(t *testing.T) {
	a, b := NewRandomSource(3), NewRandomSource(3)
	for i := 0; i < 10; i++ {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.True(t, v >= 0 && v < 1)
	}
}
