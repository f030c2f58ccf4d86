package scenegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Grid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	// upper bound is exclusive: 12 itself is never visited
	assert.Equal(t, []int{-12, -10, -8, -6, -4, -2, 0, 2, 4, 6, 8, 10}, cfg.Grid.Axis())
	assert.Equal(t, 144, cfg.Grid.Cells())
	assert.Len(t, cfg.Prelude, 1)
	assert.Len(t, cfg.Postlude, 3)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step", func(c *Config) { c.Grid.Step = 0 }},
		{"empty range", func(c *Config) { c.Grid.Min, c.Grid.Max = 4, 4 }},
		{"negative jitter", func(c *Config) { c.Grid.Jitter = -1 }},
		{"negative clearance", func(c *Config) { c.Grid.Clearance = -0.1 }},
		{"thresholds out of order", func(c *Config) { c.Materials.DiffuseBelow = 0.9 }},
		{"threshold above one", func(c *Config) { c.Materials.ReflectiveBelow = 1.2 }},
		{"negative fixed radius", func(c *Config) { c.Postlude[0].Sphere.Radius = -1 }},
		{"missing array name", func(c *Config) { c.Names.BRDFVar = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
