package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gekko3d/scenegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ConstantSource(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, scenegen.ConstantSource(0.5), scenegen.NewWriterLogger(&logs, "scenegen", false))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0],
		"Sphere spheres[147] = Sphere[](Sphere(vec3(0.0f,-1000.0f,0.0f), 1000.0f),Sphere(vec3(-16.55f,0.2f,-16.55f), 0.2f),"), lines[0][:120])
	assert.True(t, strings.HasSuffix(lines[0],
		",Sphere(vec3(-4.0f,1.0f,0.0f), 1.0f),Sphere(vec3(4.0f,1.0f,0.0f), 1.0f),Sphere(vec3(0.0f,1.0f,0.0f), 1.0f));"))

	assert.True(t, strings.HasPrefix(lines[1],
		"BRDF brdfs[147] = BRDF[](BRDF(0, vec3(0.5f,0.5f,0.5f), 0.0f, 0.0f),BRDF(0, vec3(0.25f,0.25f,0.25f), 0.0f, 0.0f),"))
	assert.True(t, strings.HasSuffix(lines[1],
		",BRDF(0, vec3(0.4f,0.2f,0.1f), 0.0f, 0.0f),BRDF(1, vec3(0.7f,0.6f,0.5f), 0.0f, 0.0f),BRDF(2, vec3(1.0f,1.0f,1.0f), 0.0f, 1.5f));"))

	assert.Contains(t, logs.String(), "147 spheres (145 diffuse, 1 reflective, 1 refractive), 1 cells rejected")
}

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestRun_WriteFailure(t *testing.T) {
	var logs bytes.Buffer
	err := run(closedWriter{}, scenegen.ConstantSource(0.5), scenegen.NewWriterLogger(&logs, "", false))
	assert.Error(t, err)
	assert.Empty(t, logs.String())
}
