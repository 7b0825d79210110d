package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdiv/refiner"
	"github.com/katalvlaran/subdiv/scheme"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "catmark", cfg.Scheme.Type)
	assert.Equal(t, "edge-only", cfg.Scheme.VtxBoundaryInterpolation)
	assert.Equal(t, "cube", cfg.Mesh.Solid)
	assert.Equal(t, ModeUniform, cfg.Refine.Mode)
	assert.Equal(t, 2, cfg.Refine.Level)
	assert.Equal(t, refiner.MaxRefinementLevel, cfg.Refine.SecondaryLevel)
	assert.Equal(t, "info", cfg.Logging.Level)

	typ, opts, err := cfg.SchemeOptions()
	require.NoError(t, err)
	assert.Equal(t, scheme.Catmark, typ)
	assert.Equal(t, scheme.DefaultOptions(), opts)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "run.yaml")

	yamlContent := `
scheme:
  type: catmark
  vtx_boundary_interpolation: edge-and-corner
  fvar_linear_interpolation: corners-only
  creasing_method: chaikin

mesh:
  descriptor:
    num_vertices: 4
    faces:
      - [0, 1, 2, 3]
    corners:
      - {vertex: 0, sharpness: 2}

refine:
  mode: adaptive
  level: 3
  secondary_level: 2
  use_inf_sharp_patch: true

logging:
  level: debug
  log_file: subdtopo.log
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Empty(t, cfg.Mesh.Solid, "file mesh replaces default solid")
	require.NotNil(t, cfg.Mesh.Descriptor)
	assert.Equal(t, 4, cfg.Mesh.Descriptor.NumVertices)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, cfg.Mesh.Descriptor.FaceVertices)
	assert.Equal(t, []refiner.CornerTag{{Vertex: 0, Sharpness: 2}}, cfg.Mesh.Descriptor.Corners)

	_, opts, err := cfg.SchemeOptions()
	require.NoError(t, err)
	assert.Equal(t, scheme.BoundaryEdgeAndCorner, opts.VtxBoundaryInterpolation)
	assert.Equal(t, scheme.FVarLinearCornersOnly, opts.FVarLinearInterpolation)
	assert.Equal(t, scheme.CreasingChaikin, opts.CreasingMethod)

	ao := cfg.AdaptiveOptions()
	assert.Equal(t, 3, ao.IsolationLevel)
	assert.Equal(t, 2, ao.SecondaryLevel)
	assert.True(t, ao.UseInfSharpPatch)
	assert.False(t, ao.UseSingleCreasePatch)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "subdtopo.log", cfg.Logging.LogFile)
}

func TestLoadKeepsDefaultsForMissingSections(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("refine:\n  level: 1\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "cube", cfg.Mesh.Solid)
	assert.Equal(t, 1, cfg.Refine.Level)
	assert.Equal(t, ModeUniform, cfg.Refine.Mode)
	assert.Equal(t, refiner.UniformOptions{RefinementLevel: 1}, cfg.UniformOptions())
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
refine:
  level: not a number
  invalid syntax here
`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := Load("/nonexistent/path/run.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(c *Config)
	}{
		{"SchemeType", func(c *Config) { c.Scheme.Type = "doo-sabin" }},
		{"Boundary", func(c *Config) { c.Scheme.VtxBoundaryInterpolation = "always" }},
		{"FVar", func(c *Config) { c.Scheme.FVarLinearInterpolation = "some" }},
		{"Creasing", func(c *Config) { c.Scheme.CreasingMethod = "smooth" }},
		{"NoMesh", func(c *Config) { c.Mesh = MeshConfig{} }},
		{"TwoMeshes", func(c *Config) { c.Mesh.Path = "mesh.yaml" }},
		{"Mode", func(c *Config) { c.Refine.Mode = "sparse" }},
		{"Level", func(c *Config) { c.Refine.Level = refiner.MaxRefinementLevel + 1 }},
		{"Secondary", func(c *Config) { c.Refine.SecondaryLevel = -1 }},
		{"LogLevel", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestDescriptorSources(t *testing.T) {
	cfg := Default()
	d, err := cfg.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, 8, d.NumVertices)
	assert.Len(t, d.FaceVertices, 6)

	cfg.Mesh.Solid = "klein-bottle"
	_, err = cfg.Descriptor()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDescriptorRoundTripThroughFile(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "meshes", "quad.yaml")
	want := &refiner.TopologyDescriptor{
		NumVertices:  4,
		FaceVertices: [][]int{{0, 1, 2, 3}},
		Creases:      []refiner.CreaseTag{{V0: 0, V1: 1, Sharpness: 1.5}},
		Holes:        []int{},
	}
	require.NoError(t, SaveDescriptor(meshPath, want))

	configPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("mesh:\n  path: meshes/quad.yaml\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, meshPath, cfg.Mesh.Path)

	got, err := cfg.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, want.NumVertices, got.NumVertices)
	assert.Equal(t, want.FaceVertices, got.FaceVertices)
	assert.Equal(t, want.Creases, got.Creases)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.yaml")
	cfg := Default()
	cfg.Refine.Mode = ModeAdaptive
	cfg.Refine.Level = 4
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
