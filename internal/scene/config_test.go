package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/netkeep80/isocubic-sub006/internal/cube"
)

// TestLoadEmptyPath verifies the built-in scene is returned, normalized and
// valid, when no file is given.
func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default scene invalid: %v", err)
	}
	if cfg.Quality != 1 {
		t.Errorf("default quality = %v, want 1", cfg.Quality)
	}
	if cfg.Cube.Boundary == nil || cfg.Cube.Boundary.Mode != cube.BoundarySmooth {
		t.Error("default scene cube missing smooth boundary")
	}
}

// TestLoadYAML verifies a sparse scene file overrides defaults and still
// gains normalization for everything it omits.
func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
grid:
  size: [3, 1, 3]
  cube_scale: 2
cube:
  base:
    color: [1, 0.5, 0.25]
  noise:
    type: worley
    mask: bottom_40%
lod:
  distance_thresholds: [8, 20]
  hysteresis_margin: 1
  update_interval_seconds: 0.25
  levels:
    - {noise_octaves: 4, max_gradients: 4, enable_noise: true, enable_boundary_stitching: true, geometry_detail: 1}
    - {noise_octaves: 2, max_gradients: 2, enable_noise: true, enable_boundary_stitching: false, geometry_detail: 0.5}
    - {noise_octaves: 0, max_gradients: 0, enable_noise: false, enable_boundary_stitching: false, geometry_detail: 0.1}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Size != [3]int{3, 1, 3} || cfg.Grid.CubeScale != 2 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Cube.Base.Color != (mgl32.Vec3{1, 0.5, 0.25}) {
		t.Errorf("base color = %v", cfg.Cube.Base.Color)
	}
	if cfg.Cube.Noise.Type != cube.NoiseWorley || cfg.Cube.Noise.Mask != "bottom_40%" {
		t.Errorf("noise = %+v", cfg.Cube.Noise)
	}
	// normalized: unset noise scale picked up the default
	if cfg.Cube.Noise.Scale == nil || *cfg.Cube.Noise.Scale != cube.DefaultNoiseScale {
		t.Error("noise scale not defaulted")
	}
	if cfg.LOD.MaxLevel() != 2 {
		t.Errorf("max level = %d, want 2", cfg.LOD.MaxLevel())
	}
}

// TestLoadRejectsInvalidLOD verifies structural LOD violations surface as
// load errors.
func TestLoadRejectsInvalidLOD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
lod:
  distance_thresholds: [20, 8]
  levels:
    - {noise_octaves: 4, max_gradients: 4}
    - {noise_octaves: 4, max_gradients: 4}
    - {noise_octaves: 4, max_gradients: 4}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted decreasing thresholds")
	}
}

// TestParseCubeJSON verifies schema-validated decoding of authoring input.
func TestParseCubeJSON(t *testing.T) {
	cfg, err := ParseCubeJSON([]byte(`{
		"base": {"color": [0.1, 0.2, 0.3], "roughness": 0.8},
		"gradients": [{"axis": "radial", "factor": 0.4, "colorShift": [0.1, 0, -0.1]}],
		"noise": {"type": "crackle", "octaves": 3, "mask": "top_60%"}
	}`))
	if err != nil {
		t.Fatalf("ParseCubeJSON: %v", err)
	}
	if cfg.Base.Color != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("color = %v", cfg.Base.Color)
	}
	if *cfg.Base.Roughness != 0.8 {
		t.Errorf("roughness = %v", *cfg.Base.Roughness)
	}
	if len(cfg.Gradients) != 1 || cfg.Gradients[0].Axis != cube.AxisRadial {
		t.Errorf("gradients = %+v", cfg.Gradients)
	}
	if cfg.Noise.Type != cube.NoiseCrackle || *cfg.Noise.Octaves != 3 {
		t.Errorf("noise = %+v", cfg.Noise)
	}
	// normalized on the way in
	if cfg.Boundary == nil || cfg.Boundary.Mode != cube.BoundarySmooth {
		t.Error("parsed cube missing smooth boundary default")
	}
}

// TestParseCubeJSONEnforcesBaseColor verifies the one fatal authoring
// contract is caught at the boundary.
func TestParseCubeJSONEnforcesBaseColor(t *testing.T) {
	if _, err := ParseCubeJSON([]byte(`{"base": {"roughness": 0.5}}`)); err == nil {
		t.Error("accepted cube config without base.color")
	}
	if _, err := ParseCubeJSON([]byte(`{"noise": {"type": "perlin"}}`)); err == nil {
		t.Error("accepted cube config without base")
	}
	if _, err := ParseCubeJSON([]byte(`not json`)); err == nil {
		t.Error("accepted malformed JSON")
	}
}

// TestParseCubeJSONPermissiveEnums verifies unrecognized enum strings pass
// the schema; they resolve to defaults downstream rather than failing.
func TestParseCubeJSONPermissiveEnums(t *testing.T) {
	cfg, err := ParseCubeJSON([]byte(`{
		"base": {"color": [1, 1, 1]},
		"gradients": [{"axis": "diagonal", "factor": 1}],
		"noise": {"type": "simplex"}
	}`))
	if err != nil {
		t.Fatalf("ParseCubeJSON: %v", err)
	}
	um := cube.BuildUniforms(cfg, cube.BuildOptions{})
	if got := um["uGradientAxis"].([cube.GradientSlots]int32)[0]; got != 1 {
		t.Errorf("unknown axis encoded as %d, want default 1", got)
	}
	if got := um["uNoiseType"].(int32); got != 0 {
		t.Errorf("unknown noise type encoded as %d, want default 0", got)
	}
}
