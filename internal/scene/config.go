// Package scene loads viewer scene descriptions from the authoring layer:
// a YAML file naming the grid topology, the shared cube material, and the
// LOD table, plus standalone JSON cube configs validated against a schema.
package scene

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/netkeep80/isocubic-sub006/internal/cube"
	"github.com/netkeep80/isocubic-sub006/internal/grid"
	"github.com/netkeep80/isocubic-sub006/internal/lod"
)

// Config is the full scene description consumed by cmd/isocubic.
type Config struct {
	Grid    grid.Options `yaml:"grid"`
	Cube    cube.Config  `yaml:"cube"`
	LOD     lod.Config   `yaml:"lod"`
	Quality float32      `yaml:"quality"`
}

// Load reads and validates a scene file. An empty path returns the built-in
// default scene.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("scene config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("scene config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	half := float32(0.5)
	return Config{
		Grid: grid.Options{
			Size:      [3]int{5, 1, 5},
			Spacing:   0.15,
			CubeScale: 1,
			Center:    mgl32.Vec3{0, 0, 0},
		},
		Cube: cube.Config{
			Base: cube.BaseSpec{Color: mgl32.Vec3{0.35, 0.45, 0.8}},
			Gradients: []cube.GradientSpec{
				{Axis: cube.AxisY, Factor: 0.6, ColorShift: mgl32.Vec3{0.15, 0.1, -0.1}},
				{Axis: cube.AxisRadial, Factor: 0.3, ColorShift: mgl32.Vec3{-0.1, 0.05, 0.15}},
			},
			Noise: &cube.NoiseSpec{Type: cube.NoisePerlin, Persistence: &half},
		},
		LOD:     lod.DefaultConfig(),
		Quality: 1,
	}
}

// Normalize fills unset fields with defaults so a sparse scene file still
// yields a complete configuration.
func (c *Config) Normalize() {
	c.Cube.Normalize()
	if c.Quality <= 0 {
		c.Quality = 1
	}
	for i := range c.Grid.Size {
		if c.Grid.Size[i] < 1 {
			c.Grid.Size[i] = 1
		}
	}
	if c.Grid.CubeScale <= 0 {
		c.Grid.CubeScale = 1
	}
	if c.Grid.Spacing < 0 {
		c.Grid.Spacing = 0
	}
	if len(c.LOD.DistanceThresholds) == 0 {
		c.LOD = lod.DefaultConfig()
	}
}

// Validate rejects scene files that break the LOD invariants.
func (c Config) Validate() error {
	if err := c.LOD.Validate(); err != nil {
		return err
	}
	return nil
}
