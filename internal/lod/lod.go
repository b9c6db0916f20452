package lod

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Level is a discrete detail tier for one grid cell. Level 0 is the finest;
// higher levels render progressively cheaper.
type Level int

// NoLevel marks a cell that has never been classified.
const NoLevel Level = -1

// LevelSettings caps the shading cost of a cube rendered at a given level.
type LevelSettings struct {
	NoiseOctaves            int     `yaml:"noise_octaves"`
	MaxGradients            int     `yaml:"max_gradients"`
	EnableNoise             bool    `yaml:"enable_noise"`
	EnableBoundaryStitching bool    `yaml:"enable_boundary_stitching"`
	GeometryDetail          float32 `yaml:"geometry_detail"`
}

// Config drives classification and re-evaluation cadence for a whole grid.
// DistanceThresholds holds one entry per non-maximal level, strictly
// increasing; a distance beyond the last threshold lands on the maximal
// level. Levels must hold exactly len(DistanceThresholds)+1 entries.
type Config struct {
	DistanceThresholds    []float32       `yaml:"distance_thresholds"`
	HysteresisMargin      float32         `yaml:"hysteresis_margin"`
	UpdateIntervalSeconds float64         `yaml:"update_interval_seconds"`
	Levels                []LevelSettings `yaml:"levels"`
}

// MaxLevel returns the coarsest level the config can produce.
func (c Config) MaxLevel() Level {
	return Level(len(c.DistanceThresholds))
}

// SettingsFor returns the per-level settings for l, clamped into the
// configured range so callers never index out of bounds.
func (c Config) SettingsFor(l Level) LevelSettings {
	if len(c.Levels) == 0 {
		// No caps configured: everything enabled at full cost.
		return LevelSettings{
			NoiseOctaves:            8,
			MaxGradients:            4,
			EnableNoise:             true,
			EnableBoundaryStitching: true,
			GeometryDetail:          1,
		}
	}
	if l < 0 {
		l = 0
	}
	if int(l) >= len(c.Levels) {
		l = Level(len(c.Levels) - 1)
	}
	return c.Levels[l]
}

// DefaultConfig returns the built-in five-level table. Thresholds and caps
// are tuning values; anything loaded from a scene file replaces them wholesale.
func DefaultConfig() Config {
	return Config{
		DistanceThresholds:    []float32{10, 25, 50, 100},
		HysteresisMargin:      2.0,
		UpdateIntervalSeconds: 0.5,
		Levels: []LevelSettings{
			{NoiseOctaves: 4, MaxGradients: 4, EnableNoise: true, EnableBoundaryStitching: true, GeometryDetail: 1},
			{NoiseOctaves: 3, MaxGradients: 3, EnableNoise: true, EnableBoundaryStitching: true, GeometryDetail: 0.75},
			{NoiseOctaves: 2, MaxGradients: 2, EnableNoise: true, EnableBoundaryStitching: false, GeometryDetail: 0.5},
			{NoiseOctaves: 1, MaxGradients: 1, EnableNoise: false, EnableBoundaryStitching: false, GeometryDetail: 0.25},
			{NoiseOctaves: 0, MaxGradients: 0, EnableNoise: false, EnableBoundaryStitching: false, GeometryDetail: 0.1},
		},
	}
}

// Validate checks the structural invariants: strictly increasing thresholds,
// one settings row per level, and cost caps that never grow as levels coarsen.
func (c Config) Validate() error {
	for i := 1; i < len(c.DistanceThresholds); i++ {
		if c.DistanceThresholds[i] <= c.DistanceThresholds[i-1] {
			return fmt.Errorf("distance_thresholds must be strictly increasing: [%d]=%v <= [%d]=%v",
				i, c.DistanceThresholds[i], i-1, c.DistanceThresholds[i-1])
		}
	}
	if len(c.DistanceThresholds) > 0 && c.DistanceThresholds[0] <= 0 {
		return fmt.Errorf("distance_thresholds[0] must be positive, got %v", c.DistanceThresholds[0])
	}
	if c.HysteresisMargin < 0 {
		return fmt.Errorf("hysteresis_margin must be non-negative, got %v", c.HysteresisMargin)
	}
	if c.UpdateIntervalSeconds < 0 {
		return fmt.Errorf("update_interval_seconds must be non-negative, got %v", c.UpdateIntervalSeconds)
	}
	if len(c.Levels) != len(c.DistanceThresholds)+1 {
		return fmt.Errorf("levels must have %d entries (one per level), got %d",
			len(c.DistanceThresholds)+1, len(c.Levels))
	}
	for i := 1; i < len(c.Levels); i++ {
		prev, cur := c.Levels[i-1], c.Levels[i]
		if cur.NoiseOctaves > prev.NoiseOctaves {
			return fmt.Errorf("levels[%d].noise_octaves=%d exceeds finer level's %d", i, cur.NoiseOctaves, prev.NoiseOctaves)
		}
		if cur.MaxGradients > prev.MaxGradients {
			return fmt.Errorf("levels[%d].max_gradients=%d exceeds finer level's %d", i, cur.MaxGradients, prev.MaxGradients)
		}
		if cur.EnableNoise && !prev.EnableNoise {
			return fmt.Errorf("levels[%d] enables noise while finer level %d disables it", i, i-1)
		}
		if cur.EnableBoundaryStitching && !prev.EnableBoundaryStitching {
			return fmt.Errorf("levels[%d] enables boundary stitching while finer level %d disables it", i, i-1)
		}
		if cur.GeometryDetail > prev.GeometryDetail {
			return fmt.Errorf("levels[%d].geometry_detail=%v exceeds finer level's %v", i, cur.GeometryDetail, prev.GeometryDetail)
		}
	}
	return nil
}

// LevelColors is the reference palette for debug visualization, finest to
// coarsest. Consumers that want a colored overlay per level look it up here;
// this package never renders anything.
var LevelColors = []mgl32.Vec3{
	{0.2, 0.9, 0.3}, // level 0: green
	{0.6, 0.9, 0.2}, // level 1: lime
	{0.95, 0.85, 0.2}, // level 2: yellow
	{0.95, 0.5, 0.15}, // level 3: orange
	{0.9, 0.2, 0.2}, // level 4: red
}

// ColorFor returns the debug color for a level, reusing the coarsest entry
// for levels beyond the palette.
func ColorFor(l Level) mgl32.Vec3 {
	if l < 0 {
		l = 0
	}
	if int(l) >= len(LevelColors) {
		l = Level(len(LevelColors) - 1)
	}
	return LevelColors[l]
}
