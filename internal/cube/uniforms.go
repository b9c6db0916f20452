package cube

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/netkeep80/isocubic-sub006/internal/lod"
)

// GradientSlots is the fixed number of gradient slots in the shader
// interface. Configurations may list more; only the first four are encoded.
const GradientSlots = 4

// UniformMap is the flat, renderer-ready parameter set for one cube.
// Values are float32, int32, mgl32.Vec3, or fixed [GradientSlots]-arrays of
// those; keys are the shader uniform names. Maps are rebuilt whole on every
// config or level change, never mutated in place.
type UniformMap map[string]any

// Lighting is the shared light rig encoded into every uniform map.
type Lighting struct {
	Direction        mgl32.Vec3
	Color            mgl32.Vec3
	AmbientIntensity float32
}

// DefaultLighting is a soft white key light from above.
func DefaultLighting() Lighting {
	return Lighting{
		Direction:        mgl32.Vec3{0.4, 0.8, 0.45}.Normalize(),
		Color:            mgl32.Vec3{1, 1, 1},
		AmbientIntensity: 0.25,
	}
}

// BuildOptions carries the per-cell context for a build. Level, when set,
// degrades the configured appearance to that level's cost caps; nil builds
// at full fidelity. GridPosition is the cell's world position, which the
// shader uses for cross-cell boundary stitching.
type BuildOptions struct {
	Level        *lod.LevelSettings
	GridPosition mgl32.Vec3
	Light        *Lighting
}

// AxisIndex encodes a gradient axis for the shader: x→0, y→1, z→2,
// radial→3. Unrecognized axes fall back to the vertical axis (1).
func AxisIndex(a Axis) int32 {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	case AxisRadial:
		return 3
	default:
		return 1
	}
}

// NoiseTypeIndex encodes a noise type: none→0, perlin→1, worley→2,
// crackle→3. Absent or unrecognized types encode as none.
func NoiseTypeIndex(t NoiseType) int32 {
	switch t {
	case NoisePerlin:
		return 1
	case NoiseWorley:
		return 2
	case NoiseCrackle:
		return 3
	default:
		return 0
	}
}

// BoundaryModeIndex encodes a boundary mode: none→0, smooth→1, hard→2.
// Absent or unrecognized modes encode as smooth.
func BoundaryModeIndex(m BoundaryMode) int32 {
	switch m {
	case BoundaryNone:
		return 0
	case BoundaryHard:
		return 2
	default:
		return 1
	}
}

// BuildUniforms flattens a cube configuration into shader parameters.
// Pure, total, and deterministic: it never mutates cfg, never fails, and
// resolves every missing or unrecognized field to its documented default.
// Level caps from opts only ever reduce cost: octaves and gradient count
// are clamped to the configured values, noise and stitching can be forced
// off but never on.
func BuildUniforms(cfg Config, opts BuildOptions) UniformMap {
	noise := cfg.Noise
	if noise == nil {
		noise = &NoiseSpec{Type: NoiseNone}
	}
	boundary := cfg.Boundary
	if boundary == nil {
		boundary = &BoundarySpec{Mode: BoundarySmooth}
	}

	gradients := cfg.Gradients
	if len(gradients) > GradientSlots {
		gradients = gradients[:GradientSlots]
	}
	count := int32(len(gradients))

	noiseType := NoiseTypeIndex(noise.Type)
	octaves := int32(orDefaultInt(noise.Octaves, DefaultNoiseOctaves))
	boundaryMode := BoundaryModeIndex(boundary.Mode)

	if ls := opts.Level; ls != nil {
		if !ls.EnableNoise {
			noiseType = NoiseTypeIndex(NoiseNone)
			octaves = 0
		} else if int32(ls.NoiseOctaves) < octaves {
			octaves = int32(ls.NoiseOctaves)
		}
		if int32(ls.MaxGradients) < count {
			count = int32(ls.MaxGradients)
			if count < 0 {
				count = 0
			}
		}
		if !ls.EnableBoundaryStitching {
			boundaryMode = BoundaryModeIndex(BoundaryNone)
		}
	}

	// Unused slots stay zero-filled.
	var axes [GradientSlots]int32
	var factors [GradientSlots]float32
	var shifts [GradientSlots]mgl32.Vec3
	for i := 0; i < int(count); i++ {
		axes[i] = AxisIndex(gradients[i].Axis)
		factors[i] = gradients[i].Factor
		shifts[i] = gradients[i].ColorShift
	}

	mask := ParseMask(noise.Mask)

	light := DefaultLighting()
	if opts.Light != nil {
		light = *opts.Light
	}

	return UniformMap{
		"uBaseColor":          cfg.Base.Color,
		"uRoughness":          orDefault(cfg.Base.Roughness, DefaultRoughness),
		"uTransparency":       orDefault(cfg.Base.Transparency, DefaultTransparency),
		"uGradientCount":      count,
		"uGradientAxis":       axes,
		"uGradientFactor":     factors,
		"uGradientColorShift": shifts,
		"uNoiseType":          noiseType,
		"uNoiseScale":         orDefault(noise.Scale, DefaultNoiseScale),
		"uNoiseOctaves":       octaves,
		"uNoisePersistence":   orDefault(noise.Persistence, DefaultNoisePersistence),
		"uNoiseMaskStart":     mask.Start,
		"uNoiseMaskEnd":       mask.End,
		"uNoiseMaskAxis":      mask.Axis,
		"uBoundaryMode":       boundaryMode,
		"uNeighborInfluence":  orDefault(boundary.NeighborInfluence, DefaultNeighborInfluence),
		"uGridPosition":       opts.GridPosition,
		"uLightDirection":     light.Direction,
		"uLightColor":         light.Color,
		"uAmbientIntensity":   light.AmbientIntensity,
	}
}
