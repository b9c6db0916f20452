package cube

import "github.com/go-gl/mathgl/mgl32"

// Axis selects the local coordinate a gradient runs along.
type Axis string

const (
	AxisX      Axis = "x"
	AxisY      Axis = "y"
	AxisZ      Axis = "z"
	AxisRadial Axis = "radial"
)

// NoiseType selects the procedural pattern evaluated in the shader.
type NoiseType string

const (
	NoiseNone    NoiseType = "none"
	NoisePerlin  NoiseType = "perlin"
	NoiseWorley  NoiseType = "worley"
	NoiseCrackle NoiseType = "crackle"
)

// BoundaryMode controls cross-cell blending at cube faces.
type BoundaryMode string

const (
	BoundaryNone   BoundaryMode = "none"
	BoundarySmooth BoundaryMode = "smooth"
	BoundaryHard   BoundaryMode = "hard"
)

// Defaults injected for fields the authoring layer leaves unset.
const (
	DefaultRoughness         float32 = 0.5
	DefaultTransparency      float32 = 1.0
	DefaultNoiseScale        float32 = 8.0
	DefaultNoiseOctaves      int     = 4
	DefaultNoisePersistence  float32 = 0.5
	DefaultNeighborInfluence float32 = 0.5
)

// BaseSpec is the cube's base appearance. Color is required; the authoring
// layer guarantees its presence (see the Config doc). Nil optional fields
// take the package defaults.
type BaseSpec struct {
	Color        mgl32.Vec3 `yaml:"color" json:"color"`
	Roughness    *float32   `yaml:"roughness,omitempty" json:"roughness,omitempty"`
	Transparency *float32   `yaml:"transparency,omitempty" json:"transparency,omitempty"`
}

// GradientSpec is one directional color ramp. A cube carries at most four;
// extra entries are ignored, never an error.
type GradientSpec struct {
	Axis       Axis       `yaml:"axis" json:"axis"`
	Factor     float32    `yaml:"factor" json:"factor"`
	ColorShift mgl32.Vec3 `yaml:"color_shift" json:"colorShift"`
}

// NoiseSpec describes procedural surface noise. Mask optionally restricts
// noise to a window along one face, pattern "<side>_<percent>%".
type NoiseSpec struct {
	Type        NoiseType `yaml:"type" json:"type"`
	Scale       *float32  `yaml:"scale,omitempty" json:"scale,omitempty"`
	Octaves     *int      `yaml:"octaves,omitempty" json:"octaves,omitempty"`
	Persistence *float32  `yaml:"persistence,omitempty" json:"persistence,omitempty"`
	Mask        string    `yaml:"mask,omitempty" json:"mask,omitempty"`
}

// BoundarySpec describes blending against neighboring cells.
type BoundarySpec struct {
	Mode              BoundaryMode `yaml:"mode" json:"mode"`
	NeighborInfluence *float32     `yaml:"neighbor_influence,omitempty" json:"neighborInfluence,omitempty"`
}

// Config is the declarative description of one spectral cube's surface.
// It is produced and owned by the authoring layer and read-only here for
// the life of a grid instance; changing it replaces the grid.
//
// Base.Color must be present. That is an authoring-layer contract, not
// validated at runtime: its absence is undefined behavior, everything else
// resolves to documented defaults.
type Config struct {
	Base      BaseSpec       `yaml:"base" json:"base"`
	Gradients []GradientSpec `yaml:"gradients,omitempty" json:"gradients,omitempty"`
	Noise     *NoiseSpec     `yaml:"noise,omitempty" json:"noise,omitempty"`
	Boundary  *BoundarySpec  `yaml:"boundary,omitempty" json:"boundary,omitempty"`
}

// Normalize fills every unset optional field in place with the package
// defaults, including boundary mode smooth so neighbor stitching is opt-out
// rather than opt-in for cube grids.
func (c *Config) Normalize() {
	if c.Base.Roughness == nil {
		c.Base.Roughness = f32p(DefaultRoughness)
	}
	if c.Base.Transparency == nil {
		c.Base.Transparency = f32p(DefaultTransparency)
	}
	if c.Noise == nil {
		c.Noise = &NoiseSpec{Type: NoiseNone}
	}
	if c.Noise.Type == "" {
		c.Noise.Type = NoiseNone
	}
	if c.Noise.Scale == nil {
		c.Noise.Scale = f32p(DefaultNoiseScale)
	}
	if c.Noise.Octaves == nil {
		o := DefaultNoiseOctaves
		c.Noise.Octaves = &o
	}
	if c.Noise.Persistence == nil {
		c.Noise.Persistence = f32p(DefaultNoisePersistence)
	}
	if c.Boundary == nil {
		c.Boundary = &BoundarySpec{Mode: BoundarySmooth}
	}
	if c.Boundary.Mode == "" {
		c.Boundary.Mode = BoundarySmooth
	}
	if c.Boundary.NeighborInfluence == nil {
		c.Boundary.NeighborInfluence = f32p(DefaultNeighborInfluence)
	}
}

// Clone returns a deep copy with every pointer field detached, so
// normalizing the copy can never write through into the original.
func (c Config) Clone() Config {
	out := c
	out.Gradients = append([]GradientSpec(nil), c.Gradients...)
	if c.Base.Roughness != nil {
		out.Base.Roughness = f32p(*c.Base.Roughness)
	}
	if c.Base.Transparency != nil {
		out.Base.Transparency = f32p(*c.Base.Transparency)
	}
	if c.Noise != nil {
		n := *c.Noise
		if n.Scale != nil {
			n.Scale = f32p(*n.Scale)
		}
		if n.Octaves != nil {
			o := *n.Octaves
			n.Octaves = &o
		}
		if n.Persistence != nil {
			n.Persistence = f32p(*n.Persistence)
		}
		out.Noise = &n
	}
	if c.Boundary != nil {
		b := *c.Boundary
		if b.NeighborInfluence != nil {
			b.NeighborInfluence = f32p(*b.NeighborInfluence)
		}
		out.Boundary = &b
	}
	return out
}

func f32p(v float32) *float32 { return &v }

func orDefault(p *float32, def float32) float32 {
	if p == nil {
		return def
	}
	return *p
}

func orDefaultInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
