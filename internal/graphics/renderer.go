package graphics

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/netkeep80/isocubic-sub006/internal/cube"
	"github.com/netkeep80/isocubic-sub006/internal/grid"
	"github.com/netkeep80/isocubic-sub006/internal/lod"
)

//go:embed shaders/cube.vert
var cubeVertSrc string

//go:embed shaders/cube.frag
var cubeFragSrc string

// Unit cube centered at the origin: 36 vertices, position(3) + normal(3).
var cubeVertices = []float32{
	// front (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	// back (-Z)
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	// left (-X)
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	// right (+X)
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	// top (+Y)
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	// bottom (-Y)
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}

// Renderer draws a grid of spectral cubes, applying each cell's uniform map
// to the shared shader. It consumes parameters only; all procedural
// noise/gradient evaluation happens in the fragment shader.
type Renderer struct {
	shader *Shader
	vao    uint32
	vbo    uint32

	// DebugLOD tints each cube by its level's reference color.
	DebugLOD bool
}

// NewRenderer compiles the cube shader and uploads the cube mesh. The GL
// context must be current.
func NewRenderer() (*Renderer, error) {
	shader, err := NewShader(cubeVertSrc, cubeFragSrc)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{shader: shader}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	return r, nil
}

// Render draws one frame from the grid's latest snapshot.
func (r *Renderer) Render(update grid.Update, cells []grid.Cell, cubeScale float32, camera *OrbitCamera) {
	gl.ClearColor(0.08, 0.09, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	r.shader.SetMatrix4("uView", camera.ViewMatrix())
	r.shader.SetMatrix4("uProjection", camera.ProjectionMatrix())
	r.shader.SetVec3("uCameraPos", camera.Position())

	gl.BindVertexArray(r.vao)
	for _, c := range cells {
		um := update.Uniforms[c.ID]
		if um == nil {
			// Cell not yet evaluated this instance.
			continue
		}
		r.apply(um)

		model := mgl32.Translate3D(c.WorldPosition.X(), c.WorldPosition.Y(), c.WorldPosition.Z()).
			Mul4(mgl32.Scale3D(cubeScale, cubeScale, cubeScale))
		r.shader.SetMatrix4("uModel", model)

		if r.DebugLOD {
			r.shader.SetVec3("uDebugColor", lod.ColorFor(update.Levels[c.ID]))
			r.shader.SetFloat("uDebugMix", 0.5)
		} else {
			r.shader.SetFloat("uDebugMix", 0)
		}

		gl.DrawArrays(gl.TRIANGLES, 0, 36)
	}
}

// apply uploads a cell's uniform map by name. Unknown value kinds are
// skipped rather than treated as errors; the map's producer controls the
// key set.
func (r *Renderer) apply(um cube.UniformMap) {
	for name, value := range um {
		switch v := value.(type) {
		case float32:
			r.shader.SetFloat(name, v)
		case int32:
			r.shader.SetInt(name, v)
		case mgl32.Vec3:
			r.shader.SetVec3(name, v)
		case [cube.GradientSlots]int32:
			r.shader.SetIntSlice(name, v[:])
		case [cube.GradientSlots]float32:
			r.shader.SetFloatSlice(name, v[:])
		case [cube.GradientSlots]mgl32.Vec3:
			r.shader.SetVec3Slice(name, v[:])
		}
	}
}
