package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a fixed target, which is all the viewer needs: the
// grid sits still and the camera distance drives LOD.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // radians around Y
	Pitch    float32 // radians above the horizon

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewOrbitCamera places the camera at the given distance from target.
func NewOrbitCamera(target mgl32.Vec3, distance float32, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         mgl32.DegToRad(45),
		Pitch:       mgl32.DegToRad(25),
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Position returns the camera's world-space position.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * cp * float32(math.Cos(float64(c.Yaw))),
		c.Distance * float32(math.Sin(float64(c.Pitch))),
		c.Distance * cp * float32(math.Sin(float64(c.Yaw))),
	})
}

// ViewMatrix returns the look-at matrix toward the target.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Rotate adjusts yaw/pitch from a mouse drag delta, clamping pitch so the
// camera never flips over the pole.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Yaw += dx
	c.Pitch += dy
	limit := mgl32.DegToRad(89)
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

// Zoom moves the camera along its view ray. Scroll up (positive) moves in.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance -= delta
	if c.Distance < 1 {
		c.Distance = 1
	}
	if c.Distance > 500 {
		c.Distance = 500
	}
}
