package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera defaults
const (
	CameraFOV  = 60.0
	CameraNear = 0.1
	CameraFar  = 100.0
	CameraZ    = 16.0
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV      float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	projection mgl64.Mat4
}

// NewCamera creates a camera at (0,0,CameraZ) looking at the origin.
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		FOV:      CameraFOV,
		Aspect:   aspect,
		Near:     CameraNear,
		Far:      CameraFar,
		Position: mgl64.Vec3{0, 0, CameraZ},
		Up:       mgl64.Vec3{0, 1, 0},
	}
	c.UpdateProjection()
	return c
}

// SetAspect changes the aspect ratio and rebuilds the projection.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection rebuilds the projection matrix from the lens fields.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}
