package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/common"
)

// Orbit defaults
const (
	OrbitMinDistance   = 6.0
	OrbitMaxDistance   = 32.0
	OrbitDampingFactor = 0.05
)

const orbitEPS = 1e-6

// spherical coordinates around the Y axis
type spherical struct {
	radius float64
	theta  float64 // azimuth from +Z towards +X
	phi    float64 // polar angle from +Y
}

// OrbitControls rotates and dollies a camera around its target. Panning is
// not supported.
type OrbitControls struct {
	EnableDamping bool
	DampingFactor float64
	MinDistance   float64
	MaxDistance   float64
	RotateSpeed   float64
	ZoomSpeed     float64

	camera *Camera
	sph    spherical
	delta  spherical
	scale  float64
}

// NewOrbitControls attaches controls to the camera's current position.
func NewOrbitControls(camera *Camera) *OrbitControls {
	o := &OrbitControls{
		EnableDamping: true,
		DampingFactor: OrbitDampingFactor,
		MinDistance:   OrbitMinDistance,
		MaxDistance:   OrbitMaxDistance,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		camera:        camera,
		scale:         1,
	}

	offset := camera.Position.Sub(camera.Target)
	o.sph.radius = offset.Len()
	if o.sph.radius > 0 {
		o.sph.theta = math.Atan2(offset[0], offset[2])
		o.sph.phi = math.Acos(common.Clamp(offset[1]/o.sph.radius, -1, 1))
	}
	return o
}

// Rotate applies a pointer drag of (dx,dy) pixels in a viewport of the
// given height.
func (o *OrbitControls) Rotate(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	o.delta.theta -= 2 * math.Pi * dx / viewportHeight * o.RotateSpeed
	o.delta.phi -= 2 * math.Pi * dy / viewportHeight * o.RotateSpeed
}

// Wheel applies a wheel event; negative deltaY moves the camera closer.
func (o *OrbitControls) Wheel(deltaY float64) {
	zoom := math.Pow(0.95, o.ZoomSpeed)
	switch {
	case deltaY < 0:
		o.scale *= zoom
	case deltaY > 0:
		o.scale /= zoom
	}
}

// Distance returns the current camera distance to the target.
func (o *OrbitControls) Distance() float64 {
	return o.sph.radius
}

// Update moves the camera for this frame and reports whether it moved.
func (o *OrbitControls) Update() bool {
	before := o.camera.Position

	if o.EnableDamping {
		o.sph.theta += o.delta.theta * o.DampingFactor
		o.sph.phi += o.delta.phi * o.DampingFactor
	} else {
		o.sph.theta += o.delta.theta
		o.sph.phi += o.delta.phi
	}
	o.sph.phi = common.Clamp(o.sph.phi, orbitEPS, math.Pi-orbitEPS)
	o.sph.radius = common.Clamp(o.sph.radius*o.scale, o.MinDistance, o.MaxDistance)

	sinPhi := math.Sin(o.sph.phi) * o.sph.radius
	offset := mgl64.Vec3{
		sinPhi * math.Sin(o.sph.theta),
		math.Cos(o.sph.phi) * o.sph.radius,
		sinPhi * math.Cos(o.sph.theta),
	}
	o.camera.Position = o.camera.Target.Add(offset)

	if o.EnableDamping {
		o.delta.theta *= 1 - o.DampingFactor
		o.delta.phi *= 1 - o.DampingFactor
	} else {
		o.delta = spherical{}
	}
	o.scale = 1

	return o.camera.Position.Sub(before).Len() > 1e-9
}
