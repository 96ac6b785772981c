package scene

import (
	"math"
	"testing"
)

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera(800.0 / 600.0)

	if c.Position[2] != CameraZ {
		t.Errorf("Expected camera z %f, got %f", CameraZ, c.Position[2])
	}
	if c.FOV != 60 || c.Near != 0.1 || c.Far != 100 {
		t.Errorf("Expected lens 60/0.1/100, got %f/%f/%f", c.FOV, c.Near, c.Far)
	}
}

func TestCamera_SetAspectRebuildsProjection(t *testing.T) {
	c := NewCamera(1)
	before := c.Projection()

	c.SetAspect(2)

	if c.Aspect != 2 {
		t.Errorf("Expected aspect 2, got %f", c.Aspect)
	}
	after := c.Projection()
	if math.Abs(after.At(0, 0)-before.At(0, 0)/2) > 1e-12 {
		t.Errorf("Expected x scale halved, got %f vs %f", after.At(0, 0), before.At(0, 0))
	}
}

func TestOrbitControls_InitialDistance(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))

	if math.Abs(o.Distance()-CameraZ) > 1e-12 {
		t.Errorf("Expected distance %f, got %f", CameraZ, o.Distance())
	}
}

func TestOrbitControls_UpdateWithoutInputKeepsCamera(t *testing.T) {
	c := NewCamera(1)
	o := NewOrbitControls(c)

	if o.Update() {
		t.Error("Expected no movement without input")
	}
	if math.Abs(c.Position[2]-CameraZ) > 1e-9 || math.Abs(c.Position[0]) > 1e-9 {
		t.Errorf("Expected camera to stay at (0,0,%f), got %v", CameraZ, c.Position)
	}
}

func TestOrbitControls_DistanceClamped(t *testing.T) {
	c := NewCamera(1)
	o := NewOrbitControls(c)

	for i := 0; i < 200; i++ {
		o.Wheel(-1)
		o.Update()
	}
	if math.Abs(o.Distance()-OrbitMinDistance) > 1e-9 {
		t.Errorf("Expected distance clamped to %f, got %f", OrbitMinDistance, o.Distance())
	}

	for i := 0; i < 200; i++ {
		o.Wheel(1)
		o.Update()
	}
	if math.Abs(o.Distance()-OrbitMaxDistance) > 1e-9 {
		t.Errorf("Expected distance clamped to %f, got %f", OrbitMaxDistance, o.Distance())
	}
	if math.Abs(c.Position.Len()-OrbitMaxDistance) > 1e-9 {
		t.Errorf("Expected camera at distance %f, got %f", OrbitMaxDistance, c.Position.Len())
	}
}

func TestOrbitControls_RotateWithDampingEases(t *testing.T) {
	c := NewCamera(1)
	o := NewOrbitControls(c)

	o.Rotate(100, 0, 600)
	o.Update()
	first := c.Position[0]
	o.Update()
	second := c.Position[0]

	if first == 0 {
		t.Fatal("Expected camera to start moving after a drag")
	}
	if math.Abs(second) <= math.Abs(first) {
		t.Errorf("Expected damping to keep moving the camera, got %f then %f", first, second)
	}
	if math.Abs(c.Position.Len()-CameraZ) > 1e-9 {
		t.Errorf("Expected rotation to keep distance %f, got %f", CameraZ, c.Position.Len())
	}
}

func TestOrbitControls_PolarAngleClamped(t *testing.T) {
	c := NewCamera(1)
	o := NewOrbitControls(c)
	o.EnableDamping = false

	o.Rotate(0, 100000, 600)
	o.Update()

	if c.Position[1] > CameraZ || math.IsNaN(c.Position[1]) {
		t.Errorf("Expected camera to stop at the pole, got %v", c.Position)
	}
}
