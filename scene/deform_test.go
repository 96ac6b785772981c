package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func singleVertex(t *testing.T, p, n mgl64.Vec3) *BaseShape {
	t.Helper()
	base, err := NewBaseShape([]float64{p[0], p[1], p[2]}, []float64{n[0], n[1], n[2]})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return base
}

func TestDisplace_Formula(t *testing.T) {
	b := mgl64.Vec3{1, 2, 2}
	n := mgl64.Vec3{0, 1, 0}
	base := singleVertex(t, b, n)
	p := DefaultParams()

	amplitude := 0.5
	elapsed := 1.3
	got := Displace(base, amplitude, &p, elapsed, nil)

	strength := p.NoiseFloor + amplitude*p.Distortion
	noise := math.Sin(elapsed*2 + b[0]*0.4 + b[1]*0.6 + b[2]*0.8)
	d := strength * noise
	radial := b.Mul(1.0 / 3.0)
	want := b.Add(n.Add(radial).Mul(d))

	for k := 0; k < 3; k++ {
		if math.Abs(got[k]-want[k]) > 1e-12 {
			t.Errorf("Axis %d: expected %f, got %f", k, want[k], got[k])
		}
	}
}

func TestDisplace_ZeroAmplitudeIgnoresDistortion(t *testing.T) {
	base := NewIcosphere(SphereRadius, 3)

	calm := DefaultParams()
	calm.Distortion = 0
	wild := DefaultParams()
	wild.Distortion = 6

	a := Displace(base, 0, &calm, 2.5, nil)
	b := Displace(base, 0, &wild, 2.5, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Index %d: expected distortion to have no effect at zero amplitude, %f != %f", i, a[i], b[i])
		}
	}
}

func TestDisplace_ZeroAmplitudeStillMoves(t *testing.T) {
	base := NewIcosphere(SphereRadius, 2)
	p := DefaultParams()

	out := Displace(base, 0, &p, 0.7, nil)
	moved := false
	for i := 0; i < base.Len(); i++ {
		v := mgl64.Vec3{out[i*3], out[i*3+1], out[i*3+2]}
		if v.Sub(base.Position(i)).Len() > 1e-9 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("Expected noise floor to produce idle motion")
	}
}

func TestDisplace_ZeroNoiseFloorAndAmplitudeIsRest(t *testing.T) {
	base := NewIcosphere(SphereRadius, 1)
	p := DefaultParams()
	p.NoiseFloor = 0

	out := Displace(base, 0, &p, 3, nil)
	want := base.Positions()
	for i := range out {
		if out[i] != want[i] {
			t.Fatalf("Index %d: expected rest position %f, got %f", i, want[i], out[i])
		}
	}
}

func TestDisplace_Deterministic(t *testing.T) {
	base := NewIcosphere(SphereRadius, SphereDetail)
	p := DefaultParams()

	a := Displace(base, 0.37, &p, 12.25, nil)
	b := Displace(base, 0.37, &p, 12.25, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Index %d: expected identical output, %f != %f", i, a[i], b[i])
		}
	}
}

func TestDisplace_RecomputesFromBase(t *testing.T) {
	base := NewIcosphere(SphereRadius, 2)
	p := DefaultParams()

	buf := Displace(base, 1, &p, 0.4, nil)
	for frame := 0; frame < 50; frame++ {
		buf = Displace(base, 1, &p, float64(frame)*0.016, buf)
	}
	buf = Displace(base, 0.2, &p, 9, buf)

	fresh := Displace(base, 0.2, &p, 9, nil)
	for i := range fresh {
		if buf[i] != fresh[i] {
			t.Fatalf("Index %d: expected no accumulation across frames, %f != %f", i, buf[i], fresh[i])
		}
	}
}

func TestDisplace_DoesNotMutateBase(t *testing.T) {
	base := NewIcosphere(SphereRadius, 1)
	before := base.Positions()
	p := DefaultParams()

	Displace(base, 1, &p, 1, nil)

	after := base.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Index %d: base shape mutated", i)
		}
	}
}

func TestDisplace_OriginVertexHasNoRadial(t *testing.T) {
	base := singleVertex(t, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	p := DefaultParams()

	out := Displace(base, 1, &p, 0.25, nil)
	d := p.Strength(1) * math.Sin(0.5)

	if out[0] != 0 || out[1] != 0 || math.Abs(out[2]-d) > 1e-12 {
		t.Errorf("Expected (0,0,%f), got (%f,%f,%f)", d, out[0], out[1], out[2])
	}
	for _, v := range out {
		if math.IsNaN(v) {
			t.Fatal("Expected finite output for vertex at origin")
		}
	}
}

func TestDisplace_ReusesBuffer(t *testing.T) {
	base := NewIcosphere(1, 1)
	p := DefaultParams()
	buf := make([]float64, base.Len()*3)

	out := Displace(base, 0.1, &p, 0.1, buf)
	if &out[0] != &buf[0] {
		t.Error("Expected Displace to write into the provided buffer")
	}
}

func TestDeform_UpdatesNormals(t *testing.T) {
	base := NewIcosphere(SphereRadius, 2)
	mesh := NewMeshState(base)
	p := DefaultParams()

	Deform(mesh, base, 1, &p, 0.8)

	want := ComputeVertexNormals(mesh.Positions, nil)
	for i := range want {
		if mesh.Normals[i] != want[i] {
			t.Fatalf("Index %d: expected normals recomputed from new positions", i)
		}
	}
}

func TestParams_Strength(t *testing.T) {
	p := DefaultParams()
	got := p.Strength(0.5)
	want := 0.12 + 0.5*2.8

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}
