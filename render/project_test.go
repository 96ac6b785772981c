package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/scene"
)

func testMaterial(wireframe bool) *scene.Material {
	p := scene.DefaultParams()
	p.Wireframe = wireframe
	return scene.NewMaterial(p)
}

func singleTriangle(a, b, c mgl64.Vec3) *scene.MeshState {
	pos := []float64{a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]}
	return &scene.MeshState{
		Positions: pos,
		Normals:   scene.ComputeVertexNormals(pos, nil),
	}
}

func TestProject_SphereWireframe(t *testing.T) {
	mesh := scene.NewMeshState(scene.NewIcosphere(scene.SphereRadius, scene.SphereDetail))
	cam := scene.NewCamera(1)
	p := NewProjector()

	tris := p.Project(mesh, testMaterial(true), mgl64.Ident4(), cam, 200, 200)
	if len(tris) != mesh.TriangleCount() {
		t.Fatalf("Expected all %d triangles in wireframe, got %d", mesh.TriangleCount(), len(tris))
	}
	for i, tr := range tris {
		for _, pt := range tr.Points {
			if pt.X() < 0 || pt.X() > 200 || pt.Y() < 0 || pt.Y() > 200 {
				t.Fatalf("Triangle %d point %v outside viewport", i, pt)
			}
		}
		if i > 0 && tris[i-1].Depth < tr.Depth {
			t.Fatalf("Triangles not sorted back to front at %d", i)
		}
		if tr.Alpha != 0.9 {
			t.Fatalf("Expected opacity 0.9, got %v", tr.Alpha)
		}
	}
}

func TestProject_SolidCullsBackFaces(t *testing.T) {
	mesh := scene.NewMeshState(scene.NewIcosphere(scene.SphereRadius, 2))
	cam := scene.NewCamera(1)
	p := NewProjector()

	n := len(p.Project(mesh, testMaterial(false), mgl64.Ident4(), cam, 200, 200))
	total := mesh.TriangleCount()
	if n == 0 || n >= total {
		t.Errorf("Expected some but not all of %d triangles, got %d", total, n)
	}
}

func TestProject_Winding(t *testing.T) {
	cam := scene.NewCamera(1)
	p := NewProjector()

	front := singleTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	back := singleTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})

	tests := []struct {
		name      string
		mesh      *scene.MeshState
		wireframe bool
		want      int
	}{
		{"front solid", front, false, 1},
		{"back solid", back, false, 0},
		{"back wireframe", back, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := len(p.Project(tt.mesh, testMaterial(tt.wireframe), mgl64.Ident4(), cam, 100, 100))
			if got != tt.want {
				t.Errorf("Expected %d triangles, got %d", tt.want, got)
			}
		})
	}
}

func TestProject_OriginMapsToCenter(t *testing.T) {
	cam := scene.NewCamera(2)
	p := NewProjector()
	mesh := singleTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})

	tris := p.Project(mesh, testMaterial(false), mgl64.Ident4(), cam, 400, 200)
	if len(tris) != 1 {
		t.Fatalf("Expected 1 triangle, got %d", len(tris))
	}
	origin := tris[0].Points[0]
	if origin.Sub(mgl64.Vec2{200, 100}).Len() > 1e-9 {
		t.Errorf("Expected origin at (200,100), got %v", origin)
	}
	// +x goes right, +y goes up on screen.
	if tris[0].Points[1].X() <= 200 || tris[0].Points[2].Y() >= 100 {
		t.Errorf("Unexpected axis orientation: %v", tris[0].Points)
	}
}

func TestProject_DropsBehindCamera(t *testing.T) {
	cam := scene.NewCamera(1)
	p := NewProjector()
	mesh := singleTriangle(mgl64.Vec3{0, 0, 20}, mgl64.Vec3{1, 0, 20}, mgl64.Vec3{0, 1, 20})

	if n := len(p.Project(mesh, testMaterial(true), mgl64.Ident4(), cam, 100, 100)); n != 0 {
		t.Errorf("Expected triangle behind camera dropped, got %d", n)
	}
	if n := len(p.Project(mesh, testMaterial(true), mgl64.Ident4(), cam, 0, 100)); n != 0 {
		t.Errorf("Expected empty viewport to yield nothing, got %d", n)
	}
}

func TestModelMatrix(t *testing.T) {
	m := ModelMatrix(mgl64.Vec3{0, math.Pi / 2, 0})
	got := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	if got.Sub(mgl64.Vec3{0, 0, -1}).Len() > 1e-9 {
		t.Errorf("Expected +x to rotate to -z, got %v", got)
	}
}

func TestFog(t *testing.T) {
	f := DefaultFog()
	if f.Factor(0) != 0 {
		t.Errorf("Expected no fog at the camera, got %v", f.Factor(0))
	}
	want := 1 - math.Exp(-0.04*0.04*16*16)
	if math.Abs(f.Factor(16)-want) > 1e-12 {
		t.Errorf("Expected %v at depth 16, got %v", want, f.Factor(16))
	}
	if f.Factor(1e6) != 1 {
		t.Errorf("Expected full fog far away, got %v", f.Factor(1e6))
	}
	c := f.Apply(common.Color{R: 1, G: 1, B: 1}, 1e6)
	if !colorNear(c, f.Color) {
		t.Errorf("Expected fog color %v, got %v", f.Color, c)
	}
}

func TestLights_Shade(t *testing.T) {
	mat := testMaterial(true)

	dark := Lights{}
	got := dark.Shade(mat, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
	want := mat.Emissive.Scale(0.2)
	if !colorNear(got, want) {
		t.Errorf("Expected emissive only %v, got %v", want, got)
	}

	l := DefaultLights()
	facing := l.Shade(mat, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1})
	away := l.Shade(mat, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	if !(facing.G >= away.G && facing.B >= away.B) {
		t.Errorf("Expected lit side brighter: %v vs %v", facing, away)
	}
}

func TestLights_Attenuation(t *testing.T) {
	l := DefaultLights()
	if got := l.Attenuation(60); got != 0 {
		t.Errorf("Expected zero at cutoff, got %v", got)
	}
	if got := l.Attenuation(100); got != 0 {
		t.Errorf("Expected zero beyond cutoff, got %v", got)
	}
	if got := l.Attenuation(2); math.Abs(got-0.25*math.Pow(1-math.Pow(2.0/60, 4), 2)) > 1e-12 {
		t.Errorf("Unexpected attenuation at 2: %v", got)
	}
}

func colorNear(a, b common.Color) bool {
	return math.Abs(a.R-b.R) < 1e-9 && math.Abs(a.G-b.G) < 1e-9 && math.Abs(a.B-b.B) < 1e-9
}
