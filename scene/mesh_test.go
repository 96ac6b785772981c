package scene

import (
	"errors"
	"math"
	"testing"
)

func TestNewIcosphere_VertexCount(t *testing.T) {
	base := NewIcosphere(SphereRadius, SphereDetail)

	if base.Len() != 2940 {
		t.Errorf("Expected 2940 vertices, got %d", base.Len())
	}
}

func TestNewIcosphere_Detail0IsIcosahedron(t *testing.T) {
	base := NewIcosphere(1, 0)

	if base.Len() != 60 {
		t.Errorf("Expected 60 vertices (20 faces), got %d", base.Len())
	}
}

func TestNewIcosphere_VerticesOnSphere(t *testing.T) {
	base := NewIcosphere(SphereRadius, SphereDetail)

	for i := 0; i < base.Len(); i++ {
		r := base.Position(i).Len()
		if math.Abs(r-SphereRadius) > 1e-9 {
			t.Fatalf("Vertex %d: expected radius %f, got %f", i, SphereRadius, r)
		}
	}
}

func TestNewIcosphere_NormalsPointOutward(t *testing.T) {
	base := NewIcosphere(SphereRadius, 2)

	for i := 0; i < base.Len(); i++ {
		n := base.Normal(i)
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Fatalf("Vertex %d: expected unit normal, got length %f", i, n.Len())
		}
		if n.Dot(base.Position(i)) <= 0 {
			t.Fatalf("Vertex %d: expected outward normal", i)
		}
	}
}

func TestNewIcosphere_FacesWindOutward(t *testing.T) {
	base := NewIcosphere(SphereRadius, 3)
	normals := ComputeVertexNormals(base.Positions(), nil)

	for i := 0; i < base.Len(); i += 3 {
		face := []float64{normals[i*3], normals[i*3+1], normals[i*3+2]}
		p := base.Position(i)
		if face[0]*p[0]+face[1]*p[1]+face[2]*p[2] <= 0 {
			t.Fatalf("Triangle %d: expected counter-clockwise winding seen from outside", i/3)
		}
	}
}

func TestNewBaseShape_Mismatch(t *testing.T) {
	_, err := NewBaseShape([]float64{0, 0, 1}, []float64{0, 0})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}

	_, err = NewBaseShape([]float64{0, 0}, []float64{0, 0})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch for partial vertex, got %v", err)
	}
}

func TestBaseShape_CopiesInput(t *testing.T) {
	positions := []float64{1, 2, 3}
	normals := []float64{0, 0, 1}
	base, err := NewBaseShape(positions, normals)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	positions[0] = 99
	normals[2] = -1

	if base.Position(0)[0] != 1 {
		t.Errorf("Expected base position unaffected by caller, got %f", base.Position(0)[0])
	}
	if base.Normal(0)[2] != 1 {
		t.Errorf("Expected base normal unaffected by caller, got %f", base.Normal(0)[2])
	}

	out := base.Positions()
	out[1] = 42
	if base.Position(0)[1] != 2 {
		t.Errorf("Expected Positions to return a copy, got %f", base.Position(0)[1])
	}
}

func TestNewMeshState_StartsAtBase(t *testing.T) {
	base := NewIcosphere(1, 1)
	mesh := NewMeshState(base)

	if mesh.TriangleCount() != base.Len()/3 {
		t.Errorf("Expected %d triangles, got %d", base.Len()/3, mesh.TriangleCount())
	}
	if mesh.Vertex(5) != base.Position(5) {
		t.Errorf("Expected mesh vertex to equal base, got %v vs %v", mesh.Vertex(5), base.Position(5))
	}
}
