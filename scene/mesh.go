package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere constants
const (
	SphereRadius = 5.0
	SphereDetail = 6
)

// ErrShapeMismatch is returned when position and normal buffers disagree.
var ErrShapeMismatch = errors.New("shape buffers mismatch")

// BaseShape is the undisturbed mesh captured once at startup.
// Positions and normals are interleaved xyz triples. It is never mutated
// after construction; accessors hand out copies or single vectors.
type BaseShape struct {
	positions []float64
	normals   []float64
}

// NewBaseShape copies positions and normals into a new base shape.
func NewBaseShape(positions, normals []float64) (*BaseShape, error) {
	if len(positions)%3 != 0 || len(positions) != len(normals) {
		return nil, fmt.Errorf("%w: %d positions, %d normals", ErrShapeMismatch, len(positions), len(normals))
	}
	return &BaseShape{
		positions: append([]float64(nil), positions...),
		normals:   append([]float64(nil), normals...),
	}, nil
}

// Len returns the vertex count.
func (b *BaseShape) Len() int {
	return len(b.positions) / 3
}

// Position returns the base position of vertex i.
func (b *BaseShape) Position(i int) mgl64.Vec3 {
	return mgl64.Vec3{b.positions[i*3], b.positions[i*3+1], b.positions[i*3+2]}
}

// Normal returns the base normal of vertex i.
func (b *BaseShape) Normal(i int) mgl64.Vec3 {
	return mgl64.Vec3{b.normals[i*3], b.normals[i*3+1], b.normals[i*3+2]}
}

// Positions returns a copy of the position buffer.
func (b *BaseShape) Positions() []float64 {
	return append([]float64(nil), b.positions...)
}

// Normals returns a copy of the normal buffer.
func (b *BaseShape) Normals() []float64 {
	return append([]float64(nil), b.normals...)
}

// MeshState is the live vertex buffer handed to the renderer.
// It is overwritten in full every frame.
type MeshState struct {
	Positions []float64
	Normals   []float64
}

// NewMeshState starts a mesh state at the base shape.
func NewMeshState(base *BaseShape) *MeshState {
	return &MeshState{
		Positions: base.Positions(),
		Normals:   base.Normals(),
	}
}

// TriangleCount returns the number of triangles in the non-indexed buffer.
func (m *MeshState) TriangleCount() int {
	return len(m.Positions) / 9
}

// Vertex returns the current position of vertex i.
func (m *MeshState) Vertex(i int) mgl64.Vec3 {
	return mgl64.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

// VertexNormal returns the current normal of vertex i.
func (m *MeshState) VertexNormal(i int) mgl64.Vec3 {
	return mgl64.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

var icosahedronVertices = []float64{
	-1, goldenRatio, 0, 1, goldenRatio, 0, -1, -goldenRatio, 0, 1, -goldenRatio, 0,
	0, -1, goldenRatio, 0, 1, goldenRatio, 0, -1, -goldenRatio, 0, 1, -goldenRatio,
	goldenRatio, 0, -1, goldenRatio, 0, 1, -goldenRatio, 0, -1, -goldenRatio, 0, 1,
}

var icosahedronFaces = []int{
	0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
	1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
	3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
	4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
}

const goldenRatio = 1.6180339887498948482

// NewIcosphere builds a non-indexed subdivided icosahedron. Each of the 20
// faces is split into (detail+1)^2 triangles and every vertex is pushed onto
// the sphere of the given radius. Normals are the normalized positions.
func NewIcosphere(radius float64, detail int) *BaseShape {
	if detail < 0 {
		detail = 0
	}
	cols := detail + 1
	positions := make([]float64, 0, 20*cols*cols*9)

	corner := func(i int) mgl64.Vec3 {
		return mgl64.Vec3{icosahedronVertices[i*3], icosahedronVertices[i*3+1], icosahedronVertices[i*3+2]}
	}

	for f := 0; f < len(icosahedronFaces); f += 3 {
		a := corner(icosahedronFaces[f])
		b := corner(icosahedronFaces[f+1])
		c := corner(icosahedronFaces[f+2])

		// grid[i][j] walks from edge a-b (i=0) to the apex c (i=cols)
		grid := make([][]mgl64.Vec3, cols+1)
		for i := 0; i <= cols; i++ {
			t := float64(i) / float64(cols)
			aj := lerpVec(a, c, t)
			bj := lerpVec(b, c, t)
			rows := cols - i
			grid[i] = make([]mgl64.Vec3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					grid[i][j] = aj
				} else {
					grid[i][j] = lerpVec(aj, bj, float64(j)/float64(rows))
				}
			}
		}

		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				var tri [3]mgl64.Vec3
				if j%2 == 0 {
					tri = [3]mgl64.Vec3{grid[i][k+1], grid[i+1][k], grid[i][k]}
				} else {
					tri = [3]mgl64.Vec3{grid[i][k+1], grid[i+1][k+1], grid[i+1][k]}
				}
				for _, v := range tri {
					p := safeNormalize(v).Mul(radius)
					positions = append(positions, p[0], p[1], p[2])
				}
			}
		}
	}

	normals := make([]float64, len(positions))
	for i := 0; i < len(positions); i += 3 {
		n := safeNormalize(mgl64.Vec3{positions[i], positions[i+1], positions[i+2]})
		normals[i], normals[i+1], normals[i+2] = n[0], n[1], n[2]
	}

	return &BaseShape{positions: positions, normals: normals}
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// safeNormalize returns v scaled to unit length, or the zero vector when v
// has no length.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
