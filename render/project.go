package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/scene"
)

// Triangle is a shaded triangle in viewport pixels.
type Triangle struct {
	Points [3]mgl64.Vec2
	Depth  float64 // view space distance along the camera axis
	Color  common.Color
	Alpha  float64
}

// ModelMatrix returns the rotation for Euler angles applied in X, Y, Z
// order.
func ModelMatrix(rot mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(rot.X()).
		Mul4(mgl64.HomogRotate3DY(rot.Y())).
		Mul4(mgl64.HomogRotate3DZ(rot.Z()))
}

// Projector turns a mesh into a depth sorted triangle list.
type Projector struct {
	Lights Lights
	Fog    Fog

	tris []Triangle
}

// NewProjector uses the Theme lights and fog.
func NewProjector() *Projector {
	return &Projector{
		Lights: DefaultLights(),
		Fog:    DefaultFog(),
	}
}

// Project transforms, shades and sorts the triangles of mesh for a
// width x height viewport. Solid meshes drop back faces; wireframes keep
// them. Triangles crossing the near plane are dropped. The returned slice
// is reused by the next call.
func (p *Projector) Project(mesh *scene.MeshState, mat *scene.Material, model mgl64.Mat4, cam *scene.Camera, width, height int) []Triangle {
	p.tris = p.tris[:0]
	if width <= 0 || height <= 0 {
		return p.tris
	}

	view := cam.View()
	viewProj := cam.Projection().Mul4(view)
	normalMat := model.Mat3()
	w, h := float64(width), float64(height)

	for t := 0; t < mesh.TriangleCount(); t++ {
		var (
			world  [3]mgl64.Vec3
			screen [3]mgl64.Vec2
			ndc    [3]mgl64.Vec2
			depth  float64
			normal mgl64.Vec3
			behind bool
		)
		for k := 0; k < 3; k++ {
			i := t*3 + k
			world[k] = model.Mul4x1(mesh.Vertex(i).Vec4(1)).Vec3()
			normal = normal.Add(normalMat.Mul3x1(mesh.VertexNormal(i)))

			clip := viewProj.Mul4x1(world[k].Vec4(1))
			if clip.W() < cam.Near {
				behind = true
				break
			}
			ndc[k] = mgl64.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
			screen[k] = mgl64.Vec2{(ndc[k].X() + 1) / 2 * w, (1 - ndc[k].Y()) / 2 * h}
			depth += clip.W()
		}
		if behind {
			continue
		}

		if !mat.Wireframe {
			e1 := ndc[1].Sub(ndc[0])
			e2 := ndc[2].Sub(ndc[0])
			if e1.X()*e2.Y()-e1.Y()*e2.X() <= 0 {
				continue
			}
		}

		depth /= 3
		if l := normal.Len(); l > 0 {
			normal = normal.Mul(1 / l)
		}
		centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
		c := p.Fog.Apply(p.Lights.Shade(mat, centroid, normal), depth)

		p.tris = append(p.tris, Triangle{
			Points: screen,
			Depth:  depth,
			Color:  c,
			Alpha:  mat.Opacity,
		})
	}

	tris := p.tris
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].Depth > tris[j].Depth
	})
	return tris
}
