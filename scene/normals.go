package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ComputeVertexNormals recomputes normals for a non-indexed triangle list:
// every vertex of a triangle gets that triangle's face normal. Degenerate
// triangles get a zero normal. dst is grown if needed and returned.
func ComputeVertexNormals(positions, dst []float64) []float64 {
	n := len(positions)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	for t := 0; t+9 <= n; t += 9 {
		a := mgl64.Vec3{positions[t], positions[t+1], positions[t+2]}
		b := mgl64.Vec3{positions[t+3], positions[t+4], positions[t+5]}
		c := mgl64.Vec3{positions[t+6], positions[t+7], positions[t+8]}

		face := safeNormalize(c.Sub(b).Cross(a.Sub(b)))
		for k := 0; k < 3; k++ {
			dst[t+k*3] = face[0]
			dst[t+k*3+1] = face[1]
			dst[t+k*3+2] = face[2]
		}
	}

	// trailing vertices that do not form a triangle keep a zero normal
	for i := n - n%9; i < n; i++ {
		dst[i] = 0
	}
	return dst
}
