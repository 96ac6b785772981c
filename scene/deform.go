package scene

import "math"

// Noise phase coefficients. Each vertex gets a phase from its own base
// coordinates so the surface moves coherently without per-vertex state.
const (
	noiseTimeScale = 2.0
	noiseX         = 0.4
	noiseY         = 0.6
	noiseZ         = 0.8
)

// Displace computes the deformed position of every base vertex for the
// given amplitude and time and writes them to dst, which is grown if needed
// and returned. The result depends only on the arguments: it is always
// rebuilt from the base shape, never from a previous frame.
//
// Each vertex moves along (normal + radial) by
// (NoiseFloor + amplitude*Distortion) * sin(2t + 0.4x + 0.6y + 0.8z).
func Displace(base *BaseShape, amplitude float64, p *Params, elapsed float64, dst []float64) []float64 {
	n := base.Len() * 3
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	strength := p.Strength(amplitude)
	phase := elapsed * noiseTimeScale

	for i := 0; i < base.Len(); i++ {
		b := base.Position(i)
		normal := base.Normal(i)

		noise := math.Sin(phase + b[0]*noiseX + b[1]*noiseY + b[2]*noiseZ)
		displacement := strength * noise

		dir := normal.Add(safeNormalize(b)).Mul(displacement)
		moved := b.Add(dir)

		dst[i*3] = moved[0]
		dst[i*3+1] = moved[1]
		dst[i*3+2] = moved[2]
	}
	return dst
}

// Deform rebuilds mesh from base for this frame: positions via Displace,
// then normals from the new positions.
func Deform(mesh *MeshState, base *BaseShape, amplitude float64, p *Params, elapsed float64) {
	mesh.Positions = Displace(base, amplitude, p, elapsed, mesh.Positions)
	mesh.Normals = ComputeVertexNormals(mesh.Positions, mesh.Normals)
}
