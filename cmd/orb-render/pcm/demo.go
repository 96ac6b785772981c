package pcm

import (
	"math"

	"github.com/simukka/sonosphere/common"
)

// Demo synthesizes a deterministic test track: a kick on every beat, a
// slowly swelling chord and seeded noise hats. The same seed always yields
// the same samples.
func Demo(seconds float64, sampleRate int, seed uint32) *Clip {
	n := int(seconds * float64(sampleRate))
	if n < 0 {
		n = 0
	}
	rng := common.NewSeededRNG(seed)
	out := make([]float64, n)

	const bpm = 120.0
	beat := 60 / bpm
	chord := []float64{220, 277.18, 329.63}
	rate := float64(sampleRate)

	for i := range out {
		t := float64(i) / rate
		phase := math.Mod(t, beat)

		kick := math.Sin(2*math.Pi*(50+60*math.Exp(-phase*30))*phase) * math.Exp(-phase*8)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*t/8)
		var pad float64
		for _, f := range chord {
			pad += math.Sin(2 * math.Pi * f * t)
		}
		pad *= swell / float64(len(chord))

		off := math.Mod(t+beat/2, beat)
		hat := rng.Signed() * math.Exp(-off*60)

		out[i] = 0.5*kick + 0.3*pad + 0.15*hat
	}
	return &Clip{Samples: out, SampleRate: sampleRate}
}
