package scene

// Params holds every user-tunable visual parameter. The control panel
// writes it from UI callbacks; the frame loop reads it and owns AudioLevel.
type Params struct {
	Color     string
	Emissive  string
	Wireframe bool

	BloomStrength  float64
	BloomRadius    float64
	BloomThreshold float64

	Distortion    float64 // distortion amplitude
	NoiseFloor    float64 // idle displacement strength
	RotationSpeed float64 // radians per second around Y

	AudioLevel float64 // current amplitude in [0,1]
}

// DefaultParams returns the startup parameters.
func DefaultParams() Params {
	return Params{
		Color:          "#7fffd4",
		Emissive:       "#3ce0b8",
		Wireframe:      true,
		BloomStrength:  1.2,
		BloomRadius:    0.8,
		BloomThreshold: 0.12,
		Distortion:     2.8,
		NoiseFloor:     0.12,
		RotationSpeed:  0.18,
		AudioLevel:     0,
	}
}

// Strength is the displacement strength for an amplitude.
func (p *Params) Strength(amplitude float64) float64 {
	return p.NoiseFloor + amplitude*p.Distortion
}
