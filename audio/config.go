package audio

// DecayMode selects how the idle amplitude fades.
type DecayMode int

const (
	// DecayPerFrame multiplies the level by DecayFactor once per frame.
	DecayPerFrame DecayMode = iota
	// DecayPerSecond scales DecayFactor by the frame duration relative to
	// ReferenceFPS, so the fade is independent of the refresh rate.
	DecayPerSecond
)

type Config struct {
	// Analysis node settings
	FFTSize               int     // transform size, power of two
	SmoothingTimeConstant float64 // 0.0 - 1.0, smoothing across frames
	MinDecibels           float64 // maps to byte 0
	MaxDecibels           float64 // maps to byte 255

	// Idle fade settings
	DecayFactor  float64 // level retention per frame when not playing
	DecayMode    DecayMode
	ReferenceFPS float64 // frame rate DecayFactor is tuned for
}

// DefaultConfig returns the analyser settings used by the visualizer.
func DefaultConfig() Config {
	return Config{
		FFTSize:               2048,
		SmoothingTimeConstant: 0.82,
		MinDecibels:           -100,
		MaxDecibels:           -30,

		DecayFactor:  0.92,
		DecayMode:    DecayPerFrame,
		ReferenceFPS: 60,
	}
}

// FrequencyBinCount is half the transform size.
func (c Config) FrequencyBinCount() int {
	return c.FFTSize / 2
}
