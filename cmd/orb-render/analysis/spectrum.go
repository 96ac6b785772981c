package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/simukka/sonosphere/audio"
)

// ErrInvalidFFTSize is returned for transform sizes that are not a power
// of two between 32 and 32768.
var ErrInvalidFFTSize = errors.New("invalid fft size")

// Spectrum reproduces the browser analysis node in Go: the most recent
// FFTSize samples are Blackman-windowed, transformed, scaled by 1/N,
// smoothed against the previous frame and mapped from decibels to bytes.
type Spectrum struct {
	cfg      audio.Config
	plan     *algofft.Plan[complex128]
	window   []float64
	in       []complex128
	out      []complex128
	smoothed []float64
	ring     []float64
	write    int
}

// NewSpectrum allocates a spectrum analyser for cfg.
func NewSpectrum(cfg audio.Config) (*Spectrum, error) {
	n := cfg.FFTSize
	if n < 32 || n > 32768 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum fft plan: %w", err)
	}

	return &Spectrum{
		cfg:      cfg,
		plan:     plan,
		window:   window.Generate(window.TypeBlackman, n, window.WithPeriodic()),
		in:       make([]complex128, n),
		out:      make([]complex128, n),
		smoothed: make([]float64, n/2),
		ring:     make([]float64, n),
	}, nil
}

// FrequencyBinCount returns FFTSize/2.
func (s *Spectrum) FrequencyBinCount() int {
	return len(s.smoothed)
}

// Write appends time-domain samples; only the last FFTSize are kept.
func (s *Spectrum) Write(samples []float64) {
	if len(samples) >= len(s.ring) {
		copy(s.ring, samples[len(samples)-len(s.ring):])
		s.write = 0
		return
	}
	for _, v := range samples {
		s.ring[s.write] = v
		s.write++
		if s.write == len(s.ring) {
			s.write = 0
		}
	}
}

// Reset clears the sample history and the smoothing state.
func (s *Spectrum) Reset() {
	for i := range s.ring {
		s.ring[i] = 0
	}
	for i := range s.smoothed {
		s.smoothed[i] = 0
	}
	s.write = 0
}

// analyze runs one analysis frame and updates the smoothed magnitudes.
func (s *Spectrum) analyze() {
	n := len(s.ring)
	read := s.write
	for i := 0; i < n; i++ {
		s.in[i] = complex(s.ring[read]*s.window[i], 0)
		read++
		if read == n {
			read = 0
		}
	}

	if err := s.plan.Forward(s.out, s.in); err != nil {
		return
	}

	tau := s.cfg.SmoothingTimeConstant
	scale := 1 / float64(n)
	for k := range s.smoothed {
		mag := cmplx.Abs(s.out[k]) * scale
		s.smoothed[k] = tau*s.smoothed[k] + (1-tau)*mag
	}
}

// FloatFrequencyData runs an analysis frame and writes decibels to dst.
func (s *Spectrum) FloatFrequencyData(dst []float64) {
	s.analyze()
	for k := 0; k < len(dst) && k < len(s.smoothed); k++ {
		dst[k] = 20 * math.Log10(s.smoothed[k])
	}
}

// ByteFrequencyData runs an analysis frame and writes bytes to dst.
func (s *Spectrum) ByteFrequencyData(dst []byte) {
	s.analyze()

	lo := s.cfg.MinDecibels
	rangeDB := s.cfg.MaxDecibels - lo
	for k := 0; k < len(dst) && k < len(s.smoothed); k++ {
		db := 20 * math.Log10(s.smoothed[k])
		v := math.Floor(255 / rangeDB * (db - lo))
		switch {
		case v < 0 || math.IsNaN(v):
			dst[k] = 0
		case v > 255:
			dst[k] = 255
		default:
			dst[k] = byte(v)
		}
	}
}
