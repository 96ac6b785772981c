package analysis

import (
	"context"
	"errors"

	"github.com/simukka/sonosphere/audio"
)

// ErrEmptyTape is returned when playing a tape without samples.
var ErrEmptyTape = errors.New("tape has no samples")

// Tape plays decoded mono PCM against a clock advanced by the caller. It is
// the offline stand-in for the browser media element and analysis node:
// it implements audio.Player, and Open returns a Source that analyses the
// samples just before the playhead.
type Tape struct {
	samples []float64
	rate    int
	pos     int
	playing bool

	onPlay  func()
	onPause func()
	onEnded func()
}

// NewTape wraps mono samples at sampleRate.
func NewTape(samples []float64, sampleRate int) *Tape {
	return &Tape{samples: samples, rate: sampleRate}
}

// OnPlay, OnPause and OnEnded register element-style event handlers.
func (t *Tape) OnPlay(fn func())  { t.onPlay = fn }
func (t *Tape) OnPause(fn func()) { t.onPause = fn }
func (t *Tape) OnEnded(fn func()) { t.onEnded = fn }

// SetSource rewinds the tape. The handle itself carries no data offline.
func (t *Tape) SetSource(string) {
	t.pos = 0
	t.playing = false
}

// Play starts playback, rewinding first if the tape already ended.
func (t *Tape) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(t.samples) == 0 || t.rate <= 0 {
		return ErrEmptyTape
	}
	if t.pos >= len(t.samples) {
		t.pos = 0
	}
	if !t.playing {
		t.playing = true
		if t.onPlay != nil {
			t.onPlay()
		}
	}
	return nil
}

// Pause stops the playhead.
func (t *Tape) Pause() {
	if !t.playing {
		return
	}
	t.playing = false
	if t.onPause != nil {
		t.onPause()
	}
}

// Playing reports whether the playhead is moving.
func (t *Tape) Playing() bool {
	return t.playing
}

// Advance moves the playhead by dt seconds while playing and fires the
// ended handler once the last sample has been passed.
func (t *Tape) Advance(dt float64) {
	if !t.playing || dt <= 0 {
		return
	}
	t.pos += int(dt*float64(t.rate) + 0.5)
	if t.pos >= len(t.samples) {
		t.pos = len(t.samples)
		t.playing = false
		if t.onEnded != nil {
			t.onEnded()
		}
	}
}

// Position returns the playhead in seconds.
func (t *Tape) Position() float64 {
	if t.rate <= 0 {
		return 0
	}
	return float64(t.pos) / float64(t.rate)
}

// Duration returns the tape length in seconds.
func (t *Tape) Duration() float64 {
	if t.rate <= 0 {
		return 0
	}
	return float64(len(t.samples)) / float64(t.rate)
}

// Open builds a Spectrum that reads from the tape's playhead.
func (t *Tape) Open(cfg audio.Config) (audio.Source, error) {
	s, err := NewSpectrum(cfg)
	if err != nil {
		return nil, err
	}
	return &tapeSource{
		tape:     t,
		spectrum: s,
		frame:    make([]float64, cfg.FFTSize),
	}, nil
}

type tapeSource struct {
	tape     *Tape
	spectrum *Spectrum
	frame    []float64
}

func (s *tapeSource) FrequencyBinCount() int {
	return s.spectrum.FrequencyBinCount()
}

// ByteFrequencyData analyses the FFTSize samples ending at the playhead,
// zero-padded before the start of the tape.
func (s *tapeSource) ByteFrequencyData(dst []byte) {
	n := len(s.frame)
	end := s.tape.pos
	start := end - n
	for i := 0; i < n; i++ {
		j := start + i
		if j < 0 || j >= len(s.tape.samples) {
			s.frame[i] = 0
			continue
		}
		s.frame[i] = s.tape.samples[j]
	}
	s.spectrum.Write(s.frame)
	s.spectrum.ByteFrequencyData(dst)
}
