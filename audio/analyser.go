package audio

import (
	"fmt"
	"math"
)

// Source is a frequency analysis node.
type Source interface {
	FrequencyBinCount() int
	// ByteFrequencyData fills dst with magnitudes mapped to [0,255].
	ByteFrequencyData(dst []byte)
}

// Suspender is implemented by sources whose audio graph can be suspended by
// the host, e.g. by autoplay restrictions.
type Suspender interface {
	Suspended() bool
	Resume()
}

// Backend builds the analysis graph on first use.
type Backend interface {
	Open(cfg Config) (Source, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(cfg Config) (Source, error)

// Open calls f.
func (f BackendFunc) Open(cfg Config) (Source, error) {
	return f(cfg)
}

// AnalyserState is the lifecycle of the analysis graph.
type AnalyserState int

const (
	Uninitialized AnalyserState = iota
	Ready
)

func (s AnalyserState) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Analyser samples a scalar amplitude from a frequency source. The graph is
// only built by Ensure, which callers invoke from user-initiated handlers;
// the frame loop only calls Sample and Decay.
type Analyser struct {
	cfg     Config
	backend Backend
	source  Source
	data    []byte
	state   AnalyserState
}

// NewAnalyser creates an analyser that opens backend lazily.
func NewAnalyser(cfg Config, backend Backend) *Analyser {
	return &Analyser{cfg: cfg, backend: backend}
}

// Config returns the analyser settings.
func (a *Analyser) Config() Config {
	return a.cfg
}

// State reports whether the graph has been built.
func (a *Analyser) State() AnalyserState {
	return a.state
}

// Ensure builds the graph if needed and resumes a suspended one.
func (a *Analyser) Ensure() error {
	if a.state == Uninitialized {
		src, err := a.backend.Open(a.cfg)
		if err != nil {
			return fmt.Errorf("open analyser: %w", err)
		}
		a.source = src
		a.data = make([]byte, src.FrequencyBinCount())
		a.state = Ready
	}
	a.Resume()
	return nil
}

// Resume wakes a suspended graph. It does nothing before Ensure.
func (a *Analyser) Resume() {
	if s, ok := a.source.(Suspender); ok && s.Suspended() {
		s.Resume()
	}
}

// Sample returns the current amplitude in [0,1]. ok is false until the
// graph is ready.
func (a *Analyser) Sample() (level float64, ok bool) {
	if a.state != Ready {
		return 0, false
	}
	a.source.ByteFrequencyData(a.data)
	return Level(a.data), true
}

// Decay fades level for a frame without playback. delta is only used in
// DecayPerSecond mode.
func (a *Analyser) Decay(level, delta float64) float64 {
	return Decay(a.cfg, level, delta)
}

// Decay applies one frame of idle fade to level.
func Decay(cfg Config, level, delta float64) float64 {
	if cfg.DecayMode == DecayPerSecond && cfg.ReferenceFPS > 0 {
		return level * math.Pow(cfg.DecayFactor, delta*cfg.ReferenceFPS)
	}
	return level * cfg.DecayFactor
}

// Level averages byte magnitudes and normalizes the mean to [0,1].
func Level(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0
	for _, v := range data {
		sum += int(v)
	}
	return float64(sum) / float64(len(data)) / 255
}
