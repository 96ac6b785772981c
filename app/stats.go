package app

import (
	"strconv"
)

// fpsMeter averages the frame rate over windows of at least one second.
type fpsMeter struct {
	frames int
	since  float64 // ms timestamp the window opened at
	rate   float64
}

// frame counts one frame at now (ms) and closes the window once a second
// has passed.
func (m *fpsMeter) frame(now float64) {
	m.frames++
	if span := now - m.since; span >= 1000 {
		m.rate = float64(m.frames) * 1000 / span
		m.frames = 0
		m.since = now
	}
}

// Box is the overlay rectangle in CSS pixels.
type Box struct {
	X, Y, W, H int
	Line       int
}

// StatsOverlay is the F10 panel: frame rate plus a few scene readings.
type StatsOverlay struct {
	Visible bool
	Box     Box

	meter fpsMeter
}

// StatLine is one label/value row.
type StatLine struct {
	Label string
	Value string
	Color string
}

// NewStatsOverlay returns a hidden overlay in the top-left corner.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{Box: Box{X: 16, Y: 16, W: 240, H: 176, Line: 18}}
}

func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS feeds the rAF timestamp in milliseconds.
func (s *StatsOverlay) UpdateFPS(now float64) {
	s.meter.frame(now)
}

// FPS is the rate measured over the last complete window.
func (s *StatsOverlay) FPS() float64 {
	return s.meter.rate
}

// Lines returns the rows shown for v.
func (s *StatsOverlay) Lines(v *Visualizer) []StatLine {
	file := "-"
	if l := v.Loader(); l != nil {
		if sess, ok := l.Session(); ok {
			file = sess.FileName
		}
	}
	w, h := v.Size()
	return []StatLine{
		{"FPS", strconv.FormatFloat(s.FPS(), 'f', 1, 64), "#00ff00"},
		{"State", v.State().String(), "#ffffff"},
		{"Audio level", strconv.FormatFloat(v.Params.AudioLevel, 'f', 3, 64), "#ffff00"},
		{"Vertices", strconv.Itoa(v.Base.Len()), "#aaaaaa"},
		{"Distance", strconv.FormatFloat(v.Orbit.Distance(), 'f', 2, 64), "#aaaaaa"},
		{"Viewport", strconv.Itoa(w) + "x" + strconv.Itoa(h), "#aaaaaa"},
		{"File", file, "#aaaaaa"},
	}
}
