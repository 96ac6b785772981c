package app

import (
	"context"
	"testing"

	"github.com/simukka/sonosphere/audio"
)

func TestStatsOverlay_UpdateFPS(t *testing.T) {
	s := NewStatsOverlay()
	for i := 0; i < 60; i++ {
		s.UpdateFPS(float64(i) * 1000 / 60)
	}
	if s.FPS() != 0 {
		t.Errorf("Expected no reading before a second, got %v", s.FPS())
	}
	s.UpdateFPS(1000)
	if s.FPS() != 61 {
		t.Errorf("Expected 61 fps, got %v", s.FPS())
	}
	if s.meter.frames != 0 {
		t.Errorf("Expected counter reset, got %d", s.meter.frames)
	}
}

func TestStatsOverlay_Toggle(t *testing.T) {
	s := NewStatsOverlay()
	if s.Visible {
		t.Error("Expected hidden by default")
	}
	s.Toggle()
	if !s.Visible {
		t.Error("Expected visible after toggle")
	}
}

func TestStatsOverlay_Lines(t *testing.T) {
	v, _, _, _ := newTestVisualizer(255)
	if err := v.LoadFile(context.Background(), audio.LocalFile{FileName: "song.mp3", MediaType: "audio/mpeg"}); err != nil {
		t.Fatal(err)
	}
	v.Tick(0)

	got := map[string]string{}
	for _, l := range NewStatsOverlay().Lines(v) {
		got[l.Label] = l.Value
	}
	want := map[string]string{
		"State":       "playing",
		"Audio level": "1.000",
		"Vertices":    "2940",
		"Viewport":    "1280x720",
		"File":        "song.mp3",
		"Distance":    "16.00",
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s: expected %q, got %q", k, w, got[k])
		}
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  int
		want Action
	}{
		{32, TogglePlayback},
		{70, ToggleFullscreen},
		{121, ToggleStats},
		{72, TogglePanel},
		{65, NoAction},
	}
	for _, tt := range tests {
		if got := KeyAction(tt.key); got != tt.want {
			t.Errorf("Key %d: expected %v, got %v", tt.key, tt.want, got)
		}
	}
}
