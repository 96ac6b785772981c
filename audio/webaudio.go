//go:build js
// +build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// WebAudio opens an AnalyserNode fed by a media element. The element keeps
// playing through the context's destination.
type WebAudio struct {
	Element *js.Object
}

// Open creates the AudioContext and the element -> analyser -> destination
// graph.
func (w WebAudio) Open(cfg Config) (Source, error) {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil, ErrAudioUnavailable
	}

	ctx := ctor.New()
	analyser := ctx.Call("createAnalyser")
	analyser.Set("fftSize", cfg.FFTSize)
	analyser.Set("smoothingTimeConstant", cfg.SmoothingTimeConstant)
	analyser.Set("minDecibels", cfg.MinDecibels)
	analyser.Set("maxDecibels", cfg.MaxDecibels)

	src := ctx.Call("createMediaElementSource", w.Element)
	src.Call("connect", analyser)
	analyser.Call("connect", ctx.Get("destination"))

	return &webSource{ctx: ctx, analyser: analyser}, nil
}

type webSource struct {
	ctx      *js.Object
	analyser *js.Object
}

func (s *webSource) FrequencyBinCount() int {
	return s.analyser.Get("frequencyBinCount").Int()
}

// ByteFrequencyData fills dst in place; GopherJS passes a []byte to JS as a
// Uint8Array over the same memory.
func (s *webSource) ByteFrequencyData(dst []byte) {
	s.analyser.Call("getByteFrequencyData", dst)
}

func (s *webSource) Suspended() bool {
	return s.ctx.Get("state").String() == "suspended"
}

func (s *webSource) Resume() {
	s.ctx.Call("resume")
}
