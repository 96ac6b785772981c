//go:build js
// +build js

package audio

import (
	"context"
	"errors"

	"github.com/gopherjs/gopherjs/js"
)

// Element is a Player over an HTML media element.
type Element struct {
	el *js.Object
}

// NewElement wraps an <audio> element.
func NewElement(el *js.Object) *Element {
	return &Element{el: el}
}

// Object returns the wrapped element.
func (e *Element) Object() *js.Object {
	return e.el
}

func (e *Element) SetSource(url string) {
	e.el.Set("src", url)
	e.el.Call("load")
}

// Play requests playback and waits for the returned promise. Older hosts
// that return nothing are treated as accepted. Must not be called from a
// JS callback directly; run it in a goroutine.
func (e *Element) Play(ctx context.Context) error {
	p := e.el.Call("play")
	if p == nil || p == js.Undefined {
		return nil
	}
	done := make(chan error, 1)
	p.Call("then", func() {
		done <- nil
	}).Call("catch", func(reason *js.Object) {
		msg := "play rejected"
		if reason != nil && reason != js.Undefined {
			if m := reason.Get("message"); m != js.Undefined {
				msg = m.String()
			} else {
				msg = reason.String()
			}
		}
		done <- errors.New(msg)
	})
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Element) Pause() {
	e.el.Call("pause")
}

// Paused reports the element's paused flag.
func (e *Element) Paused() bool {
	return e.el.Get("paused").Bool()
}

// Toggle plays a paused element or pauses a playing one.
func (e *Element) Toggle() {
	if e.Paused() {
		e.el.Call("play")
		return
	}
	e.Pause()
}

// On registers a handler for a media event such as "play", "pause" or
// "ended".
func (e *Element) On(event string, fn func()) {
	e.el.Call("addEventListener", event, func(*js.Object) {
		fn()
	})
}

// ObjectURLs creates blob URLs with URL.createObjectURL.
type ObjectURLs struct{}

func (ObjectURLs) Create(f File) (string, error) {
	bf, ok := f.(*BrowserFile)
	if !ok {
		return "", errors.New("not a browser file")
	}
	return js.Global.Get("URL").Call("createObjectURL", bf.obj).String(), nil
}

func (ObjectURLs) Revoke(url string) {
	js.Global.Get("URL").Call("revokeObjectURL", url)
}

// BrowserFile is a DOM File.
type BrowserFile struct {
	obj *js.Object
}

// NewFile wraps a DOM File; it returns nil for a missing file.
func NewFile(obj *js.Object) *BrowserFile {
	if obj == nil || obj == js.Undefined {
		return nil
	}
	return &BrowserFile{obj: obj}
}

func (f *BrowserFile) Name() string { return f.obj.Get("name").String() }
func (f *BrowserFile) Type() string { return f.obj.Get("type").String() }
