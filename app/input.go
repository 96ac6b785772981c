//go:build js
// +build js

package app

import (
	"github.com/gopherjs/gopherjs/js"
)

// SetupInputHandlers wires keyboard, pointer, wheel, click and resize
// events.
func (a *App) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		if isFormField(event.Get("target")) {
			return
		}
		switch KeyAction(event.Get("keyCode").Int()) {
		case TogglePlayback:
			a.Vis.Resume()
			a.Element.Toggle()
		case ToggleFullscreen:
			requestFullscreen(a.container)
		case ToggleStats:
			a.Stats.Toggle()
		case TogglePanel:
			a.Panel.Toggle()
		default:
			return
		}
		event.Call("preventDefault")
	})

	// Autoplay policies keep the context suspended until a gesture.
	js.Global.Call("addEventListener", "click", func(*js.Object) {
		a.Vis.Resume()
	})

	el := a.Canvas.El
	el.Call("addEventListener", "pointerdown", func(event *js.Object) {
		a.drag.active = true
		a.drag.x = event.Get("clientX").Float()
		a.drag.y = event.Get("clientY").Float()
		el.Call("setPointerCapture", event.Get("pointerId"))
	})
	el.Call("addEventListener", "pointermove", func(event *js.Object) {
		if !a.drag.active {
			return
		}
		x, y := event.Get("clientX").Float(), event.Get("clientY").Float()
		_, h := a.Vis.Size()
		a.Vis.Orbit.Rotate(x-a.drag.x, y-a.drag.y, float64(h))
		a.drag.x, a.drag.y = x, y
	})
	endDrag := func(*js.Object) { a.drag.active = false }
	el.Call("addEventListener", "pointerup", endDrag)
	el.Call("addEventListener", "pointercancel", endDrag)

	el.Call("addEventListener", "wheel", func(event *js.Object) {
		event.Call("preventDefault")
		a.Vis.Orbit.Wheel(event.Get("deltaY").Float())
	}, map[string]interface{}{"passive": false})

	js.Global.Call("addEventListener", "resize", func(*js.Object) {
		a.Vis.Resize(viewport())
	})
}

func isFormField(target *js.Object) bool {
	if target == nil || target == js.Undefined {
		return false
	}
	switch target.Get("tagName").String() {
	case "INPUT", "SELECT", "TEXTAREA":
		return true
	}
	return false
}

func requestFullscreen(el *js.Object) {
	doc := js.Global.Get("document")
	if fs := doc.Get("fullscreenElement"); fs != nil && fs != js.Undefined {
		doc.Call("exitFullscreen")
		return
	}
	if el.Get("requestFullscreen") != nil && el.Get("requestFullscreen") != js.Undefined {
		el.Call("requestFullscreen")
	} else if el.Get("webkitRequestFullscreen") != nil && el.Get("webkitRequestFullscreen") != js.Undefined {
		el.Call("webkitRequestFullscreen")
	}
}
