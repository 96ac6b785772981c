//go:build js
// +build js

package app

import (
	"context"
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonosphere/audio"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/panel"
	"github.com/simukka/sonosphere/render"
)

// App is the browser host: page elements, the rAF loop and input.
type App struct {
	Vis     *Visualizer
	Canvas  *render.Canvas2D
	Element *audio.Element
	Panel   *panel.DOM
	Stats   *StatsOverlay

	container *js.Object
	status    *js.Object
	fileInput *js.Object

	AnimationFrameID int
	drag             struct {
		active bool
		x, y   float64
	}
}

// NewApp wires the page elements #app, #status, #file-input and #audio.
func NewApp() (*App, error) {
	doc := js.Global.Get("document")
	byID := func(id string) (*js.Object, error) {
		el := doc.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			return nil, errors.New("element #" + id + " not found")
		}
		return el, nil
	}

	container, err := byID("app")
	if err != nil {
		return nil, err
	}
	status, err := byID("status")
	if err != nil {
		return nil, err
	}
	fileInput, err := byID("file-input")
	if err != nil {
		return nil, err
	}
	audioEl, err := byID("audio")
	if err != nil {
		return nil, err
	}

	a := &App{
		Canvas:    render.NewCanvas2D(container),
		Element:   audio.NewElement(audioEl),
		Stats:     NewStatsOverlay(),
		container: container,
		status:    status,
		fileInput: fileInput,
	}

	analyser := audio.NewAnalyser(audio.DefaultConfig(), audio.WebAudio{Element: audioEl})
	loader := audio.NewLoader(audio.ObjectURLs{}, a.Element, analyser, a.setStatus)

	w, h := viewport()
	a.Vis = New(a.Canvas, analyser, loader, w, h)
	a.Panel = panel.Mount(a.Vis.ControlPanel())

	a.bindMedia()
	a.SetupInputHandlers()
	return a, nil
}

// Start begins the animation loop.
func (a *App) Start() {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.LoopRAF).Int()
}

// LoopRAF renders one frame and schedules the next. It never stops on its
// own.
func (a *App) LoopRAF(currentTime float64) {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.LoopRAF).Int()

	a.Stats.UpdateFPS(currentTime)
	a.Vis.Tick(currentTime / 1000)
	a.Stats.Render(a.Canvas.Ctx, a.Vis)
}

func (a *App) setStatus(text string) {
	a.status.Set("textContent", text)
}

// bindMedia routes file selection and media element events.
func (a *App) bindMedia() {
	a.fileInput.Call("addEventListener", "change", func(event *js.Object) {
		files := event.Get("target").Get("files")
		if files == nil || files == js.Undefined || files.Length() == 0 {
			return
		}
		f := audio.NewFile(files.Index(0))
		if f == nil {
			return
		}
		// Play blocks on a promise; callbacks must not.
		go func() {
			err := a.Vis.LoadFile(context.Background(), f)
			if err != nil && !errors.Is(err, audio.ErrSuperseded) {
				common.DebugWarn("load:", err.Error())
			}
		}()
	})

	a.Element.On("play", a.Vis.HandlePlay)
	a.Element.On("pause", a.Vis.HandlePause)
	a.Element.On("ended", a.Vis.HandleEnded)
}

func viewport() (int, int) {
	return js.Global.Get("innerWidth").Int(), js.Global.Get("innerHeight").Int()
}
