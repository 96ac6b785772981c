//go:build js
// +build js

package app

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonosphere/render"
)

// Render draws the stats panel on ctx in CSS pixels.
func (s *StatsOverlay) Render(ctx *js.Object, v *Visualizer) {
	if !s.Visible {
		return
	}
	theme := render.Theme
	b := s.Box

	ctx.Call("save")
	ctx.Set("globalCompositeOperation", "source-over")
	ctx.Set("globalAlpha", 1)

	ctx.Set("fillStyle", theme.OverlayBackground)
	ctx.Call("fillRect", b.X, b.Y, b.W, b.H)

	ctx.Set("strokeStyle", theme.OverlayBorder)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", b.X, b.Y, b.W, b.H)

	ctx.Set("fillStyle", theme.OverlayTitle)
	ctx.Set("font", theme.OverlayTitleFont)
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "STATS [F10]", b.X+10, b.Y+20)

	ctx.Set("font", theme.OverlayFont)
	y := b.Y + 44
	for _, line := range s.Lines(v) {
		ctx.Set("fillStyle", theme.OverlayLabel)
		ctx.Call("fillText", line.Label+":", b.X+10, y)
		ctx.Set("fillStyle", line.Color)
		ctx.Set("textAlign", "right")
		ctx.Call("fillText", line.Value, b.X+b.W-10, y)
		ctx.Set("textAlign", "left")
		y += b.Line
	}
	ctx.Call("restore")
}
