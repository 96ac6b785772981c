//go:build js
// +build js

package render

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/sonosphere/common"
)

// Canvas2D draws on an HTML canvas. Sizes are CSS pixels; the backing store
// is scaled by the device pixel ratio, capped at Theme.MaxPixelRatio.
type Canvas2D struct {
	El  *js.Object
	Ctx *js.Object

	glow    *js.Object // offscreen copy for the bloom
	glowCtx *js.Object
	width   int
	height  int
	ratio   float64
}

// NewCanvas2D creates a canvas element and appends it to parent.
func NewCanvas2D(parent *js.Object) *Canvas2D {
	doc := js.Global.Get("document")
	el := doc.Call("createElement", "canvas")
	el.Get("style").Set("display", "block")
	parent.Call("appendChild", el)

	glow := doc.Call("createElement", "canvas")
	return &Canvas2D{
		El:      el,
		Ctx:     el.Call("getContext", "2d"),
		glow:    glow,
		glowCtx: glow.Call("getContext", "2d"),
		ratio:   1,
	}
}

// PixelRatio returns the capped device pixel ratio.
func PixelRatio() float64 {
	r := js.Global.Get("devicePixelRatio")
	if r == js.Undefined || r.Float() <= 0 {
		return 1
	}
	return math.Min(r.Float(), Theme.MaxPixelRatio)
}

func (c *Canvas2D) SetSize(width, height int) {
	c.width, c.height = width, height
	c.ratio = PixelRatio()
	pw := int(float64(width) * c.ratio)
	ph := int(float64(height) * c.ratio)

	c.El.Set("width", pw)
	c.El.Set("height", ph)
	style := c.El.Get("style")
	style.Set("width", strconv.Itoa(width)+"px")
	style.Set("height", strconv.Itoa(height)+"px")

	c.glow.Set("width", pw)
	c.glow.Set("height", ph)

	c.Ctx.Call("setTransform", c.ratio, 0, 0, c.ratio, 0, 0)
}

func (c *Canvas2D) Clear(col common.Color, alpha float64) {
	c.Ctx.Call("clearRect", 0, 0, c.width, c.height)
	c.Ctx.Set("fillStyle", col.RGBA(alpha))
	c.Ctx.Call("fillRect", 0, 0, c.width, c.height)
}

func (c *Canvas2D) DrawTriangles(tris []Triangle, wireframe bool) {
	ctx := c.Ctx
	ctx.Set("lineWidth", Theme.LineWidth)
	ctx.Set("lineJoin", "round")
	for i := range tris {
		t := &tris[i]
		ctx.Call("beginPath")
		ctx.Call("moveTo", t.Points[0].X(), t.Points[0].Y())
		ctx.Call("lineTo", t.Points[1].X(), t.Points[1].Y())
		ctx.Call("lineTo", t.Points[2].X(), t.Points[2].Y())
		ctx.Call("closePath")
		style := t.Color.RGBA(t.Alpha)
		if wireframe {
			ctx.Set("strokeStyle", style)
			ctx.Call("stroke")
		} else {
			ctx.Set("fillStyle", style)
			ctx.Call("fill")
		}
	}
}

// Glow copies the frame through a blur filter and adds it back with the
// "lighter" operator. Canvas filters have no luma key, so the threshold
// dims the copy instead of masking it.
func (c *Canvas2D) Glow(strength, spread, threshold float64) {
	g := c.glowCtx
	g.Call("setTransform", 1, 0, 0, 1, 0, 0)
	g.Call("clearRect", 0, 0, c.glow.Get("width"), c.glow.Get("height"))
	g.Set("filter", "blur("+strconv.FormatFloat(spread*c.ratio, 'f', 1, 64)+"px) brightness("+
		strconv.FormatFloat(1-common.Clamp01(threshold)*0.8, 'f', 2, 64)+")")
	g.Call("drawImage", c.El, 0, 0)
	g.Set("filter", "none")

	ctx := c.Ctx
	ctx.Call("save")
	ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	ctx.Set("globalCompositeOperation", "lighter")
	for s := strength; s > 0; s-- {
		ctx.Set("globalAlpha", math.Min(s, 1))
		ctx.Call("drawImage", c.glow, 0, 0)
	}
	ctx.Call("restore")
}
