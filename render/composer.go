package render

import (
	"github.com/simukka/sonosphere/common"
)

// Canvas is a drawing surface sized in CSS pixels.
type Canvas interface {
	SetSize(width, height int)
	Clear(c common.Color, alpha float64)
	DrawTriangles(tris []Triangle, wireframe bool)
}

// Glower is a canvas that can add a bloom over what it has drawn.
type Glower interface {
	Glow(strength, spread, threshold float64)
}

// Frame is everything one render needs.
type Frame struct {
	Triangles  []Triangle
	Wireframe  bool
	Clear      common.Color
	ClearAlpha float64
}

// Pass is one stage of the composer.
type Pass interface {
	SetSize(width, height int)
	Render(c Canvas, f *Frame)
}

// RenderPass clears the canvas and draws the frame's triangles.
type RenderPass struct{}

func (RenderPass) SetSize(int, int) {}

func (RenderPass) Render(c Canvas, f *Frame) {
	c.Clear(f.Clear, f.ClearAlpha)
	c.DrawTriangles(f.Triangles, f.Wireframe)
}

// BloomPass adds glow to bright pixels. Canvases without Glower skip it.
type BloomPass struct {
	Strength  float64
	Radius    float64
	Threshold float64

	height int
}

// NewBloomPass creates a bloom pass for a viewport.
func NewBloomPass(width, height int, strength, radius, threshold float64) *BloomPass {
	b := &BloomPass{Strength: strength, Radius: radius, Threshold: threshold}
	b.SetSize(width, height)
	return b
}

func (b *BloomPass) SetSize(_, height int) {
	b.height = height
}

// Spread is the blur size in pixels for the current radius and viewport.
func (b *BloomPass) Spread() float64 {
	scale := float64(b.height) / 720
	if scale <= 0 {
		scale = 1
	}
	return (Theme.BloomBaseSpread + Theme.BloomRadiusScale*b.Radius) * scale
}

func (b *BloomPass) Render(c Canvas, _ *Frame) {
	if b.Strength <= 0 {
		return
	}
	if g, ok := c.(Glower); ok {
		g.Glow(b.Strength, b.Spread(), b.Threshold)
	}
}

// Composer runs passes in order on one canvas.
type Composer struct {
	canvas Canvas
	passes []Pass
	width  int
	height int
}

// NewComposer creates an empty composer.
func NewComposer(c Canvas) *Composer {
	return &Composer{canvas: c}
}

// AddPass appends p and sizes it to the current viewport.
func (c *Composer) AddPass(p Pass) {
	p.SetSize(c.width, c.height)
	c.passes = append(c.passes, p)
}

// SetSize resizes the canvas and every pass. Non-positive sizes are
// ignored.
func (c *Composer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.canvas.SetSize(width, height)
	for _, p := range c.passes {
		p.SetSize(width, height)
	}
}

// Size returns the viewport size.
func (c *Composer) Size() (width, height int) {
	return c.width, c.height
}

// Render draws f through every pass.
func (c *Composer) Render(f *Frame) {
	for _, p := range c.passes {
		p.Render(c.canvas, f)
	}
}
