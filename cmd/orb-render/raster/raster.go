package raster

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/render"
)

// Raster is an offscreen canvas drawn with gg. It has no page behind it,
// so Clear composites the clear color over Background.
type Raster struct {
	Background common.Color
	LineWidth  float64

	dc    *gg.Context
	bloom bloomBuffers
}

// NewRaster creates a width x height raster.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		Background: common.MustParseHex(render.Theme.PageBackground),
		LineWidth:  render.Theme.LineWidth,
	}
	r.SetSize(width, height)
	return r
}

// SetSize reallocates the pixel buffer when the size changes.
func (r *Raster) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.dc != nil && r.dc.Width() == width && r.dc.Height() == height {
		return
	}
	r.dc = gg.NewContext(width, height)
}

// Size returns the raster size in pixels.
func (r *Raster) Size() (width, height int) {
	return r.dc.Width(), r.dc.Height()
}

func (r *Raster) Clear(c common.Color, alpha float64) {
	bg := r.Background
	r.dc.SetRGB(bg.R, bg.G, bg.B)
	r.dc.Clear()

	r.dc.SetRGBA(c.R, c.G, c.B, common.Clamp01(alpha))
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	r.dc.Fill()
}

func (r *Raster) DrawTriangles(tris []render.Triangle, wireframe bool) {
	r.dc.SetLineWidth(r.LineWidth)
	for i := range tris {
		t := &tris[i]
		r.dc.MoveTo(t.Points[0].X(), t.Points[0].Y())
		r.dc.LineTo(t.Points[1].X(), t.Points[1].Y())
		r.dc.LineTo(t.Points[2].X(), t.Points[2].Y())
		r.dc.ClosePath()
		r.dc.SetRGBA(t.Color.R, t.Color.G, t.Color.B, t.Alpha)
		if wireframe {
			r.dc.Stroke()
		} else {
			r.dc.Fill()
		}
	}
}

// Glow blooms the current pixels in place.
func (r *Raster) Glow(strength, spread, threshold float64) {
	r.bloom.apply(r.Image(), strength, spread, threshold)
}

// Image returns the live pixel buffer.
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

// Snapshot returns a copy of the pixels that later frames will not touch.
func (r *Raster) Snapshot() *image.RGBA {
	src := r.Image()
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to path.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
