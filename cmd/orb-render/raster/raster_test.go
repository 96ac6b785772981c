package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/simukka/sonosphere/common"
	"github.com/simukka/sonosphere/render"
)

func TestRaster_Clear(t *testing.T) {
	r := NewRaster(16, 8)
	if w, h := r.Size(); w != 16 || h != 8 {
		t.Fatalf("Expected 16x8, got %dx%d", w, h)
	}

	r.Clear(common.Color{R: 1, G: 1, B: 1}, 0.5)
	px := r.Image().RGBAAt(3, 3)
	if px.A != 255 {
		t.Errorf("Expected opaque pixel, got alpha %d", px.A)
	}
	if px.R < 126 || px.R > 129 {
		t.Errorf("Expected half white over black, got %d", px.R)
	}
}

func TestRaster_DrawSolid(t *testing.T) {
	r := NewRaster(32, 32)
	r.Clear(common.Color{}, 1)
	r.DrawTriangles([]render.Triangle{{
		Points: [3]mgl64.Vec2{{0, 0}, {32, 0}, {0, 32}},
		Color:  common.Color{R: 1},
		Alpha:  1,
	}}, false)

	if px := r.Image().RGBAAt(4, 4); px.R < 250 || px.G != 0 {
		t.Errorf("Expected red inside the triangle, got %v", px)
	}
	if px := r.Image().RGBAAt(30, 30); px.R != 0 {
		t.Errorf("Expected black outside the triangle, got %v", px)
	}
}

func TestRaster_GlowSpreadsBrightPixels(t *testing.T) {
	r := NewRaster(21, 21)
	r.Clear(common.Color{}, 1)
	img := r.Image()
	c := img.PixOffset(10, 10)
	img.Pix[c], img.Pix[c+1], img.Pix[c+2] = 255, 255, 255

	r.Glow(1, 4, 0.5)
	if px := img.RGBAAt(12, 10); px.R == 0 {
		t.Error("Expected glow next to the bright pixel")
	}
	if px := img.RGBAAt(0, 0); px.R != 0 {
		t.Errorf("Expected far corner untouched, got %v", px)
	}
}

func TestRaster_GlowIgnoresDarkPixels(t *testing.T) {
	r := NewRaster(8, 8)
	r.Clear(common.Color{R: 0.1, G: 0.1, B: 0.1}, 1)
	before := r.Snapshot()

	r.Glow(2, 4, 0.5)
	if !bytes.Equal(before.Pix, r.Image().Pix) {
		t.Error("Expected pixels below threshold unchanged")
	}
}

func TestRaster_EncodePNG(t *testing.T) {
	r := NewRaster(4, 4)
	r.Clear(common.Color{B: 1}, 1)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("Expected width 4, got %d", img.Bounds().Dx())
	}
}
