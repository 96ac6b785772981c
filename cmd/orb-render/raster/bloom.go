package raster

import (
	"image"
	"math"
)

// bloomBuffers holds the scratch planes of the CPU bloom.
type bloomBuffers struct {
	bright []float64
	tmp    []float64
}

// apply keeps pixels whose luma passes threshold, blurs them with three box
// passes per axis and adds the result back scaled by strength.
func (b *bloomBuffers) apply(img *image.RGBA, strength, spread, threshold float64) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 || strength <= 0 {
		return
	}
	n := w * h * 3
	if cap(b.bright) < n {
		b.bright = make([]float64, n)
		b.tmp = make([]float64, n)
	}
	bright, tmp := b.bright[:n], b.tmp[:n]

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			r := float64(p[0]) / 255
			g := float64(p[1]) / 255
			bl := float64(p[2]) / 255
			luma := 0.299*r + 0.587*g + 0.114*bl
			k := smoothstep(threshold, threshold+0.01, luma)
			o := (y*w + x) * 3
			bright[o] = r * k
			bright[o+1] = g * k
			bright[o+2] = bl * k
		}
	}

	radius := int(spread/2 + 0.5)
	if radius < 1 {
		radius = 1
	}
	for i := 0; i < 3; i++ {
		boxBlurH(bright, tmp, w, h, radius)
		boxBlurV(tmp, bright, w, h, radius)
	}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			o := (y*w + x) * 3
			for c := 0; c < 3; c++ {
				v := float64(p[c]) + bright[o+c]*strength*255
				p[c] = uint8(math.Min(255, v+0.5))
			}
		}
	}
}

func smoothstep(lo, hi, x float64) float64 {
	t := (x - lo) / (hi - lo)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// boxBlurH averages each pixel with its r neighbours on both sides of the
// row, clamping at the edges.
func boxBlurH(src, dst []float64, w, h, r int) {
	norm := 1 / float64(2*r+1)
	for y := 0; y < h; y++ {
		base := y * w * 3
		for c := 0; c < 3; c++ {
			var sum float64
			for i := -r; i <= r; i++ {
				sum += src[base+clampIndex(i, w)*3+c]
			}
			for x := 0; x < w; x++ {
				dst[base+x*3+c] = sum * norm
				sum += src[base+clampIndex(x+r+1, w)*3+c] - src[base+clampIndex(x-r, w)*3+c]
			}
		}
	}
}

func boxBlurV(src, dst []float64, w, h, r int) {
	norm := 1 / float64(2*r+1)
	for x := 0; x < w; x++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for i := -r; i <= r; i++ {
				sum += src[(clampIndex(i, h)*w+x)*3+c]
			}
			for y := 0; y < h; y++ {
				dst[(y*w+x)*3+c] = sum * norm
				sum += src[(clampIndex(y+r+1, h)*w+x)*3+c] - src[(clampIndex(y-r, h)*w+x)*3+c]
			}
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
