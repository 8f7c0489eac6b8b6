// Package raster renders sketches to alpha masks.
//
// The masks are previews of the raw input, sent to cleanup services that
// work on images rather than point lists. Strokes are drawn as round-capped
// polylines: every segment is a quad and every vertex a disc, each filled
// with golang.org/x/image/vector and composited with draw.Over so that
// overlapping pieces merge instead of cancelling.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/inkforge/glyphstyle"
)

// kappa is the cubic Bezier handle length for a quarter circle.
const kappa = 0.5522847498

// Sketch rasterizes sketch onto a size x size mask covering glyph space.
// strokeWidth is in glyph units. The sketch should have passed
// glyphstyle.Sketch.Validate; non-finite points are skipped.
func Sketch(sketch glyphstyle.Sketch, size int, strokeWidth float64) *image.Alpha {
	if size < 1 {
		return image.NewAlpha(image.Rectangle{})
	}

	r := &renderer{
		dst:   image.NewAlpha(image.Rect(0, 0, size, size)),
		z:     vector.NewRasterizer(size, size),
		scale: float64(size) / glyphstyle.Extent,
	}
	r.z.DrawOp = draw.Over
	half := strokeWidth / 2 * r.scale
	if half <= 0 {
		return r.dst
	}

	for _, stroke := range sketch {
		var prev glyphstyle.Point
		havePrev := false
		for _, p := range stroke {
			if !p.Finite() {
				havePrev = false
				continue
			}
			p = p.Mul(r.scale)
			r.disc(p, half)
			if havePrev {
				r.segment(prev, p, half)
			}
			prev, havePrev = p, true
		}
	}
	return r.dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type renderer struct {
	dst   *image.Alpha
	z     *vector.Rasterizer
	scale float64
}

// fill composites the current rasterizer path onto dst and resets it.
func (r *renderer) fill() {
	b := r.dst.Bounds()
	r.z.Draw(r.dst, b, image.Opaque, image.Point{})
	r.z.Reset(b.Dx(), b.Dy())
}

// segment fills the rectangle of half-width hw around a-b.
func (r *renderer) segment(a, b glyphstyle.Point, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := glyphstyle.Pt(-d.Y, d.X).Mul(hw / l)

	r.moveTo(a.Add(n))
	r.lineTo(b.Add(n))
	r.lineTo(b.Sub(n))
	r.lineTo(a.Sub(n))
	r.z.ClosePath()
	r.fill()
}

// disc fills a circle of radius rad around c as four cubic arcs.
func (r *renderer) disc(c glyphstyle.Point, rad float64) {
	k := rad * kappa
	x, y := float32(c.X), float32(c.Y)
	rf, kf := float32(rad), float32(k)

	r.z.MoveTo(x+rf, y)
	r.z.CubeTo(x+rf, y+kf, x+kf, y+rf, x, y+rf)
	r.z.CubeTo(x-kf, y+rf, x-rf, y+kf, x-rf, y)
	r.z.CubeTo(x-rf, y-kf, x-kf, y-rf, x, y-rf)
	r.z.CubeTo(x+kf, y-rf, x+rf, y-kf, x+rf, y)
	r.z.ClosePath()
	r.fill()
}

func (r *renderer) moveTo(p glyphstyle.Point) { r.z.MoveTo(float32(p.X), float32(p.Y)) }
func (r *renderer) lineTo(p glyphstyle.Point) { r.z.LineTo(float32(p.X), float32(p.Y)) }

// Coverage returns the fraction of mask pixels with any ink, in [0, 1].
func Coverage(img *image.Alpha) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	inked := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] != 0 {
				inked++
			}
		}
	}
	return float64(inked) / float64(total)
}
