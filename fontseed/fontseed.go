// Package fontseed builds starting sketches from font outlines.
//
// A seed is the outline of a reference glyph flattened into strokes, one per
// contour, and fitted into glyph space. Stylizing a seed gives a quick
// preview of what a style does to a familiar letter form, and gives tests a
// realistic input with curves, counters and sharp corners.
package fontseed

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/inkforge/glyphstyle"
)

// ErrNoGlyph is returned when the font has no glyph for the requested rune.
var ErrNoGlyph = errors.New("fontseed: font has no glyph for rune")

// Seed is a sketch traced from a font glyph.
type Seed struct {
	Rune   rune
	Script language.Script
	Sketch glyphstyle.Sketch
}

// Option configures Glyph.
type Option func(*options)

type options struct {
	font      []byte
	margin    float64
	tolerance float64
}

func defaultOptions() options {
	return options{
		margin:    10,
		tolerance: 0.25,
	}
}

// WithFont uses the given TrueType or OpenType data instead of Go Regular.
func WithFont(data []byte) Option {
	return func(o *options) {
		o.font = data
	}
}

// WithMargin sets the empty border, in glyph units, kept around the outline.
// Values outside [0, 50) are ignored.
func WithMargin(m float64) Option {
	return func(o *options) {
		if m >= 0 && m < glyphstyle.Extent/2 {
			o.margin = m
		}
	}
}

// WithTolerance sets the maximum distance, in glyph units relative to the
// em square, between a curve and its flattened polyline.
func WithTolerance(t float64) Option {
	return func(o *options) {
		if t > 0 {
			o.tolerance = t
		}
	}
}

var goRegular = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

// Glyph traces the outline of r. Glyphs without an outline, such as the
// space, give a seed with an empty sketch.
func Glyph(r rune, opts ...Option) (*Seed, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		f   *sfnt.Font
		err error
	)
	if o.font != nil {
		f, err = sfnt.Parse(o.font)
	} else {
		f, err = goRegular()
	}
	if err != nil {
		return nil, fmt.Errorf("fontseed: parse font: %w", err)
	}

	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("fontseed: glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}

	// Loading at one pixel per font unit keeps coordinates in font units.
	upem := float64(f.UnitsPerEm())
	segs, err := f.LoadGlyph(&buf, idx, fixed.I(int(f.UnitsPerEm())), nil)
	if err != nil {
		return nil, fmt.Errorf("fontseed: load glyph %q: %w", r, err)
	}

	sketch := trace(segs, o.tolerance*upem/glyphstyle.Extent)
	fit(sketch, o.margin)

	glyphstyle.Logger().Debug("fontseed: traced glyph",
		"rune", string(r),
		"contours", len(sketch),
		"points", sketch.PointCount())

	return &Seed{
		Rune:   r,
		Script: language.LookupScript(r),
		Sketch: sketch,
	}, nil
}

// trace flattens outline segments into one closed stroke per contour.
func trace(segs sfnt.Segments, tolerance float64) glyphstyle.Sketch {
	var (
		sketch  glyphstyle.Sketch
		contour glyphstyle.Stroke
	)
	flush := func() {
		if len(contour) > 1 {
			if contour[0] != contour[len(contour)-1] {
				contour = append(contour, contour[0])
			}
			sketch = append(sketch, contour)
		}
		contour = nil
	}

	var current glyphstyle.Point
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			current = point(seg.Args[0])
			contour = append(contour, current)

		case sfnt.SegmentOpLineTo:
			current = point(seg.Args[0])
			contour = append(contour, current)

		case sfnt.SegmentOpQuadTo:
			end := point(seg.Args[1])
			contour = flattenQuad(contour, current, point(seg.Args[0]), end, tolerance, 0)
			current = end

		case sfnt.SegmentOpCubeTo:
			end := point(seg.Args[2])
			contour = flattenCubic(contour, current, point(seg.Args[0]), point(seg.Args[1]), end, tolerance, 0)
			current = end
		}
	}
	flush()
	return sketch
}

func point(p fixed.Point26_6) glyphstyle.Point {
	return glyphstyle.Pt(float64(p.X)/64, float64(p.Y)/64)
}

// fit scales the sketch uniformly so its larger dimension fills glyph space
// minus margin on each side, and centers it.
func fit(sketch glyphstyle.Sketch, margin float64) {
	var all []glyphstyle.Point
	for _, s := range sketch {
		all = append(all, s...)
	}
	if len(all) == 0 {
		return
	}

	box := glyphstyle.Bounds(all)
	size := math.Max(box.Width(), box.Height())
	scale := 1.0
	if size > 0 {
		scale = (glyphstyle.Extent - 2*margin) / size
	}
	center := box.Center()
	mid := glyphstyle.Pt(glyphstyle.Extent/2, glyphstyle.Extent/2)

	for _, s := range sketch {
		for i, p := range s {
			s[i] = p.Sub(center).Mul(scale).Add(mid)
		}
	}
}
