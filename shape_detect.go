package glyphstyle

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Bounds returns the bounding box of points. The zero Rect is returned for
// an empty slice.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center of the box.
func (r Rect) Center() Point { return r.Min.Lerp(r.Max, 0.5) }

// Aspect returns width divided by height. A box with zero height has an
// infinite aspect (or NaN when it is a single point).
func (r Rect) Aspect() float64 {
	return r.Width() / r.Height()
}

// Circle is a circle in glyph space.
type Circle struct {
	Center Point
	Radius float64
}

// Blob detection thresholds. A stroke is treated as a closed blob when its
// bounding box is nearly square and it has enough samples to have gone
// around, rather than being a short diagonal flick.
const (
	blobMinPoints = 10
	blobAspectMin = 0.8
	blobAspectMax = 1.2
)

// DetectBlob reports whether stroke should be drawn as a circle, and which
// one. The circle is centered on the stroke's bounding box with a radius of
// half the larger box dimension.
func DetectBlob(stroke Stroke) (Circle, bool) {
	if len(stroke) <= blobMinPoints {
		return Circle{}, false
	}

	box := Bounds(stroke)
	aspect := box.Aspect()
	// NaN fails both comparisons.
	if !(aspect > blobAspectMin && aspect < blobAspectMax) {
		return Circle{}, false
	}

	return Circle{
		Center: box.Center(),
		Radius: math.Max(box.Width(), box.Height()) / 2,
	}, true
}
