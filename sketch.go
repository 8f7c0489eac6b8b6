package glyphstyle

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the input and document helpers. The
// stylization pipeline itself never fails.
var (
	// ErrNonFinitePoint is returned by Sketch.Validate for NaN or infinite coordinates.
	ErrNonFinitePoint = errors.New("glyphstyle: non-finite point coordinate")

	// ErrUnknownStyle is returned by ParseStyle for names outside the closed style set.
	ErrUnknownStyle = errors.New("glyphstyle: unknown style")

	// ErrInvalidDocument is returned by ParseDocument for markup that is not a glyph document.
	ErrInvalidDocument = errors.New("glyphstyle: invalid glyph document")
)

// Extent is the width and height of glyph space.
const Extent = 100.0

// Stroke is the ordered list of points captured during one drawing gesture.
// Order is drawing order and determines path direction.
type Stroke []Point

// Degenerate reports whether the stroke has too few points to form a path.
func (s Stroke) Degenerate() bool {
	return len(s) < 2
}

// Sketch is an ordered list of strokes. Later strokes render on top.
type Sketch []Stroke

// Validate checks that every coordinate is finite. Degenerate strokes are
// not an error; the engine drops them.
func (s Sketch) Validate() error {
	for i, stroke := range s {
		for j, p := range stroke {
			if !p.Finite() {
				return fmt.Errorf("stroke %d point %d (%v, %v): %w", i, j, p.X, p.Y, ErrNonFinitePoint)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the sketch.
func (s Sketch) Clone() Sketch {
	if s == nil {
		return nil
	}
	out := make(Sketch, len(s))
	for i, stroke := range s {
		out[i] = append(Stroke(nil), stroke...)
	}
	return out
}

// PointCount returns the total number of points over all strokes.
func (s Sketch) PointCount() int {
	n := 0
	for _, stroke := range s {
		n += len(stroke)
	}
	return n
}

// FitToCanvas rescales a sketch captured on a width x height drawing
// surface into glyph space. Non-positive dimensions leave the axis as is.
func (s Sketch) FitToCanvas(width, height float64) Sketch {
	sx, sy := 1.0, 1.0
	if width > 0 {
		sx = Extent / width
	}
	if height > 0 {
		sy = Extent / height
	}
	out := make(Sketch, len(s))
	for i, stroke := range s {
		scaled := make(Stroke, len(stroke))
		for j, p := range stroke {
			scaled[j] = Point{X: p.X * sx, Y: p.Y * sy}
		}
		out[i] = scaled
	}
	return out
}
