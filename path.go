package glyphstyle

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single drawing command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ArcTo draws an elliptical arc, with the same parameters as the SVG
// "A" command.
type ArcTo struct {
	RadiusX, RadiusY float64
	Rotation         float64 // x-axis rotation in degrees
	Large, Sweep     bool
	Point            Point
}

func (ArcTo) isPathElement() {}

// Path is the vector path synthesized from one stroke.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
}

// ArcTo draws a circular arc of radius r to pt.
func (p *Path) ArcTo(r float64, large, sweep bool, pt Point) {
	p.elements = append(p.elements, ArcTo{RadiusX: r, RadiusY: r, Large: large, Sweep: sweep, Point: pt})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// Empty reports whether the path has no drawing commands. A nil path is empty.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// Points returns the end point of every element, in order.
func (p *Path) Points() []Point {
	if p == nil {
		return nil
	}
	out := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, e.Point)
		case LineTo:
			out = append(out, e.Point)
		case QuadTo:
			out = append(out, e.Point)
		case ArcTo:
			out = append(out, e.Point)
		}
	}
	return out
}

// String returns the path description, e.g. "M 0.0 0.0 L 50.0 50.0".
// Coordinates are rounded to one decimal place.
func (p *Path) String() string {
	if p.Empty() {
		return ""
	}

	var b strings.Builder
	b.Grow(len(p.elements) * 16)
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writePoint(&b, e.Point)
		case QuadTo:
			b.WriteString("Q ")
			writePoint(&b, e.Control)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case ArcTo:
			b.WriteString("A ")
			writeCoord(&b, e.RadiusX)
			b.WriteByte(' ')
			writeCoord(&b, e.RadiusY)
			b.WriteByte(' ')
			writeCoord(&b, e.Rotation)
			b.WriteByte(' ')
			writeFlag(&b, e.Large)
			b.WriteByte(' ')
			writeFlag(&b, e.Sweep)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	writeCoord(b, pt.X)
	b.WriteByte(' ')
	writeCoord(b, pt.Y)
}

// writeCoord writes v with one decimal place. Values that round to zero
// are written as 0.0, never -0.0.
func writeCoord(b *strings.Builder, v float64) {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0
	}
	var buf [32]byte
	b.Write(strconv.AppendFloat(buf[:0], r, 'f', 1, 64))
}

func writeFlag(b *strings.Builder, f bool) {
	if f {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}
