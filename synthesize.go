package glyphstyle

import "fmt"

// Synthesize converts one stroke into a stylized path. It returns nil for
// degenerate strokes (fewer than two points). Synthesize panics if style is
// not one of the defined styles.
func Synthesize(stroke Stroke, style Style) *Path {
	if stroke.Degenerate() {
		return nil
	}

	switch style {
	case Runic:
		return synthRunic(stroke)
	case Flowing:
		return synthFlowing(stroke)
	case Geometric:
		return synthGeometric(stroke)
	case Organic:
		return synthOrganic(stroke)
	case Blocky:
		return synthBlocky(stroke)
	case Minimal:
		return synthMinimal(stroke)
	default:
		panic(fmt.Sprintf("glyphstyle: invalid style %d", uint8(style)))
	}
}

// polyline returns a path of straight segments through points.
func polyline(points []Point) *Path {
	p := NewPath()
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	return p
}

// straight returns a single segment from the first to the last point.
func straight(points []Point) *Path {
	p := NewPath()
	p.MoveTo(points[0])
	p.LineTo(points[len(points)-1])
	return p
}
