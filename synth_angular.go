package glyphstyle

import "math"

const (
	// runicStep is the angular grid runic segments are snapped to.
	runicStep = math.Pi / 4

	// blockyGrid is the cell size blocky vertices are snapped to.
	blockyGrid = 10.0

	// minimalMaxCollapse is the largest simplified point count that minimal
	// collapses into a single segment.
	minimalMaxCollapse = 3
)

// synthRunic snaps every segment direction to a multiple of 45 degrees.
// Segment lengths are preserved and each segment starts at the previously
// placed point, so snapping error does not accumulate into wrong lengths.
func synthRunic(stroke Stroke) *Path {
	pts := Simplify(stroke, Runic.Tolerance())
	if len(pts) < 2 {
		return straight(stroke)
	}

	placed := make([]Point, len(pts))
	placed[0] = pts[0]
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pts[i-1])
		angle := math.Round(seg.Angle()/runicStep) * runicStep
		placed[i] = placed[i-1].Add(polar(seg.Length(), angle))
	}
	return polyline(placed)
}

// synthGeometric draws near-square, densely sampled strokes as a circle made
// of two half arcs. Anything else becomes a coarse polyline.
func synthGeometric(stroke Stroke) *Path {
	if c, ok := DetectBlob(stroke); ok {
		return circlePath(c)
	}
	return polyline(Simplify(stroke, Geometric.Tolerance()))
}

// circlePath returns a full circle as two 180 degree arcs, starting and
// ending at the leftmost point.
func circlePath(c Circle) *Path {
	left := Point{X: c.Center.X - c.Radius, Y: c.Center.Y}
	right := Point{X: c.Center.X + c.Radius, Y: c.Center.Y}

	p := NewPath()
	p.MoveTo(left)
	p.ArcTo(c.Radius, true, false, right)
	p.ArcTo(c.Radius, true, false, left)
	return p
}

// synthBlocky snaps simplified vertices onto a grid. Vertices that land in
// the same cell produce zero-length segments, which are kept.
func synthBlocky(stroke Stroke) *Path {
	pts := Simplify(stroke, Blocky.Tolerance())
	for i, pt := range pts {
		pts[i] = Point{X: snap(pt.X, blockyGrid), Y: snap(pt.Y, blockyGrid)}
	}
	return polyline(pts)
}

func snap(v, grid float64) float64 {
	s := math.Round(v/grid) * grid
	if s == 0 {
		return 0
	}
	return s
}

// synthMinimal keeps the fewest segments. Strokes that simplify to three
// points or fewer collapse to one segment even if a corner survived.
func synthMinimal(stroke Stroke) *Path {
	pts := Simplify(stroke, Minimal.Tolerance())
	if len(pts) <= minimalMaxCollapse {
		return straight(pts)
	}
	return polyline(pts)
}
