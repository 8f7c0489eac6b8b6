package glyphstyle

// organicBulge is the control point offset of organic segments, as a
// fraction of segment length.
const organicBulge = 0.15

// synthFlowing smooths the simplified stroke with quadratic curves. Each
// interior vertex becomes a control point and the curve ends at the centroid
// of the vertex and its neighbours; a final line reaches the last vertex.
func synthFlowing(stroke Stroke) *Path {
	pts := Simplify(stroke, Flowing.Tolerance())
	if len(pts) < 2 {
		return straight(stroke)
	}

	p := NewPath()
	p.MoveTo(pts[0])
	for i := 1; i < len(pts)-1; i++ {
		p.QuadraticTo(pts[i], centroid(pts[i-1], pts[i], pts[i+1]))
	}
	p.LineTo(pts[len(pts)-1])
	return p
}

// synthOrganic bows every simplified segment to the same side. The control
// point is the segment midpoint pushed along the segment normal (-dy, dx) by
// organicBulge of its length. Zero-length segments get no bulge.
func synthOrganic(stroke Stroke) *Path {
	pts := Simplify(stroke, Organic.Tolerance())
	if len(pts) < 3 {
		return synthFlowing(stroke)
	}

	p := NewPath()
	p.MoveTo(pts[0])
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		normal := Point{X: -d.Y, Y: d.X}
		ctrl := a.Lerp(b, 0.5).Add(normal.Mul(organicBulge))
		p.QuadraticTo(ctrl, b)
	}
	return p
}
