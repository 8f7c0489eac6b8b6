package fontseed

import "github.com/inkforge/glyphstyle"

// maxDepth bounds curve subdivision.
const maxDepth = 16

// flattenQuad appends the polyline approximation of the quadratic Bezier
// p0-p1-p2 to dst, excluding p0.
func flattenQuad(dst []glyphstyle.Point, p0, p1, p2 glyphstyle.Point, tolerance float64, depth int) []glyphstyle.Point {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	dst = flattenQuad(dst, p0, q0, q2, tolerance, depth+1)
	return flattenQuad(dst, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the polyline approximation of the cubic Bezier
// p0-p1-p2-p3 to dst, excluding p0.
func flattenCubic(dst []glyphstyle.Point, p0, p1, p2, p3 glyphstyle.Point, tolerance float64, depth int) []glyphstyle.Point {
	d := max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubic(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b glyphstyle.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = min(max(t, 0), 1)
	return p.Distance(a.Add(ab.Mul(t)))
}
