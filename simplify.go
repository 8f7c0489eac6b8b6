package glyphstyle

// Simplify reduces points with the Ramer-Douglas-Peucker algorithm.
//
// The result is an ordered subsequence of points that always contains the
// first and last point. Every discarded point lies within epsilon of the
// segment between the retained points that bracket it. Raising epsilon never
// adds points: a range only splits when its farthest point exceeds epsilon,
// and the farthest point of a range does not depend on epsilon.
//
// Inputs of two points or fewer are returned unchanged (as a copy).
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) <= 2 {
		return append([]Point(nil), points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	simplifyRange(points, 0, len(points)-1, epsilon, keep)

	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// simplifyRange marks the points to keep strictly between first and last.
// Sharing keep between both halves is what drops the duplicated junction.
func simplifyRange(points []Point, first, last int, epsilon float64, keep []bool) {
	if last-first < 2 {
		return
	}

	a, b := points[first], points[last]
	maxDist := -1.0
	index := first
	for i := first + 1; i < last; i++ {
		d := segmentDistance(points[i], a, b)
		if d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= epsilon {
		return
	}

	keep[index] = true
	simplifyRange(points, first, index, epsilon, keep)
	simplifyRange(points, index, last, epsilon, keep)
}

// segmentDistance returns the distance from p to the segment a-b.
// A zero-length segment degrades to the distance between p and a.
func segmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return p.Distance(a)
	case t >= 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
