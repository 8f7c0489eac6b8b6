package glyphstyle

import (
	"math"
	"math/rand/v2"
	"testing"
)

// randomStroke returns a jittery random walk of n points inside glyph space.
func randomStroke(r *rand.Rand, n int) Stroke {
	s := make(Stroke, n)
	p := Pt(10+80*r.Float64(), 10+80*r.Float64())
	heading := r.Float64() * 2 * math.Pi
	for i := range s {
		s[i] = p
		heading += (r.Float64() - 0.5) * 1.2
		step := 0.5 + 3*r.Float64()
		p = p.Add(polar(step, heading))
	}
	return s
}

// keptIndices maps every simplified point back to its index in the input.
// It fails the test if out is not an ordered subsequence of in.
func keptIndices(t *testing.T, in, out []Point) []int {
	t.Helper()
	idx := make([]int, 0, len(out))
	j := 0
	for i, p := range in {
		if j < len(out) && p == out[j] {
			idx = append(idx, i)
			j++
		}
	}
	if j != len(out) {
		t.Fatalf("output is not an ordered subsequence of the input (matched %d of %d)", j, len(out))
	}
	return idx
}

func TestSimplifyShortInputs(t *testing.T) {
	a, b := Pt(1, 2), Pt(3, 4)
	tests := []struct {
		name string
		in   []Point
	}{
		{"empty", nil},
		{"single", []Point{a}},
		{"pair", []Point{a, b}},
		{"coincident pair", []Point{a, a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.in, 5)
			if len(got) != len(tt.in) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.in))
			}
			for i := range got {
				if got[i] != tt.in[i] {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.in[i])
				}
			}
		})
	}
}

func TestSimplifyReturnsCopy(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(1, 1)}
	out := Simplify(in, 1)
	out[0] = Pt(9, 9)
	if in[0] != Pt(0, 0) {
		t.Error("Simplify aliased its input")
	}
}

func TestSimplifyCollinear(t *testing.T) {
	var in []Point
	for i := 0; i <= 20; i++ {
		in = append(in, Pt(float64(i)*5, 30))
	}
	got := Simplify(in, 0.1)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[len(in)-1] {
		t.Errorf("Simplify(collinear) = %v, want endpoints only", got)
	}
}

func TestSimplifyCorner(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(50, 0), Pt(50, 50)}

	// The corner is 25*sqrt(2) ~ 35.36 from the baseline.
	tests := []struct {
		eps  float64
		want int
	}{
		{0, 3},
		{25, 3},
		{35, 3},
		{36, 2},
		{100, 2},
	}
	for _, tt := range tests {
		if got := Simplify(in, tt.eps); len(got) != tt.want {
			t.Errorf("Simplify(corner, %v) kept %d points, want %d", tt.eps, len(got), tt.want)
		}
	}
}

func TestSimplifyZeroLengthBaseline(t *testing.T) {
	loop := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}

	if got := Simplify(loop, 5); len(got) != 4 {
		t.Errorf("Simplify(loop, 5) = %v, want all 4 points", got)
	}

	got := Simplify(loop, 20)
	if len(got) != 2 || got[0] != loop[0] || got[1] != loop[3] {
		t.Errorf("Simplify(loop, 20) = %v, want both endpoints", got)
	}
}

func TestSimplifyAllCoincident(t *testing.T) {
	in := make([]Point, 12)
	for i := range in {
		in[i] = Pt(42, 42)
	}
	if got := Simplify(in, 0); len(got) != 2 {
		t.Errorf("Simplify(coincident, 0) kept %d points, want 2", len(got))
	}
}

func TestSimplifyFidelity(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		in := randomStroke(r, 3+r.IntN(150))
		for _, eps := range []float64{0, 0.5, 2, 5, 15, 40} {
			out := Simplify(in, eps)

			if out[0] != in[0] || out[len(out)-1] != in[len(in)-1] {
				t.Fatalf("trial %d eps %v: endpoints not preserved", trial, eps)
			}

			idx := keptIndices(t, in, out)
			for k := 0; k+1 < len(idx); k++ {
				a, b := in[idx[k]], in[idx[k+1]]
				for i := idx[k] + 1; i < idx[k+1]; i++ {
					if d := segmentDistance(in[i], a, b); d > eps+1e-9 {
						t.Fatalf("trial %d eps %v: dropped point %d is %v from the polyline", trial, eps, i, d)
					}
				}
			}
		}
	}
}

func TestSimplifyMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 100; trial++ {
		in := randomStroke(r, 5+r.IntN(200))
		prev := len(in) + 1
		for eps := 0.0; eps <= 30; eps += 0.75 {
			n := len(Simplify(in, eps))
			if n > prev {
				t.Fatalf("trial %d: eps %v kept %d points, more than %d at a smaller eps", trial, eps, n, prev)
			}
			prev = n
		}
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		name string
		p    Point
		a, b Point
		want float64
	}{
		{"perpendicular", Pt(5, 3), a, b, 3},
		{"beyond end", Pt(13, 4), a, b, 5},
		{"before start", Pt(-3, -4), a, b, 5},
		{"on segment", Pt(7, 0), a, b, 0},
		{"degenerate", Pt(3, 4), a, a, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentDistance(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("segmentDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkSimplify(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 5))
	stroke := randomStroke(r, 400)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Simplify(stroke, 4)
	}
}
