package raster

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/inkforge/glyphstyle"
)

func TestSketchEmpty(t *testing.T) {
	img := Sketch(nil, 64, 3)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("Bounds = %v, want 64x64", b)
	}
	if c := Coverage(img); c != 0 {
		t.Errorf("Coverage = %v, want 0", c)
	}
}

func TestCoverage(t *testing.T) {
	// A full-width band 20 units tall covers a fifth of the mask.
	s := glyphstyle.Sketch{{glyphstyle.Pt(-20, 50), glyphstyle.Pt(120, 50)}}
	if c := Coverage(Sketch(s, 100, 20)); math.Abs(c-0.2) > 1e-9 {
		t.Errorf("Coverage = %v, want 0.2", c)
	}
}

func TestSketchInvalidSize(t *testing.T) {
	for _, size := range []int{0, -5} {
		if img := Sketch(glyphstyle.Sketch{{glyphstyle.Pt(0, 0), glyphstyle.Pt(1, 1)}}, size, 3); !img.Bounds().Empty() {
			t.Errorf("size %d: Bounds = %v, want empty", size, img.Bounds())
		}
	}
}

func TestSketchHorizontalStroke(t *testing.T) {
	s := glyphstyle.Sketch{{glyphstyle.Pt(10, 50), glyphstyle.Pt(50, 50), glyphstyle.Pt(90, 50)}}
	img := Sketch(s, 100, 4)

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"on the line", 50, 50, 0xff},
		{"at a vertex", 10, 49, 0xff},
		{"above", 50, 40, 0},
		{"below", 50, 60, 0},
		{"beyond the end", 95, 50, 0},
	}
	for _, tt := range tests {
		if got := img.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("%s: alpha at (%d, %d) = %#x, want %#x", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSketchScalesToSize(t *testing.T) {
	s := glyphstyle.Sketch{{glyphstyle.Pt(0, 25), glyphstyle.Pt(100, 25)}}
	img := Sketch(s, 200, 4)
	if got := img.AlphaAt(100, 50).A; got != 0xff {
		t.Errorf("alpha at (100, 50) = %#x, want 0xff", got)
	}
	if got := img.AlphaAt(100, 100).A; got != 0 {
		t.Errorf("alpha at (100, 100) = %#x, want 0", got)
	}
}

func TestSketchOverlapsUnion(t *testing.T) {
	// Two crossing strokes: the crossing must stay inked.
	s := glyphstyle.Sketch{
		{glyphstyle.Pt(10, 50), glyphstyle.Pt(90, 50)},
		{glyphstyle.Pt(50, 10), glyphstyle.Pt(50, 90)},
	}
	img := Sketch(s, 100, 6)
	if got := img.AlphaAt(50, 50).A; got != 0xff {
		t.Errorf("crossing alpha = %#x, want 0xff", got)
	}
}

func TestSketchSinglePointIsDot(t *testing.T) {
	img := Sketch(glyphstyle.Sketch{{glyphstyle.Pt(50, 50)}}, 100, 10)
	if got := img.AlphaAt(50, 50).A; got != 0xff {
		t.Errorf("dot center alpha = %#x, want 0xff", got)
	}
	if got := img.AlphaAt(70, 50).A; got != 0 {
		t.Errorf("alpha outside the dot = %#x, want 0", got)
	}
}

func TestSketchSkipsNonFinite(t *testing.T) {
	s := glyphstyle.Sketch{{glyphstyle.Pt(10, 10), glyphstyle.Pt(math.NaN(), 5), glyphstyle.Pt(90, 90)}}
	img := Sketch(s, 100, 4)
	// The two finite points are not joined across the gap.
	if got := img.AlphaAt(50, 50).A; got != 0 {
		t.Errorf("alpha between the points = %#x, want 0", got)
	}
	if got := img.AlphaAt(10, 10).A; got == 0 {
		t.Error("finite point was not drawn")
	}
}

func TestEncodePNG(t *testing.T) {
	img := Sketch(glyphstyle.Sketch{{glyphstyle.Pt(0, 0), glyphstyle.Pt(100, 100)}}, 32, 3)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func BenchmarkSketch(b *testing.B) {
	s := glyphstyle.Sketch{make(glyphstyle.Stroke, 200)}
	for i := range s[0] {
		a := float64(i) / 200 * 2 * math.Pi
		s[0][i] = glyphstyle.Pt(50+30*math.Cos(a), 50+30*math.Sin(a))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sketch(s, 256, 3)
	}
}
