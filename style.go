package glyphstyle

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Style selects one of the six stylization transforms.
type Style uint8

const (
	// Runic snaps every segment to a multiple of 45 degrees.
	Runic Style = iota

	// Flowing smooths the stroke with a chain of quadratic curves.
	Flowing

	// Geometric turns blob-like strokes into circles and everything else
	// into a few straight segments.
	Geometric

	// Organic bows every segment out to one side.
	Organic

	// Blocky snaps vertices onto a 10 unit grid.
	Blocky

	// Minimal keeps as few segments as possible.
	Minimal

	styleCount
)

// styleInfo holds the fixed parameters of each style.
var styleInfo = [styleCount]struct {
	name      string
	tolerance float64
	width     float64
}{
	Runic:     {"runic", 8, 3},
	Flowing:   {"flowing", 5, 3},
	Geometric: {"geometric", 15, 3},
	Organic:   {"organic", 4, 3},
	Blocky:    {"blocky", 20, 6},
	Minimal:   {"minimal", 25, 2},
}

// Styles returns every style in declaration order.
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := Style(0); s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s < styleCount
}

// String returns the lower-case style name.
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
	return styleInfo[s].name
}

// Tolerance returns the simplification epsilon used by the style, in glyph units.
func (s Style) Tolerance() float64 {
	s.mustBeValid()
	return styleInfo[s].tolerance
}

// StrokeWidth returns the rendered stroke width for the style.
func (s Style) StrokeWidth() float64 {
	s.mustBeValid()
	return styleInfo[s].width
}

func (s Style) mustBeValid() {
	if !s.Valid() {
		panic(fmt.Sprintf("glyphstyle: invalid style %d", uint8(s)))
	}
}

// ParseStyle returns the style with the given name. Matching ignores case
// and surrounding whitespace.
func ParseStyle(name string) (Style, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for s := Style(0); s < styleCount; s++ {
		if styleInfo[s].name == folded {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
