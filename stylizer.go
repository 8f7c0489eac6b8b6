package glyphstyle

import "context"

// Stylizer turns a sketch into a glyph document. The procedural Engine and
// network-backed cleanup services both implement it, so callers can treat
// their output interchangeably.
type Stylizer interface {
	Stylize(ctx context.Context, sketch Sketch, style Style) (*Document, error)
}

// StylizerFunc adapts a function to the Stylizer interface.
type StylizerFunc func(ctx context.Context, sketch Sketch, style Style) (*Document, error)

// Stylize calls f.
func (f StylizerFunc) Stylize(ctx context.Context, sketch Sketch, style Style) (*Document, error) {
	return f(ctx, sketch, style)
}

// Stylize runs the procedural pipeline: degenerate strokes are dropped,
// every other stroke is synthesized in the given style and the paths are
// rendered into one document. It never fails and does not modify sketch.
func Stylize(sketch Sketch, style Style) *Document {
	paths := make([]*Path, 0, len(sketch))
	for _, stroke := range sketch {
		if stroke.Degenerate() {
			continue
		}
		paths = append(paths, Synthesize(stroke, style))
	}

	Logger().Debug("glyphstyle: stylized sketch",
		"style", style.String(),
		"strokes", len(sketch),
		"points", sketch.PointCount(),
		"paths", len(paths))

	return Render(paths, style)
}

// Fallback returns a Stylizer that tries primary first and, when it returns
// an error or no document, uses fallback instead. It is meant for putting a
// remote cleanup service in front of an Engine, which never fails.
func Fallback(primary, fallback Stylizer) Stylizer {
	return &fallbackStylizer{primary: primary, fallback: fallback}
}

type fallbackStylizer struct {
	primary  Stylizer
	fallback Stylizer
}

func (f *fallbackStylizer) Stylize(ctx context.Context, sketch Sketch, style Style) (*Document, error) {
	doc, err := f.primary.Stylize(ctx, sketch, style)
	if err == nil && doc != nil {
		return doc, nil
	}

	Logger().Warn("glyphstyle: primary stylizer failed, using fallback",
		"style", style.String(),
		"err", err)
	return f.fallback.Stylize(ctx, sketch, style)
}
