// Package glyphstyle turns freehand ink strokes into stylized vector glyphs.
//
// # Overview
//
// glyphstyle is the procedural stylization engine of a constructed-language
// authoring tool. A Sketch of pointer-sampled strokes goes in, an SVG glyph
// document comes out. The transform is deterministic and runs without any
// external model or service, so it doubles as the fallback when a remote
// cleanup service is unavailable.
//
// # Quick Start
//
//	import "github.com/inkforge/glyphstyle"
//
//	sketch := glyphstyle.Sketch{
//	    {glyphstyle.Pt(0, 0), glyphstyle.Pt(50, 0), glyphstyle.Pt(50, 50)},
//	}
//	doc := glyphstyle.Stylize(sketch, glyphstyle.Minimal)
//	fmt.Println(doc) // <svg ... viewBox="0 0 100 100"><path d="M 0.0 0.0 L 50.0 50.0" .../></svg>
//
// # Pipeline
//
// Every stroke with at least two points passes through:
//   - Simplify: Ramer-Douglas-Peucker reduction with a per-style tolerance
//   - Synthesize: one of six style transforms (Runic, Flowing, Geometric,
//     Organic, Blocky, Minimal) producing a Path
//   - Render: all paths stroked with a per-style width on a 100x100 canvas
//
// Strokes with fewer than two points are dropped; an empty sketch renders
// to an empty, valid document.
//
// # Coordinate System
//
// Glyph space is 100x100 units:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Sketch.FitToCanvas rescales coordinates captured on a larger surface.
//
// # Strategies
//
// Stylizer abstracts "sketch in, document out". Engine is the procedural
// implementation; the remote package provides a network-backed one.
// Fallback chains them so the engine answers whenever the service fails.
//
// # Concurrency
//
// Simplify, Synthesize, Render and Stylize are pure functions and safe to
// call from any goroutine. Engine adds optional memoization and a worker
// pool for batches and is also safe for concurrent use.
package glyphstyle
