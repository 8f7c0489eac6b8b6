// Command glyphstyle stylizes a hand-drawn sketch into an SVG glyph.
//
// Usage:
//
//	glyphstyle -style runic -in sketch.json -out glyph.svg
//	glyphstyle -style organic -seed A > a.svg
//	glyphstyle -style blocky -in - -canvas 400x400 -remote https://cleanup.example/v1/glyph
//
// A sketch is JSON: a list of strokes, each a list of {"x": .., "y": ..}
// points. With -remote (or GLYPHSTYLE_REMOTE_URL) the sketch is first sent
// to a cleanup service; the procedural engine is used when that fails.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/inkforge/glyphstyle"
	"github.com/inkforge/glyphstyle/fontseed"
	"github.com/inkforge/glyphstyle/raster"
	"github.com/inkforge/glyphstyle/remote"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "glyphstyle:", err)
		os.Exit(1)
	}
}

type config struct {
	style   glyphstyle.Style
	in      string
	out     string
	preview string
	seed    string
	canvas  string
	remote  string
	apiKey  string
	timeout time.Duration
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{style: glyphstyle.Runic}

	fs := flag.NewFlagSet("glyphstyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.TextVar(&cfg.style, "style", glyphstyle.Runic, "style: runic, flowing, geometric, organic, blocky or minimal")
	fs.StringVar(&cfg.in, "in", "", "sketch JSON file, - for stdin")
	fs.StringVar(&cfg.out, "out", "", "output SVG file (default stdout)")
	fs.StringVar(&cfg.preview, "preview", "", "also write a PNG preview of the raw sketch")
	fs.StringVar(&cfg.seed, "seed", "", "trace this character from Go Regular instead of reading a sketch")
	fs.StringVar(&cfg.canvas, "canvas", "", "drawing surface size WxH the sketch was captured on")
	fs.StringVar(&cfg.remote, "remote", os.Getenv("GLYPHSTYLE_REMOTE_URL"), "cleanup service URL")
	fs.DurationVar(&cfg.timeout, "timeout", 10*time.Second, "cleanup service timeout")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.apiKey = os.Getenv("GLYPHSTYLE_API_KEY")

	if (cfg.in == "") == (cfg.seed == "") {
		return nil, errors.New("exactly one of -in or -seed is required")
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	glyphstyle.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer glyphstyle.SetLogger(nil)

	sketch, err := loadSketch(cfg, stdin)
	if err != nil {
		return err
	}
	if err := sketch.Validate(); err != nil {
		return err
	}

	if cfg.preview != "" {
		if err := writePreview(cfg.preview, sketch, cfg.style); err != nil {
			return err
		}
	}

	engine := glyphstyle.NewEngine()
	defer engine.Close()

	var s glyphstyle.Stylizer = engine
	if cfg.remote != "" {
		client := remote.New(cfg.remote,
			remote.WithAPIKey(cfg.apiKey),
			remote.WithCompression(true))
		s = glyphstyle.Fallback(client, engine)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	doc, err := s.Stylize(ctx, sketch, cfg.style)
	if err != nil {
		return err
	}
	return writeDocument(cfg.out, doc, stdout)
}

func loadSketch(cfg *config, stdin io.Reader) (glyphstyle.Sketch, error) {
	if cfg.seed != "" {
		r, _ := utf8.DecodeRuneInString(cfg.seed)
		seed, err := fontseed.Glyph(r)
		if err != nil {
			return nil, err
		}
		glyphstyle.Logger().Info("seeded sketch from font",
			"rune", string(seed.Rune),
			"script", seed.Script.String(),
			"contours", len(seed.Sketch))
		return seed.Sketch, nil
	}

	src := stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	var sketch glyphstyle.Sketch
	if err := json.NewDecoder(src).Decode(&sketch); err != nil {
		return nil, fmt.Errorf("decode sketch: %w", err)
	}

	if cfg.canvas != "" {
		w, h, err := parseCanvas(cfg.canvas)
		if err != nil {
			return nil, err
		}
		sketch = sketch.FitToCanvas(w, h)
	}
	return sketch, nil
}

// parseCanvas parses "WxH" into positive dimensions.
func parseCanvas(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("canvas %q: want WxH", s)
	}
	if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("canvas %q: bad width", s)
	}
	if h, err = strconv.ParseFloat(strings.TrimSpace(hs), 64); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("canvas %q: bad height", s)
	}
	return w, h, nil
}

func writePreview(path string, sketch glyphstyle.Sketch, style glyphstyle.Style) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := raster.EncodePNG(f, raster.Sketch(sketch, 256, style.StrokeWidth())); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeDocument(path string, doc *glyphstyle.Document, stdout io.Writer) error {
	if path == "" {
		_, err := doc.WriteTo(stdout)
		return err
	}
	return os.WriteFile(path, []byte(doc.String()), 0o644)
}
