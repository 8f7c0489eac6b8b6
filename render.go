package glyphstyle

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ViewBox is the canvas declaration of every glyph document.
const ViewBox = "0 0 100 100"

// Document is a rendered glyph: one stroked path per non-degenerate stroke
// on a fixed 100x100 canvas.
type Document struct {
	Style       Style
	StrokeWidth float64

	// Paths holds the path descriptions in drawing order.
	Paths []string
}

// Render assembles paths into a document using the style's stroke width.
// Nil and empty paths are skipped. No paths yields a valid empty document.
func Render(paths []*Path, style Style) *Document {
	doc := &Document{
		Style:       style,
		StrokeWidth: style.StrokeWidth(),
		Paths:       make([]string, 0, len(paths)),
	}
	for _, p := range paths {
		if p.Empty() {
			continue
		}
		doc.Paths = append(doc.Paths, p.String())
	}
	return doc
}

// PathCount returns the number of path elements in the document.
func (d *Document) PathCount() int {
	return len(d.Paths)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// String returns the document as SVG markup.
func (d *Document) String() string {
	var b strings.Builder
	width := strconv.FormatFloat(d.StrokeWidth, 'f', -1, 64)

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="` + ViewBox + `">`)
	for _, path := range d.Paths {
		b.WriteString(`<path d="`)
		_, _ = attrEscaper.WriteString(&b, path) // strings.Builder never fails
		b.WriteString(`" fill="none" stroke="currentColor" stroke-width="`)
		b.WriteString(width)
		b.WriteString(`" stroke-linecap="round" stroke-linejoin="round"/>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// WriteTo writes the SVG markup to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// ParseDocument reads glyph markup produced outside this package, such as
// the response of a remote cleanup service. The root must be an svg element
// declaring the 100x100 view box. Every path element with a non-empty d
// attribute is kept, in document order; all other markup is discarded and
// the result is re-rendered with the style's stroke width.
func ParseDocument(markup []byte, style Style) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(markup))
	doc := &Document{Style: style, StrokeWidth: style.StrokeWidth()}

	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !sawRoot {
			if start.Name.Local != "svg" {
				return nil, fmt.Errorf("%w: root element is <%s>", ErrInvalidDocument, start.Name.Local)
			}
			if vb := attr(start, "viewBox"); !sameViewBox(vb) {
				return nil, fmt.Errorf("%w: viewBox %q", ErrInvalidDocument, vb)
			}
			sawRoot = true
			continue
		}

		if start.Name.Local == "path" {
			if d := strings.TrimSpace(attr(start, "d")); d != "" {
				doc.Paths = append(doc.Paths, d)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no svg element", ErrInvalidDocument)
	}
	return doc, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// sameViewBox compares a view box attribute against ViewBox, allowing any
// mix of commas and whitespace as separators.
func sameViewBox(vb string) bool {
	fields := strings.FieldsFunc(vb, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	want := strings.Fields(ViewBox)
	if len(fields) != len(want) {
		return false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false
		}
		w, _ := strconv.ParseFloat(want[i], 64)
		if v != w {
			return false
		}
	}
	return true
}
