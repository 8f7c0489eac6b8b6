// Package remote implements glyphstyle.Stylizer against an HTTP cleanup
// service.
//
// The service receives a PNG preview of the raw sketch and the requested
// style and answers with SVG markup. Responses are validated with
// glyphstyle.ParseDocument and re-rendered with the style's stroke width,
// so a successful result is indistinguishable in shape from the procedural
// engine's output. Put a Client in front of an Engine with
// glyphstyle.Fallback to keep stylization working when the service is down.
package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/inkforge/glyphstyle"
	"github.com/inkforge/glyphstyle/raster"
)

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 4 << 20

var (
	// ErrStatus is wrapped by errors for non-200 responses.
	ErrStatus = errors.New("remote: unexpected response status")

	// ErrEmptyResult is returned when the service answers a sketch that has
	// drawable strokes with a document that has none.
	ErrEmptyResult = errors.New("remote: service returned no paths")
)

// StatusError describes a non-200 response.
type StatusError struct {
	Code    int
	Type    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("remote: service error (%d): %s - %s", e.Code, e.Type, e.Message)
	}
	return fmt.Sprintf("remote: service error (%d): %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error { return ErrStatus }

// temporary reports whether retrying the request may help.
func (e *StatusError) temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Client talks to a cleanup service. It is safe for concurrent use.
type Client struct {
	endpoint string
	opts     clientOptions
}

// New creates a client posting to endpoint.
func New(endpoint string, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{endpoint: endpoint, opts: o}
}

type stylizeRequest struct {
	Style   glyphstyle.Style `json:"style"`
	Image   string           `json:"image"`
	Strokes int              `json:"strokes"`
}

type stylizeResponse struct {
	SVG string `json:"svg"`
}

type serviceError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Stylize implements glyphstyle.Stylizer. Transport failures, 429 and 5xx
// responses are retried with exponential backoff; other failures are
// returned at once.
func (c *Client) Stylize(ctx context.Context, sketch glyphstyle.Sketch, style glyphstyle.Style) (*glyphstyle.Document, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %v", glyphstyle.ErrUnknownStyle, style)
	}
	if err := sketch.Validate(); err != nil {
		return nil, err
	}

	body, err := c.encode(sketch, style)
	if err != nil {
		return nil, err
	}

	log := glyphstyle.Logger()
	var lastErr error
	for attempt := 0; attempt <= c.opts.retries; attempt++ {
		if attempt > 0 {
			wait := c.opts.backoff << (attempt - 1)
			log.Warn("remote: retrying request",
				"attempt", attempt,
				"wait", wait,
				"err", lastErr)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		doc, err := c.post(ctx, body, style)
		if err == nil {
			if doc.PathCount() == 0 && drawable(sketch) {
				return nil, ErrEmptyResult
			}
			log.Debug("remote: stylized sketch",
				"style", style.String(),
				"paths", doc.PathCount(),
				"attempts", attempt+1)
			return doc, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("remote: failed after %d attempts: %w", c.opts.retries+1, lastErr)
}

// encode builds the request body, gzipped when compression is on.
func (c *Client) encode(sketch glyphstyle.Sketch, style glyphstyle.Style) ([]byte, error) {
	var png bytes.Buffer
	img := raster.Sketch(sketch, c.opts.rasterSize, style.StrokeWidth())
	if err := raster.EncodePNG(&png, img); err != nil {
		return nil, fmt.Errorf("remote: encode preview: %w", err)
	}

	payload, err := json.Marshal(stylizeRequest{
		Style:   style,
		Image:   base64.StdEncoding.EncodeToString(png.Bytes()),
		Strokes: len(sketch),
	})
	if err != nil {
		return nil, fmt.Errorf("remote: marshal request: %w", err)
	}
	if !c.opts.compress {
		return payload, nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, fmt.Errorf("remote: compress request: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("remote: compress request: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Client) post(ctx context.Context, body []byte, style glyphstyle.Style) (*glyphstyle.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("remote: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.compress {
		req.Header.Set("Content-Encoding", "gzip")
	}
	if c.opts.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.apiKey)
	}

	resp, err := c.opts.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("remote: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		se := &StatusError{Code: resp.StatusCode, Message: string(data)}
		var apiErr serviceError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			se.Type = apiErr.Error.Type
			se.Message = apiErr.Error.Message
		}
		return nil, se
	}

	var out stylizeResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("remote: parse response: %w: %v", glyphstyle.ErrInvalidDocument, err)
	}
	return glyphstyle.ParseDocument([]byte(out.SVG), style)
}

// retryable reports whether err is worth another attempt. Malformed
// answers and client errors are not.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.temporary()
	}
	return !errors.Is(err, glyphstyle.ErrInvalidDocument)
}

func drawable(sketch glyphstyle.Sketch) bool {
	for _, stroke := range sketch {
		if !stroke.Degenerate() {
			return true
		}
	}
	return false
}
