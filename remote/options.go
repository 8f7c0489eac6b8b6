package remote

import (
	"net/http"
	"time"
)

// Option configures a Client during creation.
//
// Example:
//
//	c := remote.New(url,
//	    remote.WithAPIKey(os.Getenv("GLYPHSTYLE_API_KEY")),
//	    remote.WithRetries(3),
//	    remote.WithCompression(true),
//	)
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	apiKey     string
	retries    int
	backoff    time.Duration
	compress   bool
	rasterSize int
}

func defaultOptions() clientOptions {
	return clientOptions{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retries:    2,
		backoff:    500 * time.Millisecond,
		rasterSize: 256,
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithAPIKey sends key as a bearer token.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithRetries sets how many times a failed request is retried.
// Negative values are treated as 0.
func WithRetries(n int) Option {
	return func(o *clientOptions) {
		o.retries = max(n, 0)
	}
}

// WithBackoff sets the delay before the first retry. Each further retry
// waits twice as long as the previous one.
func WithBackoff(d time.Duration) Option {
	return func(o *clientOptions) {
		o.backoff = d
	}
}

// WithCompression gzips request bodies.
func WithCompression(on bool) Option {
	return func(o *clientOptions) {
		o.compress = on
	}
}

// WithRasterSize sets the edge length in pixels of the preview image sent
// with each request.
func WithRasterSize(px int) Option {
	return func(o *clientOptions) {
		if px > 0 {
			o.rasterSize = px
		}
	}
}
