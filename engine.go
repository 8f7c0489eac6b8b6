package glyphstyle

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"math"

	"github.com/inkforge/glyphstyle/internal/cache"
	"github.com/inkforge/glyphstyle/internal/parallel"
)

// ErrEngineClosed is reported by StylizeBatch after Close.
var ErrEngineClosed = errors.New("glyphstyle: engine closed")

// Engine is the procedural Stylizer. It never returns an error, which makes
// it the guaranteed fallback behind any network-backed Stylizer.
//
// Engine is safe for concurrent use. Call Close to release its workers.
type Engine struct {
	docs *cache.Sharded[*Document] // nil when memoization is off
	pool *parallel.WorkerPool
}

// Job is one unit of work for StylizeBatch.
type Job struct {
	Sketch Sketch
	Style  Style
}

// BatchResult is the outcome of one Job. Err is set only when the job never
// ran: the batch context was cancelled first or the engine was closed.
type BatchResult struct {
	Document *Document
	Err      error
}

// CacheStats reports memoization counters.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// NewEngine creates an engine.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{pool: parallel.NewWorkerPool(o.workers)}
	if o.cache {
		e.docs = cache.NewSharded[*Document](o.cacheCapacity)
	}

	Logger().Info("glyphstyle: engine created",
		"workers", e.pool.Workers(),
		"cache", o.cache)
	return e
}

// Stylize implements Stylizer. The context is not consulted: the pipeline
// is synchronous and bounded by the size of the sketch.
func (e *Engine) Stylize(_ context.Context, sketch Sketch, style Style) (*Document, error) {
	return e.stylize(sketch, style), nil
}

func (e *Engine) stylize(sketch Sketch, style Style) *Document {
	if e.docs == nil {
		return Stylize(sketch, style)
	}
	doc := e.docs.GetOrCreate(fingerprint(sketch, style), func() *Document {
		return Stylize(sketch, style)
	})
	return doc.clone()
}

// StylizeBatch stylizes every job on the engine's workers. Results are in
// job order. If ctx is cancelled, jobs that had not started carry ctx.Err().
func (e *Engine) StylizeBatch(ctx context.Context, jobs []Job) []BatchResult {
	results := make([]BatchResult, len(jobs))
	work := make([]func(), len(jobs))
	for i, job := range jobs {
		work[i] = func() {
			results[i].Document = e.stylize(job.Sketch, job.Style)
		}
	}

	skipped, err := e.pool.ExecuteAll(ctx, work)
	for i, s := range skipped {
		if s {
			results[i].Err = err
			if err == nil {
				results[i].Err = ErrEngineClosed
			}
		}
	}

	Logger().Info("glyphstyle: batch finished", "jobs", len(jobs), "err", err)
	return results
}

// CacheStats returns memoization counters. All zero when the engine was
// created without WithCache.
func (e *Engine) CacheStats() CacheStats {
	if e.docs == nil {
		return CacheStats{}
	}
	st := e.docs.Stats()
	return CacheStats{
		Len:       st.Len,
		Hits:      st.Hits,
		Misses:    st.Misses,
		Evictions: st.Evictions,
		HitRate:   st.HitRate(),
	}
}

// Close stops the batch workers. Stylize keeps working after Close;
// StylizeBatch reports every job with ErrEngineClosed.
func (e *Engine) Close() {
	e.pool.Close()
}

// clone returns a copy callers may modify without touching the cached value.
func (d *Document) clone() *Document {
	out := *d
	out.Paths = append([]string(nil), d.Paths...)
	return &out
}

// fingerprint hashes the style and every coordinate with FNV-1a. Stroke
// lengths are mixed in so that moving a point between strokes changes the key.
func fingerprint(sketch Sketch, style Style) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	_, _ = h.Write([]byte{byte(style)}) // fnv.Write never returns an error
	for _, stroke := range sketch {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(stroke)))
		_, _ = h.Write(buf[:])
		for _, p := range stroke {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.X))
			_, _ = h.Write(buf[:])
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Y))
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}
