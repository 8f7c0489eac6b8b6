package glyphstyle

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Plain engine, no memoization
//	e := glyphstyle.NewEngine()
//
//	// Memoize up to 16*128 documents and batch on 4 goroutines
//	e := glyphstyle.NewEngine(glyphstyle.WithCache(128), glyphstyle.WithWorkers(4))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	cache         bool
	cacheCapacity int
	workers       int
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		workers: 0, // GOMAXPROCS
	}
}

// WithCache enables memoization of rendered documents. capacity is the
// number of documents kept per cache shard; 0 or less selects the default.
// Identical (sketch, style) inputs always produce identical documents, so
// a cache hit is indistinguishable from recomputation.
func WithCache(capacity int) EngineOption {
	return func(o *engineOptions) {
		o.cache = true
		o.cacheCapacity = capacity
	}
}

// WithWorkers sets the number of goroutines StylizeBatch uses.
// 0 or less selects GOMAXPROCS.
func WithWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.workers = n
	}
}
