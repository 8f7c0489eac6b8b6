// Package cache provides the sharded LRU cache the engine uses to memoize
// rendered glyph documents.
//
// Keys are 64-bit fingerprints of (style, stroke points). The low bits of a
// fingerprint pick one of 16 shards, each with its own mutex and LRU list,
// so concurrent stylization calls rarely contend.
//
//	c := cache.NewSharded[*glyphstyle.Document](256)
//	doc := c.GetOrCreate(key, func() *glyphstyle.Document { ... })
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
