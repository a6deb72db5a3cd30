// Package contract defines the request/response types exchanged between the
// intelligence services and their callers (CLI, presentation layers).
package contract

// CacheStats mirrors the engine cache counters for presentation.
type CacheStats struct {
	Size   int
	Hits   uint64
	Misses uint64
}
