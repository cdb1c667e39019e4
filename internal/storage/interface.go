package storage

// Backend is a durable string-keyed JSON store. Each dashboard collection is
// bound to exactly one key; no key is shared.
//
// Concurrency note:
//   - Backends are not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple lifedash processes that share the same data path at the
//     same time is not supported and may lead to data loss.
type Backend interface {
	// Get returns the raw value stored under key, or ok=false when absent.
	Get(key string) (data []byte, ok bool)
	// Put writes the raw value under key synchronously.
	Put(key string, data []byte) error
	// Close releases any underlying resources.
	Close() error
}
