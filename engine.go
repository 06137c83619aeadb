package tagpassword

// Engine is the hashing primitive consumed by [Hash] and [Verify]. Implementations
// own the encoded hash string format entirely; this package stores and forwards it
// opaquely.
//
// Engines must be safe for concurrent use: Hash and Verify are pure, CPU-bound calls
// with no cancellation semantics, so callers needing timeouts wrap the calls
// themselves.
type Engine interface {
	// Hash computes a self-describing encoded hash string from password and salt.
	// The same password, salt, and engine parameters always yield the same string.
	Hash(password, salt []byte) (string, error)

	// Verify parses encoded and compares password against it. A nil return means a
	// match. Implementations should distinguish an unparseable encoded string from
	// a failed comparison through their returned errors, and must not mask either.
	Verify(password []byte, encoded string) error
}
