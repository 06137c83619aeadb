package tagpassword

import (
	"github.com/TransitionsAg/tag-password/argon2"
)

// Plain marks a password whose value is user-supplied clear text. It is a zero-sized
// marker used only as a type argument; it is never stored in a [Password].
type Plain struct{}

// Hashed marks a password whose value is an encoded hash string produced by an
// [Engine]. Like [Plain], it exists only at the type level.
type Hashed struct{}

// State is the closed set of password states. The union admits exactly [Plain] and
// [Hashed]; no external type can satisfy it.
type State interface {
	Plain | Hashed
}

// Password holds a password-like string tagged with a compile-time state. The state
// parameter does not appear in the struct body, so a Password is exactly one string
// wide regardless of state.
//
// Password is a plain value: copy it freely, compare states at compile time, and
// share it across goroutines under ordinary read-only rules. The zero value holds an
// empty string.
type Password[S State] struct {
	value string
}

// New constructs a Password in the caller-chosen state. The value is stored as-is:
// empty strings, unusual encodings, and arbitrary lengths are all accepted. Content
// policy (minimum length, character classes) belongs to a layer above this one.
func New[S State](value string) Password[S] {
	return Password[S]{value: value}
}

// NewPlain constructs a clear-text password. Shorthand for New[Plain].
func NewPlain(value string) Password[Plain] {
	return Password[Plain]{value: value}
}

// NewHashed constructs a password from an already-encoded hash string, for example
// one loaded from a credential store. Shorthand for New[Hashed].
func NewHashed(value string) Password[Hashed] {
	return Password[Hashed]{value: value}
}

// Bytes returns the raw bytes of the stored value. The slice is a fresh copy of the
// string's bytes; mutating it does not affect the Password.
func (p Password[S]) Bytes() []byte {
	return []byte(p.value)
}

// Text returns the stored text verbatim. This is the hand-off point to serialization
// and storage layers, and the only way besides Bytes and the wire adapters to reach
// the raw value.
func (p Password[S]) Text() string {
	return p.value
}

// Hash transforms a clear-text password into a hashed one. The engine computes a
// self-describing encoded hash (algorithm, parameters, salt, digest) from the stored
// bytes and the given salt; the returned Password[Hashed] holds that full encoded
// string so a later [Verify] can recover everything it needs.
//
// A nil engine selects [DefaultEngine]. Engine errors are returned unchanged; on
// error the input value is untouched and no Password[Hashed] exists.
func Hash(p Password[Plain], engine Engine, salt []byte) (Password[Hashed], error) {
	if engine == nil {
		engine = DefaultEngine()
	}

	encoded, err := engine.Hash(p.Bytes(), salt)
	if err != nil {
		return Password[Hashed]{}, err
	}

	return NewHashed(encoded), nil
}

// Verify checks a candidate clear-text password against a stored hash. The engine
// parses the stored encoded string and compares the candidate's bytes against it.
//
// A nil engine selects [DefaultEngine]. A nil error means the candidate matches.
// Otherwise the engine's error is returned unchanged; with the default engine that is
// [argon2.ErrMismatch] for a failed comparison or [argon2.ErrMalformedHash] when the
// stored string is not a parseable hash.
func Verify(h Password[Hashed], engine Engine, candidate Password[Plain]) error {
	if engine == nil {
		engine = DefaultEngine()
	}

	return engine.Verify(candidate.Bytes(), h.Text())
}

// ForceHashed relabels a clear-text password as hashed WITHOUT hashing it. No engine
// runs and no byte changes; only the compile-time state changes.
//
// This is an escape hatch for values the caller independently knows to be encoded
// hashes, such as rows read from a trusted store before [NewHashed] was reachable.
// Calling it on an actual clear-text value violates the Password[Hashed] contract and
// every downstream assumption built on it.
func ForceHashed(p Password[Plain]) Password[Hashed] {
	return NewHashed(p.value)
}

// ForcePlain relabels a hashed password as clear text WITHOUT any transformation.
// A hash cannot be inverted; the value is still the encoded hash string afterwards.
// Exists only for narrow interop cases where an encoded hash must flow through an
// API that accepts Password[Plain]. The caller asserts that downstream code never
// treats the result as a real clear-text password.
func ForcePlain(h Password[Hashed]) Password[Plain] {
	return NewPlain(h.value)
}

// argon2Default is shared; Hasher is stateless after construction and safe for
// concurrent use.
var argon2Default Engine = argon2.Default()

// DefaultEngine returns the engine used when Hash or Verify receive nil: an Argon2id
// hasher with [argon2.DefaultParams].
func DefaultEngine() Engine {
	return argon2Default
}
