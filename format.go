package tagpassword

// Redacted is what every Password renders as through fmt. It is identical for both
// states so formatting can neither leak a clear-text value nor reveal whether a value
// is hashed.
const Redacted = "[REDACTED]"

// String implements [fmt.Stringer]. It always returns [Redacted], never the stored
// value. Use Text or Bytes when the raw value is actually needed.
func (p Password[S]) String() string {
	return Redacted
}

// GoString implements [fmt.GoStringer], covering the %#v verb with the same
// redaction as String.
func (p Password[S]) GoString() string {
	return Redacted
}
