package tagpassword

import "errors"

var (
	// ErrMissingValue is returned by the schema adapter when no input value was
	// supplied where a password scalar was expected.
	ErrMissingValue = errors.New("a password must have a value")
	// ErrNotText is returned by the schema adapter when the supplied input value is
	// not a string.
	ErrNotText = errors.New("a password must be a string")
)
