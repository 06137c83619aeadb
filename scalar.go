package tagpassword

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Wire adapters. On the wire a Password is a bare text scalar holding the stored
// string only; the state marker has no representation and cannot be inferred from
// serialized form. Note the asymmetry with fmt: formatting redacts, serialization is
// verbatim by contract.

// MarshalJSON encodes the stored value as a JSON string.
func (p Password[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// UnmarshalJSON decodes a JSON string into the Password. The state is whatever the
// destination's type argument says; deserialization performs no hashing.
func (p *Password[S]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.value)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Password[S]) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Password[S]) UnmarshalText(text []byte) error {
	p.value = string(text)
	return nil
}

// MarshalGQL exposes the Password to a GraphQL schema as a single-valued string
// scalar, conventionally declared as "scalar Password". Part of the gqlgen scalar
// contract; no gqlgen import is needed to satisfy it.
func (p Password[S]) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, strconv.Quote(p.value))
}

// UnmarshalGQL accepts only string input. Missing input fails with
// [ErrMissingValue], any non-string kind with [ErrNotText]; the error names the
// offending kind but never echoes a value.
func (p *Password[S]) UnmarshalGQL(v any) error {
	if v == nil {
		return ErrMissingValue
	}

	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrNotText, v)
	}

	p.value = s
	return nil
}
