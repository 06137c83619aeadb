package argon2

import (
	"errors"
	"testing"
)

// FuzzVerifyEncoded exercises the PHC parser with arbitrary encoded strings.
// Goal: no panics; malformed inputs must be rejected with ErrMalformedHash.
func FuzzVerifyEncoded(f *testing.F) {
	hasher, err := New(fastParams())
	if err != nil {
		f.Fatal(err)
	}

	valid, err := hasher.Hash([]byte("seed-password"), []byte("somesalt"))
	if err != nil {
		f.Fatal(err)
	}

	f.Add(valid)
	f.Add("")
	f.Add("$argon2id$v=19$m=8192,t=1,p=1$c29tZXNhbHQ=$c29tZXNhbHQ=")
	f.Add("$argon2id$v=19$m=8192,t=1,p=1$$")
	f.Add("$$$$$")
	f.Add("not a hash at all")

	f.Fuzz(func(t *testing.T, encoded string) {
		// Must not panic. Every failure must be classified.
		err := hasher.Verify([]byte("seed-password"), encoded)
		if err != nil && !errors.Is(err, ErrMalformedHash) && !errors.Is(err, ErrMismatch) {
			t.Fatalf("unclassified verify error: %v", err)
		}
	})
}
