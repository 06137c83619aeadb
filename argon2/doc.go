// Package argon2 implements the default hashing engine: Argon2id with caller-supplied
// salts.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// The encoded string is self-describing, so verification recovers algorithm,
// parameters, and salt from the stored hash alone. [Hasher.NeedsRehash] reports
// whether a stored hash was produced with weaker parameters than the Hasher's own,
// so callers can re-hash on the next successful verification.
//
// Unlike most password hashers, [Hasher.Hash] takes the salt as an argument and is
// fully deterministic: same password, salt, and parameters, same output. Salt policy
// belongs to the caller; [GenerateSalt] is a convenience, not a requirement.
//
// # Architecture boundaries
//
// This package owns hashing, verification, and PHC encoding only. What counts as an
// acceptable password is a policy question for layers above.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords — callers supply bytes and receive strings.
//   - Import the tag-password root package.
//   - Log passwords, salts, or hash parameters at runtime.
package argon2
