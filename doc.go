// Package tagpassword provides a compile-time-checked password container that keeps
// plain-text and hashed password values apart in the type system.
//
// [Password] is a generic wrapper parameterized by a phantom state marker, [Plain] or
// [Hashed]. The marker has no runtime representation: a Password is exactly one string
// wide, and no operation inspects or stores the state at runtime. Which operations are
// legal is decided entirely at compile time — [Hash] accepts only a Password[Plain],
// [Verify] accepts only a Password[Hashed], and mixing the two up is a build error,
// not a runtime branch.
//
// Transitions between states are deliberately asymmetric. Hashing is the only checked
// transition: [Hash] runs the plain value through an [Engine] and yields a
// Password[Hashed] holding the engine's self-describing encoded hash string.
// [ForceHashed] and [ForcePlain] relabel a value without touching its bytes; they
// exist for trusted-store interop, and the caller carries the full burden of proof.
//
// The default engine is Argon2id with PHC-encoded output, provided by the argon2
// subpackage. Any implementation of [Engine] can be substituted, and engines can be
// wrapped with [Instrument] to count hash and verify outcomes.
//
// # Architecture boundaries
//
// tagpassword is the public surface. It exposes [Password], the state markers,
// [Engine], [Metrics], and the wire adapters. Hash computation lives in the argon2
// subpackage; metric exporters live under metrics/export.
//
// # What this package must NOT do
//
//   - Implement a hashing algorithm, generate salts, or produce randomness.
//   - Emit a stored value implicitly — String and GoString are always redacted; raw
//     access goes through Text, Bytes, and the wire adapters only.
//   - Hold connections, files, or any shared mutable state.
package tagpassword
