package argon2

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	minSaltLength         = 8
	minKeyLength   uint32 = 16
	algorithmID           = "argon2id"
)

var (
	// ErrMismatch reports that the candidate password does not match the stored
	// digest. Parsing succeeded; the comparison failed.
	ErrMismatch = errors.New("password does not match hash")
	// ErrMalformedHash reports that an encoded hash string could not be parsed back
	// into a hash record. Wrapped errors carry the specific parse failure.
	ErrMalformedHash = errors.New("malformed encoded hash")
	// ErrSaltTooShort reports a salt below the 8-byte floor passed to Hash.
	ErrSaltTooShort = errors.New("salt must be at least 8 bytes")
)

// Params holds the Argon2id cost parameters. Configure once, then treat as
// immutable; a [Hasher] copies its Params at construction.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	KeyLength   uint32
}

// DefaultParams returns the parameters used by [Default]: 64 MiB memory, 3 passes,
// 2 lanes, 32-byte key.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 2,
		KeyLength:   32,
	}
}

// Hasher computes and verifies Argon2id hashes in PHC string format. Stateless after
// construction and safe for concurrent use.
type Hasher struct {
	params Params
}

type parsedPHC struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	hash        []byte
	keyLength   uint32
}

// New validates the given parameters against hard floors and returns a Hasher.
func New(params Params) (*Hasher, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return &Hasher{params: params}, nil
}

// Default returns a shared Hasher with [DefaultParams].
func Default() *Hasher {
	return defaultHasher
}

var defaultHasher = &Hasher{params: DefaultParams()}

// Hash computes the Argon2id digest of password under the given salt and returns the
// full PHC-encoded string. Password bytes are used exactly as provided (no Unicode
// normalization) and any content, including empty, is accepted; only the salt is
// validated. Deterministic for fixed password, salt, and parameters.
func (h *Hasher) Hash(password, salt []byte) (string, error) {
	if len(salt) < minSaltLength {
		return "", ErrSaltTooShort
	}

	hash := argon2.IDKey(
		password,
		salt,
		h.params.Time,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	saltEncoded := base64.StdEncoding.EncodeToString(salt)
	hashEncoded := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		saltEncoded,
		hashEncoded,
	), nil
}

// Verify parses encoded and compares password against the recorded digest using the
// parameters and salt recovered from the string itself. Returns nil on a match,
// [ErrMismatch] on a failed comparison, and an error wrapping [ErrMalformedHash]
// when encoded is not a parseable PHC string.
func (h *Hasher) Verify(password []byte, encoded string) error {
	parsed, err := parsePHC(encoded)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		password,
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		parsed.keyLength,
	)

	if subtle.ConstantTimeCompare(computed, parsed.hash) != 1 {
		return ErrMismatch
	}

	return nil
}

// NeedsRehash reports whether encoded was produced with weaker parameters than this
// Hasher's own, so callers can transparently upgrade stored hashes after the next
// successful verification.
func (h *Hasher) NeedsRehash(encoded string) (bool, error) {
	parsed, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	if h.params.Memory > parsed.memory {
		return true, nil
	}
	if h.params.Time > parsed.time {
		return true, nil
	}
	if h.params.Parallelism > parsed.parallelism {
		return true, nil
	}
	if h.params.KeyLength != parsed.keyLength {
		return true, nil
	}

	return false, nil
}

// GenerateSalt returns length cryptographically random bytes suitable as a Hash
// salt. Length must meet the same 8-byte floor Hash enforces.
func GenerateSalt(length int) ([]byte, error) {
	if length < minSaltLength {
		return nil, ErrSaltTooShort
	}

	salt := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	return salt, nil
}

func validateParams(params Params) error {
	if params.Memory < minMemoryKB {
		return errors.New("memory must be at least 8192 KiB")
	}
	if params.Time < minTimeCost {
		return errors.New("time cost must be at least 1")
	}
	if params.Parallelism < minParallelism {
		return errors.New("parallelism must be at least 1")
	}
	if params.KeyLength < minKeyLength {
		return errors.New("key length must be at least 16 bytes")
	}
	return nil
}

func parsePHC(encoded string) (*parsedPHC, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: invalid PHC format", ErrMalformedHash)
	}

	if parts[1] != algorithmID {
		return nil, fmt.Errorf("%w: unsupported algorithm", ErrMalformedHash)
	}

	versionPart := parts[2]
	if !strings.HasPrefix(versionPart, "v=") {
		return nil, fmt.Errorf("%w: missing argon2 version", ErrMalformedHash)
	}

	version, err := strconv.Atoi(strings.TrimPrefix(versionPart, "v="))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid argon2 version", ErrMalformedHash)
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version", ErrMalformedHash)
	}

	params, err := parseParams(parts[3])
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt encoding", ErrMalformedHash)
	}
	if len(salt) < minSaltLength {
		return nil, fmt.Errorf("%w: invalid salt length", ErrMalformedHash)
	}

	hash, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash encoding", ErrMalformedHash)
	}
	if len(hash) == 0 {
		return nil, fmt.Errorf("%w: invalid hash length", ErrMalformedHash)
	}

	return &parsedPHC{
		memory:      params.memory,
		time:        params.time,
		parallelism: params.parallelism,
		salt:        salt,
		hash:        hash,
		keyLength:   uint32(len(hash)),
	}, nil
}

type parsedParams struct {
	memory      uint32
	time        uint32
	parallelism uint8
}

func parseParams(part string) (*parsedParams, error) {
	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return nil, fmt.Errorf("%w: invalid parameter format", ErrMalformedHash)
	}

	var (
		memorySet, timeSet, parallelismSet bool
		params                             parsedParams
	)

	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: invalid parameter entry", ErrMalformedHash)
		}

		switch kv[0] {
		case "m":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v < uint64(minMemoryKB) {
				return nil, fmt.Errorf("%w: invalid memory parameter", ErrMalformedHash)
			}
			params.memory = uint32(v)
			memorySet = true
		case "t":
			v, err := strconv.ParseUint(kv[1], 10, 32)
			if err != nil || v < uint64(minTimeCost) {
				return nil, fmt.Errorf("%w: invalid time parameter", ErrMalformedHash)
			}
			params.time = uint32(v)
			timeSet = true
		case "p":
			v, err := strconv.ParseUint(kv[1], 10, 8)
			if err != nil || v < uint64(minParallelism) {
				return nil, fmt.Errorf("%w: invalid parallelism parameter", ErrMalformedHash)
			}
			params.parallelism = uint8(v)
			parallelismSet = true
		default:
			return nil, fmt.Errorf("%w: unknown parameter", ErrMalformedHash)
		}
	}

	if !memorySet || !timeSet || !parallelismSet {
		return nil, fmt.Errorf("%w: missing parameter", ErrMalformedHash)
	}

	return &params, nil
}
