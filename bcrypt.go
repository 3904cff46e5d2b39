package bcrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/uswriting/bcrypt/blowfish"
)

const (
	// MinCost is the lowest allowable cost factor.
	MinCost = 4
	// MaxCost is the highest allowable cost factor. Key setup performs
	// 2^cost expansion iterations, so the top of the range is measured in
	// CPU-years, not milliseconds.
	MaxCost = 31
	// DefaultCost is the recommended work factor. At cost 12, hashing
	// takes approximately 250 ms on a modern server CPU, which satisfies
	// OWASP ASVS Level 1 (≥ 10) and Level 2 (≥ 12). Increase this value
	// as hardware improves; aim to keep hashing time between 100 ms and
	// 500 ms for your deployment environment.
	DefaultCost = 12

	// MaxPasswordBytes is the hard ceiling on keyed bytes: the password's
	// UTF-8 encoding plus the trailing null terminator must fit in 72
	// bytes, so the password itself may be at most 71 bytes.
	MaxPasswordBytes = 72

	// SaltLength is the raw salt size in bytes.
	SaltLength = 16

	rawDigestLen = 24 // CryptRaw output; hash records retain 23 bytes
)

// magicWords is the fixed plaintext "OrpheanBeholderScryDoubt" as three
// 64-bit blocks of big-endian 32-bit halves. Encrypting it under the
// derived cipher state produces the raw digest.
var magicWords = [6]uint32{
	0x4f727068, 0x65616e42, 0x65686f6c,
	0x64657253, 0x63727944, 0x6f756274,
}

// Hash derives a bcrypt "2b" hash record for password at the given cost,
// using a fresh 16-byte salt from crypto/rand. Two calls with the same
// password and cost never produce the same record.
//
// The password is keyed by its UTF-8 bytes. If those bytes plus the null
// terminator exceed 72, Hash returns [ErrPasswordTooLong] rather than
// truncating — truncation is exactly the bug that lets distinct passwords
// collide on one hash in older libraries. An out-of-range cost returns
// [ErrInvalidCost].
func Hash(password string, cost int) (string, error) {
	return HashWithRand(rand.Reader, password, cost)
}

// HashWithRand is [Hash] with an explicit salt source. Production callers
// should use [Hash]; HashWithRand exists so tests and specialised
// environments can substitute a deterministic or hardware-backed reader.
func HashWithRand(random io.Reader, password string, cost int) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}
	if err := validateCost(cost); err != nil {
		return "", err
	}

	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(random, salt); err != nil {
		return "", fmt.Errorf("bcrypt: reading random salt: %w", err)
	}

	raw, err := CryptRaw(cost, salt, terminatedKey(password))
	if err != nil {
		return "", err
	}
	return formatHash(hashRecord{
		version: Version2b,
		cost:    cost,
		salt:    salt,
		digest:  raw[:rawDigestLen-1],
	}), nil
}

// Compare reports whether password matches the stored hash record.
//
// A wrong password is not an error: the result is (false, nil), and the
// underlying digest comparison runs in constant time so verification
// latency leaks nothing about where the digests diverge. Errors are
// reserved for contract violations — a malformed record yields an
// [ErrInvalidHash]-family error, and an overlong password yields
// [ErrPasswordTooLong].
func Compare(password, hash string) (bool, error) {
	rec, err := parseHash(hash)
	if err != nil {
		return false, err
	}
	if err := validatePassword(password); err != nil {
		return false, err
	}

	raw, err := CryptRaw(rec.cost, rec.salt, terminatedKey(password))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(raw[:rawDigestLen-1], rec.digest) == 1, nil
}

// CryptRaw is the low-level escape hatch: it runs EksBlowfishSetup and the
// fixed-plaintext encryption for a fully specified (cost, salt, key)
// triple and returns all 24 digest bytes, including the final byte that
// hash records discard.
//
// The key bytes are used verbatim — unlike [Hash], no null terminator is
// appended, so interoperating callers must include one themselves if the
// counterpart implementation does. The salt must be exactly 16 bytes and
// the key between 1 and 72 bytes.
func CryptRaw(cost int, salt, key []byte) ([]byte, error) {
	if err := validateCost(cost); err != nil {
		return nil, err
	}
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSalt, len(salt))
	}
	if len(key) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(key) > MaxPasswordBytes {
		return nil, fmt.Errorf("%w: got %d key bytes", ErrPasswordTooLong, len(key))
	}

	c := blowfish.New()
	c.ExpandKeySalted(key, salt)
	// The tunable work factor: 2^cost alternating re-expansions. These use
	// the plain schedule — the salt enters only through the single salted
	// expansion above and through ExpandKey(salt)'s key bytes.
	for i := uint64(0); i < uint64(1)<<uint(cost); i++ {
		c.ExpandKey(key)
		c.ExpandKey(salt)
	}

	// Encrypt the magic plaintext: each 64-bit block is encrypted 64
	// times in sequence, the ciphertext of one pass feeding the next.
	cdata := magicWords
	for i := 0; i < 64; i++ {
		for j := 0; j < 3; j++ {
			cdata[2*j], cdata[2*j+1] = c.Encrypt(cdata[2*j], cdata[2*j+1])
		}
	}

	out := make([]byte, rawDigestLen)
	for i, w := range cdata {
		out[4*i] = byte(w >> 24)
		out[4*i+1] = byte(w >> 16)
		out[4*i+2] = byte(w >> 8)
		out[4*i+3] = byte(w)
	}
	return out, nil
}

// Cost extracts the work factor embedded in a hash record. It parses the
// record fully, so a malformed record yields the same [ErrInvalidHash]-
// family error [Compare] would.
func Cost(hash string) (int, error) {
	rec, err := parseHash(hash)
	if err != nil {
		return 0, err
	}
	return rec.cost, nil
}

// terminatedKey returns the password's UTF-8 bytes with the trailing null
// byte the algorithm keys over. Callers have already validated the length.
func terminatedKey(password string) []byte {
	key := make([]byte, 0, len(password)+1)
	key = append(key, password...)
	return append(key, 0)
}

// validatePassword enforces the 72-byte ceiling on password bytes plus
// the null terminator. Length is measured over the UTF-8 encoding, never
// over runes — a four-byte emoji costs four bytes of budget.
func validatePassword(password string) error {
	if len(password)+1 > MaxPasswordBytes {
		return fmt.Errorf("%w: got %d password bytes", ErrPasswordTooLong, len(password))
	}
	return nil
}

func validateCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: got %d", ErrInvalidCost, cost)
	}
	return nil
}
