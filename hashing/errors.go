package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed
	// because it has an unrecognised format, a bad segment, or invalid
	// encoding. Errors from the underlying bcrypt package's parse step
	// also match this sentinel's intent via bcrypt.ErrInvalidHash.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a
	// bcrypt cost below 4 or above 31).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrPasswordTooLong is returned when a password cannot be hashed
	// because its UTF-8 encoding plus the null terminator exceeds
	// bcrypt's 72-byte limit. The password must be shortened or
	// pre-hashed by the caller; it is never truncated.
	ErrPasswordTooLong = errors.New("hashing: password exceeds the 72-byte bcrypt limit")
)
