package bcrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
//
// Use [errors.Is] for comparisons:
//
//	_, err := bcrypt.Hash(password, cost)
//	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
//	    // reject the input instead of silently truncating it
//	}
//
// The parse-failure sentinels (ErrUnsupportedVersion, ErrMalformedCost)
// wrap [ErrInvalidHash], so errors.Is(err, ErrInvalidHash) matches any
// hash-format failure regardless of which segment was malformed.
var (
	// ErrPasswordTooLong is returned when the password's UTF-8 encoding,
	// plus the null terminator bcrypt appends before keying, exceeds 72
	// bytes. Legacy libraries silently truncate at this boundary, which
	// makes distinct passwords collide on the same hash; this package
	// refuses the input instead.
	ErrPasswordTooLong = errors.New("bcrypt: password longer than 72 bytes including the null terminator")

	// ErrEmptyPassword is returned by [CryptRaw] when the key is empty.
	// The cyclic key schedule has no meaning for zero bytes of key
	// material. [Hash] and [Compare] never hit this: even an empty
	// password string carries its null terminator into the key.
	ErrEmptyPassword = errors.New("bcrypt: password must not be empty")

	// ErrInvalidCost is returned when the requested cost factor lies
	// outside [MinCost, MaxCost].
	ErrInvalidCost = errors.New("bcrypt: cost must be between 4 and 31")

	// ErrInvalidSalt is returned by [CryptRaw] when the salt is not
	// exactly [SaltLength] bytes.
	ErrInvalidSalt = errors.New("bcrypt: salt must be exactly 16 bytes")

	// ErrInvalidHash is returned when a hash record cannot be parsed:
	// wrong segment count, wrong length, or characters outside the bcrypt
	// base64 alphabet. It is also the ancestor of the more specific parse
	// errors below.
	ErrInvalidHash = errors.New("bcrypt: invalid or unrecognised hash string")

	// ErrUnsupportedVersion is returned when the record's version tag is
	// not one of the recognised bcrypt prefixes (2, 2a, 2b, 2x, 2y).
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version tag", ErrInvalidHash)

	// ErrMalformedCost is returned when the record's embedded cost field
	// is not two decimal digits or decodes outside [MinCost, MaxCost].
	ErrMalformedCost = fmt.Errorf("%w: malformed cost field", ErrInvalidHash)
)
