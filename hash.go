package bcrypt

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies the bcrypt revision tag embedded in a hash record.
type Version string

// The recognised version tags. Hashes produced by this package always
// carry [Version2b]; the legacy tags are accepted on parse so records
// produced by older libraries can still be verified. For passwords within
// the 72-byte limit all revisions derive the identical digest — the
// revisions differ only in how broken implementations handled overlong or
// non-ASCII input, which this package rejects outright.
const (
	Version2  Version = "2"
	Version2a Version = "2a"
	Version2b Version = "2b"
	Version2x Version = "2x"
	Version2y Version = "2y"
)

const (
	encodedSaltLen   = 22 // 16 raw bytes in bcrypt base64
	encodedDigestLen = 31 // 23 raw bytes in bcrypt base64
)

// hashRecord is the decoded form of a textual bcrypt record
// ($2b$12$<22-char salt><31-char digest>).
type hashRecord struct {
	version Version
	cost    int
	salt    []byte // 16 bytes, decoded
	digest  []byte // 23 bytes, decoded
}

// knownVersion reports whether v is a recognised bcrypt revision tag.
func knownVersion(v Version) bool {
	switch v {
	case Version2, Version2a, Version2b, Version2x, Version2y:
		return true
	}
	return false
}

// parseHash decodes a textual hash record into its (version, cost, salt,
// digest) parts. Any structural defect — wrong segment count, unknown
// version tag, non-numeric or out-of-range cost, wrong-length or
// wrong-alphabet salt/digest — yields an error in the [ErrInvalidHash]
// family.
func parseHash(s string) (hashRecord, error) {
	parts := strings.Split(s, "$")
	// A well-formed record splits into ["", version, cost, salt+digest].
	if len(parts) != 4 || parts[0] != "" {
		return hashRecord{}, fmt.Errorf("%w: expected $<version>$<cost>$<salt+digest>", ErrInvalidHash)
	}

	version := Version(parts[1])
	if !knownVersion(version) {
		return hashRecord{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, parts[1])
	}

	if len(parts[2]) != 2 {
		return hashRecord{}, fmt.Errorf("%w: %q is not two decimal digits", ErrMalformedCost, parts[2])
	}
	cost, err := strconv.Atoi(parts[2])
	if err != nil {
		return hashRecord{}, fmt.Errorf("%w: %q is not two decimal digits", ErrMalformedCost, parts[2])
	}
	if cost < MinCost || cost > MaxCost {
		return hashRecord{}, fmt.Errorf("%w: %d is outside [%d, %d]", ErrMalformedCost, cost, MinCost, MaxCost)
	}

	if len(parts[3]) != encodedSaltLen+encodedDigestLen {
		return hashRecord{}, fmt.Errorf("%w: salt+digest segment has length %d, want %d",
			ErrInvalidHash, len(parts[3]), encodedSaltLen+encodedDigestLen)
	}

	salt, err := base64Decode([]byte(parts[3][:encodedSaltLen]))
	if err != nil {
		return hashRecord{}, err
	}
	if len(salt) != SaltLength {
		return hashRecord{}, fmt.Errorf("%w: salt decodes to %d bytes, want %d", ErrInvalidHash, len(salt), SaltLength)
	}

	digest, err := base64Decode([]byte(parts[3][encodedSaltLen:]))
	if err != nil {
		return hashRecord{}, err
	}
	if len(digest) != rawDigestLen-1 {
		return hashRecord{}, fmt.Errorf("%w: digest decodes to %d bytes, want %d", ErrInvalidHash, len(digest), rawDigestLen-1)
	}

	return hashRecord{version: version, cost: cost, salt: salt, digest: digest}, nil
}

// formatHash is the inverse of parseHash: it re-encodes salt and digest
// with the bcrypt alphabet and zero-pads the cost to two digits. The salt
// must be 16 raw bytes and the digest the 23 retained bytes.
func formatHash(rec hashRecord) string {
	var b strings.Builder
	b.Grow(7 + encodedSaltLen + encodedDigestLen)
	b.WriteByte('$')
	b.WriteString(string(rec.version))
	b.WriteByte('$')
	b.WriteString(fmt.Sprintf("%02d", rec.cost))
	b.WriteByte('$')
	b.Write(base64Encode(rec.salt))
	b.Write(base64Encode(rec.digest))
	return b.String()
}
