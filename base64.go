package bcrypt

import (
	"encoding/base64"
	"fmt"
)

// bcrypt does not use the standard base64 alphabet. The ordering below is
// the one the original OpenBSD implementation chose, and every conformant
// library since has had to match it: "." and "/" first, then uppercase,
// lowercase, digits. No padding characters appear in hash records.
const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var bcEncoding = base64.NewEncoding(alphabet)

// base64Encode encodes src with the bcrypt alphabet and strips the "="
// padding a standard encoder emits. The unused low bits of the final
// character are left at zero, matching the reference encoder: a 16-byte
// salt becomes exactly 22 characters and a 23-byte digest exactly 31.
func base64Encode(src []byte) []byte {
	n := bcEncoding.EncodedLen(len(src))
	dst := make([]byte, n)
	bcEncoding.Encode(dst, src)
	for n > 0 && dst[n-1] == '=' {
		n--
	}
	return dst[:n]
}

// base64Decode decodes src, which must be unpadded bcrypt base64.
// Characters outside the alphabet are rejected with [ErrInvalidHash].
func base64Decode(src []byte) ([]byte, error) {
	// Copy before padding: src is usually a window into a larger record
	// and appending in place would clobber the bytes that follow it.
	padded := make([]byte, len(src), len(src)+3)
	copy(padded, src)
	if rem := len(padded) % 4; rem != 0 {
		for i := rem; i < 4; i++ {
			padded = append(padded, '=')
		}
	}

	dst := make([]byte, bcEncoding.DecodedLen(len(padded)))
	n, err := bcEncoding.Decode(dst, padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return dst[:n], nil
}
