package hashing

import "strings"

// Hasher is the interface callers should depend on for password storage,
// so application code stays independent of hashing parameters.
//
// All implementations must be safe for concurrent use by multiple
// goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash
	// record. A fresh cryptographic salt is generated for every call, so
	// two calls with the same password produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with parameters
	// that differ from the hasher's current configuration. Callers should
	// re-hash the password on next successful login when this returns
	// true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash record without
	// verifying it. Useful for auditing, migration tooling, or logging.
	Info(hash string) (HashInfo, error)
}

// HashInfo carries metadata parsed from an encoded hash record.
type HashInfo struct {
	// Version is the bcrypt revision tag embedded in the record
	// ("2b" for records produced by this module; "2a", "2y" and friends
	// for imports from other libraries).
	Version string

	// Params holds parameters extracted from the hash record.
	//
	//   "cost" → int
	Params map[string]any
}

// DetectVersion inspects a hash record and returns the bcrypt revision
// tag it carries. It is a prefix heuristic and does not verify the
// record; the second return value is false when the prefix is not a
// bcrypt one.
func DetectVersion(hash string) (string, bool) {
	switch {
	case strings.HasPrefix(hash, "$2a$"):
		return "2a", true
	case strings.HasPrefix(hash, "$2b$"):
		return "2b", true
	case strings.HasPrefix(hash, "$2x$"):
		return "2x", true
	case strings.HasPrefix(hash, "$2y$"):
		return "2y", true
	case strings.HasPrefix(hash, "$2$"):
		return "2", true
	default:
		return "", false
	}
}
