// Package bcrypt is a from-scratch implementation of the bcrypt
// password-hashing scheme, revision "2b", bit-for-bit interoperable with
// the canonical OpenBSD implementation and with other conformant
// libraries.
//
// # Why from scratch
//
// Widely used bcrypt libraries silently truncate passwords at 72 bytes,
// so any two passwords that agree on their first 72 bytes collide on the
// same hash. This package exists to close that hole: inputs whose UTF-8
// encoding plus the mandatory null terminator would exceed 72 bytes are
// rejected with [ErrPasswordTooLong] before any cryptographic work
// begins. Nothing is ever truncated.
//
// # Quick start
//
//	record, err := bcrypt.Hash("correct horse battery staple", bcrypt.DefaultCost)
//	if err != nil { ... }
//
//	ok, err := bcrypt.Compare("correct horse battery staple", record)
//	// ok == true, err == nil
//
// Hash records are ordinary strings of the form
//
//	$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW
//
// and verify under any conformant bcrypt implementation, in any language.
//
// # Choosing a cost
//
// The cost factor is a base-2 exponent: each increment doubles the work
// of both hashing and brute-forcing. [DefaultCost] (12) is the right
// choice for most deployments; anything outside [MinCost] through
// [MaxCost] is rejected. The cost is embedded in the record, so
// verification always reproduces the original work factor.
//
// # Concurrency
//
// All operations are pure CPU-bound computation over state owned by the
// single call that created it. Every function in this package is safe for
// concurrent use without locking. A call at a high cost can take hundreds
// of milliseconds; run it off any latency-sensitive path.
//
// # Errors
//
// Failures are sentinel errors branched with [errors.Is]: validation
// failures ([ErrPasswordTooLong], [ErrInvalidCost]) mean the caller's
// input broke the contract, and [ErrInvalidHash]-family errors mean a
// stored record is malformed. A wrong password is never an error —
// [Compare] expresses it only as a false result.
//
// For the Hasher-interface driver layer (cost migration, hash
// introspection), see the hashing subpackage.
package bcrypt
