package hashing

import (
	"errors"
	"fmt"

	"github.com/uswriting/bcrypt"
)

// Options configures a [BcryptHasher].
type Options struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	// Default: [bcrypt.DefaultCost] (12).
	Cost int
}

// DefaultOptions returns Options with [bcrypt.DefaultCost].
func DefaultOptions() Options {
	return Options{Cost: bcrypt.DefaultCost}
}

// BcryptHasher adapts the bcrypt core to the [Hasher] interface and adds
// the operational conveniences around it: cost-migration detection and
// hash introspection.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent
// use.
type BcryptHasher struct {
	cost int
}

// New constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [bcrypt.MinCost,
// bcrypt.MaxCost].
func New(opts Options) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: opts.Cost}, nil
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password and returns the "$2b$..." hash record.
// Passwords longer than 71 UTF-8 bytes are rejected with
// [ErrPasswordTooLong] — never truncated.
func (h *BcryptHasher) Make(password string) (string, error) {
	record, err := bcrypt.Hash(password, h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %v", ErrPasswordTooLong, err)
	}
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return record, nil
}

// Check verifies that password matches the hash record.
// Returns (false, nil) on mismatch; an error means the record itself was
// unusable.
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	ok, err := bcrypt.Compare(password, hash)
	if errors.Is(err, bcrypt.ErrInvalidHash) {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return false, fmt.Errorf("%w: %v", ErrPasswordTooLong, err)
	}
	if err != nil {
		return false, fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return ok, nil
}

// NeedsRehash returns true if the work factor encoded in hash differs
// from the hasher's configured cost, or if the record carries a legacy
// revision tag rather than "2b". A lower stored cost means the hash is
// weaker than the current configuration; either way the password should
// be re-hashed on the next successful login.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	info, err := h.Info(hash)
	if err != nil {
		return false, err
	}
	if info.Version != "2b" {
		return true, nil
	}
	return info.Params["cost"].(int) != h.cost, nil
}

// Info extracts the revision tag and work factor from a hash record.
//
// Returned [HashInfo].Params:
//   - "cost" → int
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	version, ok := DetectVersion(hash)
	if !ok {
		return HashInfo{}, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrInvalidHash)
	}
	cost, err := bcrypt.Cost(hash)
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return HashInfo{
		Version: version,
		Params:  map[string]any{"cost": cost},
	}, nil
}
