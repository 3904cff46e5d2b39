package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/uswriting/bcrypt"
	"github.com/uswriting/bcrypt/hashing"
)

// testCost is the minimum bcrypt work factor. Used in unit tests only so
// the suite runs quickly.
const testCost = bcrypt.MinCost

func newTestHasher(t *testing.T) *hashing.BcryptHasher {
	t.Helper()
	h, err := hashing.New(hashing.Options{Cost: testCost})
	if err != nil {
		t.Fatalf("hashing.New: %v", err)
	}
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_Valid(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, 10, 12, bcrypt.MaxCost} {
		h, err := hashing.New(hashing.Options{Cost: cost})
		if err != nil {
			t.Errorf("cost %d: unexpected error %v", cost, err)
		}
		if h != nil && h.Cost() != cost {
			t.Errorf("cost %d: got %d", cost, h.Cost())
		}
	}
}

func TestNew_InvalidCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost - 1, 0, -1, bcrypt.MaxCost + 1, 99} {
		_, err := hashing.New(hashing.Options{Cost: cost})
		if !errors.Is(err, hashing.ErrInvalidOption) {
			t.Errorf("cost %d: expected ErrInvalidOption, got %v", cost, err)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	if opts := hashing.DefaultOptions(); opts.Cost != bcrypt.DefaultCost {
		t.Errorf("got cost %d, want %d", opts.Cost, bcrypt.DefaultCost)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make / Check
// ──────────────────────────────────────────────────────────────────────────────

func TestMake_ReturnsRecord(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("password123")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if !strings.HasPrefix(hash, "$2b$") {
		t.Fatalf("hash does not look like bcrypt 2b: %q", hash)
	}
}

func TestMake_ProducesUniqueHashes(t *testing.T) {
	h := newTestHasher(t)
	h1, _ := h.Make("same-password")
	h2, _ := h.Make("same-password")
	if h1 == h2 {
		t.Error("two Make calls with the same password must produce different hashes (different salts)")
	}
}

func TestMake_OverlongPassword(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.Make(strings.Repeat("a", 72))
	if !errors.Is(err, hashing.ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestCheck_CorrectAndWrongPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("hunter2")

	ok, err := h.Check("hunter2", hash)
	if err != nil || !ok {
		t.Errorf("correct password: ok=%v err=%v", ok, err)
	}

	ok, err = h.Check("wrong-password", hash)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok {
		t.Error("Check returned true for wrong password")
	}
}

func TestCheck_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.Check("password", "not-a-hash")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash
// ──────────────────────────────────────────────────────────────────────────────

func TestNeedsRehash_SameCost(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("pw")
	needs, err := h.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if needs {
		t.Error("NeedsRehash should be false when costs match")
	}
}

func TestNeedsRehash_DifferentCost(t *testing.T) {
	low, _ := hashing.New(hashing.Options{Cost: testCost})
	high, _ := hashing.New(hashing.Options{Cost: testCost + 1})

	hash, _ := low.Make("pw")
	needs, err := high.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("NeedsRehash should be true when stored cost differs from configured cost")
	}
}

func TestNeedsRehash_LegacyVersionTag(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("pw")
	legacy := "$2a$" + hash[4:]

	needs, err := h.NeedsRehash(legacy)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("NeedsRehash should be true for a legacy 2a record")
	}
}

func TestNeedsRehash_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.NeedsRehash("not-a-hash")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Info / DetectVersion
// ──────────────────────────────────────────────────────────────────────────────

func TestInfo(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("pw")
	info, err := h.Info(hash)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Version != "2b" {
		t.Errorf("Version = %q, want %q", info.Version, "2b")
	}
	cost, ok := info.Params["cost"].(int)
	if !ok {
		t.Fatalf("Params[\"cost\"] is not int: %T", info.Params["cost"])
	}
	if cost != testCost {
		t.Errorf("cost = %d, want %d", cost, testCost)
	}
}

func TestDetectVersion(t *testing.T) {
	cases := []struct {
		hash    string
		version string
		ok      bool
	}{
		{"$2b$12$" + strings.Repeat(".", 53), "2b", true},
		{"$2a$10$" + strings.Repeat(".", 53), "2a", true},
		{"$2y$10$" + strings.Repeat(".", 53), "2y", true},
		{"$2x$10$" + strings.Repeat(".", 53), "2x", true},
		{"$2$10$" + strings.Repeat(".", 53), "2", true},
		{"$argon2id$v=19$m=65536,t=3,p=2$a$b", "", false},
		{"plain text", "", false},
	}
	for _, tc := range cases {
		v, ok := hashing.DetectVersion(tc.hash)
		if v != tc.version || ok != tc.ok {
			t.Errorf("DetectVersion(%q) = (%q, %v), want (%q, %v)", tc.hash, v, ok, tc.version, tc.ok)
		}
	}
}

func TestBcryptHasher_SatisfiesHasherInterface(t *testing.T) {
	var _ hashing.Hasher = newTestHasher(t)
}
