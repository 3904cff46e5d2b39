package blowfish_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	xblowfish "golang.org/x/crypto/blowfish"

	"github.com/uswriting/bcrypt/blowfish"
)

// ──────────────────────────────────────────────────────────────────────────────
// Known-answer tests
// ──────────────────────────────────────────────────────────────────────────────

// Vectors from Eric Young's canonical Blowfish test set, shipped with the
// original SSLeay distribution and reproduced by every conformant
// implementation since.
var knownAnswers = []struct {
	key, plaintext, ciphertext string // hex
}{
	{"0000000000000000", "0000000000000000", "4ef997456198dd78"},
	{"ffffffffffffffff", "ffffffffffffffff", "51866fd5b85ecb8a"},
	{"3000000000000000", "1000000000000001", "7d856f9a613063f2"},
	{"1111111111111111", "1111111111111111", "2466dd878b963c9d"},
	{"0123456789abcdef", "1111111111111111", "61f9c3802281b096"},
	{"fedcba9876543210", "0123456789abcdef", "0aceab0fc6a0a28d"},
	{"7ca110454a1a6e57", "01a1d6d039776742", "59c68245eb05282b"},
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test table: %v", err)
	}
	return b
}

func TestEncrypt_KnownAnswers(t *testing.T) {
	for _, tc := range knownAnswers {
		key := mustHex(t, tc.key)
		pt := mustHex(t, tc.plaintext)
		want := mustHex(t, tc.ciphertext)

		c := blowfish.New()
		c.ExpandKey(key)

		got := make([]byte, blowfish.BlockSize)
		c.EncryptBlock(got, pt)
		if !bytes.Equal(got, want) {
			t.Errorf("key %s: Encrypt(%s) = %x, want %s", tc.key, tc.plaintext, got, tc.ciphertext)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Parity with the independent reference implementation
// ──────────────────────────────────────────────────────────────────────────────

func TestExpandKey_MatchesReference(t *testing.T) {
	keys := [][]byte{
		[]byte("a"),
		[]byte("key"),
		[]byte("a slightly longer key with some length to it"),
		bytes.Repeat([]byte{0x00, 0xff, 0x7f, 0x80}, 14), // 56 bytes, the classic max
	}
	block := mustHex(t, "0123456789abcdef")

	for _, key := range keys {
		ref, err := xblowfish.NewCipher(key)
		if err != nil {
			t.Fatalf("reference NewCipher(%q): %v", key, err)
		}
		want := make([]byte, blowfish.BlockSize)
		ref.Encrypt(want, block)

		c := blowfish.New()
		c.ExpandKey(key)
		got := make([]byte, blowfish.BlockSize)
		c.EncryptBlock(got, block)

		if !bytes.Equal(got, want) {
			t.Errorf("key %q: ciphertext %x differs from reference %x", key, got, want)
		}
	}
}

func TestExpandKeySalted_MatchesReference(t *testing.T) {
	key := []byte("the password bytes\x00")
	salt := []byte("0123456789abcdef") // 16 bytes, as bcrypt supplies
	block := mustHex(t, "ffeeddccbbaa9988")

	ref, err := xblowfish.NewSaltedCipher(key, salt)
	if err != nil {
		t.Fatalf("reference NewSaltedCipher: %v", err)
	}
	want := make([]byte, blowfish.BlockSize)
	ref.Encrypt(want, block)

	c := blowfish.New()
	c.ExpandKeySalted(key, salt)
	got := make([]byte, blowfish.BlockSize)
	c.EncryptBlock(got, block)

	if !bytes.Equal(got, want) {
		t.Errorf("salted ciphertext %x differs from reference %x", got, want)
	}
}

// TestKeyScheduleSequence_MatchesReference walks a miniature bcrypt key
// setup — one salted expansion followed by alternating plain expansions —
// against the reference, confirming the mutable state evolves
// identically step for step.
func TestKeyScheduleSequence_MatchesReference(t *testing.T) {
	key := []byte("sequence key\x00")
	salt := []byte("fedcba9876543210")
	block := mustHex(t, "0011223344556677")

	ref, err := xblowfish.NewSaltedCipher(key, salt)
	if err != nil {
		t.Fatalf("reference NewSaltedCipher: %v", err)
	}
	c := blowfish.New()
	c.ExpandKeySalted(key, salt)

	for round := 0; round < 8; round++ {
		xblowfish.ExpandKey(key, ref)
		xblowfish.ExpandKey(salt, ref)
		c.ExpandKey(key)
		c.ExpandKey(salt)

		want := make([]byte, blowfish.BlockSize)
		ref.Encrypt(want, block)
		got := make([]byte, blowfish.BlockSize)
		c.EncryptBlock(got, block)
		if !bytes.Equal(got, want) {
			t.Fatalf("round %d: ciphertext %x differs from reference %x", round, got, want)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contract checks
// ──────────────────────────────────────────────────────────────────────────────

func TestEncrypt_ChainedSelfEncryptionChanges(t *testing.T) {
	c := blowfish.New()
	c.ExpandKey([]byte("chaining"))

	l, r := uint32(0x4f727068), uint32(0x65616e42)
	seen := map[uint64]bool{uint64(l)<<32 | uint64(r): true}
	for i := 0; i < 64; i++ {
		l, r = c.Encrypt(l, r)
		packed := uint64(l)<<32 | uint64(r)
		if seen[packed] {
			t.Fatalf("cycle after %d self-encryptions", i+1)
		}
		seen[packed] = true
	}
}

func TestExpandKey_EmptyKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty key")
		}
	}()
	blowfish.New().ExpandKey(nil)
}

func TestEncryptBlock_ShortBlockPanics(t *testing.T) {
	c := blowfish.New()
	c.ExpandKey([]byte("k"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short block")
		}
	}()
	c.EncryptBlock(make([]byte, blowfish.BlockSize), make([]byte, 4))
}
