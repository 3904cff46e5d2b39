// Package blowfish implements the Blowfish block cipher in the exact form
// bcrypt requires: the standard key schedule, the salt-interleaved key
// schedule used by EksBlowfishSetup, and 64-bit block encryption via a
// 16-round Feistel network.
//
// # Scope
//
// This package exists to serve the bcrypt core one directory up. It is a
// full, conformant Blowfish encryptor (verified against the published
// known-answer vectors), but it deliberately omits everything bcrypt does
// not need: decryption, cipher.Block integration, and key-length policy
// beyond a non-empty key.
//
// # State ownership
//
// A Cipher is a mutable value. ExpandKey and ExpandKeySalted rewrite the
// subkey array and all four S-boxes in place, so a Cipher must never be
// shared between derivations — create one per computation with [New] and
// discard it afterwards.
package blowfish

// BlockSize is the Blowfish block size in bytes.
const BlockSize = 8

// Cipher holds the mutable cipher state: 18 round subkeys and four
// 256-entry S-boxes, initialised from the hexadecimal digits of π and
// rewritten during key expansion.
type Cipher struct {
	p              [18]uint32
	s0, s1, s2, s3 [256]uint32
}

// New returns a Cipher in the fixed initial state, before any key material
// has been mixed in. Callers must run [Cipher.ExpandKey] or
// [Cipher.ExpandKeySalted] at least once before encrypting.
func New() *Cipher {
	c := &Cipher{p: initialP, s0: initialS0, s1: initialS1, s2: initialS2, s3: initialS3}
	return c
}

// ExpandKey runs the standard Blowfish key schedule: the key bytes are
// XORed cyclically into the 18 subkeys, then an all-zero block is
// encrypted repeatedly under the evolving state, each ciphertext
// overwriting the next pair of subkey words and then every S-box entry
// in sequence (521 block encryptions in total).
//
// The key is read cyclically, so any non-empty key is accepted; an empty
// key is a caller bug and panics.
func (c *Cipher) ExpandKey(key []byte) {
	if len(key) == 0 {
		panic("blowfish: empty key")
	}
	j := 0
	for i := 0; i < 18; i++ {
		c.p[i] ^= nextWord(key, &j)
	}

	var l, r uint32
	for i := 0; i < 18; i += 2 {
		l, r = c.Encrypt(l, r)
		c.p[i], c.p[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l, r = c.Encrypt(l, r)
		c.s0[i], c.s0[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l, r = c.Encrypt(l, r)
		c.s1[i], c.s1[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l, r = c.Encrypt(l, r)
		c.s2[i], c.s2[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l, r = c.Encrypt(l, r)
		c.s3[i], c.s3[i+1] = l, r
	}
}

// ExpandKeySalted is bcrypt's modification of the key schedule: the
// structural walk is identical to [Cipher.ExpandKey], but the input of
// each chained block encryption is first XORed with the next two 32-bit
// words of salt, cycling through the salt. With bcrypt's 16-byte salt the
// cycle length is four words, so consecutive encryptions alternate
// between the two salt halves.
//
// Both key and salt must be non-empty; empty input is a caller bug and
// panics.
func (c *Cipher) ExpandKeySalted(key, salt []byte) {
	if len(key) == 0 {
		panic("blowfish: empty key")
	}
	if len(salt) == 0 {
		panic("blowfish: empty salt")
	}
	j := 0
	for i := 0; i < 18; i++ {
		c.p[i] ^= nextWord(key, &j)
	}

	j = 0
	var l, r uint32
	for i := 0; i < 18; i += 2 {
		l ^= nextWord(salt, &j)
		r ^= nextWord(salt, &j)
		l, r = c.Encrypt(l, r)
		c.p[i], c.p[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l ^= nextWord(salt, &j)
		r ^= nextWord(salt, &j)
		l, r = c.Encrypt(l, r)
		c.s0[i], c.s0[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l ^= nextWord(salt, &j)
		r ^= nextWord(salt, &j)
		l, r = c.Encrypt(l, r)
		c.s1[i], c.s1[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l ^= nextWord(salt, &j)
		r ^= nextWord(salt, &j)
		l, r = c.Encrypt(l, r)
		c.s2[i], c.s2[i+1] = l, r
	}
	for i := 0; i < 256; i += 2 {
		l ^= nextWord(salt, &j)
		r ^= nextWord(salt, &j)
		l, r = c.Encrypt(l, r)
		c.s3[i], c.s3[i+1] = l, r
	}
}

// Encrypt encrypts one 64-bit block, given as two big-endian 32-bit
// halves, and returns the encrypted halves. Sixteen Feistel rounds, then
// the final swap is undone and both halves are XORed with the last two
// subkeys.
func (c *Cipher) Encrypt(l, r uint32) (uint32, uint32) {
	l ^= c.p[0]
	for i := 0; i < 16; i += 2 {
		r ^= c.f(l) ^ c.p[i+1]
		l ^= c.f(r) ^ c.p[i+2]
	}
	r ^= c.p[17]
	return r, l
}

// EncryptBlock encrypts the 8-byte block src into dst (they may overlap),
// interpreting both as big-endian. It exists so tests can drive the cipher
// with byte buffers; the bcrypt core works on word halves directly.
// Short buffers are a caller bug and panic.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("blowfish: block too short")
	}
	l := uint32(src[0])<<24 | uint32(src[1])<<16 | uint32(src[2])<<8 | uint32(src[3])
	r := uint32(src[4])<<24 | uint32(src[5])<<16 | uint32(src[6])<<8 | uint32(src[7])
	l, r = c.Encrypt(l, r)
	dst[0], dst[1], dst[2], dst[3] = byte(l>>24), byte(l>>16), byte(l>>8), byte(l)
	dst[4], dst[5], dst[6], dst[7] = byte(r>>24), byte(r>>16), byte(r>>8), byte(r)
}

// f is the Feistel mixing function: the four bytes of x index one S-box
// each, combined with modular addition and XOR.
func (c *Cipher) f(x uint32) uint32 {
	return ((c.s0[byte(x>>24)] + c.s1[byte(x>>16)]) ^ c.s2[byte(x>>8)]) + c.s3[byte(x)]
}

// nextWord assembles the next big-endian 32-bit word from b starting at
// *pos, wrapping to the beginning when the end is reached. The cyclic
// read is what lets keys and salts shorter than the schedule repeat.
func nextWord(b []byte, pos *int) uint32 {
	var w uint32
	j := *pos
	for i := 0; i < 4; i++ {
		w = w<<8 | uint32(b[j])
		j++
		if j >= len(b) {
			j = 0
		}
	}
	*pos = j
	return w
}
