// Package rijndael implements the AES-128 forward cipher from first principles: the GF(2^8) arithmetic, the key
// schedule, and the four round transformations are all computed here rather than delegated to crypto/aes.
//
// Only single-block encryption is provided. There is no inverse cipher, no mode of operation, and no padding; callers
// which need to encrypt more than one block must build a mode on top of EncryptBlock.
//
// This package makes no attempt to run in constant time. Its S-box lookups are indexed by secret data.
package rijndael

import (
	"errors"
	"fmt"

	"github.com/codahale/rijndael/internal/mem"
)

const (
	KeySize   = 16 // The size of an AES-128 key in bytes.
	BlockSize = 16 // The size of an AES block in bytes.
	Rounds    = 10 // The number of rounds for AES-128.
)

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("rijndael: invalid key length")

	// ErrInvalidBlockLength is returned when a block is not exactly BlockSize bytes long.
	ErrInvalidBlockLength = errors.New("rijndael: invalid block length")
)

// A Cipher is an AES-128 instance keyed with a particular key. It holds only the expanded key schedule, which is never
// modified after New returns, so a single Cipher may be used concurrently from multiple goroutines.
type Cipher struct {
	w schedule
}

// New returns a Cipher with the key schedule expanded from key. If key is not KeySize bytes long, ErrInvalidKeyLength is
// returned.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	return &Cipher{w: expandKey((*[KeySize]byte)(key))}, nil
}

// EncryptBlock encrypts the block src, appends the ciphertext to dst, and returns the resulting slice. If src is not
// BlockSize bytes long, ErrInvalidBlockLength is returned.
//
// To reuse src's storage for the ciphertext, use src[:0] as dst.
func (c *Cipher) EncryptBlock(dst, src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, ErrInvalidBlockLength
	}

	s := state(src)
	c.encrypt(&s)

	ret, out := mem.SliceForAppend(dst, BlockSize)
	copy(out, s[:])
	return ret, nil
}

// RoundKey returns the round key for the given round, which must be in the range [0, Rounds].
func (c *Cipher) RoundKey(round int) [BlockSize]byte {
	if round < 0 || round > Rounds {
		panic(fmt.Sprintf("rijndael: invalid round %d", round))
	}

	var rk [BlockSize]byte
	for i := range 4 {
		copy(rk[4*i:], c.w[4*round+i][:])
	}
	return rk
}

func (c *Cipher) encrypt(s *state) {
	addRoundKey(s, &c.w, 0)

	for round := 1; round < Rounds; round++ {
		subBytes(s)
		shiftRows(s)
		mixColumns(s)
		addRoundKey(s, &c.w, round)
	}

	// The final round omits MixColumns.
	subBytes(s)
	shiftRows(s)
	addRoundKey(s, &c.w, Rounds)
}
