package arith

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// RandReader is the default entropy source for witness selection.
// It can be swapped out in tests.
var RandReader io.Reader = rand.Reader

// ErrEmptyRange indicates lo > hi was passed to UniformInRange.
var ErrEmptyRange = errors.New("empty sampling range")

// UniformInRange draws a uniformly distributed integer in [lo, hi]
// (bounds inclusive) from r. A nil reader falls back to RandReader.
// Rejection sampling keeps the distribution unbiased.
func UniformInRange(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if r == nil {
		r = RandReader
	}
	width := new(big.Int).Sub(hi, lo)
	if width.Sign() < 0 {
		return nil, ErrEmptyRange
	}
	width.Add(width, bigOne)

	bitLen := width.BitLen()
	byteLen := (bitLen + 7) / 8
	// Mask for the top byte so roughly half of all draws are accepted.
	mask := byte(0xff >> (uint(byteLen*8) - uint(bitLen)))

	buf := make([]byte, byteLen)
	v := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(width) < 0 {
			return v.Add(v, lo), nil
		}
	}
}

// NewShakeReader returns a deterministic byte stream derived from seed via
// the SHAKE256 extendable output function. Feeding it to the probabilistic
// engines makes witness selection reproducible, which is how the seeded
// test fixtures work.
func NewShakeReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write(seed)
	return h
}
