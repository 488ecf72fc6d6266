// Package special implements deterministic primality tests for numbers of
// special form: the Lucas-Lehmer test for Mersenne numbers, Pepin's test
// for Fermat numbers, and the Pocklington n-1 certificate check.
package special

import (
	"errors"
	"math/big"

	"github.com/cznic/mathutil"
	"github.com/remyoudompheng/bigfft"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// KnownMersenneExponents lists the exponents of the first Mersenne primes,
// in order. See OEIS A000043.
var KnownMersenneExponents = []uint32{
	2, 3, 5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607, 1279,
	2203, 2281, 3217, 4253, 4423, 9689, 9941, 11213, 19937,
}

// fftThresholdBits mirrors the arith multiplication threshold: squaring in
// the Lucas-Lehmer loop dominates the runtime, and for the exponents where
// the test is interesting the operands comfortably exceed it.
const fftThresholdBits = 1 << 15

// ErrExponentNotPrime indicates a Mersenne exponent that is not prime;
// 2^p - 1 is trivially composite then (2^a - 1 divides 2^ab - 1).
var ErrExponentNotPrime = errors.New("mersenne exponent must be prime")

// LucasLehmer reports whether the Mersenne number M_p = 2^p - 1 is prime.
// The exponent p must itself be prime and at least 3 (M_2 = 3 is prime but
// has no Lucas-Lehmer sequence to run; it is special-cased).
//
// The test iterates s <- s^2 - 2 mod M_p from s = 4; M_p is prime exactly
// when the (p-2)-th term vanishes.
func LucasLehmer(p uint32) (bool, error) {
	if !mathutil.IsPrime(p) {
		return false, ErrExponentNotPrime
	}
	if p == 2 {
		return true, nil
	}

	m := mersenne(p)
	s := big.NewInt(4)
	for i := uint32(0); i < p-2; i++ {
		if s.BitLen() > fftThresholdBits {
			s = bigfft.Mul(s, s)
		} else {
			s.Mul(s, s)
		}
		s.Sub(s, bigTwo)
		s = modMersenne(s, p, m)
	}
	return s.Sign() == 0, nil
}

// mersenne returns 2^p - 1.
func mersenne(p uint32) *big.Int {
	m := new(big.Int).Lsh(bigOne, uint(p))
	return m.Sub(m, bigOne)
}

// modMersenne reduces x modulo 2^p - 1 using only shifts and adds:
// 2^p = 1 (mod M_p), so the high part folds onto the low part.
func modMersenne(x *big.Int, p uint32, m *big.Int) *big.Int {
	if x.Sign() < 0 {
		x.Mod(x, m)
		return x
	}
	lo := new(big.Int)
	for x.BitLen() > int(p) {
		// x = (x >> p) + (x & (2^p - 1))
		lo.And(lo.Set(x), m)
		x.Rsh(x, uint(p))
		x.Add(x, lo)
	}
	if x.Cmp(m) == 0 {
		return x.SetInt64(0)
	}
	return x
}
