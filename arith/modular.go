package arith

import (
	"errors"
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

var bigOne = big.NewInt(1)

// ErrNotInvertible indicates a modular inverse was requested for an element
// that shares a factor with the modulus.
var ErrNotInvertible = errors.New("element is not invertible")

// fftThresholdBits is the operand size above which MulMod switches to FFT
// multiplication. Below it the builtin Karatsuba path wins.
const fftThresholdBits = 1 << 15

// ModExp computes base^exponent mod modulus. The exponent must be
// non-negative and the modulus positive.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if exponent.Sign() < 0 {
		return nil, errors.New("exponent must be non-negative")
	}
	return new(big.Int).Exp(base, exponent, modulus), nil
}

// MulMod computes x*y mod m, routing the multiplication through an FFT
// implementation once the operands are large enough for it to pay off.
func MulMod(x, y, m *big.Int) *big.Int {
	var z *big.Int
	if x.BitLen() > fftThresholdBits && y.BitLen() > fftThresholdBits {
		z = bigfft.Mul(x, y)
	} else {
		z = new(big.Int).Mul(x, y)
	}
	return z.Mod(z, m)
}

// ModInverse computes the inverse of a modulo n using the iterative
// extended Euclidean algorithm. It returns ErrNotInvertible when
// gcd(a, n) != 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}

	// Iterative accumulator form: (oldR, r) converge on the gcd while
	// (oldS, s) track the Bezout coefficient of a.
	oldR := new(big.Int).Mod(a, n)
	r := new(big.Int).Set(n)
	oldS := big.NewInt(1)
	s := big.NewInt(0)

	q := new(big.Int)
	for r.Sign() != 0 {
		q.Div(oldR, r)

		nextR := new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldR, r = r, nextR

		nextS := new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldS, s = s, nextS
	}

	if oldR.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}
	return oldS.Mod(oldS, n), nil
}

// SplitPowerOfTwo factors m as 2^r * d with d odd. m must be positive.
// For an odd candidate n > 2 the decomposition of n-1 always has r >= 1.
func SplitPowerOfTwo(m *big.Int) (r uint, d *big.Int) {
	r = m.TrailingZeroBits()
	d = new(big.Int).Rsh(m, r)
	return r, d
}

// GCD returns the greatest common divisor of a and b as a new value.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}
