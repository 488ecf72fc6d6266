// Package arith provides the number-theoretic helpers shared by the
// primality-testing engines: Jacobi symbols, modular arithmetic, perfect-power
// detection, and uniform random sampling.
package arith

import (
	"errors"
	"math/big"
)

var (
	// ErrEvenModulus indicates a modulus that must be odd was even.
	ErrEvenModulus = errors.New("modulus must be odd")

	// ErrNonPositiveModulus indicates a modulus that must be positive was not.
	ErrNonPositiveModulus = errors.New("modulus must be positive")
)

// Jacobi computes the Jacobi symbol (a/n) in {-1, 0, 1} using iterative
// quadratic-reciprocity reduction. n must be odd and positive.
//
// Jacobi(a, 1) = 1 for all a, and Jacobi(0, n) = 0 for n > 1, matching the
// standard number-theoretic definition.
func Jacobi(a, n *big.Int) (int, error) {
	if n.Sign() <= 0 {
		return 0, ErrNonPositiveModulus
	}
	if n.Bit(0) == 0 {
		return 0, ErrEvenModulus
	}

	// Work on copies; inputs stay untouched.
	x := new(big.Int).Mod(a, n) // non-negative for positive n
	y := new(big.Int).Set(n)
	result := 1

	for x.Sign() != 0 {
		// Strip factors of two from x, flipping the sign when
		// y mod 8 is 3 or 5 (2 is a non-residue there).
		s := x.TrailingZeroBits()
		x.Rsh(x, s)
		if s%2 == 1 {
			switch y.Bits()[0] & 7 {
			case 3, 5:
				result = -result
			}
		}

		// Quadratic reciprocity: flip when both are 3 mod 4, then swap.
		if x.Bits()[0]&3 == 3 && y.Bits()[0]&3 == 3 {
			result = -result
		}
		x, y = y, x
		x.Mod(x, y)
	}

	if y.Cmp(bigOne) == 0 {
		return result, nil
	}
	return 0, nil
}
