package special

import (
	"errors"
	"io"
	"math/big"

	"github.com/BackendStack21/primecheck-go/arith"
	"github.com/BackendStack21/primecheck-go/bpsw"
)

// maxPocklingtonBases bounds the per-factor base search. A prime n
// satisfies the Pocklington conditions for all but a vanishing fraction of
// bases, so exhausting the bound essentially never happens for primes.
const maxPocklingtonBases = 64

var (
	// ErrFactorsInsufficient indicates the factored part of n-1 does not
	// exceed sqrt(n), so the certificate cannot conclude anything.
	ErrFactorsInsufficient = errors.New("factored part of n-1 must exceed sqrt(n)")

	// ErrBadFactor indicates a listed factor is not a prime divisor of n-1.
	ErrBadFactor = errors.New("factor is not a prime divisor of n-1")

	// ErrInconclusive indicates the base search was exhausted without
	// either proving primality or finding a Fermat witness.
	ErrInconclusive = errors.New("pocklington test inconclusive")
)

// Pocklington applies the Pocklington-Lehmer n-1 criterion. factors must be
// distinct prime divisors of n-1 whose full contribution to n-1 (each prime
// raised to its multiplicity) exceeds sqrt(n).
//
// A true result is a proof of primality. A false result is a proof of
// compositeness (a Fermat witness was found). If the base search is
// exhausted first, ErrInconclusive is returned.
func Pocklington(n *big.Int, factors []*big.Int, rnd io.Reader) (bool, error) {
	if n.Cmp(bigTwo) <= 0 || n.Bit(0) == 0 {
		return false, errors.New("candidate must be odd and greater than 2")
	}

	nMinus1 := new(big.Int).Sub(n, bigOne)

	// Accumulate the factored part F: every listed prime contributes its
	// full power dividing n-1.
	factored := big.NewInt(1)
	rem := new(big.Int)
	for _, q := range factors {
		if q.Cmp(bigTwo) < 0 {
			return false, ErrBadFactor
		}
		if prime, err := bpsw.IsPrime(q); err != nil {
			return false, err
		} else if !prime {
			return false, ErrBadFactor
		}
		if rem.Mod(nMinus1, q).Sign() != 0 {
			return false, ErrBadFactor
		}
		t := new(big.Int).Set(nMinus1)
		for rem.Mod(t, q).Sign() == 0 {
			t.Div(t, q)
			factored.Mul(factored, q)
		}
	}

	// F^2 > n is the Pocklington condition for the certificate to bind.
	if new(big.Int).Mul(factored, factored).Cmp(n) <= 0 {
		return false, ErrFactorsInsufficient
	}

	nMinus2 := new(big.Int).Sub(n, bigTwo)
	cofactor := new(big.Int)
	for _, q := range factors {
		cofactor.Div(nMinus1, q)

		satisfied := false
		for try := 0; try < maxPocklingtonBases; try++ {
			a, err := arith.UniformInRange(rnd, bigTwo, nMinus2)
			if err != nil {
				return false, err
			}

			// Fermat condition: a^(n-1) = 1 (mod n). Failing it proves
			// n composite outright.
			if new(big.Int).Exp(a, nMinus1, n).Cmp(bigOne) != 0 {
				return false, nil
			}

			// gcd(a^((n-1)/q) - 1, n) = 1 pins the factor q of the
			// order; a different base may be needed per factor.
			w := new(big.Int).Exp(a, cofactor, n)
			w.Sub(w, bigOne)
			if arith.GCD(w, n).Cmp(bigOne) == 0 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false, ErrInconclusive
		}
	}
	return true, nil
}
