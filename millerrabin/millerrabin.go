// Package millerrabin implements the strong probable-prime test: a
// single-witness engine, probabilistic multi-round orchestration with an
// injected entropy source, and deterministic witness sets proven correct
// below published bounds.
package millerrabin

import (
	"errors"
	"io"
	"math/big"

	"github.com/BackendStack21/primecheck-go/arith"
)

var (
	// ErrCandidateRange indicates the candidate is outside the domain of
	// the single-witness test (n must be odd and greater than 3).
	ErrCandidateRange = errors.New("candidate must be odd and greater than 3")

	// ErrWitnessRange indicates a witness outside [2, n-2].
	ErrWitnessRange = errors.New("witness out of range")

	// ErrRounds indicates a non-positive round count.
	ErrRounds = errors.New("round count must be positive")
)

// RecommendedRounds is the round count suggested for cryptographic use
// beyond the deterministic table, giving error probability at most 2^-80.
const RecommendedRounds = 40

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// StrongProbablePrime reports whether n passes the strong probable-prime
// test for the witness a. n must be odd and greater than 3, and a must lie
// in [2, n-2]. A false result proves n composite; a true result means a is
// not a witness of compositeness.
//
// See Handbook of Applied Cryptography, Algorithm 4.24.
func StrongProbablePrime(n, a *big.Int) (bool, error) {
	if n.Cmp(bigThree) <= 0 || n.Bit(0) == 0 {
		return false, ErrCandidateRange
	}
	nMinus1 := new(big.Int).Sub(n, bigOne)
	nMinus2 := new(big.Int).Sub(n, bigTwo)
	if a.Cmp(bigTwo) < 0 || a.Cmp(nMinus2) > 0 {
		return false, ErrWitnessRange
	}

	// n - 1 = 2^r * d with d odd.
	r, d := arith.SplitPowerOfTwo(nMinus1)

	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
		return true, nil
	}
	for i := uint(1); i < r; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// Test performs rounds independent strong probable-prime rounds with
// uniformly random witnesses drawn from rnd (RandReader when nil). It
// fails fast on the first witness of compositeness. A composite n survives
// all rounds with probability at most 4^-rounds; primes always pass.
func Test(n *big.Int, rounds int, rnd io.Reader) (bool, error) {
	if rounds <= 0 {
		return false, ErrRounds
	}
	if n.Cmp(bigTwo) < 0 {
		return false, nil
	}
	if n.Cmp(bigThree) <= 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	nMinus2 := new(big.Int).Sub(n, bigTwo)
	for i := 0; i < rounds; i++ {
		a, err := arith.UniformInRange(rnd, bigTwo, nMinus2)
		if err != nil {
			return false, err
		}
		pass, err := StrongProbablePrime(n, a)
		if err != nil {
			return false, err
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}
