// Package lucas evaluates Lucas sequences modulo a candidate and implements
// the strong Lucas probable-prime test with Baillie-style parameter
// selection. Combined with a Miller-Rabin base-2 test it forms the
// Baillie-PSW pipeline.
package lucas

import (
	"errors"
	"math/big"

	"github.com/BackendStack21/primecheck-go/arith"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// ErrCandidateRange indicates the candidate is outside the test domain
// (n must be odd and greater than 1).
var ErrCandidateRange = errors.New("candidate must be odd and greater than 1")

// Sequence computes (U_k mod n, V_k mod n) for the Lucas sequence with
// parameters P and Q, where U_0=0, V_0=2, U_1=1, V_1=P and
// U_{m+1} = P*U_m - Q*U_{m-1} (likewise for V). n must be odd and greater
// than 1.
//
// The evaluation walks the bits of k most-significant first, doubling the
// index at every step and adding one when the bit is set, carrying Q^m
// alongside for the doubling formula V_{2m} = V_m^2 - 2*Q^m.
func Sequence(n, p, q, k *big.Int) (u, v *big.Int, err error) {
	u, v, _, err = sequence(n, p, q, k)
	return u, v, err
}

// sequence additionally returns Q^k mod n, which the strong test needs to
// continue doubling V past index k.
func sequence(n, p, q, k *big.Int) (u, v, qk *big.Int, err error) {
	if n.Cmp(bigOne) <= 0 || n.Bit(0) == 0 {
		return nil, nil, nil, ErrCandidateRange
	}
	if k.Sign() < 0 {
		return nil, nil, nil, errors.New("sequence index must be non-negative")
	}
	if k.Sign() == 0 {
		return big.NewInt(0), new(big.Int).Mod(bigTwo, n), new(big.Int).Mod(bigOne, n), nil
	}

	// Halving modulo n via the inverse of 2; n odd guarantees it exists.
	inv2, err := arith.ModInverse(bigTwo, n)
	if err != nil {
		return nil, nil, nil, err
	}

	pm := new(big.Int).Mod(p, n)
	qm := new(big.Int).Mod(q, n)
	// D = P^2 - 4Q, reduced once up front for the addition step.
	d := new(big.Int).Mul(pm, pm)
	d.Sub(d, new(big.Int).Lsh(qm, 2))
	d.Mod(d, n)

	// Start at index m = 1: (U_1, V_1, Q^1).
	u = big.NewInt(1)
	v = new(big.Int).Set(pm)
	qk = new(big.Int).Set(qm)

	t := new(big.Int)
	for i := k.BitLen() - 2; i >= 0; i-- {
		// Double: m -> 2m.
		// U_{2m} = U_m * V_m
		// V_{2m} = V_m^2 - 2*Q^m
		u = arith.MulMod(u, v, n)
		v = arith.MulMod(v, v, n)
		v.Sub(v, t.Lsh(qk, 1))
		v.Mod(v, n)
		qk = arith.MulMod(qk, qk, n)

		if k.Bit(i) == 1 {
			// Add: 2m -> 2m+1.
			// U_{m+1} = (P*U_m + V_m) / 2
			// V_{m+1} = (D*U_m + P*V_m) / 2
			nu := new(big.Int).Mul(pm, u)
			nu.Add(nu, v)
			nu = arith.MulMod(nu, inv2, n)

			nv := new(big.Int).Mul(d, u)
			nv.Add(nv, new(big.Int).Mul(pm, v))
			nv = arith.MulMod(nv, inv2, n)

			u, v = nu, nv
			qk = arith.MulMod(qk, qm, n)
		}
	}
	return u, v, qk, nil
}

// StrongTest applies the strong Lucas probable-prime test to n with the
// given parameters. n must be odd and greater than 1. A shared factor
// between n and Q proves compositeness and yields false immediately.
//
// With n + 1 = 2^s * t (t odd), n passes when U_t = 0 mod n or
// V_{2^j * t} = 0 mod n for some 0 <= j < s.
func StrongTest(n *big.Int, prm Params) (bool, error) {
	if n.Cmp(bigOne) <= 0 || n.Bit(0) == 0 {
		return false, ErrCandidateRange
	}

	p := big.NewInt(prm.P)
	q := big.NewInt(prm.Q)

	// A shared factor between n and Q disqualifies the parameters and, for
	// the |Q| < n parameters produced by SelectParams, exhibits a factor.
	if arith.GCD(n, q).Cmp(bigOne) != 0 {
		return false, nil
	}

	nPlus1 := new(big.Int).Add(n, bigOne)
	s, t := arith.SplitPowerOfTwo(nPlus1)

	u, v, qk, err := sequence(n, p, q, t)
	if err != nil {
		return false, err
	}
	if u.Sign() == 0 {
		return true, nil
	}

	// Check V at indices t, 2t, ..., 2^(s-1)*t, doubling in place.
	tmp := new(big.Int)
	for j := uint(0); j < s; j++ {
		if v.Sign() == 0 {
			return true, nil
		}
		v = arith.MulMod(v, v, n)
		v.Sub(v, tmp.Lsh(qk, 1))
		v.Mod(v, n)
		qk = arith.MulMod(qk, qk, n)
	}
	return false, nil
}
