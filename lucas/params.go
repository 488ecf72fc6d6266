package lucas

import (
	"errors"
	"math/big"

	"github.com/BackendStack21/primecheck-go/arith"
)

// Params is a Lucas parameter triple with D = P^2 - 4Q.
type Params struct {
	P, Q, D int64
}

// maxParamTrials bounds the discriminant search. For any odd candidate that
// is not a perfect square a usable discriminant appears almost immediately;
// the bound exists so a skipped perfect-square filter surfaces as a hard
// error instead of an unbounded loop.
const maxParamTrials = 100

var (
	// ErrSearchExhausted indicates no discriminant with Jacobi symbol -1
	// was found within the trial bound. Reachable only when the
	// perfect-power filter was skipped; never silently absorbed.
	ErrSearchExhausted = errors.New("lucas parameter search exhausted")

	// ErrSharedFactor indicates a trial discriminant shares a nontrivial
	// factor with the candidate, which proves the candidate composite.
	ErrSharedFactor = errors.New("candidate shares a factor with a trial discriminant")
)

// SelectParams finds Lucas parameters for n following Baillie's method:
// try D = 5, -7, 9, -11, 13, ... until Jacobi(D/n) = -1, then set P = 1 and
// Q = (1 - D) / 4. n must be odd and greater than 1, and callers must have
// filtered perfect squares first or the search cannot succeed.
func SelectParams(n *big.Int) (Params, error) {
	if n.Cmp(bigOne) <= 0 || n.Bit(0) == 0 {
		return Params{}, ErrCandidateRange
	}

	d := new(big.Int)
	for i := 0; i < maxParamTrials; i++ {
		// |D| runs 5, 7, 9, ... with alternating sign.
		abs := int64(5 + 2*i)
		dv := abs
		if i%2 == 1 {
			dv = -abs
		}
		d.SetInt64(dv)

		j, err := arith.Jacobi(d, n)
		if err != nil {
			return Params{}, err
		}
		switch j {
		case -1:
			return Params{P: 1, Q: (1 - dv) / 4, D: dv}, nil
		case 0:
			// Jacobi 0 means gcd(|D|, n) > 1. Unless n is |D| itself,
			// a nontrivial factor was just found.
			if n.CmpAbs(d) != 0 {
				return Params{}, ErrSharedFactor
			}
		}
	}
	return Params{}, ErrSearchExhausted
}
