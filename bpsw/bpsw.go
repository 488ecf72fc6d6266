// Package bpsw implements the Baillie-PSW primality pipeline: trial
// division, a perfect-power filter, a base-2 Miller-Rabin stage, and a
// strong Lucas stage with Baillie parameter selection. No composite is
// known to pass the full pipeline.
package bpsw

import (
	"errors"
	"math/big"

	primecheck "github.com/BackendStack21/primecheck-go"
	"github.com/BackendStack21/primecheck-go/arith"
	"github.com/BackendStack21/primecheck-go/lucas"
	"github.com/BackendStack21/primecheck-go/millerrabin"
)

// Config controls the pipeline's preliminary filters.
type Config struct {
	// TrialBound is the inclusive upper limit for trial-division primes.
	TrialBound uint64

	// UseDeterministicTable routes candidates below the proven witness
	// bound through the deterministic Miller-Rabin table, upgrading their
	// verdicts to DefinitelyPrime.
	UseDeterministicTable bool
}

// DefaultConfig mirrors the published description of the test: trial
// division by primes up to 100 and proven verdicts where the table applies.
var DefaultConfig = Config{
	TrialBound:            100,
	UseDeterministicTable: true,
}

var bigTwo = big.NewInt(2)

// Test runs the Baillie-PSW pipeline on n with DefaultConfig.
func Test(n *big.Int) (primecheck.Result, error) {
	return TestWithConfig(n, DefaultConfig)
}

// IsPrime reports whether n passes the pipeline. It swallows no hard
// errors: a parameter-search failure still surfaces.
func IsPrime(n *big.Int) (bool, error) {
	res, err := Test(n)
	if err != nil {
		return false, err
	}
	return res.IsPrime(), nil
}

// TestWithConfig runs the Baillie-PSW pipeline on n.
//
// The stages run in a fixed order; the first to reject wins and names
// itself in the result's Reason. Candidates that survive every stage are
// ProbablyPrime unless a proven deterministic path covered them.
func TestWithConfig(n *big.Int, cfg Config) (primecheck.Result, error) {
	if cfg.TrialBound < 2 {
		return primecheck.Result{}, errors.New("trial bound must be at least 2")
	}

	if n.Cmp(bigTwo) < 0 {
		return composite(primecheck.ReasonBelowRange), nil
	}
	if n.Cmp(bigTwo) == 0 {
		return definitelyPrime(), nil
	}
	if n.Bit(0) == 0 {
		return composite(primecheck.ReasonEven), nil
	}

	// Stage 1: trial division by small primes. Equality is a proof of
	// primality; divisibility a proof of compositeness.
	rem := new(big.Int)
	div := new(big.Int)
	for _, p := range arith.SmallPrimesUpTo(cfg.TrialBound) {
		div.SetUint64(p)
		if n.Cmp(div) == 0 {
			return definitelyPrime(), nil
		}
		if rem.Mod(n, div).Sign() == 0 {
			return composite(primecheck.ReasonSmallFactor), nil
		}
	}

	// Stage 2: proven witness table for the small range. The verdict is
	// certain either way, so later stages are skipped.
	if cfg.UseDeterministicTable {
		if prime, ok := millerrabin.TestDeterministic(n); ok {
			if prime {
				return definitelyPrime(), nil
			}
			return composite(primecheck.ReasonWitness), nil
		}
	}

	// Stage 3: perfect powers are composite, and filtering them here is
	// what guarantees the discriminant search below terminates (a perfect
	// square has no D with Jacobi symbol -1).
	if arith.IsPerfectPower(n) {
		return composite(primecheck.ReasonPerfectPower), nil
	}

	// Stage 4: Miller-Rabin with the fixed base 2.
	pass, err := millerrabin.StrongProbablePrime(n, bigTwo)
	if err != nil {
		return primecheck.Result{}, err
	}
	if !pass {
		return composite(primecheck.ReasonMillerRabin), nil
	}

	// Stage 5: Lucas parameter selection.
	prm, err := lucas.SelectParams(n)
	if errors.Is(err, lucas.ErrSharedFactor) {
		return composite(primecheck.ReasonSharedFactor), nil
	}
	if err != nil {
		// ErrSearchExhausted and precondition violations are hard
		// failures, never silent fallbacks.
		return primecheck.Result{}, err
	}

	// Stage 6: strong Lucas test.
	pass, err = lucas.StrongTest(n, prm)
	if err != nil {
		return primecheck.Result{}, err
	}
	if !pass {
		return composite(primecheck.ReasonLucas), nil
	}
	return primecheck.Result{Verdict: primecheck.ProbablyPrime}, nil
}

func composite(reason string) primecheck.Result {
	return primecheck.Result{Verdict: primecheck.Composite, Reason: reason}
}

func definitelyPrime() primecheck.Result {
	return primecheck.Result{Verdict: primecheck.DefinitelyPrime}
}
