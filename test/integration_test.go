package test

import (
	"math/big"
	"testing"

	primecheck "github.com/BackendStack21/primecheck-go"
	"github.com/BackendStack21/primecheck-go/arith"
	"github.com/BackendStack21/primecheck-go/bpsw"
	"github.com/BackendStack21/primecheck-go/lucas"
	"github.com/BackendStack21/primecheck-go/millerrabin"
	"github.com/BackendStack21/primecheck-go/primegen"
	"github.com/BackendStack21/primecheck-go/special"
)

// TestScenario97 walks one candidate through every layer of the stack.
func TestScenario97(t *testing.T) {
	n := big.NewInt(97)

	j, err := arith.Jacobi(big.NewInt(5), n)
	if err != nil {
		t.Fatalf("Jacobi failed: %v", err)
	}
	if j != -1 {
		t.Errorf("Jacobi(5/97) = %d, want -1 (5 is a non-residue: 97 = 2 mod 5)", j)
	}

	pass, err := millerrabin.StrongProbablePrime(n, big.NewInt(2))
	if err != nil {
		t.Fatalf("StrongProbablePrime failed: %v", err)
	}
	if !pass {
		t.Error("97 should pass Miller-Rabin base 2")
	}

	u, v, err := lucas.Sequence(n, big.NewInt(1), big.NewInt(-1), big.NewInt(10))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	if u.Int64() != 55 || v.Int64() != 26 {
		t.Errorf("(U_10, V_10) mod 97 = (%s, %s), want (55, 26)", u, v)
	}

	res, err := bpsw.Test(n)
	if err != nil {
		t.Fatalf("bpsw.Test failed: %v", err)
	}
	if !res.IsPrime() {
		t.Errorf("bpsw.Test(97) = %s, want a prime verdict", res)
	}
}

func TestScenarioCarmichael561(t *testing.T) {
	res, err := bpsw.Test(big.NewInt(561))
	if err != nil {
		t.Fatalf("bpsw.Test failed: %v", err)
	}
	if res.Verdict != primecheck.Composite {
		t.Errorf("bpsw.Test(561) = %s, want composite", res)
	}
}

// TestScenarioGeneratedPrimesAgree generates primes and runs them through
// every independent engine; all must accept.
func TestScenarioGeneratedPrimesAgree(t *testing.T) {
	rnd := arith.NewShakeReader([]byte("integration"))
	for i := 0; i < 5; i++ {
		p, err := primegen.Prime(rnd, 128)
		if err != nil {
			t.Fatalf("Prime failed: %v", err)
		}

		res, err := bpsw.Test(p)
		if err != nil {
			t.Fatalf("bpsw.Test failed: %v", err)
		}
		if !res.IsPrime() {
			t.Errorf("generated prime %s rejected by Baillie-PSW", p)
		}

		ok, err := millerrabin.Test(p, millerrabin.RecommendedRounds, rnd)
		if err != nil {
			t.Fatalf("millerrabin.Test failed: %v", err)
		}
		if !ok {
			t.Errorf("generated prime %s rejected by Miller-Rabin", p)
		}
	}
}

// TestScenarioMersenneCrossCheck compares the generic pipeline with the
// specialized Lucas-Lehmer test on the same Mersenne numbers.
func TestScenarioMersenneCrossCheck(t *testing.T) {
	for _, p := range []uint32{13, 17, 19, 23, 29, 31, 37, 61, 89, 107, 127} {
		llPrime, err := special.LucasLehmer(p)
		if err != nil {
			t.Fatalf("LucasLehmer(%d) failed: %v", p, err)
		}

		m := new(big.Int).Lsh(big.NewInt(1), uint(p))
		m.Sub(m, big.NewInt(1))
		res, err := bpsw.Test(m)
		if err != nil {
			t.Fatalf("bpsw.Test(2^%d-1) failed: %v", p, err)
		}

		if llPrime != res.IsPrime() {
			t.Errorf("2^%d - 1: Lucas-Lehmer says %v, Baillie-PSW says %s", p, llPrime, res)
		}
	}
}

// TestScenarioPocklingtonCertifiesGenerated proves primality of a generated
// Fermat-style value via its fully factored n-1.
func TestScenarioPocklingtonCertifies(t *testing.T) {
	rnd := arith.NewShakeReader([]byte("certify"))

	// 2^16 + 1: n-1 = 2^16.
	n := big.NewInt(65537)
	prime, err := special.Pocklington(n, []*big.Int{big.NewInt(2)}, rnd)
	if err != nil {
		t.Fatalf("Pocklington failed: %v", err)
	}
	if !prime {
		t.Error("Pocklington should certify 65537")
	}

	res, err := bpsw.Test(n)
	if err != nil {
		t.Fatalf("bpsw.Test failed: %v", err)
	}
	if !res.IsPrime() {
		t.Error("pipeline disagrees with the certificate")
	}
}

func TestVerdictStrings(t *testing.T) {
	res, err := bpsw.Test(big.NewInt(91))
	if err != nil {
		t.Fatalf("bpsw.Test failed: %v", err)
	}
	if res.String() != "composite (small factor)" {
		t.Errorf("Result.String() = %q", res.String())
	}
	if primecheck.ProbablyPrime.String() != "probably prime" {
		t.Errorf("Verdict.String() = %q", primecheck.ProbablyPrime.String())
	}
}
