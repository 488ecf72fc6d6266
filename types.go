// Package primecheck implements layered primality testing over
// arbitrary-precision integers: a Miller-Rabin witness engine with
// deterministic small-range witness tables, a strong Lucas probable-prime
// test, and the Baillie-PSW composition of the two.
//
// The pipeline operates on public moduli. It is not constant-time and must
// not be used to make decisions about secret-dependent inputs.
package primecheck

// Verdict is the outcome of a primality test.
type Verdict int

const (
	// Composite means a witness of compositeness was found or a factor is
	// known. This verdict is always correct.
	Composite Verdict = iota

	// ProbablyPrime means the candidate passed every stage of the test.
	// For the Baillie-PSW pipeline no composite is known to reach this
	// verdict; for k random Miller-Rabin rounds the one-sided error
	// probability is at most 4^-k.
	ProbablyPrime

	// DefinitelyPrime is only issued for candidates covered by a proven
	// deterministic witness set or matched against the small-prime list.
	DefinitelyPrime
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Composite:
		return "composite"
	case ProbablyPrime:
		return "probably prime"
	case DefinitelyPrime:
		return "definitely prime"
	default:
		return "unknown"
	}
}

// IsPrime reports whether the verdict accepts the candidate as prime.
func (v Verdict) IsPrime() bool {
	return v == ProbablyPrime || v == DefinitelyPrime
}

// Composite reasons reported by the Baillie-PSW pipeline. Each names the
// stage that rejected the candidate.
const (
	ReasonBelowRange   = "below range"
	ReasonEven         = "even"
	ReasonSmallFactor  = "small factor"
	ReasonPerfectPower = "perfect power"
	ReasonMillerRabin  = "miller-rabin base 2 failed"
	ReasonWitness      = "deterministic witness failed"
	ReasonSharedFactor = "shared factor with discriminant"
	ReasonLucas        = "lucas test failed"
)

// Result is the outcome of one top-level test invocation.
// Reason is empty unless Verdict is Composite.
type Result struct {
	Verdict Verdict
	Reason  string
}

// IsPrime reports whether the result accepts the candidate as prime.
func (r Result) IsPrime() bool {
	return r.Verdict.IsPrime()
}

func (r Result) String() string {
	if r.Verdict == Composite && r.Reason != "" {
		return r.Verdict.String() + " (" + r.Reason + ")"
	}
	return r.Verdict.String()
}
