package millerrabin

import "math/big"

// witnessRange pairs an exclusive upper bound with a witness set proven
// sufficient for every candidate below it.
type witnessRange struct {
	bound     uint64
	witnesses []uint64
}

// witnessTable lists published deterministic witness sets in increasing
// order of bound. For candidates below a bound, passing the strong test for
// every listed base is a proof of primality, not a probabilistic verdict.
// See Jaeschke (1993) and Sloane's OEIS A014233.
var witnessTable = []witnessRange{
	{2047, []uint64{2}},
	{1373653, []uint64{2, 3}},
	{25326001, []uint64{2, 3, 5}},
	{3215031751, []uint64{2, 3, 5, 7}},
	{2152302898747, []uint64{2, 3, 5, 7, 11}},
	{3474749660383, []uint64{2, 3, 5, 7, 11, 13}},
	{341550071728321, []uint64{2, 3, 5, 7, 11, 13, 17}},
}

// DeterministicBound is the exclusive upper limit of the witness table.
// Below it TestDeterministic returns proven verdicts.
const DeterministicBound = 341550071728321

// WitnessesFor returns the smallest proven witness set covering n, or
// ok=false when n is at or above DeterministicBound.
func WitnessesFor(n *big.Int) (witnesses []uint64, ok bool) {
	if !n.IsUint64() {
		return nil, false
	}
	v := n.Uint64()
	for _, wr := range witnessTable {
		if v < wr.bound {
			return wr.witnesses, true
		}
	}
	return nil, false
}

// TestDeterministic applies the proven witness set for n. The verdict is
// certain, never merely probable. ok is false when n is outside the table
// range, in which case callers should fall back to Test with at least
// RecommendedRounds rounds.
func TestDeterministic(n *big.Int) (prime, ok bool) {
	witnesses, ok := WitnessesFor(n)
	if !ok {
		return false, false
	}
	if n.Cmp(bigTwo) < 0 {
		return false, true
	}
	if n.Cmp(bigThree) <= 0 {
		return true, true
	}
	if n.Bit(0) == 0 {
		return false, true
	}

	nMinus2 := new(big.Int).Sub(n, bigTwo)
	a := new(big.Int)
	for _, w := range witnesses {
		a.SetUint64(w)
		if a.Cmp(nMinus2) > 0 {
			// Witness exceeds n-2. Cannot happen for table ranges
			// beyond the first, since those start above the largest
			// base; skip rather than probe out of domain.
			continue
		}
		pass, err := StrongProbablePrime(n, a)
		if err != nil {
			return false, false
		}
		if !pass {
			return false, true
		}
	}
	return true, true
}
