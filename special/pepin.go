package special

import (
	"errors"
	"math/big"
)

// maxFermatIndex caps Pepin's test at F_18, a ~65 KB operand. Larger
// indices are computationally out of reach for a synchronous call.
const maxFermatIndex = 18

// ErrFermatIndex indicates a Fermat index outside the supported range.
var ErrFermatIndex = errors.New("fermat index out of supported range")

// Fermat returns the Fermat number F_k = 2^(2^k) + 1.
func Fermat(k uint32) (*big.Int, error) {
	if k > maxFermatIndex {
		return nil, ErrFermatIndex
	}
	f := new(big.Int).Lsh(bigOne, 1<<uint(k))
	return f.Add(f, bigOne), nil
}

// Pepin reports whether the Fermat number F_k = 2^(2^k) + 1 is prime.
// F_k is prime exactly when 3^((F_k - 1) / 2) = -1 (mod F_k). The test is
// deterministic; the only known Fermat primes are F_0 through F_4.
func Pepin(k uint32) (bool, error) {
	f, err := Fermat(k)
	if err != nil {
		return false, err
	}
	if k == 0 {
		// F_0 = 3; the exponent (F_0-1)/2 = 1 and 3 = -1 (mod 3) fails
		// even though 3 is prime. Pepin's criterion starts at F_1.
		return true, nil
	}

	// (F_k - 1) / 2 = 2^(2^k - 1).
	exp := new(big.Int).Lsh(bigOne, (1<<uint(k))-1)
	r := new(big.Int).Exp(big.NewInt(3), exp, f)
	r.Add(r, bigOne)
	return r.Cmp(f) == 0, nil
}
