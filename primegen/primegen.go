// Package primegen generates random probable primes and safe primes.
// Candidates are drawn from an injected entropy source, pre-filtered
// against a product of small primes, and accepted only after passing both
// the Baillie-PSW pipeline and additional independent Miller-Rabin rounds.
package primegen

import (
	"io"
	"math/big"

	"github.com/go-errors/errors"
	"go.uber.org/zap"

	primecheck "github.com/BackendStack21/primecheck-go"
	"github.com/BackendStack21/primecheck-go/arith"
	"github.com/BackendStack21/primecheck-go/bpsw"
	"github.com/BackendStack21/primecheck-go/millerrabin"
)

// SmallPrimes is a list of small prime numbers that allows us to rapidly
// exclude some fraction of composite candidates. The list is truncated at
// the point where SmallPrimesProduct exceeds a uint64. It does not include
// two because candidates are odd by construction.
var SmallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// SmallPrimesProduct is the product of the values in SmallPrimes. Reducing
// a candidate by this single modulus determines divisibility by every
// element of SmallPrimes without further big.Int operations.
var SmallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// verifyRounds is the number of extra random Miller-Rabin rounds applied on
// top of the Baillie-PSW pipeline before a candidate is accepted.
const verifyRounds = millerrabin.RecommendedRounds

var logger = zap.NewNop()

// SetLogger installs a logger for prime-search progress. The default
// discards everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Prime returns a random probable prime of the given bit length, with the
// two most significant bits set so that products of two such primes keep
// their full width. rnd nil falls back to the crypto/rand default.
func Prime(rnd io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("prime size must be at least 2 bits")
	}
	if rnd == nil {
		rnd = arith.RandReader
	}

	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}

	bytes := make([]byte, (bits+7)/8)
	p := new(big.Int)
	bigMod := new(big.Int)
	attempts := 0

NextCandidate:
	for {
		if _, err := io.ReadFull(rnd, bytes); err != nil {
			return nil, errors.Wrap(err, 0)
		}
		attempts++

		// Clear bits in the first byte to make sure the candidate has
		// the requested size, then pin the top two bits and force the
		// candidate odd.
		bytes[0] &= uint8(int(1<<b) - 1)
		if b >= 2 {
			bytes[0] |= 3 << (b - 2)
		} else {
			bytes[0] |= 1
			if len(bytes) > 1 {
				bytes[1] |= 0x80
			}
		}
		bytes[len(bytes)-1] |= 1

		p.SetBytes(bytes)

		// Reduce by the product of SmallPrimes once; a candidate hitting
		// any of them is discarded before the expensive tests run.
		bigMod.Mod(p, SmallPrimesProduct)
		mod := bigMod.Uint64()
		for _, prime := range SmallPrimes {
			if mod%uint64(prime) == 0 && (bits > 6 || mod != uint64(prime)) {
				continue NextCandidate
			}
		}

		ok, err := accept(p, rnd)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Debug("prime search finished",
				zap.Int("bits", bits),
				zap.Int("attempts", attempts),
			)
			return p, nil
		}
	}
}

// SafePrime returns a prime p such that (p-1)/2 is also prime. Bit lengths
// below 3 cannot hold a safe prime.
func SafePrime(rnd io.Reader, bits int) (*big.Int, error) {
	if bits < 3 {
		return nil, errors.New("safe prime size must be at least 3 bits")
	}

	q := new(big.Int)
	for {
		p, err := Prime(rnd, bits)
		if err != nil {
			return nil, err
		}

		// (p-1)/2 must also be prime; p is odd so the shift is exact.
		q.Rsh(p, 1)
		ok, err := accept(q, rnd)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Debug("safe prime found", zap.Int("bits", bits))
			return p, nil
		}
	}
}

// accept runs the full acceptance stack on a candidate: Baillie-PSW first,
// then independent random Miller-Rabin rounds.
func accept(p *big.Int, rnd io.Reader) (bool, error) {
	res, err := bpsw.Test(p)
	if err != nil {
		return false, errors.Wrap(err, 0)
	}
	if !res.IsPrime() {
		return false, nil
	}
	// A deterministic verdict needs no probabilistic confirmation.
	if res.Verdict == primecheck.DefinitelyPrime {
		return true, nil
	}
	ok, err := millerrabin.Test(p, verifyRounds, rnd)
	if err != nil {
		return false, errors.Wrap(err, 0)
	}
	return ok, nil
}
