package arith

import "math/big"

// IsPerfectSquare reports whether n is a perfect square. n must be
// non-negative.
func IsPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	root := new(big.Int).Sqrt(n)
	return new(big.Int).Mul(root, root).Cmp(n) == 0
}

// IsPerfectPower reports whether n = a^k for integers a > 1, k > 1.
// Only prime exponents need checking: if k is composite with prime factor p,
// then n is also a perfect p-th power.
func IsPerfectPower(n *big.Int) bool {
	if n.Cmp(big.NewInt(4)) < 0 {
		return false
	}
	if IsPerfectSquare(n) {
		return true
	}

	// The root for exponent k has about bitLen/k bits, so exponents
	// beyond the bit length cannot produce a base > 1.
	maxExp := n.BitLen()
	for k := 3; k <= maxExp; k += 2 {
		if !isSmallPrime(k) {
			continue
		}
		root := Root(n, uint(k))
		if new(big.Int).Exp(root, big.NewInt(int64(k)), nil).Cmp(n) == 0 {
			return true
		}
	}
	return false
}

// Root returns the integer k-th root of n, i.e. the largest x with x^k <= n.
// n must be non-negative and k >= 1.
func Root(n *big.Int, k uint) *big.Int {
	if k == 1 {
		return new(big.Int).Set(n)
	}
	if k == 2 {
		return new(big.Int).Sqrt(n)
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}

	// Newton iteration from an upper bound: x0 = 2^ceil(bitLen/k) >= root,
	// and each step x -> ((k-1)x + n/x^(k-1)) / k decreases monotonically
	// to floor(n^(1/k)).
	bits := (uint(n.BitLen()) + k - 1) / k
	x := new(big.Int).Lsh(bigOne, bits)
	bigK := new(big.Int).SetUint64(uint64(k))
	bigKm1 := new(big.Int).SetUint64(uint64(k - 1))

	for {
		pow := new(big.Int).Exp(x, bigKm1, nil)
		y := new(big.Int).Div(n, pow)
		y.Add(y, new(big.Int).Mul(bigKm1, x))
		y.Div(y, bigK)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// isSmallPrime is a trial-division primality check for machine-word values.
// It is used for exponent and table bookkeeping, not for large candidates.
func isSmallPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// SmallPrimesUpTo returns the primes not exceeding bound in increasing order,
// computed with a sieve of Eratosthenes.
func SmallPrimesUpTo(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	var primes []uint64
	for i := uint64(2); i <= bound; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= bound; j += i {
			composite[j] = true
		}
	}
	return primes
}
