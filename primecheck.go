// Package primecheck provides high-level exports for the primality-testing
// engine. Users can also import specific sub-packages directly for more
// control.
package primecheck

// Version of the primecheck Go implementation.
const Version = "1.0.0"

// API summary:
//
// Baillie-PSW (recommended entry point):
//   - bpsw.Test(n) - Full pipeline: trial division, perfect-power filter,
//     Miller-Rabin base 2, strong Lucas test
//   - bpsw.IsPrime(n) - Boolean convenience wrapper
//
// Miller-Rabin:
//   - millerrabin.Test(n, rounds, rnd) - Probabilistic test with random witnesses
//   - millerrabin.TestDeterministic(n) - Proven witness sets below 341550071728321
//   - millerrabin.StrongProbablePrime(n, a) - Single-witness strong test
//
// Lucas sequences:
//   - lucas.Sequence(n, p, q, k) - (U_k, V_k) mod n via the binary ladder
//   - lucas.SelectParams(n) - Baillie-style discriminant search
//   - lucas.StrongTest(n, prm) - Strong Lucas probable-prime test
//
// Number theory helpers:
//   - arith.Jacobi(a, n) - Jacobi symbol
//   - arith.ModInverse(a, n) - Iterative extended-GCD inverse
//   - arith.IsPerfectPower(n) - Perfect-power filter
//
// Prime generation:
//   - primegen.Prime(rnd, bits) - Random probable prime
//   - primegen.SafePrime(rnd, bits) - Prime p with (p-1)/2 also prime
//
// Special forms:
//   - special.LucasLehmer(p) - Mersenne number 2^p - 1
//   - special.Pepin(k) - Fermat number 2^(2^k) + 1
//   - special.Pocklington(n, factors, rnd) - n-1 primality certificate
