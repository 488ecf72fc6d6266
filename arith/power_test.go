package arith

import (
	"math/big"
	"testing"
)

func TestIsPerfectSquare(t *testing.T) {
	for i := int64(0); i < 50; i++ {
		sq := big.NewInt(i * i)
		if !IsPerfectSquare(sq) {
			t.Errorf("%d should be a perfect square", i*i)
		}
	}
	for _, n := range []int64{2, 3, 5, 8, 99, 1000001} {
		if IsPerfectSquare(big.NewInt(n)) {
			t.Errorf("%d should not be a perfect square", n)
		}
	}
}

func TestIsPerfectPower(t *testing.T) {
	powers := []int64{4, 8, 9, 16, 25, 27, 32, 36, 49, 64, 81, 100, 125, 128, 243, 1024, 59049}
	for _, n := range powers {
		if !IsPerfectPower(big.NewInt(n)) {
			t.Errorf("%d should be a perfect power", n)
		}
	}
	notPowers := []int64{2, 3, 5, 6, 7, 10, 12, 24, 48, 97, 561, 1000003}
	for _, n := range notPowers {
		if IsPerfectPower(big.NewInt(n)) {
			t.Errorf("%d should not be a perfect power", n)
		}
	}

	// A large prime power: 10007^3.
	p := big.NewInt(10007)
	cube := new(big.Int).Mul(p, p)
	cube.Mul(cube, p)
	if !IsPerfectPower(cube) {
		t.Error("10007^3 should be a perfect power")
	}
	cube.Add(cube, big.NewInt(2))
	if IsPerfectPower(cube) {
		t.Error("10007^3 + 2 should not be a perfect power")
	}
}

func TestRoot(t *testing.T) {
	cases := []struct {
		n    int64
		k    uint
		want int64
	}{
		{27, 3, 3},
		{28, 3, 3},
		{26, 3, 2},
		{1, 5, 1},
		{0, 3, 0},
		{243, 5, 3},
		{1000000, 3, 100},
	}
	for _, c := range cases {
		got := Root(big.NewInt(c.n), c.k)
		if got.Int64() != c.want {
			t.Errorf("Root(%d, %d) = %d, want %d", c.n, c.k, got.Int64(), c.want)
		}
	}
}

func TestSmallPrimesUpTo(t *testing.T) {
	got := SmallPrimesUpTo(100)
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	if len(got) != len(want) {
		t.Fatalf("SmallPrimesUpTo(100) returned %d primes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("prime %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if SmallPrimesUpTo(1) != nil {
		t.Error("SmallPrimesUpTo(1) should be empty")
	}
	if got := SmallPrimesUpTo(2); len(got) != 1 || got[0] != 2 {
		t.Errorf("SmallPrimesUpTo(2) = %v, want [2]", got)
	}
}
