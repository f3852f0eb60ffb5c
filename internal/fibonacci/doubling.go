package fibonacci

import (
	"math/big"
	"math/bits"
)

// Fast doubling identities, with k = floor(n/2):
//
//	F(2k)   = F(k) * (F(k) + 2*F(k-1))
//	F(2k-1) = F(k)² + F(k-1)²
//	F(2k+1) = F(2k) + F(2k-1)

// FastDoublingRecursive computes F(n) recursively with the fast doubling
// identities. Each level halves the index with integer division, so both the
// stack depth and the number of calls are O(log n).
func FastDoublingRecursive(n uint64) *big.Int {
	if n <= 1 {
		return new(big.Int).SetUint64(n)
	}
	_, fn := doublingPair(n)
	return fn
}

// doublingPair returns (F(n-1), F(n)) for n >= 1.
func doublingPair(n uint64) (prev, cur *big.Int) {
	if n == 1 {
		return big.NewInt(0), big.NewInt(1)
	}
	k := n >> 1
	fk1, fk := doublingPair(k)

	// F(2k) = F(k) * (F(k) + 2*F(k-1))
	even := new(big.Int).Lsh(fk1, 1)
	even.Add(even, fk)
	even.Mul(even, fk)

	// F(2k-1) = F(k)² + F(k-1)²
	odd := new(big.Int).Mul(fk, fk)
	fk1.Mul(fk1, fk1)
	odd.Add(odd, fk1)

	if n&1 == 0 {
		return odd, even
	}
	// n = 2k+1: (F(2k), F(2k) + F(2k-1))
	return even, odd.Add(odd, even)
}

// FastDoublingIterative computes F(n) walking the bits of n from the most
// significant to the least. Starting from (a, b) = (F(0), F(1)), each bit
// applies the doubling step
//
//	c = a * (2b - a)    // F(2k)
//	d = a² + b²         // F(2k+1)
//
// and then moves to (d, c+d) when the bit is set, (c, d) otherwise.
func FastDoublingIterative(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	c := new(big.Int)
	d := new(big.Int)
	t := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// c = a * (2b - a)
		c.Lsh(b, 1)
		c.Sub(c, a)
		c.Mul(c, a)

		// d = a² + b²
		d.Mul(a, a)
		t.Mul(b, b)
		d.Add(d, t)

		if (n>>uint(i))&1 == 1 {
			// (a, b) = (d, c+d)
			c.Add(c, d)
			a, b, c, d = d, c, a, b
		} else {
			// (a, b) = (c, d)
			a, b, c, d = c, d, a, b
		}
	}
	return a
}
