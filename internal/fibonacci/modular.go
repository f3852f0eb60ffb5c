package fibonacci

import (
	"fmt"
	"math/big"
	"math/bits"
)

// FastDoublingMod computes F(n) mod m with the same bit walk as
// FastDoublingIterative, reducing after every step. Memory stays O(log m)
// whatever n is, which is what makes "last K digits of F(n)" cheap for
// indices far beyond what the exact algorithms can hold.
func FastDoublingMod(n uint64, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidModulus, m)
	}

	a := big.NewInt(0)
	b := new(big.Int).Mod(big.NewInt(1), m)
	c := new(big.Int)
	d := new(big.Int)
	t := new(big.Int)

	for i := bits.Len64(n) - 1; i >= 0; i-- {
		// c = a * (2b - a) mod m; Mod keeps the result non-negative.
		c.Lsh(b, 1)
		c.Sub(c, a)
		c.Mul(c, a)
		c.Mod(c, m)

		// d = a² + b² mod m
		d.Mul(a, a)
		t.Mul(b, b)
		d.Add(d, t)
		d.Mod(d, m)

		if (n>>uint(i))&1 == 1 {
			c.Add(c, d)
			c.Mod(c, m)
			a, b, c, d = d, c, a, b
		} else {
			a, b, c, d = c, d, a, b
		}
	}
	return a, nil
}
