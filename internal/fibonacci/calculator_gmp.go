//go:build gmp

// This file provides a GMP-based calculator, compiled only with the "gmp"
// build tag so the default build stays pure Go:
//
//	go build -tags=gmp ./...
//
// It needs libgmp (e.g. libgmp-dev on Debian/Ubuntu, `brew install gmp` on macOS).

package fibonacci

import (
	"math/big"
	"math/bits"

	"github.com/ncw/gmp"
)

func init() {
	registerOptional("gmp", func() coreCalculator { return GMPDoubling{} })
}

// GMPDoubling runs the iterative fast doubling walk on GMP integers.
type GMPDoubling struct{}

// Name returns the name of the algorithm.
func (GMPDoubling) Name() string { return "Fast Doubling (GMP)" }

// Traits returns the algorithm properties.
func (GMPDoubling) Traits() Traits {
	return Traits{Key: "gmp", Complexity: "O(log n), libgmp", Exact: true}
}

// CalculateCore computes F(n) with the same step as FastDoublingIterative.
func (GMPDoubling) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
	c := gmp.NewInt(0)
	d := gmp.NewInt(0)
	t := gmp.NewInt(0)

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
			c.Add(c, d)
			a, b, c, d = d, c, a, b
		} else {
			a, b, c, d = c, d, a, b
		}
	}
	return new(big.Int).SetBytes(a.Bytes()), nil
}
