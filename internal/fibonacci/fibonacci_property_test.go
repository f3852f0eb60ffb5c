package fibonacci

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// calcF is a shorthand that computes F(n) with the given core calculator.
func calcF(calc coreCalculator, n uint64) (*big.Int, error) {
	return NewCalculator(calc).Calculate(context.Background(), n, Options{})
}

// fastCalculators returns the exact calculators usable on large indices.
func fastCalculators() []coreCalculator {
	return []coreCalculator{
		ArrayIteration{},
		PairIteration{},
		MatrixExponentiation{},
		RecursiveDoubling{},
		IterativeDoubling{},
	}
}

func newProperties(minSuccessful int) *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minSuccessful
	return gopter.NewProperties(parameters)
}

// TestCassinisIdentity_PropertyBased checks F(n-1)*F(n+1) - F(n)² = (-1)ⁿ.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	for _, calculator := range fastCalculators() {
		calculator := calculator
		properties.Property(calculator.Name()+" satisfies Cassini's Identity", prop.ForAll(
			func(n uint64) bool {
				fnMinus1, err := calcF(calculator, n-1)
				if err != nil {
					t.Logf("Error calculating F(%d-1): %v", n, err)
					return false
				}
				fn, err := calcF(calculator, n)
				if err != nil {
					return false
				}
				fnPlus1, err := calcF(calculator, n+1)
				if err != nil {
					return false
				}

				leftSide := new(big.Int).Mul(fnMinus1, fnPlus1)
				leftSide.Sub(leftSide, new(big.Int).Mul(fn, fn))

				rightSide := big.NewInt(1)
				if n%2 != 0 {
					rightSide.Neg(rightSide)
				}
				return leftSide.Cmp(rightSide) == 0
			},
			gen.UInt64Range(1, 3000),
		))
	}

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased checks F(n) = F(n-1) + F(n-2).
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	for _, calculator := range fastCalculators() {
		calculator := calculator
		properties.Property(calculator.Name()+" satisfies recurrence F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n uint64) bool {
				fn, err := calcF(calculator, n)
				if err != nil {
					return false
				}
				fn1, err := calcF(calculator, n-1)
				if err != nil {
					return false
				}
				fn2, err := calcF(calculator, n-2)
				if err != nil {
					return false
				}
				return fn.Cmp(new(big.Int).Add(fn1, fn2)) == 0
			},
			gen.UInt64Range(2, 3000),
		))
	}

	properties.TestingRun(t)
}

// TestAlgorithmsAgree_PropertyBased cross-checks every exact calculator
// against iterative fast doubling.
func TestAlgorithmsAgree_PropertyBased(t *testing.T) {
	properties := newProperties(200)

	properties.Property("exact algorithms agree", prop.ForAll(
		func(n uint64) bool {
			want := FastDoublingIterative(n)
			for _, calculator := range fastCalculators() {
				got, err := calcF(calculator, n)
				if err != nil || got.Cmp(want) != 0 {
					t.Logf("%s(%d) = %v, %v", calculator.Name(), n, got, err)
					return false
				}
			}
			return true
		},
		gen.UInt64Range(0, 5000),
	))

	properties.Property("naive recursion agrees on small n", prop.ForAll(
		func(n uint64) bool {
			got, err := calcF(NaiveRecursion{}, n)
			return err == nil && got.Cmp(FastDoublingIterative(n)) == 0
		},
		gen.UInt64Range(0, 22),
	))

	properties.TestingRun(t)
}

// TestDoublingIdentity_PropertyBased checks F(2n) = F(n) * (2*F(n+1) - F(n)).
func TestDoublingIdentity_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	properties.Property("F(2n) = F(n)*(2*F(n+1)-F(n))", prop.ForAll(
		func(n uint64) bool {
			fn := FastDoublingRecursive(n)
			fn1 := FastDoublingRecursive(n + 1)
			expected := new(big.Int).Lsh(fn1, 1)
			expected.Sub(expected, fn)
			expected.Mul(expected, fn)
			return FastDoublingRecursive(2*n).Cmp(expected) == 0
		},
		gen.UInt64Range(0, 10000),
	))

	properties.TestingRun(t)
}

// TestGCDIdentity_PropertyBased checks GCD(F(m), F(n)) = F(GCD(m, n)).
func TestGCDIdentity_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	properties.Property("GCD(F(m), F(n)) = F(GCD(m, n))", prop.ForAll(
		func(m, n uint64) bool {
			fm := Matrix(m)
			fn := Matrix(n)
			gcdResult := new(big.Int).GCD(nil, nil, fm, fn)
			return gcdResult.Cmp(Matrix(gcdUint64(m, n))) == 0
		},
		gen.UInt64Range(1, 3000),
		gen.UInt64Range(1, 3000),
	))

	properties.TestingRun(t)
}

// TestBinetBound_PropertyBased checks |Binet(n) - F(n)| <= 1 below the
// precision limit.
func TestBinetBound_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	properties.Property("Binet is within one of F(n) for n <= 69", prop.ForAll(
		func(n uint64) bool {
			approx, err := Binet(n)
			if err != nil {
				return false
			}
			diff := new(big.Int).Sub(approx, IterativePair(n))
			return diff.Abs(diff).Cmp(big.NewInt(1)) <= 0
		},
		gen.UInt64Range(0, BinetExactLimit),
	))

	properties.TestingRun(t)
}

// TestModularConsistency_PropertyBased checks FastDoublingMod against F(n) mod m.
func TestModularConsistency_PropertyBased(t *testing.T) {
	properties := newProperties(100)

	properties.Property("FastDoublingMod(n, m) = F(n) mod m", prop.ForAll(
		func(n uint64, m int64) bool {
			mod := big.NewInt(m)
			got, err := FastDoublingMod(n, mod)
			if err != nil {
				return false
			}
			return got.Cmp(new(big.Int).Mod(FastDoublingIterative(n), mod)) == 0
		},
		gen.UInt64Range(0, 5000),
		gen.Int64Range(1, 1_000_000_007),
	))

	properties.TestingRun(t)
}

// gcdUint64 computes the greatest common divisor of a and b.
func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
