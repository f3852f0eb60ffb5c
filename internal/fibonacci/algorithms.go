package fibonacci

import (
	"fmt"
	"math/big"
)

// NaiveRecursion wraps Recursive and refuses indices above Options.NaiveLimit.
type NaiveRecursion struct{}

// Name returns the name of the algorithm.
func (NaiveRecursion) Name() string { return "Naive Recursion" }

// Traits returns the algorithm properties.
func (NaiveRecursion) Traits() Traits {
	return Traits{Key: "naive", Complexity: "O(φ^n)", Exact: true, Exponential: true}
}

// CalculateCore computes F(n) after checking the exponential guard.
func (NaiveRecursion) CalculateCore(n uint64, opts Options) (*big.Int, error) {
	if limit := opts.naiveLimit(); n > limit {
		return nil, fmt.Errorf("%w: naive recursion is limited to n <= %d, got %d", ErrIndexOutOfRange, limit, n)
	}
	return Recursive(n), nil
}

// ArrayIteration wraps IterativeArray.
type ArrayIteration struct{}

// Name returns the name of the algorithm.
func (ArrayIteration) Name() string { return "Array Iteration" }

// Traits returns the algorithm properties.
func (ArrayIteration) Traits() Traits {
	return Traits{Key: "array", Complexity: "O(n), O(n) space", Exact: true}
}

// CalculateCore computes F(n).
func (ArrayIteration) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return IterativeArray(n), nil
}

// PairIteration wraps IterativePair.
type PairIteration struct{}

// Name returns the name of the algorithm.
func (PairIteration) Name() string { return "Two-Variable Iteration" }

// Traits returns the algorithm properties.
func (PairIteration) Traits() Traits {
	return Traits{Key: "pair", Complexity: "O(n), O(1) space", Exact: true}
}

// CalculateCore computes F(n).
func (PairIteration) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return IterativePair(n), nil
}

// MatrixExponentiation wraps Matrix.
type MatrixExponentiation struct{}

// Name returns the name of the algorithm.
func (MatrixExponentiation) Name() string { return "Matrix Exponentiation" }

// Traits returns the algorithm properties.
func (MatrixExponentiation) Traits() Traits {
	return Traits{Key: "matrix", Complexity: "O(log n)", Exact: true}
}

// CalculateCore computes F(n).
func (MatrixExponentiation) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return Matrix(n), nil
}

// BinetFormula wraps Binet. Its results are approximate past BinetExactLimit.
type BinetFormula struct{}

// Name returns the name of the algorithm.
func (BinetFormula) Name() string { return "Binet Formula (approx.)" }

// Traits returns the algorithm properties.
func (BinetFormula) Traits() Traits {
	return Traits{Key: "binet", Complexity: "O(1), float64", Exact: false}
}

// CalculateCore approximates F(n).
func (BinetFormula) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return Binet(n)
}

// RecursiveDoubling wraps FastDoublingRecursive.
type RecursiveDoubling struct{}

// Name returns the name of the algorithm.
func (RecursiveDoubling) Name() string { return "Fast Doubling (recursive)" }

// Traits returns the algorithm properties.
func (RecursiveDoubling) Traits() Traits {
	return Traits{Key: "rfd", Complexity: "O(log n)", Exact: true}
}

// CalculateCore computes F(n).
func (RecursiveDoubling) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return FastDoublingRecursive(n), nil
}

// IterativeDoubling wraps FastDoublingIterative.
type IterativeDoubling struct{}

// Name returns the name of the algorithm.
func (IterativeDoubling) Name() string { return "Fast Doubling (iterative)" }

// Traits returns the algorithm properties.
func (IterativeDoubling) Traits() Traits {
	return Traits{Key: "ifd", Complexity: "O(log n)", Exact: true}
}

// CalculateCore computes F(n).
func (IterativeDoubling) CalculateCore(n uint64, _ Options) (*big.Int, error) {
	return FastDoublingIterative(n), nil
}
