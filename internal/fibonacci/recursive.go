package fibonacci

import "math/big"

// Recursive computes F(n) by direct application of the recurrence
// F(n) = F(n-1) + F(n-2), without memoization.
//
// Every call branches twice, so the number of calls grows as O(φ^n) and the
// stack depth as O(n). Nothing guards against large n here: callers must bound
// the index themselves (the NaiveRecursion calculator does so through
// Options.NaiveLimit).
//
// Up to MaxFibUint64 the recursion runs on machine words and only the result
// is converted, so the leaves do not allocate.
func Recursive(n uint64) *big.Int {
	if n <= MaxFibUint64 {
		return new(big.Int).SetUint64(recursiveUint64(n))
	}
	return recursiveBig(n)
}

func recursiveUint64(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	return recursiveUint64(n-1) + recursiveUint64(n-2)
}

func recursiveBig(n uint64) *big.Int {
	if n <= 1 {
		return new(big.Int).SetUint64(n)
	}
	r := recursiveBig(n - 1)
	return r.Add(r, recursiveBig(n-2))
}
