package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Index Limits
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants bound the algorithms whose cost or precision does not scale
// with n. The exact logarithmic and linear algorithms have no limit beyond the
// memory needed to hold F(n).

const (
	// MaxNaiveIndex is the default upper bound on n accepted by the naive
	// recursive calculator. The call count grows as φ^n, so F(50) already
	// takes tens of billions of calls.
	MaxNaiveIndex = 50

	// BinetExactLimit is the last index for which the float64 closed form is
	// guaranteed to round to within one unit of F(n). From n ≈ 70 the 53-bit
	// mantissa can no longer hold F(n) and the result visibly diverges.
	BinetExactLimit = 69

	// MaxBinetIndex is the largest n for which φ^n is finite in float64.
	// φ^1475 exceeds math.MaxFloat64.
	MaxBinetIndex = 1474

	// MaxFibUint64 is the largest n whose F(n) fits in a uint64.
	MaxFibUint64 = 93
)

// ─────────────────────────────────────────────────────────────────────────────
// Growth Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// FibonacciGrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// Used to estimate bit length of F(n).
	FibonacciGrowthFactor = 0.69424
)

// EstimateBits returns an estimate of the bit length of F(n).
func EstimateBits(n uint64) uint64 {
	return uint64(float64(n)*FibonacciGrowthFactor) + 1
}
