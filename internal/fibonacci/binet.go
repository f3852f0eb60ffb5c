package fibonacci

import (
	"fmt"
	"math"
	"math/big"
)

var (
	sqrt5       = math.Sqrt(5)
	goldenRatio = (1 + sqrt5) / 2
)

// Binet approximates F(n) with the closed form
//
//	round((φ^n - (1-φ)^n) / √5)
//
// evaluated in float64. The result is within one unit of F(n) up to
// BinetExactLimit and drifts away from about n = 70, when F(n) outgrows the
// 53-bit mantissa. That drift is the expected behaviour, not an error.
//
// For n above MaxBinetIndex, φ^n overflows to +Inf and no integer can be
// produced; Binet then returns an error wrapping ErrIndexOutOfRange.
func Binet(n uint64) (*big.Int, error) {
	if n > MaxBinetIndex {
		return nil, fmt.Errorf("%w: binet formula overflows float64 for n=%d (max %d)", ErrIndexOutOfRange, n, MaxBinetIndex)
	}
	x := float64(n)
	val := (math.Pow(goldenRatio, x) - math.Pow(1-goldenRatio, x)) / sqrt5
	r, _ := big.NewFloat(math.Round(val)).Int(nil)
	return r, nil
}
