package fibonacci

import (
	"fmt"
	"math/big"
	"sync"
	"testing"
)

// canonical holds F(0) through F(40).
var canonical = []int64{
	0, 1, 1, 2, 3, 5, 8, 13, 21, 34,
	55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181,
	6765, 10946, 17711, 28657, 46368, 75025, 121393, 196418, 317811, 514229,
	832040, 1346269, 2178309, 3524578, 5702887, 9227465, 14930352, 24157817, 39088169, 63245986,
	102334155,
}

// f500 is F(500).
const f500 = "139423224561697880139724382870407283950070256587697307264108962948325571622863290691557658876222521294125"

type exactFunc struct {
	name string
	fn   func(uint64) *big.Int
}

// naiveValues holds Recursive(0) through Recursive(40), computed once for
// the whole package: a full sweep costs billions of calls.
var naiveValues = sync.OnceValue(func() []*big.Int {
	values := make([]*big.Int, len(canonical))
	for n := range values {
		values[n] = Recursive(uint64(n))
	}
	return values
})

// sweepFunc returns f's function for the 0..40 sweeps, serving the naive
// recursion from naiveValues.
func sweepFunc(f exactFunc) func(uint64) *big.Int {
	if f.name != "Recursive" {
		return f.fn
	}
	return func(n uint64) *big.Int { return naiveValues()[n] }
}

// exactFuncs returns every exact algorithm as a plain function.
func exactFuncs() []exactFunc {
	return []exactFunc{
		{"Recursive", Recursive},
		{"IterativeArray", IterativeArray},
		{"IterativePair", IterativePair},
		{"Matrix", Matrix},
		{"FastDoublingRecursive", FastDoublingRecursive},
		{"FastDoublingIterative", FastDoublingIterative},
	}
}

func TestExactAlgorithms_CanonicalSequence(t *testing.T) {
	t.Parallel()

	for _, f := range exactFuncs() {
		f := f
		fn := sweepFunc(f)
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()
			for n, want := range canonical {
				if got := fn(uint64(n)); got.Cmp(big.NewInt(want)) != 0 {
					t.Errorf("%s(%d) = %s, want %d", f.name, n, got, want)
				}
			}
		})
	}
}

func TestExactAlgorithms_BaseCases(t *testing.T) {
	t.Parallel()

	for _, f := range exactFuncs() {
		if got := f.fn(0); got.Sign() != 0 {
			t.Errorf("%s(0) = %s, want 0", f.name, got)
		}
		if got := f.fn(1); got.Cmp(big.NewInt(1)) != 0 {
			t.Errorf("%s(1) = %s, want 1", f.name, got)
		}
	}
}

func TestExactAlgorithms_Recurrence(t *testing.T) {
	t.Parallel()

	for _, f := range exactFuncs() {
		f := f
		fn := sweepFunc(f)
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()
			for n := uint64(2); n <= 40; n++ {
				sum := new(big.Int).Add(fn(n-1), fn(n-2))
				if got := fn(n); got.Cmp(sum) != 0 {
					t.Errorf("%s(%d) = %s, want F(n-1)+F(n-2) = %s", f.name, n, got, sum)
				}
			}
		})
	}
}

func TestExactAlgorithms_TenIsFiftyFive(t *testing.T) {
	t.Parallel()

	want := big.NewInt(55)
	for _, f := range exactFuncs() {
		if got := f.fn(10); got.Cmp(want) != 0 {
			t.Errorf("%s(10) = %s, want 55", f.name, got)
		}
	}
}

func TestIterativePairMatchesRecursiveAtTwenty(t *testing.T) {
	t.Parallel()

	want := big.NewInt(6765)
	if got := IterativePair(20); got.Cmp(want) != 0 {
		t.Errorf("IterativePair(20) = %s, want 6765", got)
	}
	if got := Recursive(20); got.Cmp(want) != 0 {
		t.Errorf("Recursive(20) = %s, want 6765", got)
	}
}

func TestExactAlgorithms_LargeIndexAgreement(t *testing.T) {
	t.Parallel()

	want, _ := new(big.Int).SetString(f500, 10)
	for _, f := range exactFuncs() {
		if f.name == "Recursive" {
			continue // exponential
		}
		if got := f.fn(500); got.Cmp(want) != 0 {
			t.Errorf("%s(500) = %s, want %s", f.name, got, want)
		}
	}
}

func TestExactAlgorithms_BeyondUint64(t *testing.T) {
	t.Parallel()

	// F(94) is the first value that does not fit in a uint64.
	want, _ := new(big.Int).SetString("19740274219868223167", 10)
	for _, f := range exactFuncs() {
		if f.name == "Recursive" {
			continue
		}
		if got := f.fn(MaxFibUint64 + 1); got.Cmp(want) != 0 {
			t.Errorf("%s(94) = %s, want %s", f.name, got, want)
		}
	}
}

func TestExactAlgorithms_Idempotent(t *testing.T) {
	t.Parallel()

	for _, f := range exactFuncs() {
		n := uint64(300)
		if f.name == "Recursive" {
			n = 20
		}
		first := f.fn(n)
		second := f.fn(n)
		if first.Cmp(second) != 0 {
			t.Errorf("%s(%d) not idempotent: %s then %s", f.name, n, first, second)
		}
		// Results must not share storage between calls.
		first.SetInt64(-1)
		if f.fn(n).Sign() < 0 {
			t.Errorf("%s(%d) returned shared storage", f.name, n)
		}
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       uint64
		wantLen int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{40, 41},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			t.Parallel()
			seq := Sequence(tt.n)
			if len(seq) != tt.wantLen {
				t.Fatalf("len(Sequence(%d)) = %d, want %d", tt.n, len(seq), tt.wantLen)
			}
			for i, v := range seq {
				if v.Cmp(big.NewInt(canonical[i])) != 0 {
					t.Errorf("Sequence(%d)[%d] = %s, want %d", tt.n, i, v, canonical[i])
				}
			}
		})
	}
}

func TestEstimateBits(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{10, 100, 500, 1000} {
		actual := uint64(FastDoublingIterative(n).BitLen())
		est := EstimateBits(n)
		if est+2 < actual || est > actual+2 {
			t.Errorf("EstimateBits(%d) = %d, actual %d", n, est, actual)
		}
	}
}

// recursiveBig is the path Recursive takes past MaxFibUint64; it must agree
// with the word-sized path on the indices both can afford.
func TestRecursiveBig_MatchesWordPath(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n <= 25; n++ {
		if got, want := recursiveBig(n), Recursive(n); got.Cmp(want) != 0 {
			t.Errorf("recursiveBig(%d) = %s, Recursive = %s", n, got, want)
		}
	}
}
