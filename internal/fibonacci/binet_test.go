package fibonacci

import (
	"errors"
	"math/big"
	"testing"
)

func TestBinet_WithinOneBelowLimit(t *testing.T) {
	t.Parallel()

	one := big.NewInt(1)
	for n := uint64(0); n <= BinetExactLimit; n++ {
		approx, err := Binet(n)
		if err != nil {
			t.Fatalf("Binet(%d) error: %v", n, err)
		}
		diff := new(big.Int).Sub(approx, FastDoublingIterative(n))
		if diff.Abs(diff).Cmp(one) > 0 {
			t.Errorf("Binet(%d) = %s, off by %s from F(%d)", n, approx, diff, n)
		}
	}
}

func TestBinet_SmallValuesExact(t *testing.T) {
	t.Parallel()

	for n, want := range canonical {
		got, err := Binet(uint64(n))
		if err != nil {
			t.Fatalf("Binet(%d) error: %v", n, err)
		}
		if got.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("Binet(%d) = %s, want %d", n, got, want)
		}
	}
}

// Above the precision limit only the absence of failure is asserted.
func TestBinet_DivergenceIsNotAnError(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{70, 100, 500, MaxBinetIndex} {
		got, err := Binet(n)
		if err != nil {
			t.Errorf("Binet(%d) unexpected error: %v", n, err)
			continue
		}
		if got.Sign() <= 0 {
			t.Errorf("Binet(%d) = %s, want a positive approximation", n, got)
		}
	}
}

func TestBinet_OrderOfMagnitudeAboveLimit(t *testing.T) {
	t.Parallel()

	approx, err := Binet(500)
	if err != nil {
		t.Fatalf("Binet(500) error: %v", err)
	}
	exact := FastDoublingIterative(500)
	if got, want := len(approx.String()), len(exact.String()); got != want {
		t.Errorf("Binet(500) has %d digits, want %d", got, want)
	}
}

func TestBinet_OverflowRejected(t *testing.T) {
	t.Parallel()

	_, err := Binet(MaxBinetIndex + 1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Binet(%d) error = %v, want ErrIndexOutOfRange", MaxBinetIndex+1, err)
	}
}
