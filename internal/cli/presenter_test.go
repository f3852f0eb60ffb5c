package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Key: "ifd", Name: "Fast Doubling (iterative)", N: 500, Exact: true, Result: big.NewInt(1), Duration: 2 * time.Microsecond, Mean: 3 * time.Microsecond, Runs: 3},
		{Key: "binet", Name: "Binet Formula (approx.)", N: 500, Result: big.NewInt(2), Divergence: big.NewInt(7), Duration: time.Microsecond, Mean: time.Microsecond, Runs: 1},
		{Key: "matrix", Name: "Matrix", N: 0, Exact: true, Result: big.NewInt(0), Runs: 1},
		{Key: "pair", Name: "Pair", N: 500, Err: errors.New("boom")},
		{Key: "binet", Name: "Binet", N: 5000, Err: fmt.Errorf("binet: %w", fibonacci.ErrIndexOutOfRange)},
	}

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{
		"Comparison Summary",
		"Algorithm", "Best", "Mean", "Status",
		"Fast Doubling (iterative)   500    2.00µs   3.00µs   Success",
		"Approximate (off by 7)",
		"< 1ns",
		"Failure (boom)",
		"Skipped (index out of range)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}

	// Every data row starts with the name column padded to the same width.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2+len(results) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), 2+len(results), out)
	}
	statusCol := strings.Index(lines[1], "Status")
	for _, line := range lines[2:] {
		if len([]rune(line)) < statusCol {
			t.Errorf("row shorter than header: %q", line)
		}
	}
}

func TestBuildRow_ExactApproximation(t *testing.T) {
	t.Parallel()
	row := buildRow(orchestration.CalculationResult{Result: big.NewInt(55), Divergence: big.NewInt(0), Runs: 1})
	if row.status != "Approximate" {
		t.Errorf("status = %q, want Approximate", row.status)
	}
	row = buildRow(orchestration.CalculationResult{Err: errors.New("x")})
	if row.best != "-" || !row.failed {
		t.Errorf("failed row = %+v", row)
	}
}

func TestBuildRow_LongDivergenceTruncated(t *testing.T) {
	t.Parallel()
	off := fibonacci.FastDoublingIterative(2000) // 418 digits
	row := buildRow(orchestration.CalculationResult{Result: big.NewInt(1), Divergence: off, Runs: 1})
	digits := off.String()
	want := fmt.Sprintf("Approximate (off by %s...%s)", digits[:DisplayEdges], digits[len(digits)-DisplayEdges:])
	if row.status != want {
		t.Errorf("status = %q, want %q", row.status, want)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	if got := padRight("ab", 3); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("ab", -1); got != "ab" {
		t.Errorf("padRight negative = %q", got)
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(buf.String(), "Timeout") {
		t.Errorf("output = %q", buf.String())
	}
}
