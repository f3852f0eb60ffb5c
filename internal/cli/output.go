package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Quiet suppresses everything but the result lines.
	Quiet bool
	// Verbose shows full values.
	Verbose bool
}

// WriteResultsToFile writes every successful result, untruncated, to
// config.OutputFile, creating parent directories as needed.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(results []orchestration.CalculationResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	fmt.Fprintf(file, "# Fibonacci Benchmark Results\n")
	fmt.Fprintf(file, "# Generated: %s\n\n", time.Now().Format(time.RFC3339))
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(file, "# %s(%d): %v\n", res.Key, res.N, res.Err)
			continue
		}
		fmt.Fprintf(file, "# Algorithm: %s, Best: %s, Mean: %s, Runs: %d, Bits: %d\n",
			res.Name, res.Duration, res.Mean, res.Runs, res.Result.BitLen())
		fmt.Fprintf(file, "%s(%d): %s\n", res.Key, res.N, res.Result)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatQuietResult renders a result as "key n value duration_ns" for scripts.
func FormatQuietResult(res orchestration.CalculationResult) string {
	if res.Err != nil {
		return fmt.Sprintf("%s %d error %q", res.Key, res.N, res.Err.Error())
	}
	return fmt.Sprintf("%s %d %s %d", res.Key, res.N, res.Result, res.Duration.Nanoseconds())
}

// DisplayQuietResults prints one FormatQuietResult line per result.
func DisplayQuietResults(results []orchestration.CalculationResult, out io.Writer) {
	for _, res := range results {
		fmt.Fprintln(out, FormatQuietResult(res))
	}
}

// DisplayLastDigits prints the result of a modular calculation.
func DisplayLastDigits(n uint64, digits int, value *big.Int, duration time.Duration, quiet bool, out io.Writer) {
	s := value.String()
	if pad := digits - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	if quiet {
		fmt.Fprintln(out, s)
		return
	}
	fmt.Fprintf(out, "Last %s%d%s digits of F(%d): %s%s%s (%s)\n",
		ui.ColorBlue(), digits, ui.ColorReset(), n,
		ui.ColorGreen(), s, ui.ColorReset(), format.FormatExecutionDuration(duration))
}

// DisplaySaved confirms that the results were written to path.
func DisplaySaved(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorBlue(), path, ui.ColorReset())
}
