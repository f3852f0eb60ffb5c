package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/fibbench/internal/cli"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/orchestration"
)

// runCalculate runs the benchmark and reports the comparison.
func (a *Application) runCalculate(ctx context.Context, jobs []orchestration.Job, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	logger := logging.Component("app")
	logger.Debug("benchmark starting",
		logging.Int("jobs", len(jobs)),
		logging.Int("repeat", a.Config.Repeat),
		logging.Int("parallel", a.Config.Parallel))

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(jobs, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	opts := orchestration.ExecutionOptions{
		Repeat:   a.Config.Repeat,
		Parallel: a.Config.Parallel,
		Calc:     a.Config.ToCalculationOptions(),
		Logger:   logging.Component("orchestration"),
	}
	start := time.Now()
	results := orchestration.ExecuteCalculations(ctx, jobs, opts, reporter, progressOut)
	logger.Debug("benchmark finished", logging.Duration("elapsed", time.Since(start)))

	presOpts := orchestration.PresentationOptions{
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		ShowValue: a.Config.ShowValue,
	}

	var code int
	if a.Config.Quiet {
		code = orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, io.Discard)
		cli.DisplayQuietResults(results, out)
	} else {
		code = orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, out)
	}

	if err := a.saveResults(results); err != nil {
		return apperrors.ExitErrorGeneric
	}
	if a.Config.OutputFile != "" && !a.Config.Quiet {
		cli.DisplaySaved(a.Config.OutputFile, out)
	}
	return code
}

// runLastDigits computes only the last K decimal digits of F(N) with
// modular fast doubling, using O(K) memory regardless of N.
func (a *Application) runLastDigits(ctx context.Context, out io.Writer) int {
	k := a.Config.LastDigits
	n := a.Config.N
	mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)

	start := time.Now()
	result, err := fibonacci.FastDoublingMod(n, mod)
	elapsed := time.Since(start)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	cli.DisplayLastDigits(n, k, result, elapsed, a.Config.Quiet, out)
	return apperrors.ExitSuccess
}

// saveResults writes the results to the configured output file, if any.
func (a *Application) saveResults(results []orchestration.CalculationResult) error {
	if a.Config.OutputFile == "" || len(results) == 0 {
		return nil
	}
	err := cli.WriteResultsToFile(results, cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	})
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
	}
	return err
}
