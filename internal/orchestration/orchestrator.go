package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/metrics"
)

// ProgressBufferMultiplier sizes the progress channel per job so a slow
// display rarely blocks a job goroutine.
const ProgressBufferMultiplier = 4

// ExecutionOptions controls how jobs are run.
type ExecutionOptions struct {
	// Repeat is the number of timed runs per job. Values below 1 mean 1.
	Repeat int
	// Parallel caps the number of jobs running at once. Values below 1 mean 1.
	Parallel int
	// Calc is forwarded to every calculator.
	Calc fibonacci.Options
	// Logger receives per-job events. Nil discards them.
	Logger logging.Logger
}

// ExecuteCalculations runs the jobs and returns one result per job, in job
// order. A failing job never cancels the others; once ctx is done the jobs
// still running stop at their next run boundary and report ctx's error.
//
// Parameters:
//   - ctx: cancellation and deadline for the whole run.
//   - jobs: the planned jobs.
//   - opts: repetition, concurrency and calculation options.
//   - progressReporter: receives state changes (NullProgressReporter for quiet mode).
//   - out: the writer handed to the reporter.
//
// Returns:
//   - []CalculationResult: the results, indexed like jobs.
func ExecuteCalculations(ctx context.Context, jobs []Job, opts ExecutionOptions, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	repeat := max(opts.Repeat, 1)
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	results := make([]CalculationResult, len(jobs))
	progressChan := make(chan ProgressUpdate, len(jobs)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(jobs), out)

	var g errgroup.Group
	g.SetLimit(max(opts.Parallel, 1))
	collector := metrics.NewMemoryCollector()

	for i, job := range jobs {
		i := i
		job := job
		g.Go(func() error {
			results[i] = runJob(ctx, i, job, repeat, opts.Calc, collector, progressChan, logger)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runJob(ctx context.Context, idx int, job Job, repeat int, calcOpts fibonacci.Options,
	collector *metrics.MemoryCollector, progressChan chan<- ProgressUpdate, logger logging.Logger) CalculationResult {
	calc := job.Calculator
	traits := calc.Traits()
	res := CalculationResult{Key: traits.Key, Name: calc.Name(), N: job.N, Exact: traits.Exact}
	update := ProgressUpdate{JobIndex: idx, Key: traits.Key, Name: res.Name, N: job.N}

	var total time.Duration
	var allocated uint64
	for run := 1; run <= repeat; run++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		update.State, update.Run = JobRunning, run
		progressChan <- update

		var value *big.Int
		var err error
		start := time.Now()
		delta := collector.Measure(func() {
			value, err = calc.Calculate(ctx, job.N, calcOpts)
		})
		elapsed := time.Since(start)
		if err != nil {
			res.Err = err
			break
		}

		res.Result = value
		res.Runs++
		total += elapsed
		allocated += delta.Bytes
		if res.Runs == 1 || elapsed < res.Duration {
			res.Duration = elapsed
		}
		update.Duration = res.Duration
	}

	if res.Runs > 0 {
		res.Mean = total / time.Duration(res.Runs)
		res.Allocated = allocated / uint64(res.Runs)
	}
	if res.Err != nil {
		res.Result = nil
		res.Err = apperrors.CalculationError{Algorithm: traits.Key, N: job.N, Cause: res.Err}
		if IsSkipped(res) {
			logger.Info("job skipped", logging.String("algorithm", traits.Key), logging.Uint64("n", job.N), logging.Err(res.Err))
		} else {
			logger.Error("job failed", res.Err, logging.String("algorithm", traits.Key), logging.Uint64("n", job.N))
		}
		update.State = JobFailed
		update.Err = res.Err
	} else {
		logger.Debug("job completed",
			logging.String("algorithm", traits.Key),
			logging.Uint64("n", job.N),
			logging.Int("runs", res.Runs),
			logging.Duration("best", res.Duration),
			logging.Duration("mean", res.Mean))
		update.State = JobDone
	}
	update.Run = res.Runs
	progressChan <- update
	return res
}

// IsSkipped reports whether a result failed only because its algorithm does
// not support the requested index. Such results are reported but do not
// fail the run.
func IsSkipped(res CalculationResult) bool {
	return res.Err != nil && errors.Is(res.Err, fibonacci.ErrIndexOutOfRange)
}

// AnalyzeComparisonResults sorts the results, checks that exact results for
// the same index agree, measures each approximation against an exact result
// for its index, and presents everything.
//
// Parameters:
//   - results: the results to analyze. Sorted in place.
//   - opts: presentation flags.
//   - presenter: renders the table, values and errors.
//   - out: the writer for the report.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch, or the presenter's code for the
//     first real failure.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	reference := make(map[uint64]*big.Int)
	mismatch := false
	successCount, skipCount := 0, 0
	var firstError error

	for _, res := range results {
		switch {
		case res.Err == nil:
			successCount++
		case IsSkipped(res):
			skipCount++
		case firstError == nil:
			firstError = res.Err
		}
		if res.Err != nil || !res.Exact {
			continue
		}
		if ref, ok := reference[res.N]; !ok {
			reference[res.N] = res.Result
		} else if ref.Cmp(res.Result) != 0 {
			mismatch = true
		}
	}

	for i := range results {
		res := &results[i]
		if res.Err != nil || res.Exact {
			continue
		}
		if ref, ok := reference[res.N]; ok {
			diff := new(big.Int).Sub(res.Result, ref)
			res.Divergence = diff.Abs(diff)
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		if firstError == nil {
			// Every job was skipped.
			return apperrors.ExitErrorConfig
		}
		return presenter.HandleError(firstError, 0, out)
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}
	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial failure. %d of %d algorithms failed.\n", len(results)-successCount-skipCount, len(results))
		presenter.PresentResults(results, opts, out)
		return presenter.HandleError(firstError, 0, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All exact results are consistent.\n")
	presenter.PresentResults(results, opts, out)
	return apperrors.ExitSuccess
}
