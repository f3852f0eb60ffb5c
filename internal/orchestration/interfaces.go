package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"
)

// CalculationResult is the outcome of one benchmark job. It is the shared
// domain type between orchestration and presentation.
type CalculationResult struct {
	// Key is the algorithm's registry key.
	Key string
	// Name is the algorithm's display name.
	Name string
	// N is the index the job computed.
	N uint64
	// Exact is false for approximations.
	Exact bool
	// Result is the computed value. It is nil if an error occurred.
	Result *big.Int
	// Duration is the fastest run.
	Duration time.Duration
	// Mean is the average over all completed runs.
	Mean time.Duration
	// Runs is the number of completed runs.
	Runs int
	// Allocated is the average number of bytes allocated per run.
	Allocated uint64
	// Divergence is |Result - F(N)| for approximations when an exact result
	// for the same N is available, nil otherwise.
	Divergence *big.Int
	// Err contains any error that occurred during the calculation.
	Err error
}

// JobState is the lifecycle state carried by a ProgressUpdate.
type JobState int

const (
	JobRunning JobState = iota
	JobDone
	JobFailed
)

func (s JobState) String() string {
	switch s {
	case JobRunning:
		return "running"
	case JobDone:
		return "done"
	case JobFailed:
		return "failed"
	}
	return "unknown"
}

// ProgressUpdate reports a job state change.
type ProgressUpdate struct {
	JobIndex int
	Key      string
	Name     string
	N        uint64
	State    JobState
	// Run is the 1-based run that just started or, for final states, the
	// number of completed runs.
	Run int
	// Duration is the fastest run so far.
	Duration time.Duration
	Err      error
}

// PresentationOptions configures how results are presented.
type PresentationOptions struct {
	Verbose   bool
	Details   bool
	ShowValue bool
}

// ProgressReporter displays job progress. DisplayProgress is started in its
// own goroutine and must call wg.Done once progressChan is closed and drained.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer) {
	f(wg, progressChan, numJobs, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ErrorHandler turns a calculation error into a message and an exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// ResultPresenter renders the comparison table and the computed values.
type ResultPresenter interface {
	ErrorHandler
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	PresentResults(results []CalculationResult, opts PresentationOptions, out io.Writer)
}
