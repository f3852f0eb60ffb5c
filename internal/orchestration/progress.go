package orchestration

import (
	"time"

	"github.com/agbru/fibbench/internal/format"
)

// ProgressAggregator folds job updates into overall progress. The CLI and
// the TUI both consume updates through it.
type ProgressAggregator struct {
	state   *format.JobProgress
	current map[int]ProgressUpdate
}

// NewProgressAggregator creates an aggregator for numJobs jobs. Returns nil
// if numJobs <= 0.
func NewProgressAggregator(numJobs int) *ProgressAggregator {
	if numJobs <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewJobProgress(numJobs),
		current: make(map[int]ProgressUpdate),
	}
}

// AggregatedProgress is the overall view after one update.
type AggregatedProgress struct {
	Update   ProgressUpdate
	Done     int
	Total    int
	Fraction float64
	ETA      time.Duration
	// Running lists the keys of jobs currently in progress.
	Running []string
}

// Update records a job update and returns the overall progress.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	var fraction float64
	var eta time.Duration
	if update.State == JobRunning {
		a.current[update.JobIndex] = update
		fraction, eta = a.state.Snapshot()
	} else {
		delete(a.current, update.JobIndex)
		fraction, eta = a.state.Complete()
	}
	done, total := a.state.Counts()

	running := make([]string, 0, len(a.current))
	for i := 0; i < total; i++ {
		if u, ok := a.current[i]; ok {
			running = append(running, u.Key)
		}
	}
	return AggregatedProgress{
		Update:   update,
		Done:     done,
		Total:    total,
		Fraction: fraction,
		ETA:      eta,
		Running:  running,
	}
}

// ETA returns the current estimate without recording an update.
func (a *ProgressAggregator) ETA() time.Duration {
	_, eta := a.state.Snapshot()
	return eta
}

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
