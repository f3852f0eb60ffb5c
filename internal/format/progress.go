package format

import (
	"sync"
	"time"
)

// JobProgress tracks completed benchmark jobs and estimates the time left
// from the average duration of the jobs finished so far.
type JobProgress struct {
	mu        sync.Mutex
	total     int
	done      int
	startTime time.Time
	now       func() time.Time
}

// NewJobProgress creates a tracker for total jobs, starting the clock now.
func NewJobProgress(total int) *JobProgress {
	return &JobProgress{total: total, startTime: time.Now(), now: time.Now}
}

// Complete marks one more job as finished and returns the fraction done and
// the estimated remaining time.
func (p *JobProgress) Complete() (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done < p.total {
		p.done++
	}
	return p.snapshot()
}

// Snapshot returns the fraction done and the estimated remaining time.
func (p *JobProgress) Snapshot() (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Counts returns the number of completed and total jobs.
func (p *JobProgress) Counts() (done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done, p.total
}

func (p *JobProgress) snapshot() (float64, time.Duration) {
	if p.total == 0 {
		return 1, 0
	}
	fraction := float64(p.done) / float64(p.total)
	if p.done == 0 || p.done == p.total {
		return fraction, 0
	}
	elapsed := p.now().Sub(p.startTime)
	perJob := elapsed / time.Duration(p.done)
	return fraction, perJob * time.Duration(p.total-p.done)
}
