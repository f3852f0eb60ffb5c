package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
)

// barWidth is the width of the relative duration bar.
const barWidth = 20

// jobRow is the live view of one job.
type jobRow struct {
	key   string
	name  string
	n     uint64
	state orchestration.JobState
	run   int

	// started is false until the first update arrives.
	started bool
	result  *orchestration.CalculationResult
}

// JobsModel renders the per-job table.
type JobsModel struct {
	rows []jobRow
}

// NewJobsModel creates a table with one pending row per job.
func NewJobsModel(jobs []orchestration.Job) JobsModel {
	rows := make([]jobRow, len(jobs))
	for i, job := range jobs {
		rows[i] = jobRow{key: job.Calculator.Traits().Key, name: job.Calculator.Name(), n: job.N}
	}
	return JobsModel{rows: rows}
}

// Apply records a job state change.
func (j *JobsModel) Apply(u orchestration.ProgressUpdate) {
	if u.JobIndex < 0 || u.JobIndex >= len(j.rows) {
		return
	}
	row := &j.rows[u.JobIndex]
	row.started = true
	row.state = u.State
	row.run = u.Run
}

// SetResults attaches the analyzed results and reorders rows to match them.
func (j *JobsModel) SetResults(results []orchestration.CalculationResult) {
	rows := make([]jobRow, 0, len(results))
	for i := range results {
		res := results[i]
		rows = append(rows, jobRow{
			key:     res.Key,
			name:    res.Name,
			n:       res.N,
			state:   stateOf(res),
			started: true,
			result:  &res,
		})
	}
	j.rows = rows
}

func stateOf(res orchestration.CalculationResult) orchestration.JobState {
	if res.Err != nil {
		return orchestration.JobFailed
	}
	return orchestration.JobDone
}

// status returns the status cell text and its style.
func (r jobRow) status() (string, lipgloss.Style) {
	if r.result != nil {
		res := r.result
		switch {
		case orchestration.IsSkipped(*res):
			return "Skipped", dimStyle
		case res.Err != nil:
			return "Failure", statusFailed
		case res.Divergence != nil && res.Divergence.Sign() != 0:
			return "Approximate", statusApproximate
		default:
			return "Success", statusDone
		}
	}
	switch {
	case !r.started:
		return "pending", dimStyle
	case r.state == orchestration.JobRunning:
		return fmt.Sprintf("run %d", r.run), statusRunning
	case r.state == orchestration.JobFailed:
		return "failed", statusFailed
	default:
		return "done", statusDone
	}
}

// View renders the table.
func (j JobsModel) View() string {
	var slowest int64
	for _, r := range j.rows {
		if r.result != nil && r.result.Err == nil {
			slowest = max(slowest, int64(r.result.Duration))
		}
	}

	var b strings.Builder
	fmt.Fprintln(&b, tableHeaderStyle.Render(fmt.Sprintf("%-28s %8s  %-11s %10s %10s", "Algorithm", "N", "Status", "Best", "Mean")))
	for _, r := range j.rows {
		text, style := r.status()
		best, mean := "-", "-"
		bar := ""
		if r.result != nil && r.result.Err == nil {
			best = format.FormatExecutionDuration(r.result.Duration)
			mean = format.FormatExecutionDuration(r.result.Mean)
			bar = barStyle.Render(durationBar(int64(r.result.Duration), slowest, barWidth))
		}
		fmt.Fprintf(&b, "%-28s %8d  %s %10s %10s  %s\n",
			r.name, r.n, style.Render(fmt.Sprintf("%-11s", text)), best, mean, bar)
	}
	return strings.TrimRight(b.String(), "\n")
}

// durationBar renders d relative to the slowest duration. Non-zero
// durations always get at least one cell.
func durationBar(d, slowest int64, width int) string {
	if slowest <= 0 || d <= 0 {
		return ""
	}
	cells := max(int(d*int64(width)/slowest), 1)
	return strings.Repeat("█", min(cells, width))
}
