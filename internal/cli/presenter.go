package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numJobs int, out io.Writer) {
	DisplayProgress(wg, progressChan, numJobs, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminals.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// tableRow holds the plain-text cells of one comparison row; colors are
// added at print time so padding is computed on visible widths.
type tableRow struct {
	name, n, best, mean, status string
	failed, skipped             bool
}

func formatDuration(d time.Duration, runs int) string {
	if runs == 0 {
		return "-"
	}
	if d == 0 {
		return "< 1ns"
	}
	return format.FormatExecutionDuration(d)
}

func buildRow(res orchestration.CalculationResult) tableRow {
	row := tableRow{
		name: res.Name,
		n:    fmt.Sprint(res.N),
		best: formatDuration(res.Duration, res.Runs),
		mean: formatDuration(res.Mean, res.Runs),
	}
	switch {
	case orchestration.IsSkipped(res):
		row.skipped = true
		row.status = "Skipped (index out of range)"
	case res.Err != nil:
		row.failed = true
		row.status = fmt.Sprintf("Failure (%v)", res.Err)
	case !res.Exact && res.Divergence != nil && res.Divergence.Sign() != 0:
		off, _ := FormatValue(res.Divergence, false)
		row.status = fmt.Sprintf("Approximate (off by %s)", off)
	case !res.Exact:
		row.status = "Approximate"
	default:
		row.status = "Success"
	}
	return row
}

// PresentComparisonTable prints one row per result: algorithm, index, best
// and mean durations, and status. Manual padding keeps ANSI codes out of the
// width computation.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	headers := [4]string{"Algorithm", "N", "Best", "Mean"}
	widths := [4]int{}
	for i, h := range headers {
		widths[i] = len(h)
	}
	rows := make([]tableRow, len(results))
	for i, res := range results {
		rows[i] = buildRow(res)
		for j, cell := range []string{rows[i].name, rows[i].n, rows[i].best, rows[i].mean} {
			widths[j] = max(widths[j], len([]rune(cell)))
		}
	}

	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorBold(), h, ui.ColorReset(), padRight("", widths[i]-len(h)))
	}
	fmt.Fprintf(out, "%sStatus%s\n", ui.ColorBold(), ui.ColorReset())

	for _, row := range rows {
		statusColor := ui.ColorGreen()
		switch {
		case row.failed:
			statusColor = ui.ColorRed()
		case row.skipped:
			statusColor = ui.ColorGrey()
		case row.status != "Success":
			statusColor = ui.ColorYellow()
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%s%s%s   %s%s   %s%s%s\n",
			ui.ColorBlue(), row.name, ui.ColorReset(), padRight("", widths[0]-len([]rune(row.name))),
			row.n, padRight("", widths[1]-len(row.n)),
			ui.ColorYellow(), row.best, ui.ColorReset(), padRight("", widths[2]-len([]rune(row.best))),
			row.mean, padRight("", widths[3]-len([]rune(row.mean))),
			statusColor, row.status, ui.ColorReset())
	}
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResults prints the values and details selected by opts.
func (CLIResultPresenter) PresentResults(results []orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResults(results, opts, out)
}

// HandleError prints a status line for err and returns the exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, ui.Colors{})
}
