// Package cli renders benchmark progress and results on a terminal.
//
// Display* functions write to an io.Writer, Format* functions return strings
// without I/O, and Write* functions write files.
package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

const (
	// TruncationLimit is the digit count above which values are truncated
	// unless verbose output is requested.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when
	// a value is truncated.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner refresh interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in characters.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar renders a textual bar for a progress value in [0, 1].
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}

// FormatProgressLine renders the spinner suffix for an aggregated update.
func FormatProgressLine(p orchestration.AggregatedProgress) string {
	current := "-"
	if len(p.Running) > 0 {
		current = strings.Join(p.Running, ", ")
	}
	return fmt.Sprintf(" %d/%d done [%s] running: %s ETA: %s",
		p.Done, p.Total, progressBar(p.Fraction, ProgressBarWidth), current, format.FormatETA(p.ETA))
}

// DisplayProgress shows a spinner with the number of completed jobs and the
// algorithms currently running until progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numJobs int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numJobs)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	var last orchestration.AggregatedProgress
	for update := range progressChan {
		last = agg.Update(update)
		s.UpdateSuffix(FormatProgressLine(last))
	}
	s.Stop()
	fmt.Fprintf(out, "%d/%d done [%s]\n", last.Done, numJobs, progressBar(1, ProgressBarWidth))
}

// FormatValue renders a value for display, truncated to its edges above
// TruncationLimit digits unless verbose is set.
func FormatValue(v *big.Int, verbose bool) (string, bool) {
	s := v.String()
	if verbose || len(s) <= TruncationLimit {
		return s, false
	}
	return format.TruncateDigits(s, DisplayEdges)
}

// FormatResultLine renders one successful result as "key(n): value  duration".
func FormatResultLine(res orchestration.CalculationResult, verbose bool) string {
	value, _ := FormatValue(res.Result, verbose)
	return fmt.Sprintf("%s(%d): %s  %s", res.Key, res.N, value, format.FormatExecutionDuration(res.Duration))
}

// DisplayResults prints the value line of every successful result when
// ShowValue is set, and the result analysis when Details is set.
func DisplayResults(results []orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Details {
		displayDetails(results, out)
	}
	if !opts.ShowValue {
		return
	}

	fmt.Fprintf(out, "\n%s--- Calculated values ---%s\n", ui.ColorBold(), ui.ColorReset())
	truncated := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		value, cut := FormatValue(res.Result, opts.Verbose)
		truncated = truncated || cut
		fmt.Fprintf(out, "%s%s(%d)%s: %s%s%s  %s%s%s\n",
			ui.ColorOrange(), res.Key, res.N, ui.ColorReset(),
			ui.ColorGreen(), value, ui.ColorReset(),
			ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
	if truncated {
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full values)\n", ui.ColorYellow(), ui.ColorReset())
	}
}

func displayDetails(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		digits := len(res.Result.String())
		fmt.Fprintf(out, "%s%-8s%s F(%d): %s bits, %s digits, %s allocated per run over %d run(s)\n",
			ui.ColorOrange(), res.Key, ui.ColorReset(), res.N,
			format.FormatNumberString(fmt.Sprint(res.Result.BitLen())),
			format.FormatNumberString(fmt.Sprint(digits)),
			format.FormatBytes(res.Allocated), res.Runs)
	}
}
