package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the highlight codes for status lines. It lets
// the ui package color the output without apperrors importing it.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleCalculationError prints the status line of a benchmark run that
// ended with err and returns the matching exit code. When err carries a
// CalculationError the line names the algorithm and index that failed.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}
	subject := "benchmark"
	var calcErr CalculationError
	if errors.As(err, &calcErr) && calcErr.Algorithm != "" {
		subject = fmt.Sprintf("%s F(%d)", calcErr.Algorithm, calcErr.N)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Timeout. The %s did not finish within the time limit%s.\n", subject, elapsed)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s. The %s was interrupted.%s\n", colors.Yellow(), elapsed, subject, colors.Reset())
		return ExitErrorCanceled
	}
	fmt.Fprintf(out, "Status: Failure. The %s failed: %v\n", subject, err)
	return ExitErrorGeneric
}
