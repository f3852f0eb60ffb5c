package tui

import (
	"time"

	"github.com/agbru/fibbench/internal/orchestration"
)

// ProgressMsg carries one aggregated job update.
type ProgressMsg struct {
	orchestration.AggregatedProgress
	Generation uint64
}

// ResultsMsg carries the analyzed results of a run.
type ResultsMsg struct {
	Results    []orchestration.CalculationResult
	Generation uint64
}

// ErrorMsg reports the error that decided the exit code.
type ErrorMsg struct {
	Err        error
	Generation uint64
}

// CalculationCompleteMsg signals the end of a run.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// TickMsg drives the elapsed timer and host sampling.
type TickMsg time.Time

// SysStatsMsg carries a host CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg signals that the parent context ended.
type ContextCancelledMsg struct{}
