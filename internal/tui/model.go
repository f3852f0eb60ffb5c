package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/sysmon"
)

// tickInterval is the refresh period of the timer and host samples.
const tickInterval = 500 * time.Millisecond

// runState holds the state of the current run.
type runState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
	progress   orchestration.AggregatedProgress
	results    []orchestration.CalculationResult
	err        error
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header HeaderModel
	jobs   JobsModel
	help   help.Model
	keymap KeyMap

	runState

	parentCtx context.Context
	planned   []orchestration.Job
	config    config.AppConfig
	ref       *programRef
	width     int
}

// NewModel creates a dashboard for the planned jobs.
func NewModel(parentCtx context.Context, jobs []orchestration.Job, cfg config.AppConfig, version string) Model {
	m := Model{
		header:    NewHeaderModel(version, sysmon.CPUModel()),
		jobs:      NewJobsModel(jobs),
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		parentCtx: parentCtx,
		planned:   jobs,
		config:    cfg,
		ref:       &programRef{},
	}
	m.startRun()
	return m
}

// startRun derives a fresh run context bounded by the configured timeout.
func (m *Model) startRun() {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithTimeout(m.parentCtx, m.config.Timeout)
	m.runState = runState{
		ctx:        ctx,
		cancel:     cancel,
		generation: m.generation + 1,
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.planned, m.config, m.generation),
		watchContextCmd(m.parentCtx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation {
			m.progress = msg.AggregatedProgress
			m.jobs.Apply(msg.Update)
		}
		return m, nil

	case ResultsMsg:
		if msg.Generation == m.generation {
			m.results = msg.Results
			m.jobs.SetResults(msg.Results)
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation == m.generation {
			m.err = msg.Err
		}
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.header.AddSample(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case ContextCancelledMsg:
		m.cancel()
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Rerun):
		m.startRun()
		m.header.Reset()
		m.jobs = NewJobsModel(m.planned)
		return m, startCalculationCmd(m.ref, m.ctx, m.planned, m.config, m.generation)

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	body := panelStyle.Width(max(m.width-2, 0)).Render(m.jobs.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.statusLine(),
		m.help.View(m.keymap),
	)
}

// statusLine summarizes the run.
func (m Model) statusLine() string {
	if !m.done {
		p := m.progress
		line := fmt.Sprintf("%d/%d jobs done", p.Done, len(m.planned))
		if p.ETA > 0 {
			line += "  ETA " + format.FormatETA(p.ETA)
		}
		return statusRunning.Render(line)
	}
	switch m.exitCode {
	case apperrors.ExitSuccess:
		return statusDone.Render("Success. All exact results are consistent.")
	case apperrors.ExitErrorMismatch:
		return statusFailed.Render("CRITICAL ERROR! The exact results disagree.")
	}
	if m.err != nil {
		return statusFailed.Render("Failure: " + m.err.Error())
	}
	return statusFailed.Render(fmt.Sprintf("Failure (exit code %d)", m.exitCode))
}

// Run starts the dashboard and blocks until the user quits. It returns the
// exit code and the results of the last completed run.
func Run(ctx context.Context, jobs []orchestration.Job, cfg config.AppConfig, version string) (int, []orchestration.CalculationResult) {
	initTUIStyles()

	model := NewModel(ctx, jobs, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric, nil
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode, m.results
	}
	return apperrors.ExitSuccess, nil
}

// startCalculationCmd runs the jobs and reports through the bridge.
func startCalculationCmd(ref sender, ctx context.Context, jobs []orchestration.Job, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{ref: ref, generation: gen}

		opts := orchestration.ExecutionOptions{
			Repeat:   cfg.Repeat,
			Parallel: cfg.Parallel,
			Calc:     cfg.ToCalculationOptions(),
			Logger:   logging.Nop{},
		}
		results := orchestration.ExecuteCalculations(ctx, jobs, opts, reporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			Verbose:   cfg.Verbose,
			Details:   cfg.Details,
			ShowValue: cfg.ShowValue,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, io.Discard)
		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads host CPU and memory usage.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd waits for the parent context to end.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{}
	}
}
