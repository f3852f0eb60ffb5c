// Package app wires configuration, orchestration and presentation into the
// fibbench command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/agbru/fibbench/internal/cli"
	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/tui"
	"github.com/agbru/fibbench/internal/ui"
)

// Application represents the fibbench application instance.
type Application struct {
	Config      config.AppConfig
	Factory     fibonacci.CalculatorFactory
	ErrWriter   io.Writer
	In          io.Reader
	programName string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader of the interactive session. It defaults to
// os.Stdin.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "fibbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.programName = programName
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logging.Setup(a.ErrWriter, a.Config.Verbose, true, a.Config.NoColor)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.LastDigits > 0 {
		return a.runLastDigits(ctx, out)
	}
	if a.Config.Interactive {
		return a.runInteractive(ctx, out)
	}

	calculators, err := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	if err != nil {
		fmt.Fprintln(a.ErrWriter, "Configuration error:", err)
		return apperrors.ExitCodeFor(err)
	}
	jobs := orchestration.PlanJobs(calculators, a.Config.N, a.Config.NaiveN)

	var code int
	if a.Config.TUI {
		code = a.runTUI(ctx, jobs)
	} else {
		code = a.runCalculate(ctx, jobs, out)
	}

	if a.Config.Metrics {
		if err := cli.DisplayMetrics(fibonacci.Registry, out); err != nil {
			logging.Component("app").Error("metrics dump failed", err)
		}
	}
	return code
}

// runTUI launches the interactive dashboard. The timeout applies to each
// run rather than to the dashboard session.
func (a *Application) runTUI(ctx context.Context, jobs []orchestration.Job) int {
	code, results := tui.Run(ctx, jobs, a.Config, Version)
	if err := a.saveResults(results); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return code
}

// runCompletion prints the shell completion script for the configured shell.
func (a *Application) runCompletion(out io.Writer) int {
	name := a.programName
	if name == "" {
		name = "fibbench"
	}
	algos := a.Factory.List()
	flags := cli.CompletionFlags(config.FlagSet(name, algos), algos)
	if err := cli.GenerateCompletion(out, a.Config.Completion, filepath.Base(name), flags); err != nil {
		fmt.Fprintln(a.ErrWriter, "Error:", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the calculator session on a.In.
func (a *Application) runInteractive(ctx context.Context, out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		NaiveN:      a.Config.NaiveN,
		Calc:        a.Config.ToCalculationOptions(),
		Verbose:     a.Config.Verbose,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	return repl.Start(ctx)
}

// IsHelpError checks if the error is a help flag error (-h was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
