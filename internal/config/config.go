// Package config defines the benchmark configuration, parses it from
// command-line flags and FIBCALC_* environment variables, and validates it.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/ui"
)

// EnvPrefix is the prefix for all environment variables read by fibbench.
const EnvPrefix = "FIBCALC_"

// Default configuration values.
const (
	// DefaultN is the index given to every non-exponential algorithm.
	DefaultN uint64 = 500
	// DefaultNaiveN is the index given to exponential algorithms.
	DefaultNaiveN uint64 = 30
	// DefaultTimeout bounds the whole benchmark run.
	DefaultTimeout = time.Minute
	// DefaultAlgo selects every registered algorithm.
	DefaultAlgo = "all"
	// DefaultRepeat is the number of timed runs per job.
	DefaultRepeat = 1
	// DefaultParallel is the number of jobs run at once.
	DefaultParallel = 1
	// MaxLastDigits caps the -last-digits modulus at 10^MaxLastDigits.
	MaxLastDigits = 10_000
)

// CompletionShells lists the shells -completion can generate a script for.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the index computed by every non-exponential algorithm.
	N uint64
	// NaiveN is the index computed by exponential algorithms.
	NaiveN uint64
	// NaiveLimit is the largest index exponential algorithms accept.
	NaiveLimit uint64
	// Algo is "all", a single algorithm key or a comma-separated list.
	Algo string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Repeat is the number of timed runs per job.
	Repeat int
	// Parallel is the number of jobs run concurrently.
	Parallel int
	// LastDigits, when non-zero, computes only F(N) mod 10^LastDigits.
	LastDigits int
	// ShowValue prints the computed values.
	ShowValue bool
	// Verbose prints full values and enables debug logging.
	Verbose bool
	// Details adds per-job allocation figures and the environment report.
	Details bool
	// Quiet prints only the results, for scripts.
	Quiet bool
	// OutputFile, if set, receives the results.
	OutputFile string
	// Metrics dumps the Prometheus registry after the run.
	Metrics bool
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// TUI starts the interactive dashboard.
	TUI bool
	// Interactive starts the line-oriented calculator session.
	Interactive bool
	// Completion, when set, prints the completion script for that shell.
	Completion string
}

// ToCalculationOptions converts the configuration into fibonacci.Options.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{NaiveLimit: c.NaiveLimit}
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableAlgos: the registered algorithm keys.
//
// Returns:
//   - error: a ConfigError or ValidationError if the configuration is
//     invalid, nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be strictly positive"}
	}
	if c.Repeat < 1 {
		return apperrors.ValidationError{Field: "repeat", Message: fmt.Sprintf("must be at least 1, got %d", c.Repeat)}
	}
	if c.Parallel < 1 {
		return apperrors.ValidationError{Field: "parallel", Message: fmt.Sprintf("must be at least 1, got %d", c.Parallel)}
	}
	if c.NaiveLimit == 0 {
		return apperrors.ValidationError{Field: "naive-limit", Message: "must be at least 1"}
	}
	if c.NaiveN > c.NaiveLimit {
		return apperrors.NewConfigError("naive index %d exceeds the naive limit %d; raise -naive-limit to allow it", c.NaiveN, c.NaiveLimit)
	}
	if c.LastDigits < 0 || c.LastDigits > MaxLastDigits {
		return apperrors.ValidationError{Field: "last-digits", Message: fmt.Sprintf("must be between 0 and %d", MaxLastDigits)}
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("-quiet and -tui cannot be combined")
	}
	if c.Interactive && (c.Quiet || c.TUI) {
		return apperrors.NewConfigError("-interactive cannot be combined with -quiet or -tui")
	}
	if c.Completion != "" && !contains(CompletionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell for -completion: '%s'. Valid shells are: [%s]", c.Completion, strings.Join(CompletionShells, ", "))
	}
	for _, key := range SplitAlgos(c.Algo) {
		if key == DefaultAlgo {
			continue
		}
		if !contains(availableAlgos, key) {
			return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", key, strings.Join(availableAlgos, ", "))
		}
	}
	return nil
}

// SplitAlgos splits a comma-separated algorithm selection into trimmed,
// lower-cased keys, dropping empty entries.
func SplitAlgos(algo string) []string {
	var keys []string
	for _, part := range strings.Split(algo, ",") {
		if key := strings.ToLower(strings.TrimSpace(part)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// FIBCALC_* environment overrides for flags that were not set, and
// validates the result.
//
// Parameters:
//   - programName: used in the usage message.
//   - args: the arguments without the program name.
//   - errorWriter: receives parse errors and usage.
//   - availableAlgos: the registered algorithm keys.
//
// Returns:
//   - AppConfig: the populated configuration.
//   - error: flag.ErrHelp for -h, a parse error, or a validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	config := AppConfig{}
	fs := newFlagSet(programName, &config, availableAlgos)
	fs.SetOutput(errorWriter)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.Completion = strings.ToLower(config.Completion)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// FlagSet returns the flags ParseConfig accepts, bound to a discarded
// configuration. Shell completion scripts are generated from it.
func FlagSet(programName string, availableAlgos []string) *flag.FlagSet {
	return newFlagSet(programName, &AppConfig{}, availableAlgos)
}

func newFlagSet(programName string, config *AppConfig, availableAlgos []string) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	algoHelp := fmt.Sprintf("Algorithms to run: 'all' or a comma-separated list of [%s].", strings.Join(availableAlgos, ", "))

	fs.Uint64Var(&config.N, "n", DefaultN, "Index computed by the non-exponential algorithms.")
	fs.Uint64Var(&config.NaiveN, "naive-n", DefaultNaiveN, "Index computed by the naive recursion.")
	fs.Uint64Var(&config.NaiveLimit, "naive-limit", fibonacci.MaxNaiveIndex, "Largest index the naive recursion accepts.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.IntVar(&config.Repeat, "repeat", DefaultRepeat, "Timed runs per algorithm; best and mean are reported.")
	fs.IntVar(&config.Parallel, "parallel", DefaultParallel, "Number of algorithms run concurrently (timings interfere above 1).")
	fs.IntVar(&config.LastDigits, "last-digits", 0, "Compute only the last K digits of F(n) with modular fast doubling.")
	fs.BoolVar(&config.ShowValue, "calculate", false, "Display the calculated values.")
	fs.BoolVar(&config.ShowValue, "c", false, "Display the calculated values (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display full values and debug logs.")
	fs.BoolVar(&config.Details, "details", false, "Display allocation details and the execution environment.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the results.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print the collected Prometheus metrics after the run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start an interactive calculator session.")
	fs.BoolVar(&config.Interactive, "i", false, "Interactive session (shorthand).")
	fs.StringVar(&config.Completion, "completion", "", fmt.Sprintf("Print a shell completion script (%s).", strings.Join(CompletionShells, ", ")))

	setCustomUsage(fs)
	return fs
}

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}
		out := fs.Output()

		fmt.Fprintf(out, "\n%sFibonacci Benchmark%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Computes F(n) with seven algorithms and compares their timings.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := "-" + f.Name
			if len(name) > 0 {
				flagSig += " " + name
			}
			fmt.Fprintf(out, "  %s%-22s%s %s", t.Primary, flagSig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
