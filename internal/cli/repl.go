package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

// preferredAlgo is the session algorithm when the configuration does not
// name exactly one.
const preferredAlgo = "ifd"

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the -algo selection; a single registered key becomes
	// the session algorithm.
	DefaultAlgo string
	// Timeout bounds each command.
	Timeout time.Duration
	// NaiveN caps the index given to exponential algorithms by compare.
	NaiveN uint64
	// Calc is forwarded to every calculator.
	Calc fibonacci.Options
	// Verbose prints full values.
	Verbose bool
}

// REPL is an interactive session that computes single values and runs
// comparisons on demand.
type REPL struct {
	config      REPLConfig
	factory     fibonacci.CalculatorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
	logger      logging.Logger
}

// NewREPL creates a session reading from stdin and writing to stdout.
func NewREPL(factory fibonacci.CalculatorFactory, cfg REPLConfig) *REPL {
	current := ""
	if keys := config.SplitAlgos(cfg.DefaultAlgo); len(keys) == 1 {
		if _, err := factory.Get(keys[0]); err == nil {
			current = keys[0]
		}
	}
	if current == "" {
		if _, err := factory.Get(preferredAlgo); err == nil {
			current = preferredAlgo
		} else if keys := factory.List(); len(keys) > 0 {
			current = keys[0]
		}
	}
	return &REPL{
		config:      cfg,
		factory:     factory,
		currentAlgo: current,
		in:          os.Stdin,
		out:         os.Stdout,
		logger:      logging.Component("repl"),
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until exit, end of input or cancellation of ctx,
// and returns the exit code.
func (r *REPL) Start(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.printBanner()
	r.printHelp()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"fib> "+ui.ColorReset())
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\nInterrupted.")
			return apperrors.ExitErrorCanceled
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return apperrors.ExitSuccess
			}
			if !r.processCommand(ctx, strings.TrimSpace(line)) {
				return apperrors.ExitSuccess
			}
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sFibonacci Benchmark - Interactive Mode%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s%s%s\n\n", ui.ColorBlue(), strings.Repeat("─", 40), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scalc <n>%s      - Calculate F(n) with the current algorithm\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s   - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
	fmt.Fprintf(r.out, "  %scompare <n>%s   - Compare all algorithms for F(n)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s          - List available algorithms\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display the session settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Leave the session\n\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one input line. It returns false when the
// session should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "calc", "c":
		r.cmdCalc(ctx, args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(ctx, args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s (type 'help')\n", ui.ColorRed(), parts[0], ui.ColorReset())
	}
	return true
}

// parseIndex parses the single index argument of calc and compare.
func (r *REPL) parseIndex(cmd string, args []string) (uint64, bool) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: %s <n>%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		return 0, false
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid index: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return 0, false
	}
	return n, true
}

// run executes jobs under the session timeout.
func (r *REPL) run(ctx context.Context, jobs []orchestration.Job) []orchestration.CalculationResult {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()
	opts := orchestration.ExecutionOptions{Calc: r.config.Calc, Logger: r.logger}
	return orchestration.ExecuteCalculations(ctx, jobs, opts, orchestration.NullProgressReporter{}, io.Discard)
}

func (r *REPL) cmdCalc(ctx context.Context, args []string) {
	n, ok := r.parseIndex("calc", args)
	if !ok {
		return
	}
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	res := r.run(ctx, []orchestration.Job{{Calculator: calc, N: n}})[0]
	if res.Err != nil {
		CLIResultPresenter{}.HandleError(res.Err, 0, r.out)
		return
	}
	fmt.Fprintf(r.out, "%s\n", FormatResultLine(res, r.config.Verbose))
	fmt.Fprintf(r.out, "  %s bits, %s digits\n",
		format.FormatNumberString(fmt.Sprint(res.Result.BitLen())),
		format.FormatNumberString(fmt.Sprint(len(res.Result.String()))))
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\nAvailable algorithms: %s\n", ui.ColorRed(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\nAvailable algorithms: %s\n", ui.ColorRed(), name, ui.ColorReset(), strings.Join(r.factory.List(), ", "))
		return
	}
	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
}

// cmdCompare runs every registered algorithm and prints the comparison
// table. Exponential algorithms get min(n, NaiveN).
func (r *REPL) cmdCompare(ctx context.Context, args []string) {
	n, ok := r.parseIndex("compare", args)
	if !ok {
		return
	}
	calcs, err := orchestration.GetCalculatorsToRun(config.AppConfig{Algo: config.DefaultAlgo}, r.factory)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	results := r.run(ctx, orchestration.PlanJobs(calcs, n, min(n, r.config.NaiveN)))
	orchestration.AnalyzeComparisonResults(results, orchestration.PresentationOptions{}, CLIResultPresenter{}, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, key := range r.factory.List() {
		calc, err := r.factory.Get(key)
		if err != nil {
			continue
		}
		marker := "  "
		if key == r.currentAlgo {
			marker = ui.ColorGreen() + "> " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-6s%s - %s\n", marker, ui.ColorYellow(), key, ui.ColorReset(), calc.Name())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sSession settings:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:    %s%s%s\n", ui.ColorBlue(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:      %s%s%s\n", ui.ColorBlue(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Naive index:  %s%d%s\n", ui.ColorBlue(), r.config.NaiveN, ui.ColorReset())
	fmt.Fprintf(r.out, "  Naive limit:  %s%d%s\n\n", ui.ColorBlue(), r.config.Calc.NaiveLimit, ui.ColorReset())
}
