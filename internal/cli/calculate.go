package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/fibbench/internal/config"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/format"
	"github.com/agbru/fibbench/internal/orchestration"
	"github.com/agbru/fibbench/internal/ui"
)

// CPUFeatures lists the detected instruction-set extensions relevant to
// big-integer arithmetic, or "none".
func CPUFeatures() string {
	var features []string
	add := func(has bool, name string) {
		if has {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasAVX2, "AVX2")
		add(cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ, "AVX-512")
		add(cpu.X86.HasBMI2, "BMI2")
		add(cpu.X86.HasADX, "ADX")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "ASIMD")
		add(cpu.ARM64.HasSVE, "SVE")
	}
	if len(features) == 0 {
		return "none"
	}
	return strings.Join(features, ", ")
}

// PrintExecutionConfig displays the indices, timeout, repetition and the
// machine the benchmark runs on.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sF(%d)%s (naive recursion: %sF(%d)%s) with a timeout of %s%s%s.\n",
		ui.ColorOrange(), cfg.N, ui.ColorReset(), ui.ColorOrange(), cfg.NaiveN, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Expected size of F(%d): ~%s bits.\n",
		cfg.N, format.FormatNumberString(fmt.Sprint(fibonacci.EstimateBits(cfg.N))))
	fmt.Fprintf(out, "Runs per algorithm: %s%d%s, concurrent algorithms: %s%d%s.\n",
		ui.ColorBlue(), cfg.Repeat, ui.ColorReset(), ui.ColorBlue(), cfg.Parallel, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s/%s, CPU features: %s.\n",
		ui.ColorBlue(), runtime.NumCPU(), ui.ColorReset(), ui.ColorBlue(), runtime.Version(), ui.ColorReset(),
		runtime.GOOS, runtime.GOARCH, CPUFeatures())
}

// PrintExecutionMode displays whether one algorithm or a comparison runs.
func PrintExecutionMode(jobs []orchestration.Job, out io.Writer) {
	var modeDesc string
	switch len(jobs) {
	case 0:
		modeDesc = "nothing to run"
	case 1:
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), jobs[0].Calculator.Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Comparison of %d algorithms", len(jobs))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
