package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/ui"
)

// restoreGlobals undoes the logger and theme changes made by Run.
func restoreGlobals(t *testing.T) {
	t.Helper()
	level, logger, theme := zerolog.GlobalLevel(), log.Logger, ui.GetCurrentTheme()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
		ui.SetCurrentTheme(theme)
	})
}

// run parses args and runs the application, returning the exit code and
// the captured stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	restoreGlobals(t)

	var out, errOut bytes.Buffer
	application, err := New(append([]string{"fibbench", "-no-color"}, args...), &errOut)
	if err != nil {
		t.Fatalf("New(%v) error: %v\nstderr: %s", args, err, errOut.String())
	}
	code := application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestNew_ParsesFlags(t *testing.T) {
	var errOut bytes.Buffer
	application, err := New([]string{"fibbench", "-n", "42", "-algo", "PAIR,ifd"}, &errOut)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if application.Config.N != 42 || application.Config.Algo != "pair,ifd" {
		t.Errorf("Config = %+v", application.Config)
	}
	if application.Factory == nil {
		t.Error("Factory should default to the built-in factory")
	}
}

func TestNew_Errors(t *testing.T) {
	var errOut bytes.Buffer

	_, err := New([]string{"fibbench", "-h"}, &errOut)
	if !IsHelpError(err) {
		t.Errorf("New(-h) error = %v, want flag.ErrHelp", err)
	}

	_, err = New([]string{"fibbench", "-algo", "nope"}, &errOut)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("New(-algo nope) error = %v, want ConfigError", err)
	}
	if IsHelpError(err) {
		t.Error("a config error is not a help error")
	}
}

func TestRun_Comparison(t *testing.T) {
	code, out, _ := run(t, "-n", "30", "-naive-n", "20", "-c")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out)
	}
	for _, s := range []string{
		"--- Execution Configuration ---",
		"Comparison of 7 algorithms",
		"Global Status: Success",
		"832040",
		"6765",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestRun_Quiet(t *testing.T) {
	code, out, _ := run(t, "-q", "-n", "10", "-algo", "pair")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "pair 10 55 ") {
		t.Errorf("quiet output = %q", out)
	}
}

func TestRun_BinetOutOfRangeIsSkipped(t *testing.T) {
	code, out, _ := run(t, "-n", "2000", "-algo", "binet,ifd")
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success when Binet is skipped\n%s", code, out)
	}
	if !strings.Contains(out, "Skipped") {
		t.Errorf("output missing Skipped status:\n%s", out)
	}
}

func TestRun_LastDigits(t *testing.T) {
	// F(100) = 354224848179261915075
	code, out, _ := run(t, "-q", "-n", "100", "-last-digits", "5")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if got := strings.TrimSpace(out); got != "15075" {
		t.Errorf("last digits = %q, want 15075", got)
	}

	_, out, _ = run(t, "-q", "-n", "10", "-last-digits", "4")
	if got := strings.TrimSpace(out); got != "0055" {
		t.Errorf("padded last digits = %q, want 0055", got)
	}
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "results.txt")
	code, out, _ := run(t, "-n", "30", "-algo", "pair,ifd", "-o", path)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "pair(30): 832040") {
		t.Errorf("output file content:\n%s", data)
	}
	if !strings.Contains(out, "Results saved to") {
		t.Errorf("stdout missing save confirmation:\n%s", out)
	}
}

func TestRun_Metrics(t *testing.T) {
	code, out, _ := run(t, "-q", "-n", "30", "-algo", "ifd", "-metrics")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out, "fibbench_calculations_total") {
		t.Errorf("output missing metrics:\n%s", out)
	}
}

func TestRun_Timeout(t *testing.T) {
	code, _, _ := run(t, "-q", "-n", "30", "-algo", "ifd", "-timeout", "1ns")
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	restoreGlobals(t)

	var out, errOut bytes.Buffer
	application, err := New([]string{"fibbench", "-no-color", "-q", "-algo", "ifd"}, &errOut)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := application.Run(ctx, &out); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_Completion(t *testing.T) {
	code, out, _ := run(t, "-completion", "bash")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"complete -F _fibbench_completions fibbench", "-interactive", "naive pair rfd all"} {
		if !strings.Contains(out, want) {
			t.Errorf("script missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Comparison Summary") {
		t.Error("completion mode should not run the benchmark")
	}
}

func TestRun_Interactive(t *testing.T) {
	restoreGlobals(t)

	var out, errOut bytes.Buffer
	application, err := New([]string{"/usr/local/bin/fibbench", "-no-color", "-interactive", "-algo", "matrix"}, &errOut,
		WithInput(strings.NewReader("calc 90\nquit\n")))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if !strings.Contains(out.String(), "matrix(90): 2880067194370816120") {
		t.Errorf("output missing F(90):\n%s", out.String())
	}
}
