package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fibbench into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	binName := "fibbench"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs in the package directory.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibbench")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibbench: %v", err)
	}
	return binPath
}

// TestCLI_E2E runs the built binary and checks output and exit codes.
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{
			name:    "Default Benchmark",
			args:    []string{"-c"},
			wantOut: "Global Status: Success",
		},
		{
			name:    "Single Algorithm",
			args:    []string{"-n", "10", "-algo", "ifd", "-c"},
			wantOut: "ifd(10): 55",
		},
		{
			name:    "Help",
			args:    []string{"-h"},
			wantOut: "usage",
		},
		{
			name:    "Quiet Mode",
			args:    []string{"-n", "10", "-algo", "pair", "-q"},
			wantOut: "pair 10 55",
		},
		{
			name:    "Last Digits",
			args:    []string{"-n", "100", "-last-digits", "5", "-q"},
			wantOut: "15075",
		},
		{
			name:     "Timeout",
			args:     []string{"-n", "10", "-timeout", "1ns"},
			wantCode: 2,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"-algo", "bogus"},
			wantOut:  "unrecognized algorithm",
			wantCode: 4,
		},
		{
			name:     "Positional Argument",
			args:     []string{"500"},
			wantOut:  "unexpected arguments",
			wantCode: 4,
		},
		{
			name:    "Zero Index",
			args:    []string{"-n", "0", "-naive-n", "0", "-c"},
			wantOut: "(0): 0",
		},
		{
			name:    "Completion Script",
			args:    []string{"-completion", "fish"},
			wantOut: "complete -c fibbench",
		},
		{
			name:     "Unsupported Shell",
			args:     []string{"-completion", "tcsh"},
			wantOut:  "unsupported shell",
			wantCode: 4,
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "fibbench",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running fibbench: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

// TestCLI_EnvOverride checks that FIBCALC_* variables apply when the flag is absent.
func TestCLI_EnvOverride(t *testing.T) {
	binPath := buildBinary(t)

	cmd := exec.Command(binPath, "-algo", "pair", "-q")
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "FIBCALC_N=20")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("fibbench failed: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "pair 20 6765") {
		t.Errorf("output = %q, want the F(20) line", output)
	}
}

// TestCLI_Interactive drives the interactive session through stdin.
func TestCLI_Interactive(t *testing.T) {
	binPath := buildBinary(t)

	cmd := exec.Command(binPath, "-interactive")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdin = strings.NewReader("algo pair\ncalc 20\nexit\n")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("fibbench failed: %v\n%s", err, output)
	}
	for _, want := range []string{"pair(20): 6765", "Goodbye!"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
