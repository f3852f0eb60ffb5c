package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agbru/fibbench/internal/config"
	"github.com/agbru/fibbench/internal/fibonacci"
)

func benchFlags(t *testing.T) ([]FlagCompletion, []string) {
	t.Helper()
	algos := fibonacci.NewDefaultFactory().List()
	return CompletionFlags(config.FlagSet("fibbench", algos), algos), algos
}

func TestCompletionFlags(t *testing.T) {
	t.Parallel()
	flags, algos := benchFlags(t)

	byName := map[string]FlagCompletion{}
	for _, f := range flags {
		byName[f.Name] = f
		if strings.ContainsAny(f.Help, "'[]\"") {
			t.Errorf("-%s help %q contains shell-special characters", f.Name, f.Help)
		}
	}

	algo := byName["algo"]
	if got := strings.Join(algo.Values, " "); got != strings.Join(algos, " ")+" all" {
		t.Errorf("-algo values = %q", got)
	}
	if !byName["output"].IsFile || !byName["o"].IsFile {
		t.Error("-output and -o should complete file names")
	}
	if byName["tui"].ValueName != "" {
		t.Errorf("boolean -tui should take no value, got %q", byName["tui"].ValueName)
	}
	if byName["n"].ValueName == "" {
		t.Error("-n takes a value")
	}
	if got := strings.Join(byName["completion"].Values, ","); got != "bash,zsh,fish,powershell" {
		t.Errorf("-completion values = %q", got)
	}
}

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	flags, _ := benchFlags(t)

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{
			"complete -F _fibbench_completions fibbench",
			"-algo|--algo)",
			`compgen -W "array binet ifd matrix naive pair rfd all"`,
			"-o|--o|-output|--output)",
			"-completion",
		}},
		{"zsh", []string{
			"#compdef fibbench",
			"'-algo[Algorithms to run: all or a comma-separated list of (array, binet, ifd, matrix, naive, pair, rfd)]:string:(array binet ifd matrix naive pair rfd all)'",
			"'-output[Output file path for the results]:string:_files'",
			"'-tui[Start the interactive dashboard]'",
		}},
		{"fish", []string{
			"complete -c fibbench -f",
			"complete -c fibbench -s n -d 'Index computed by the non-exponential algorithms' -x",
			"complete -c fibbench -o timeout -d 'Maximum duration of the whole run' -xa '10s 30s 1m 5m 10m'",
			"complete -c fibbench -o output -d 'Output file path for the results' -rF",
		}},
		{"powershell", []string{
			"Register-ArgumentCompleter -CommandName 'fibbench' -Native",
			"@{Name = '-interactive'; Description = 'Start an interactive calculator session' }",
			"@('bash', 'zsh', 'fish', 'powershell')",
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, "fibbench", flags); err != nil {
				t.Fatalf("GenerateCompletion(%s) error: %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q:\n%s", tt.shell, want, buf.String())
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", "fibbench", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell: tcsh") {
		t.Errorf("error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(failingWriter{}, "bash", "fibbench", nil)
	if err == nil || !strings.Contains(err.Error(), "completion bash generation failed") {
		t.Errorf("error = %v", err)
	}
}
