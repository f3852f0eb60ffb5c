package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibbench/internal/config"
)

// FlagCompletion describes one command-line flag for completion scripts.
type FlagCompletion struct {
	Name      string   // flag name without the leading dash
	Help      string   // description, stripped of shell-special characters
	Values    []string // suggested values; nil for booleans and free values
	ValueName string   // label of the value ("" for booleans)
	IsFile    bool     // the value is a file path
}

// completionHints adds value suggestions to flags whose values are known in
// advance. The algorithm list is filled in at generation time.
var completionHints = map[string][]string{
	"timeout":    {"10s", "30s", "1m", "5m", "10m"},
	"completion": config.CompletionShells,
	"repeat":     {"1", "3", "5", "10"},
	"parallel":   {"1", "2", "4"},
}

var fileFlags = map[string]bool{"output": true, "o": true}

var helpSanitizer = strings.NewReplacer("'", "", "\"", "", "[", "(", "]", ")", "`", "", "$", "")

// CompletionFlags lists the flags of fs in the form the generators use.
func CompletionFlags(fs *flag.FlagSet, algorithms []string) []FlagCompletion {
	var flags []FlagCompletion
	fs.VisitAll(func(f *flag.Flag) {
		valueName, usage := flag.UnquoteUsage(f)
		fc := FlagCompletion{
			Name:      f.Name,
			Help:      strings.TrimSuffix(helpSanitizer.Replace(usage), "."),
			ValueName: valueName,
			IsFile:    fileFlags[f.Name],
		}
		switch {
		case f.Name == "algo":
			fc.Values = append(append([]string(nil), algorithms...), config.DefaultAlgo)
		case completionHints[f.Name] != nil:
			fc.Values = completionHints[f.Name]
		}
		flags = append(flags, fc)
	})
	return flags
}

// GenerateCompletion writes the completion script of programName for shell.
//
// Parameters:
//   - out: receives the script.
//   - shell: "bash", "zsh", "fish" or "powershell".
//   - programName: the command the script completes.
//   - flags: the flags to complete, usually from CompletionFlags.
//
// Returns:
//   - error: for an unsupported shell or a failed write.
func GenerateCompletion(out io.Writer, shell, programName string, flags []FlagCompletion) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(programName, flags)
	case "zsh":
		script = zshCompletion(programName, flags)
	case "fish":
		script = fishCompletion(programName, flags)
	case "powershell", "ps":
		script = powerShellCompletion(programName, flags)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.CompletionShells, ", "))
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// funcName turns a program name into a shell identifier.
func funcName(programName string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(programName)
}

func bashCompletion(programName string, flags []FlagCompletion) string {
	var opts []string
	var cases strings.Builder
	var filePatterns []string
	for _, f := range flags {
		opts = append(opts, "-"+f.Name)
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, "-"+f.Name, "--"+f.Name)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        -%s|--%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Name, f.Name, strings.Join(f.Values, " "))
		}
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	fn := funcName(programName)
	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

_%[2]s_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[3]s"

    case "${prev}" in
%[4]s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _%[2]s_completions %[1]s
`, programName, fn, strings.Join(opts, " "), cases.String())
}

// zshArgEntry formats f as a zsh _arguments spec.
func zshArgEntry(f FlagCompletion) string {
	suffix := ""
	switch {
	case f.IsFile:
		suffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		suffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, suffix)
}

func zshCompletion(programName string, flags []FlagCompletion) string {
	args := make([]string, len(flags))
	for i, f := range flags {
		args[i] = zshArgEntry(f)
	}
	fn := funcName(programName)
	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Place this file in a directory of $fpath as _%[1]s

_%[2]s() {
    _arguments \
%[3]s
}

_%[2]s "$@"
`, programName, fn, strings.Join(args, " \\\n"))
}

// fishCompleteLine formats f as a fish complete command. Go flags take a
// single dash, so multi-letter names use fish's old-style -o option.
func fishCompleteLine(programName string, f FlagCompletion) string {
	parts := []string{"complete -c " + programName}
	if len(f.Name) == 1 {
		parts = append(parts, "-s "+f.Name)
	} else {
		parts = append(parts, "-o "+f.Name)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func fishCompletion(programName string, flags []FlagCompletion) string {
	lines := []string{
		"# Fish completion script for " + programName,
		fmt.Sprintf("# Add this to ~/.config/fish/completions/%s.fish", programName),
		"",
		"complete -c " + programName + " -f",
	}
	for _, f := range flags {
		lines = append(lines, fishCompleteLine(programName, f))
	}
	return strings.Join(lines, "\n") + "\n"
}

func psQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

func powerShellCompletion(programName string, flags []FlagCompletion) string {
	var options, switches []string
	for _, f := range flags {
		options = append(options, fmt.Sprintf("        @{Name = '-%s'; Description = '%s' }", f.Name, f.Help))
		if len(f.Values) == 0 {
			continue
		}
		switches = append(switches, fmt.Sprintf(`        '-%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Name, psQuoted(f.Values)))
	}

	return fmt.Sprintf(`# PowerShell completion script for %[1]s
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName '%[1]s' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%[2]s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -gt 2) { $prevElement = $elements[-2].ToString() }

    switch ($prevElement) {
%[3]s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, programName, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
