package ui

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Theme pairs the ANSI codes used by the line-oriented CLI with the lipgloss
// palette used by the dashboard.
type Theme struct {
	Name string

	// ANSI escape codes.
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Reset     string

	TUI TUITheme
}

// TUITheme holds the lipgloss colors used by the dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// DarkTUITheme is the dashboard palette of DarkTheme.
var DarkTUITheme = TUITheme{
	Text:    lipgloss.Color("#E0E0E0"),
	Border:  lipgloss.Color("#5F87D7"),
	Accent:  lipgloss.Color("#FF8700"),
	Success: lipgloss.Color("#87D75F"),
	Warning: lipgloss.Color("#FFD700"),
	Error:   lipgloss.Color("#FF5F5F"),
	Dim:     lipgloss.Color("#6C6C6C"),
}

// NoColorTUITheme renders everything in the terminal's default color.
var NoColorTUITheme = TUITheme{
	Text:    lipgloss.NoColor{},
	Border:  lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Success: lipgloss.NoColor{},
	Warning: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Dim:     lipgloss.NoColor{},
}

// DarkTheme is the default theme, tuned for 256-color dark terminals.
var DarkTheme = Theme{
	Name:      "dark",
	Primary:   "\033[38;5;208m",
	Secondary: "\033[38;5;242m",
	Success:   "\033[38;5;113m",
	Warning:   "\033[38;5;220m",
	Error:     "\033[38;5;203m",
	Info:      "\033[38;5;68m",
	Bold:      "\033[1m",
	Reset:     "\033[0m",
	TUI:       DarkTUITheme,
}

// NoColorTheme disables all color output.
var NoColorTheme = Theme{Name: "none", TUI: NoColorTUITheme}

var current atomic.Pointer[Theme]

func init() {
	SetCurrentTheme(DarkTheme)
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme { return *current.Load() }

// GetCurrentTUITheme returns the dashboard palette of the active theme.
func GetCurrentTUITheme() TUITheme { return current.Load().TUI }

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) { current.Store(&t) }

// InitTheme selects the theme at startup. Colors are disabled by the
// -no-color flag or by a NO_COLOR environment variable of any value.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
