package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibbench/internal/ui"
)

// Styles for the dashboard, rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	dimStyle          lipgloss.Style
	accentStyle       lipgloss.Style
	tableHeaderStyle  lipgloss.Style
	barStyle          lipgloss.Style
	statusRunning     lipgloss.Style
	statusDone        lipgloss.Style
	statusFailed      lipgloss.Style
	statusApproximate lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the theme has been chosen.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	accentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	barStyle = lipgloss.NewStyle().Foreground(t.Accent)
	statusRunning = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	statusDone = lipgloss.NewStyle().Foreground(t.Success)
	statusFailed = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	statusApproximate = lipgloss.NewStyle().Foreground(t.Warning)
}
