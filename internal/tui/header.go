package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibbench/internal/format"
)

// sparklineWidth is the number of host samples kept for each sparkline.
const sparklineWidth = 20

// HeaderModel renders the title, elapsed time and host usage.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	cpuModel  string
	cpu       *History
	mem       *History
	width     int
}

// NewHeaderModel creates a header.
func NewHeaderModel(version, cpuModel string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		cpuModel:  cpuModel,
		cpu:       NewHistory(sparklineWidth),
		mem:       NewHistory(sparklineWidth),
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() { h.endTime = time.Now() }

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// AddSample records a host usage sample.
func (h *HeaderModel) AddSample(cpu, mem float64) {
	h.cpu.Push(cpu)
	h.mem.Push(mem)
}

// Elapsed returns the run duration so far, or the final one once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "fibbench"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title) + dimStyle.Render(" | ") +
		accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))

	host := dimStyle.Render(h.cpuModel)
	if h.cpu.Len() > 0 {
		cpu, mem := h.cpu.Slice(), h.mem.Slice()
		host += dimStyle.Render(" | ") + fmt.Sprintf("CPU %s %4.1f%%  MEM %s %4.1f%%",
			accentStyle.Render(RenderSparkline(cpu)), cpu[len(cpu)-1],
			accentStyle.Render(RenderSparkline(mem)), mem[len(mem)-1])
	}

	gap := max(h.width-lipgloss.Width(left)-lipgloss.Width(host), 1)
	return left + spaces(gap) + host
}

// spaces returns n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
