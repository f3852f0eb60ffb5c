// Package sysmon samples host CPU and memory usage for the dashboard header.
package sysmon

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64  // bytes
	MemTotal   uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields are zero on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsed = vmem.Used
		s.MemTotal = vmem.Total
	}
	return s
}

// CPUModel returns the model name of the first CPU, or "unknown CPU".
func CPUModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return "unknown CPU"
	}
	if name := strings.TrimSpace(infos[0].ModelName); name != "" {
		return name
	}
	return "unknown CPU"
}

// String renders the snapshot as "CPU 12.3% · MEM 45.6%".
func (s Stats) String() string {
	return fmt.Sprintf("CPU %4.1f%% · MEM %4.1f%%", s.CPUPercent, s.MemPercent)
}
