package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/cpu"
)

// CPUInfo describes the host processor shown next to the lane count.
type CPUInfo struct {
	Model    string
	Physical int
	Logical  int
}

// DetectCPU queries the host CPU. Fields it cannot determine are left empty.
func DetectCPU() CPUInfo {
	info := CPUInfo{Logical: runtime.NumCPU()}

	if stats, err := cpu.Info(); err == nil && len(stats) > 0 {
		info.Model = strings.TrimSpace(stats[0].ModelName)
	}
	if n, err := cpu.Counts(false); err == nil {
		info.Physical = n
	}
	return info
}

// String renders the CPU as "model (P cores / L threads)".
func (c CPUInfo) String() string {
	model := c.Model
	if model == "" {
		model = "CPU"
	}
	if c.Physical > 0 {
		return fmt.Sprintf("%s (%d cores / %d threads)", model, c.Physical, c.Logical)
	}
	return fmt.Sprintf("%s (%d threads)", model, c.Logical)
}
