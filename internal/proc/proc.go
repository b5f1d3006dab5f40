// Package proc resolves process metadata for display purposes.
package proc

import "github.com/shirou/gopsutil/process"

// Name returns the executable name for pid, or "" when the process is gone
// or unreadable. Lookup failures are expected (PIDs from window properties
// can be stale) and never surface as errors.
func Name(pid uint32) string {
	if pid == 0 {
		return ""
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := p.Name()
	if err != nil {
		return ""
	}
	return name
}
