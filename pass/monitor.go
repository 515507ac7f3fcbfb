package pass

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// Monitor samples the current process's resident set size between
// passes.
type Monitor struct {
	proc *process.Process
}

// NewMonitor attaches a Monitor to the current process.
func NewMonitor() (*Monitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Monitor{proc: p}, nil
}

// SampleRSS returns the current resident set size in bytes, or 0 if it
// could not be read (gopsutil can fail to resolve /proc details on some
// platforms; RSS is a diagnostic, not load-bearing, so failures are
// swallowed here).
func (m *Monitor) SampleRSS() uint64 {
	info, err := m.proc.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}
