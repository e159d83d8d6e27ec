package types

import "time"

// DefaultInterval is the delay between samples when none is configured.
const DefaultInterval = 2 * time.Second

// ClockTicksPerSecond is the kernel's tick accounting rate (USER_HZ).
// Cumulative utime/stime counters in a stat record advance at this rate.
const ClockTicksPerSecond = 100

// ProcState classifies a process at the moment it was sampled.
type ProcState byte

const (
	StateRunning  ProcState = 'R'
	StateSleeping ProcState = 'S'
	StateZombie   ProcState = 'Z'
	StateOther    ProcState = 'O'
	StateUnknown  ProcState = '?'
)

func (s ProcState) String() string {
	switch s {
	case StateRunning, StateSleeping, StateZombie, StateOther:
		return string(byte(s))
	default:
		return "?"
	}
}

// ParseProcState maps a stat-record state code onto the states the monitor
// distinguishes. Codes it does not know about collapse into StateOther.
func ParseProcState(code byte) ProcState {
	switch code {
	case 'R':
		return StateRunning
	case 'S', 'D', 'I':
		return StateSleeping
	case 'Z':
		return StateZombie
	default:
		return StateOther
	}
}

// ProcessRecord is one process observed during a single sampling pass.
// UTime and STime are cumulative ticks since process start; they never
// decrease while the pid still refers to the same process instance.
type ProcessRecord struct {
	PID   int
	PPID  int
	State ProcState
	Comm  string
	UTime uint64
	STime uint64
	Nice  int
}

// TotalTicks returns the combined user+kernel CPU time of the record.
func (r ProcessRecord) TotalTicks() uint64 {
	return r.UTime + r.STime
}

// Snapshot is one complete pass over all visible processes plus its capture
// timestamp. Pids are unique within a snapshot.
type Snapshot struct {
	Taken time.Time
	Procs []ProcessRecord
}

// UtilizationSample is the CPU share a process consumed between the previous
// snapshot and the current one, clamped to [0, 100].
type UtilizationSample struct {
	PID        int
	CPUPercent float64
}

// SortKey selects how ranked rows are ordered.
type SortKey string

const (
	// SortByCPU orders by utilization descending, breaking ties by
	// cumulative CPU time descending and then pid ascending.
	SortByCPU SortKey = "cpu"
	// SortByPID orders by process identifier ascending.
	SortByPID SortKey = "pid"
)

// TaskCounts tallies run states within one snapshot.
type TaskCounts struct {
	Total    int
	Running  int
	Sleeping int
	Zombie   int
	Other    int
}

// SystemSummary aggregates whole-machine metrics shown above the process
// table. Memory figures are in bytes.
type SystemSummary struct {
	Uptime time.Duration
	Load1  float64
	Load5  float64
	Load15 float64

	MemTotal     uint64
	MemFree      uint64
	MemAvailable uint64
	MemShared    uint64
	MemBuffers   uint64
	SwapTotal    uint64
	SwapFree     uint64

	NumCPU int
}
