package snapshot

import (
	"time"

	"github.com/srodi/proctop/pkg/types"
)

// minElapsed guards the division when two samples land back-to-back.
const minElapsed = time.Millisecond

// Engine computes per-process utilization between consecutive snapshots.
type Engine struct {
	// TicksPerSecond converts tick deltas to wall-clock CPU seconds.
	// Zero falls back to the platform rate.
	TicksPerSecond uint64
}

// NewEngine returns an engine using the platform tick rate.
func NewEngine() *Engine {
	return &Engine{TicksPerSecond: types.ClockTicksPerSecond}
}

// Compute derives a UtilizationSample for every record in current by
// differencing its cumulative CPU counters against the record with the same
// pid in previous.
//
// A pid absent from previous (new process, or one the provider missed last
// round) samples at 0% — there is no baseline, and that is not an error. A
// negative tick delta means the pid was reused by a different process; it
// clamps to 0 rather than going negative. The result is capped at 100%:
// per-process utilization is reported single-core-equivalent on purpose.
func (e *Engine) Compute(current, previous types.Snapshot, elapsed time.Duration) map[int]types.UtilizationSample {
	ticks := e.TicksPerSecond
	if ticks == 0 {
		ticks = types.ClockTicksPerSecond
	}
	if elapsed < minElapsed {
		elapsed = minElapsed
	}

	prevByPID := make(map[int]types.ProcessRecord, len(previous.Procs))
	for _, rec := range previous.Procs {
		prevByPID[rec.PID] = rec
	}

	samples := make(map[int]types.UtilizationSample, len(current.Procs))
	for _, rec := range current.Procs {
		sample := types.UtilizationSample{PID: rec.PID}
		if prev, ok := prevByPID[rec.PID]; ok {
			cur, old := rec.TotalTicks(), prev.TotalTicks()
			if cur > old {
				cpuSeconds := float64(cur-old) / float64(ticks)
				pct := cpuSeconds / elapsed.Seconds() * 100
				if pct > 100 {
					pct = 100
				}
				sample.CPUPercent = pct
			}
		}
		samples[rec.PID] = sample
	}
	return samples
}
