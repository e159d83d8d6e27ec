package snapshot

import (
	"math"
	"testing"
	"time"

	"github.com/srodi/proctop/pkg/types"
)

func record(pid int, utime, stime uint64) types.ProcessRecord {
	return types.ProcessRecord{PID: pid, UTime: utime, STime: stime}
}

func TestComputeFullSecondOfTicks(t *testing.T) {
	// 100 ticks consumed over one second at 100 ticks/s is exactly 100%.
	previous := types.Snapshot{Taken: time.UnixMilli(1000), Procs: []types.ProcessRecord{record(100, 150, 50)}}
	current := types.Snapshot{Taken: time.UnixMilli(2000), Procs: []types.ProcessRecord{record(100, 230, 70)}}

	samples := NewEngine().Compute(current, previous, time.Second)
	got, ok := samples[100]
	if !ok {
		t.Fatal("missing sample for pid 100")
	}
	if math.Abs(got.CPUPercent-100) > 1e-9 {
		t.Fatalf("expected 100%%, got %.4f", got.CPUPercent)
	}
}

func TestComputeHalfUtilization(t *testing.T) {
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(7, 0, 0)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(7, 50, 50)}}

	samples := NewEngine().Compute(current, previous, 2*time.Second)
	if got := samples[7].CPUPercent; math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected 50%%, got %.4f", got)
	}
}

func TestComputeClampsAboveHundred(t *testing.T) {
	// More ticks than the wall-clock window can hold (multi-core), still 100.
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(1, 0, 0)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(1, 300, 100)}}

	samples := NewEngine().Compute(current, previous, time.Second)
	if got := samples[1].CPUPercent; got != 100 {
		t.Fatalf("expected clamp to 100, got %.4f", got)
	}
}

func TestComputeNewProcessHasNoBaseline(t *testing.T) {
	current := types.Snapshot{Procs: []types.ProcessRecord{record(55, 9000, 9000)}}

	samples := NewEngine().Compute(current, types.Snapshot{}, time.Second)
	got, ok := samples[55]
	if !ok {
		t.Fatal("new process must still yield a sample")
	}
	if got.CPUPercent != 0 {
		t.Fatalf("new process must sample at 0%%, got %.4f", got.CPUPercent)
	}
}

func TestComputePidReuseClampsToZero(t *testing.T) {
	// The counter went backwards: a different process owns the pid now.
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(42, 5000, 5000)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(42, 10, 5)}}

	samples := NewEngine().Compute(current, previous, time.Second)
	if got := samples[42].CPUPercent; got != 0 {
		t.Fatalf("counter rollback must clamp to 0, got %.4f", got)
	}
}

func TestComputeZeroElapsedIsGuarded(t *testing.T) {
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(3, 0, 0)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(3, 1, 0)}}

	samples := NewEngine().Compute(current, previous, 0)
	got := samples[3].CPUPercent
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("division not guarded: %v", got)
	}
	if got < 0 || got > 100 {
		t.Fatalf("guarded result out of range: %.4f", got)
	}
}

func TestComputeNegativeElapsedIsGuarded(t *testing.T) {
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(3, 0, 0)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(3, 10, 0)}}

	samples := NewEngine().Compute(current, previous, -time.Second)
	if got := samples[3].CPUPercent; got < 0 || got > 100 {
		t.Fatalf("clock skew result out of range: %.4f", got)
	}
}

func TestComputeEmptyCurrent(t *testing.T) {
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(1, 10, 10)}}
	samples := NewEngine().Compute(types.Snapshot{}, previous, time.Second)
	if len(samples) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(samples))
	}
}

func TestComputeRangeInvariant(t *testing.T) {
	previous := types.Snapshot{Procs: []types.ProcessRecord{
		record(1, 0, 0), record(2, 10, 10), record(3, 100, 100),
	}}
	current := types.Snapshot{Procs: []types.ProcessRecord{
		record(1, 30, 20), record(2, 15, 15), record(3, 100, 100), record(4, 7, 7),
	}}

	samples := NewEngine().Compute(current, previous, 500*time.Millisecond)
	if len(samples) != 4 {
		t.Fatalf("expected a sample per current record, got %d", len(samples))
	}
	for pid, sample := range samples {
		if sample.PID != pid {
			t.Fatalf("sample pid mismatch: key %d vs %d", pid, sample.PID)
		}
		if sample.CPUPercent < 0 || sample.CPUPercent > 100 {
			t.Fatalf("pid %d out of range: %.4f", pid, sample.CPUPercent)
		}
	}
}

func TestComputeCustomTickRate(t *testing.T) {
	engine := &Engine{TicksPerSecond: 1000}
	previous := types.Snapshot{Procs: []types.ProcessRecord{record(9, 0, 0)}}
	current := types.Snapshot{Procs: []types.ProcessRecord{record(9, 500, 0)}}

	samples := engine.Compute(current, previous, time.Second)
	if got := samples[9].CPUPercent; math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected 50%% at 1000 ticks/s, got %.4f", got)
	}
}
