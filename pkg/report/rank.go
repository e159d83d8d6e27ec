// Package report ranks sampled processes and renders the operator-facing
// tables.
package report

import (
	"sort"

	"github.com/srodi/proctop/pkg/types"
)

// Row pairs a process record with its utilization for one iteration.
type Row struct {
	Record types.ProcessRecord
	Sample types.UtilizationSample
}

// Rank orders the snapshot's processes by the selected key. The ordering is
// total and stable, so identical input always produces identical output and
// the display never jitters without a data change.
//
// SortByCPU: utilization descending, ties broken by cumulative CPU time
// descending, then pid ascending. SortByPID: pid ascending.
func Rank(snap types.Snapshot, samples map[int]types.UtilizationSample, key types.SortKey) []Row {
	rows := make([]Row, 0, len(snap.Procs))
	for _, rec := range snap.Procs {
		sample, ok := samples[rec.PID]
		if !ok {
			sample = types.UtilizationSample{PID: rec.PID}
		}
		rows = append(rows, Row{Record: rec, Sample: sample})
	}

	switch key {
	case types.SortByPID:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Record.PID < rows[j].Record.PID
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.Sample.CPUPercent != b.Sample.CPUPercent {
				return a.Sample.CPUPercent > b.Sample.CPUPercent
			}
			if a.Record.TotalTicks() != b.Record.TotalTicks() {
				return a.Record.TotalTicks() > b.Record.TotalTicks()
			}
			return a.Record.PID < b.Record.PID
		})
	}
	return rows
}

// Counts tallies run states for the Tasks header line.
func Counts(snap types.Snapshot) types.TaskCounts {
	counts := types.TaskCounts{Total: len(snap.Procs)}
	for _, rec := range snap.Procs {
		switch rec.State {
		case types.StateRunning:
			counts.Running++
		case types.StateSleeping:
			counts.Sleeping++
		case types.StateZombie:
			counts.Zombie++
		default:
			counts.Other++
		}
	}
	return counts
}
