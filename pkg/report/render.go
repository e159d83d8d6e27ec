package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/srodi/proctop/pkg/types"
)

// RenderConfig controls header content and table size for one frame.
type RenderConfig struct {
	Now      time.Time
	Interval time.Duration
	TopK     int // 0 shows every process
}

// Render writes one complete frame: summary header plus the ranked process
// table. Identical input renders identical bytes.
func Render(w io.Writer, rows []Row, summary types.SystemSummary, counts types.TaskCounts, cfg RenderConfig) {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	fmt.Fprintf(w, "proctop - %s up %s,  load average: %.2f, %.2f, %.2f\n",
		now.Format("15:04:05"), formatUptime(summary.Uptime),
		summary.Load1, summary.Load5, summary.Load15)
	fmt.Fprintf(w, "Tasks: %d total, %d running, %d sleeping, %d zombie\n",
		counts.Total, counts.Running, counts.Sleeping, counts.Zombie)
	if summary.NumCPU > 0 {
		fmt.Fprintf(w, "CPU cores: %d | Interval: %v\n", summary.NumCPU, cfg.Interval)
	}
	used := summary.MemTotal - summary.MemFree
	fmt.Fprintf(w, "Mem: %s total, %s used, %s free, %s shared, %s buffers\n",
		formatMem(summary.MemTotal), formatMem(used), formatMem(summary.MemFree),
		formatMem(summary.MemShared), formatMem(summary.MemBuffers))
	if summary.SwapTotal > 0 {
		fmt.Fprintf(w, "Swap: %s total, %s used, %s free\n",
			formatMem(summary.SwapTotal),
			formatMem(summary.SwapTotal-summary.SwapFree),
			formatMem(summary.SwapFree))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tPPID\tS\tNI\t%CPU\tTIME+\tCOMMAND")
	limit := len(rows)
	if cfg.TopK > 0 && limit > cfg.TopK {
		limit = cfg.TopK
	}
	for _, row := range rows[:limit] {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%.1f\t%s\t%s\n",
			row.Record.PID, row.Record.PPID, row.Record.State, row.Record.Nice,
			row.Sample.CPUPercent, formatCPUTime(row.Record.TotalTicks()), row.Record.Comm)
	}
	tw.Flush()
}

// RenderSummary writes the aggregate-only view used by the one-shot summary
// command: everything above the process table, plus the task count.
func RenderSummary(w io.Writer, summary types.SystemSummary, counts types.TaskCounts, now time.Time) {
	if now.IsZero() {
		now = time.Now()
	}
	fmt.Fprintf(w, "proctop - %s up %s\n", now.Format("15:04:05"), formatUptime(summary.Uptime))
	fmt.Fprintf(w, "Load average: %.2f, %.2f, %.2f\n", summary.Load1, summary.Load5, summary.Load15)
	if summary.NumCPU > 0 {
		fmt.Fprintf(w, "CPU cores: %d\n", summary.NumCPU)
	}
	fmt.Fprintf(w, "Tasks: %d total\n\n", counts.Total)

	fmt.Fprintln(w, "Memory:")
	fmt.Fprintf(w, "  Total:  %s\n", formatMem(summary.MemTotal))
	fmt.Fprintf(w, "  Used:   %s\n", formatMem(summary.MemTotal-summary.MemFree))
	fmt.Fprintf(w, "  Free:   %s\n", formatMem(summary.MemFree))
	fmt.Fprintf(w, "  Shared: %s\n", formatMem(summary.MemShared))
	fmt.Fprintf(w, "  Buffer: %s\n", formatMem(summary.MemBuffers))
	if summary.SwapTotal > 0 {
		fmt.Fprintln(w, "Swap:")
		fmt.Fprintf(w, "  Total: %s\n", formatMem(summary.SwapTotal))
		fmt.Fprintf(w, "  Used:  %s\n", formatMem(summary.SwapTotal-summary.SwapFree))
		fmt.Fprintf(w, "  Free:  %s\n", formatMem(summary.SwapFree))
	}
}

// formatUptime renders "N days, HH:MM" or "HH:MM".
func formatUptime(d time.Duration) string {
	seconds := int64(d.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%d days, %2d:%02d", days, hours, mins)
	}
	return fmt.Sprintf("%2d:%02d", hours, mins)
}

// formatMem scales a byte count to the largest fitting unit.
func formatMem(bytes uint64) string {
	switch {
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(bytes)/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatCPUTime renders cumulative ticks as MM:SS.hh, top's TIME+ style.
func formatCPUTime(ticks uint64) string {
	hundredths := ticks * 100 / types.ClockTicksPerSecond
	seconds := hundredths / 100
	return fmt.Sprintf("%d:%02d.%02d", seconds/60, seconds%60, hundredths%100)
}
