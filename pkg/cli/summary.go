package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/srodi/proctop/pkg/collector/proc"
	"github.com/srodi/proctop/pkg/collector/system"
	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/types"
)

// summaryCmd prints one aggregate snapshot and exits. The process table is
// intentionally absent; utilization needs two samples and this takes one.
func summaryCmd() *cobra.Command {
	var procRoot string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a one-shot system summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := system.NewCollector(procRoot)
			if err != nil {
				return err
			}
			summary, err := sys.Summary()
			if err != nil {
				return err
			}

			// Task counts are best effort here; the summary is still useful
			// when process enumeration fails.
			var counts types.TaskCounts
			if procs, err := proc.NewCollector(procRoot); err == nil {
				if snap, err := procs.Snapshot(); err == nil {
					counts = report.Counts(snap)
				}
			}

			report.RenderSummary(cmd.OutOrStdout(), summary, counts, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&procRoot, "proc-root", proc.DefaultProcRoot, "process information pseudo-filesystem root")
	return cmd
}
