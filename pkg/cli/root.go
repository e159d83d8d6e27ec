// Package cli defines the proctop command tree. The root command runs the
// live monitor; subcommands cover one-shot output.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/srodi/proctop/pkg/collector/proc"
	"github.com/srodi/proctop/pkg/config"
	"github.com/srodi/proctop/pkg/types"
)

// runMonitor is swapped out in tests to capture the resolved config.
var runMonitor = runMonitorLoop

// RootCmd builds the proctop command tree.
func RootCmd() *cobra.Command {
	var (
		cfgPath    string
		interval   time.Duration
		iterations int
		batch      bool
		sortKey    string
		topK       int
		procRoot   string
	)

	cmd := &cobra.Command{
		Use:   "proctop",
		Short: "Live process activity monitor",
		Long: `proctop samples the processes on this machine at a fixed interval,
computes per-process CPU utilization from consecutive samples, and
refreshes a ranked table on the terminal until canceled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				var err error
				cfg, err = config.LoadFile(cfgPath, cfg)
				if err != nil {
					return err
				}
			}

			// Explicit flags win over the config file.
			flags := cmd.Flags()
			if flags.Changed("delay") {
				cfg.Interval = interval
			}
			if flags.Changed("iterations") {
				cfg.Iterations = iterations
			}
			if flags.Changed("batch") {
				cfg.Batch = batch
			}
			if flags.Changed("sort") {
				cfg.SortKey = types.SortKey(sortKey)
			}
			if flags.Changed("topk") {
				cfg.TopK = topK
			}
			if flags.Changed("proc-root") {
				cfg.ProcRoot = procRoot
			}

			cfg = cfg.Normalized()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runMonitor(cfg)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	cmd.Flags().DurationVarP(&interval, "delay", "d", types.DefaultInterval, "delay between updates (minimum 1s)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "update this many times, then exit (0 = run until canceled)")
	cmd.Flags().BoolVarP(&batch, "batch", "b", false, "batch mode: append frames to stdout, no screen control")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", string(types.SortByCPU), "ranking key: cpu or pid")
	cmd.Flags().IntVar(&topK, "topk", 0, "show only the top K processes (0 = all)")
	cmd.Flags().StringVar(&procRoot, "proc-root", proc.DefaultProcRoot, "process information pseudo-filesystem root")

	cmd.AddCommand(summaryCmd(), versionCmd())
	return cmd
}
