package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srodi/proctop/pkg/collector/proc"
	"github.com/srodi/proctop/pkg/collector/system"
	"github.com/srodi/proctop/pkg/config"
	"github.com/srodi/proctop/pkg/monitor"
	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/types"
	"github.com/srodi/proctop/pkg/ui"
)

// runMonitorLoop assembles the collectors, terminal, and scheduler, then
// blocks until the run completes or is canceled.
func runMonitorLoop(cfg config.Config) error {
	procCollector, err := proc.NewCollector(cfg.ProcRoot)
	if err != nil {
		return err
	}
	sysCollector, err := system.NewCollector(cfg.ProcRoot)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := &frameRenderer{out: os.Stdout, interval: cfg.Interval, topK: cfg.TopK}

	var keys monitor.KeyReader
	if !cfg.Batch {
		term := ui.Setup()
		defer term.Restore()
		if term.Interactive() {
			keys = term
			renderer.clear = true
		}
	}

	mon := monitor.New(procCollector, sysCollector, renderer, keys, monitor.Config{
		Interval:   cfg.Interval,
		Iterations: cfg.Iterations,
		SortKey:    cfg.SortKey,
		Batch:      cfg.Batch,
	})
	return mon.Run(ctx)
}

// frameRenderer writes monitor frames to a terminal or a plain stream. In
// interactive mode each frame repaints the screen in place; otherwise frames
// are appended sequentially, separated by a blank line.
type frameRenderer struct {
	out      io.Writer
	interval time.Duration
	topK     int
	clear    bool
}

func (r *frameRenderer) Frame(rows []report.Row, summary types.SystemSummary, counts types.TaskCounts) {
	// Build the frame off-screen first so the repaint is a single write.
	var buf bytes.Buffer
	if r.clear {
		buf.WriteString(ui.Banner())
		buf.WriteString("\n")
	}
	report.Render(&buf, rows, summary, counts, report.RenderConfig{
		Interval: r.interval,
		TopK:     r.topK,
	})
	if r.clear {
		ui.ClearScreen()
	} else {
		buf.WriteString("\n")
	}
	fmt.Fprint(r.out, buf.String())
}

func (r *frameRenderer) Help() {
	if r.clear {
		ui.ClearScreen()
	}
	fmt.Fprint(r.out, ui.HelpText)
}
