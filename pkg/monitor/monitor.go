// Package monitor drives the sample → compute → rank → render loop and owns
// cancellation. The loop is single-threaded: waiting between samples is a
// sequence of short sleeps interleaved with non-blocking checks for operator
// input, so a cancel request is observed with bounded latency.
package monitor

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/snapshot"
	"github.com/srodi/proctop/pkg/types"
)

// defaultPollTick bounds how long a pending cancel can go unnoticed while
// the loop waits out the sampling interval.
const defaultPollTick = 50 * time.Millisecond

// Provider yields one full pass over the visible processes.
type Provider interface {
	Snapshot() (types.Snapshot, error)
}

// SystemProvider yields aggregate machine metrics for the frame header.
type SystemProvider interface {
	Summary() (types.SystemSummary, error)
}

// KeyReader performs a non-blocking read of one pending keystroke.
type KeyReader interface {
	Poll() (byte, bool)
}

// Renderer consumes ranked frames and the static help screen. Rendering is
// assumed fast and is not cancellable mid-frame.
type Renderer interface {
	Frame(rows []report.Row, summary types.SystemSummary, counts types.TaskCounts)
	Help()
}

// Config is the scheduler's externally-owned tuning surface.
type Config struct {
	Interval   time.Duration // delay between samples; defaults to types.DefaultInterval
	Iterations int           // number of updates; 0 runs until canceled
	SortKey    types.SortKey
	Batch      bool          // disables key polling for scripted output
	PollTick   time.Duration // cancel-poll granularity; defaults to defaultPollTick
}

// Monitor is the sampling scheduler.
type Monitor struct {
	provider Provider
	system   SystemProvider
	renderer Renderer
	keys     KeyReader
	store    *snapshot.Store
	engine   *snapshot.Engine
	cfg      Config
}

// New assembles a monitor around the given collaborators. system and keys
// may be nil; the header then renders zeros and the loop only reacts to
// context cancellation.
func New(provider Provider, system SystemProvider, renderer Renderer, keys KeyReader, cfg Config) *Monitor {
	return &Monitor{
		provider: provider,
		system:   system,
		renderer: renderer,
		keys:     keys,
		store:    snapshot.NewStore(),
		engine:   snapshot.NewEngine(),
		cfg:      cfg,
	}
}

// Run iterates until the iteration budget is exhausted, the context is
// canceled, the operator cancels, or the provider fails. Only the provider
// failure returns an error; every other exit is normal completion.
func (m *Monitor) Run(ctx context.Context) error {
	interval := m.cfg.Interval
	if interval <= 0 {
		interval = types.DefaultInterval
	}

	for iteration := 0; m.cfg.Iterations == 0 || iteration < m.cfg.Iterations; iteration++ {
		if iteration > 0 {
			if stop := m.wait(ctx, interval); stop {
				return nil
			}
		}
		if ctx.Err() != nil {
			return nil
		}

		snap, err := m.provider.Snapshot()
		if err != nil {
			return errors.Wrap(err, "sampling processes")
		}

		var summary types.SystemSummary
		if m.system != nil {
			summary, err = m.system.Summary()
			if err != nil {
				return errors.Wrap(err, "reading system metrics")
			}
		}

		m.store.Record(snap)
		previous, _ := m.store.Previous()
		samples := m.engine.Compute(snap, previous, m.store.ElapsedSincePrevious())
		rows := report.Rank(snap, samples, m.cfg.SortKey)
		m.renderer.Frame(rows, summary, report.Counts(snap))
	}
	return nil
}

// wait sleeps out the inter-sample interval in pollTick increments, checking
// for cancellation and operator keys at every step. Returns true when the
// loop should terminate instead of sampling again.
func (m *Monitor) wait(ctx context.Context, interval time.Duration) bool {
	pollTick := m.cfg.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	deadline := time.Now().Add(interval)
	for {
		if ctx.Err() != nil {
			return true
		}
		if !m.cfg.Batch && m.keys != nil {
			if key, ok := m.keys.Poll(); ok {
				switch key {
				case 'q', 'Q', 0x03: // 0x03 is Ctrl-C when the terminal is raw
					return true
				case 'h', '?':
					// Pause the wait without consuming sample ticks: the
					// remaining budget resumes after the next keypress.
					remaining := time.Until(deadline)
					m.renderer.Help()
					if stop := m.pauseForKey(ctx, pollTick); stop {
						return true
					}
					deadline = time.Now().Add(remaining)
				}
			}
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		if remaining < pollTick {
			time.Sleep(remaining)
		} else {
			time.Sleep(pollTick)
		}
	}
}

// pauseForKey blocks on the help screen until any key arrives or the context
// is canceled. A cancel key while paused still terminates the loop.
func (m *Monitor) pauseForKey(ctx context.Context, pollTick time.Duration) bool {
	for {
		if ctx.Err() != nil {
			return true
		}
		if key, ok := m.keys.Poll(); ok {
			return key == 'q' || key == 'Q' || key == 0x03
		}
		time.Sleep(pollTick)
	}
}
