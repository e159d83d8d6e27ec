// Package snapshot owns the two-generation snapshot buffer and the delta
// arithmetic that turns cumulative CPU counters into utilization percentages.
package snapshot

import (
	"time"

	"github.com/srodi/proctop/pkg/types"
)

// Store retains the current snapshot plus exactly one generation of history.
// It is mutated only by the sampling loop, strictly between iterations.
type Store struct {
	current  *types.Snapshot
	previous *types.Snapshot
}

// NewStore returns an empty store: no current, no previous.
func NewStore() *Store {
	return &Store{}
}

// Record installs snap as the current snapshot. The prior current snapshot
// becomes the previous one; anything older is discarded.
func (s *Store) Record(snap types.Snapshot) {
	s.previous = s.current
	s.current = &snap
}

// Current returns the most recently recorded snapshot.
func (s *Store) Current() (types.Snapshot, bool) {
	if s.current == nil {
		return types.Snapshot{}, false
	}
	return *s.current, true
}

// Previous returns the snapshot recorded before the current one. The second
// return is false until two snapshots have been recorded.
func (s *Store) Previous() (types.Snapshot, bool) {
	if s.previous == nil {
		return types.Snapshot{}, false
	}
	return *s.previous, true
}

// ElapsedSincePrevious is the wall-clock time between the previous and
// current captures. It is zero unless both snapshots exist.
func (s *Store) ElapsedSincePrevious() time.Duration {
	if s.current == nil || s.previous == nil {
		return 0
	}
	return s.current.Taken.Sub(s.previous.Taken)
}
