// Package proc scans a procfs tree and turns every visible process into a
// ProcessRecord. Individual processes that vanish mid-scan or expose
// malformed stat data never fail a snapshot; only an unreadable proc root
// does.
package proc

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/srodi/proctop/pkg/types"
)

// DefaultProcRoot is where the kernel mounts process information.
const DefaultProcRoot = "/proc"

// Collector enumerates a proc root and produces process snapshots.
type Collector struct {
	root string
}

// NewCollector validates the proc root and returns a collector bound to it.
func NewCollector(root string) (*Collector, error) {
	if root == "" {
		root = DefaultProcRoot
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "proc root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("proc root %s is not a directory", root)
	}
	return &Collector{root: root}, nil
}

// Snapshot scans every numeric entry under the proc root and parses its stat
// record. A process that exits between enumeration and read is omitted
// without error. A stat record that cannot be parsed degrades to an unknown
// state with zeroed counters. Only failing to enumerate the root at all is
// an error.
func (c *Collector) Snapshot() (types.Snapshot, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return types.Snapshot{}, errors.Wrap(err, "enumerating processes")
	}

	snap := types.Snapshot{Taken: time.Now()}
	seen := make(map[int]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		if _, dup := seen[pid]; dup {
			continue
		}

		data, err := readFile(filepath.Join(c.root, entry.Name(), "stat"))
		if err != nil {
			// The process exited between enumeration and read.
			continue
		}

		rec, err := parseStatLine(data)
		if err != nil {
			rec = degradedRecord(pid)
		}
		// The directory name is the authoritative identity.
		rec.PID = pid

		seen[pid] = struct{}{}
		snap.Procs = append(snap.Procs, rec)
	}

	sort.Slice(snap.Procs, func(i, j int) bool { return snap.Procs[i].PID < snap.Procs[j].PID })
	return snap, nil
}
