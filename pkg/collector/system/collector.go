// Package system reads whole-machine aggregates: memory totals, the load
// average triple, and uptime. Individual figures that cannot be read zero
// out; only an unreadable proc root fails a call.
package system

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/procfs"

	"github.com/srodi/proctop/pkg/types"
)

// Collector reads aggregate metrics from a procfs mount.
type Collector struct {
	fs procfs.FS
}

// NewCollector binds the collector to a proc root.
func NewCollector(root string) (*Collector, error) {
	if root == "" {
		root = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, errors.Wrapf(err, "proc root %s", root)
	}
	return &Collector{fs: fs}, nil
}

// Summary returns the aggregate metrics rendered above the process table.
// Memory totals are required; load average and uptime degrade to zero when
// their sources are unreadable.
func (c *Collector) Summary() (types.SystemSummary, error) {
	sum := types.SystemSummary{NumCPU: runtime.NumCPU()}

	mi, err := c.fs.Meminfo()
	if err != nil {
		return types.SystemSummary{}, errors.Wrap(err, "reading meminfo")
	}
	sum.MemTotal = kbToBytes(mi.MemTotal)
	sum.MemFree = kbToBytes(mi.MemFree)
	sum.MemAvailable = kbToBytes(mi.MemAvailable)
	sum.MemShared = kbToBytes(mi.Shmem)
	sum.MemBuffers = kbToBytes(mi.Buffers)
	sum.SwapTotal = kbToBytes(mi.SwapTotal)
	sum.SwapFree = kbToBytes(mi.SwapFree)

	if la, err := c.fs.LoadAvg(); err == nil {
		sum.Load1 = la.Load1
		sum.Load5 = la.Load5
		sum.Load15 = la.Load15
	}

	if st, err := c.fs.Stat(); err == nil && st.BootTime > 0 {
		if up := time.Since(time.Unix(int64(st.BootTime), 0)); up > 0 {
			sum.Uptime = up
		}
	}

	return sum, nil
}

func kbToBytes(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v * 1024
}
