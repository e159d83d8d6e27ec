package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const meminfoFixture = `MemTotal:       16384000 kB
MemFree:         8192000 kB
MemAvailable:   12288000 kB
Buffers:          512000 kB
Cached:          2048000 kB
Shmem:            256000 kB
SwapTotal:       4096000 kB
SwapFree:        4000000 kB
`

func writeProcFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", meminfoFixture)
	writeProcFile(t, root, "loadavg", "0.50 0.40 0.30 1/200 12345\n")
	writeProcFile(t, root, "stat", "cpu  100 0 100 1000 0 0 0 0 0 0\nbtime 1600000000\n")
	return root
}

func TestSummaryReadsAggregates(t *testing.T) {
	c, err := NewCollector(fixtureRoot(t))
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	if sum.MemTotal != 16384000*1024 {
		t.Fatalf("unexpected MemTotal: %d", sum.MemTotal)
	}
	if sum.MemFree != 8192000*1024 {
		t.Fatalf("unexpected MemFree: %d", sum.MemFree)
	}
	if sum.MemShared != 256000*1024 || sum.MemBuffers != 512000*1024 {
		t.Fatalf("unexpected shared/buffers: %d/%d", sum.MemShared, sum.MemBuffers)
	}
	if sum.SwapTotal != 4096000*1024 || sum.SwapFree != 4000000*1024 {
		t.Fatalf("unexpected swap figures: %d/%d", sum.SwapTotal, sum.SwapFree)
	}
	if sum.Load1 != 0.5 || sum.Load5 != 0.4 || sum.Load15 != 0.3 {
		t.Fatalf("unexpected load average: %.2f %.2f %.2f", sum.Load1, sum.Load5, sum.Load15)
	}
	if sum.Uptime <= 0 {
		t.Fatalf("expected positive uptime, got %v", sum.Uptime)
	}
	if sum.NumCPU <= 0 {
		t.Fatalf("expected positive cpu count, got %d", sum.NumCPU)
	}
}

func TestSummaryDegradesMissingLoadAvg(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", meminfoFixture)

	c, err := NewCollector(root)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("missing loadavg must not fail the summary: %v", err)
	}
	if sum.Load1 != 0 || sum.Load5 != 0 || sum.Load15 != 0 {
		t.Fatalf("expected zeroed load average, got %+v", sum)
	}
	if sum.Uptime != 0 {
		t.Fatalf("expected zero uptime without stat, got %v", sum.Uptime)
	}
}

func TestSummaryFatalWithoutMeminfo(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "loadavg", "0.10 0.10 0.10 1/100 42\n")

	c, err := NewCollector(root)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	if _, err := c.Summary(); err == nil {
		t.Fatal("expected error when meminfo is unreadable")
	}
}

func TestNewCollectorRejectsMissingRoot(t *testing.T) {
	if _, err := NewCollector(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing proc root")
	}
}

func TestSummaryUptimePlausible(t *testing.T) {
	c, err := NewCollector(fixtureRoot(t))
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	// btime fixture is fixed in the past, so uptime must exceed a year.
	if sum.Uptime < 365*24*time.Hour {
		t.Fatalf("uptime shorter than expected: %v", sum.Uptime)
	}
}
