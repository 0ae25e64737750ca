package profiler

import (
	"runtime"
	"testing"
	"time"
)

func TestTickReportsRenderedAndSkipped(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var lines int
	p := NewProfiler(
		WithClock(func() time.Time { return now }),
		WithLogger(func(string, ...any) { lines++ }),
	)

	for i := 0; i < 30; i++ {
		p.Frame(i%3 == 0)
	}
	if p.Tick() {
		t.Fatalf("Tick reported before the interval elapsed")
	}

	now = now.Add(2 * time.Second)
	if !p.Tick() {
		t.Fatalf("Tick did not report after the interval elapsed")
	}
	r := p.LastReport()
	if r.FPS != 15 || r.RenderedFPS != 5 || r.Skipped != 20 {
		t.Fatalf("report = %+v, want FPS 15, rendered 5, skipped 20", r)
	}
	if lines != 1 {
		t.Fatalf("logged %d lines, want 1", lines)
	}

	now = now.Add(time.Second)
	p.Tick()
	if r := p.LastReport(); r.FPS != 0 || r.Skipped != 0 {
		t.Fatalf("counters were not reset: %+v", r)
	}
}

func TestGCPausesCoverOnlyTheInterval(t *testing.T) {
	var stats runtime.MemStats
	stats.NumGC = 5
	stats.PauseNs[0] = 900_000
	stats.PauseNs[1] = 100_000
	stats.PauseNs[2] = 300_000
	stats.PauseNs[3] = 200_000
	stats.PauseNs[4] = 50_000

	last, maxUs := gcPauses(&stats, 2)
	if last != 50 || maxUs != 300 {
		t.Fatalf("gcPauses = %d, %d, want 50, 300", last, maxUs)
	}

	if last, maxUs := gcPauses(&stats, 5); last != 50 || maxUs != 0 {
		t.Fatalf("gcPauses with no new collections = %d, %d, want 50, 0", last, maxUs)
	}
	if last, maxUs := gcPauses(&runtime.MemStats{}, 0); last != 0 || maxUs != 0 {
		t.Fatalf("gcPauses before any collection = %d, %d, want 0, 0", last, maxUs)
	}
}

func TestGCPausesWrapRing(t *testing.T) {
	var stats runtime.MemStats
	stats.NumGC = 300
	for i := range stats.PauseNs {
		stats.PauseNs[i] = 1000
	}
	stats.PauseNs[299%256] = 7000

	last, maxUs := gcPauses(&stats, 0)
	if last != 7 || maxUs != 7 {
		t.Fatalf("gcPauses = %d, %d, want 7, 7", last, maxUs)
	}
}
