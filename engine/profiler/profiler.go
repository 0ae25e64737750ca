package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame throughput and memory statistics for performance monitoring.
// Rendered and idle-skipped frames are counted separately so an idle trackball shows up as a
// drop in rendered FPS rather than a stall. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	renderedCount  int
	skippedCount   int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now    func() time.Time
	logf   func(format string, args ...any)
	report Report
}

// Report is the snapshot of statistics produced on each logging interval.
type Report struct {
	FPS         float64
	RenderedFPS float64
	Skipped     int
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	IntervalGCs uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithClock replaces the time source, mainly for tests.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogger replaces log.Printf as the output sink.
//
// Parameters:
//   - logf: printf-style logging function
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Frame records one loop iteration.
//
// Parameters:
//   - rendered: false when the frame was skipped because the scene was idle
func (p *Profiler) Frame(rendered bool) {
	p.frameCount++
	if rendered {
		p.renderedCount++
	} else {
		p.skippedCount++
	}
}

// Tick logs statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	seconds := elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	lastPauseUs, maxPauseUs := gcPauses(&p.memStats, p.lastGCCount)

	p.report = Report{
		FPS:         float64(p.frameCount) / seconds,
		RenderedFPS: float64(p.renderedCount) / seconds,
		Skipped:     p.skippedCount,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(allocDelta) / 1024 / 1024 / seconds,
		GCCount:     p.memStats.NumGC,
		IntervalGCs: p.memStats.NumGC - p.lastGCCount,
		LastPauseUs: lastPauseUs,
		MaxPauseUs:  maxPauseUs,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}

	p.logf("[Profiler] FPS: %.2f | Rendered: %.2f | Idle-skipped: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (+%d, last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.report.FPS, p.report.RenderedFPS, p.report.Skipped, p.report.HeapMB, p.report.AllocRateMB,
		p.report.GCCount, p.report.IntervalGCs, p.report.LastPauseUs, p.report.MaxPauseUs, p.report.SysMB)

	p.frameCount = 0
	p.renderedCount = 0
	p.skippedCount = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// gcPauses returns the most recent GC pause and the longest pause among collections since
// sinceGC, in microseconds. PauseNs is a ring of the last 256 pauses.
func gcPauses(stats *runtime.MemStats, sinceGC uint32) (lastUs, maxUs uint64) {
	gcCount := stats.NumGC
	if gcCount == 0 {
		return 0, 0
	}
	lastUs = stats.PauseNs[(gcCount-1)%256] / 1000

	start := sinceGC
	if gcCount-start > 256 {
		start = gcCount - 256
	}
	for i := start; i < gcCount; i++ {
		if pause := stats.PauseNs[i%256] / 1000; pause > maxUs {
			maxUs = pause
		}
	}
	return lastUs, maxUs
}

// LastReport returns the statistics from the most recent logged interval.
//
// Returns:
//   - Report: the last report, zero before the first interval elapses
func (p *Profiler) LastReport() Report {
	return p.report
}
