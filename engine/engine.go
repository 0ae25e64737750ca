package engine

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/engine/profiler"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

// Window is the part of window.Window the engine drives: a message pump that calls back once per
// loop iteration until the window closes.
type Window interface {
	SetUpdateCallback(callback func())
	ProcessMessages()
	IsRunning() bool
}

// engine implements the Engine interface.
// Everything runs on the goroutine that calls Run, which is also the window thread.
type engine struct {
	running     bool
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)
	idleCheck      func() bool

	// Frame callbacks requested through RequestFrame. Callbacks requested while a frame is
	// running land in pending and run on the next frame.
	pending   []func()
	executing []func()

	lastFrame     time.Time
	renderedFirst bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for hosting a trackball in a window.
// It owns the frame loop and doubles as the trackball's FrameScheduler.
type Engine interface {
	trackball.FrameScheduler

	// Window returns the window driving the frame loop, or nil if none was set.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called at the start of each frame, after requested
	// frame callbacks have run.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function that draws a frame.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetIdleCheck registers a predicate consulted before rendering. While it reports true the render
	// callback is skipped; the first frame is always rendered.
	//
	// Parameters:
	//   - check: function reporting whether the scene is idle (typically Trackball.IsIdle)
	SetIdleCheck(check func() bool)

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the frame loop on the calling goroutine and blocks until the window closes or
	// Quit is called.
	Run()

	// Quit stops the frame loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetUpdateCallback(e.frame)
	}

	return e
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] Run called without a window")
		return
	}
	e.running = true
	e.lastFrame = time.Now()
	e.window.ProcessMessages()
	e.running = false
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

func (e *engine) quitting() bool {
	select {
	case <-e.quitChannel:
		return true
	default:
		return false
	}
}

func (e *engine) RequestFrame(callback func()) {
	e.pending = append(e.pending, callback)
}

// frame runs one iteration of the loop. It is the window's update callback.
func (e *engine) frame() {
	if e.quitting() {
		if closer, ok := e.window.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
		}
		return
	}

	now := time.Now()
	if e.lastFrame.IsZero() {
		e.lastFrame = now
	}
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.runRequested()

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	rendered := false
	if e.renderCallback != nil && (!e.renderedFirst || e.idleCheck == nil || !e.idleCheck()) {
		e.renderCallback(dt)
		e.renderedFirst = true
		rendered = true
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Frame(rendered)
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// runRequested swaps the pending queue out before running it so callbacks that re-request
// themselves are deferred to the next frame.
func (e *engine) runRequested() {
	e.executing, e.pending = e.pending, e.executing[:0]
	for _, cb := range e.executing {
		cb()
	}
	clear(e.executing)
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetIdleCheck(check func() bool) {
	e.idleCheck = check
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a frame rate cap into the minimum frame duration. Non-positive and
// non-finite rates mean uncapped.
func frameDuration(fps float64) time.Duration {
	if !(fps > 0) || math.IsInf(fps, 1) {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
