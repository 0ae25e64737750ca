package replay

import (
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is the trackball state recorded after one tick.
type Frame struct {
	Elapsed      time.Duration
	State        trackball.State
	Spin         float64
	Tilt         float64
	SpinVelocity float64
	TiltVelocity float64
	Idle         bool
	Matrix       mgl64.Mat4
}

type runner struct {
	start            time.Time
	trackballOptions []trackball.TrackballOption
}

// Run plays script through a new Trackball driven by a manual clock. The trackball is ticked once at
// the start time before the first command, the same way a frame scheduler runs the first tick
// immediately, so the first wait covers its full duration.
//
// Parameters:
//   - script: the parsed commands
//   - options: functional options to configure the run
//
// Returns:
//   - []Frame: one entry per tick caused by wait commands
func Run(script Script, options ...RunOption) []Frame {
	r := &runner{
		start: time.Unix(0, 0),
	}
	for _, option := range options {
		option(r)
	}

	now := r.start
	tbOptions := append([]trackball.TrackballOption{}, r.trackballOptions...)
	tbOptions = append(tbOptions,
		trackball.WithAutoTick(false),
		trackball.WithClock(func() time.Time { return now }),
	)
	tb := trackball.New(tbOptions...)
	tb.Tick()

	frames := make([]Frame, 0, min(script.Ticks(), MaxTicks))
	for _, op := range script.Ops {
		if op.Kind == OpWait {
			for i := 0; i < op.Repeat; i++ {
				now = now.Add(op.Wait)
				tb.Tick()
				frames = append(frames, capture(tb, now.Sub(r.start)))
			}
			continue
		}
		tb.HandleEvent(pointerEvent(op))
	}
	return frames
}

func pointerEvent(op Op) trackball.PointerEvent {
	ev := trackball.PointerEvent{
		PointerType: trackball.PointerMouse,
		IsPrimary:   true,
		Buttons:     1,
		Position:    op.Position,
	}
	switch op.Kind {
	case OpDown:
		ev.Type = trackball.EventPointerDown
	case OpMove:
		ev.Type = trackball.EventPointerMove
	case OpUp:
		ev.Type = trackball.EventPointerUp
		ev.Buttons = 0
	case OpTouch:
		ev.Type = trackball.EventPointerMove
		ev.PointerType = trackball.PointerTouch
		ev.IsPrimary = false
	case OpWheel:
		ev.Type = trackball.EventWheel
		ev.Buttons = 0
	}
	return ev
}

func capture(tb trackball.Trackball, elapsed time.Duration) Frame {
	spin, tilt := tb.Angles()
	spinVelocity, tiltVelocity := tb.Velocity()
	return Frame{
		Elapsed:      elapsed,
		State:        tb.State(),
		Spin:         spin,
		Tilt:         tilt,
		SpinVelocity: spinVelocity,
		TiltVelocity: tiltVelocity,
		Idle:         tb.IsIdle(),
		Matrix:       tb.Matrix(),
	}
}
