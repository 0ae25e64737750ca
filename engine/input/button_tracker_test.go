package input

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

func TestUpdateTransitions(t *testing.T) {
	b := NewButtonTracker(trackball.PointerMouse, true)

	steps := []struct {
		pressed bool
		pos     common.Position
		want    trackball.EventType
		emit    bool
	}{
		{false, common.Position{X: 1, Y: 1}, 0, false},
		{true, common.Position{X: 1, Y: 1}, trackball.EventPointerDown, true},
		{true, common.Position{X: 1, Y: 1}, 0, false},
		{true, common.Position{X: 4, Y: 2}, trackball.EventPointerMove, true},
		{false, common.Position{X: 5, Y: 2}, trackball.EventPointerUp, true},
		{false, common.Position{X: 9, Y: 9}, 0, false},
	}

	for i, s := range steps {
		ev, ok := b.Update(s.pressed, s.pos)
		if ok != s.emit {
			t.Fatalf("step %d: emitted = %v, want %v", i, ok, s.emit)
		}
		if !ok {
			continue
		}
		if ev.Type != s.want || ev.Position != s.pos {
			t.Fatalf("step %d: event = %+v, want type %v at %v", i, ev, s.want, s.pos)
		}
		if ev.PointerType != trackball.PointerMouse || !ev.IsPrimary {
			t.Fatalf("step %d: event not stamped as a primary mouse: %+v", i, ev)
		}
	}
}

func TestButtonsMask(t *testing.T) {
	b := NewButtonTracker(trackball.PointerTouch, false)

	down, _ := b.Press(common.Position{})
	move, _ := b.Move(common.Position{X: 1})
	wheel := b.Wheel(common.Position{X: 1})
	up, _ := b.Release(common.Position{X: 2})

	if down.Buttons != 1 || move.Buttons != 1 || wheel.Buttons != 1 || up.Buttons != 0 {
		t.Fatalf("buttons = %d %d %d %d, want 1 1 1 0", down.Buttons, move.Buttons, wheel.Buttons, up.Buttons)
	}
	if down.IsPrimary {
		t.Fatalf("secondary tracker emitted a primary event")
	}
	if _, ok := b.Release(common.Position{}); ok {
		t.Fatalf("second release emitted an event")
	}
}

func TestTrackerDrivesTrackball(t *testing.T) {
	tb := trackball.New(trackball.WithAutoTick(false), trackball.WithStartSpin(0))
	b := NewButtonTracker(trackball.PointerMouse, true)

	for _, step := range []struct {
		pressed bool
		x       float64
	}{{true, 0}, {true, 10}, {true, 20}, {false, 20}} {
		if ev, ok := b.Update(step.pressed, common.Position{X: step.x}); ok {
			tb.HandleEvent(ev)
		}
	}

	spin, _ := tb.Angles()
	if math.Abs(spin-0.2) > 1e-12 {
		t.Fatalf("spin = %v, want 0.2", spin)
	}
	if tb.State() != trackball.StateCoasting {
		t.Fatalf("state = %v, want Coasting", tb.State())
	}
}

func TestMoveForwardsUnchangedPosition(t *testing.T) {
	tb := trackball.New(trackball.WithAutoTick(false), trackball.WithStartSpin(0))
	b := NewButtonTracker(trackball.PointerMouse, true)

	dispatch := func(ev trackball.PointerEvent, ok bool) bool {
		if ok {
			tb.HandleEvent(ev)
		}
		return ok
	}

	dispatch(b.Press(common.Position{}))
	dispatch(b.Move(common.Position{X: 10}))
	if spin, _ := tb.Velocity(); spin == 0 {
		t.Fatalf("spin velocity = 0 after a drag move, want non-zero")
	}

	if dispatch(b.Track(common.Position{X: 10})) {
		t.Fatalf("Track emitted a move at an unchanged position")
	}
	if spin, _ := tb.Velocity(); spin == 0 {
		t.Fatalf("Track suppressed move still zeroed the velocity")
	}

	if !dispatch(b.Move(common.Position{X: 10})) {
		t.Fatalf("Move dropped a move at an unchanged position")
	}
	if spin, tilt := tb.Velocity(); spin != 0 || tilt != 0 {
		t.Fatalf("velocity = (%v, %v) after a stationary move, want (0, 0)", spin, tilt)
	}
}
