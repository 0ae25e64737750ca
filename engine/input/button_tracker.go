// Package input turns polled or callback-style button state from the windowing backends into
// trackball.PointerEvent values. Backend specific pollers live in the tcell_input and ebiten_input
// sub-packages; the glfw window uses ButtonTracker directly.
package input

import (
	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

// ButtonTracker remembers whether the primary button is held and where the pointer was last seen,
// so that backends reporting absolute state can be converted into down, move and up transitions.
//
// Callback backends report motion through Move, which forwards every move while the button is held,
// including one at an unchanged position; the trackball treats that as a stop and zeroes its
// velocity. Polling backends use Track (or Update), which only reports a move when the position
// changed, since an unchanged poll means no motion happened.
type ButtonTracker struct {
	pointerType trackball.PointerType
	primary     bool
	pressed     bool
	last        common.Position
}

// NewButtonTracker creates a tracker that stamps every event with the given pointer type.
//
// Parameters:
//   - pointerType: device kind reported on emitted events
//   - primary: value of PointerEvent.IsPrimary on emitted events
//
// Returns:
//   - *ButtonTracker: the tracker, initially released
func NewButtonTracker(pointerType trackball.PointerType, primary bool) *ButtonTracker {
	return &ButtonTracker{
		pointerType: pointerType,
		primary:     primary,
	}
}

// Pressed reports whether the tracked button is currently held.
func (b *ButtonTracker) Pressed() bool {
	return b.pressed
}

// Position returns the last position passed to the tracker.
func (b *ButtonTracker) Position() common.Position {
	return b.last
}

// Update compares the new button state with the tracked one.
//
// Parameters:
//   - pressed: whether the button is held now
//   - position: current pointer position
//
// Returns:
//   - trackball.PointerEvent: the resulting event
//   - bool: false when nothing changed and no event should be dispatched
func (b *ButtonTracker) Update(pressed bool, position common.Position) (trackball.PointerEvent, bool) {
	switch {
	case pressed && !b.pressed:
		return b.Press(position)
	case !pressed && b.pressed:
		return b.Release(position)
	default:
		return b.Track(position)
	}
}

// Press reports a pointer down unless the button is already held.
func (b *ButtonTracker) Press(position common.Position) (trackball.PointerEvent, bool) {
	if b.pressed {
		return trackball.PointerEvent{}, false
	}
	b.pressed = true
	b.last = position
	return b.event(trackball.EventPointerDown, 1, position), true
}

// Release reports a pointer up unless the button is already released.
func (b *ButtonTracker) Release(position common.Position) (trackball.PointerEvent, bool) {
	if !b.pressed {
		return trackball.PointerEvent{}, false
	}
	b.pressed = false
	b.last = position
	return b.event(trackball.EventPointerUp, 0, position), true
}

// Move reports a pointer move while the button is held.
func (b *ButtonTracker) Move(position common.Position) (trackball.PointerEvent, bool) {
	if !b.pressed {
		return trackball.PointerEvent{}, false
	}
	b.last = position
	return b.event(trackball.EventPointerMove, 1, position), true
}

// Track is Move for polled positions: it reports nothing when the position has not changed.
func (b *ButtonTracker) Track(position common.Position) (trackball.PointerEvent, bool) {
	if position.Equals(b.last) {
		return trackball.PointerEvent{}, false
	}
	return b.Move(position)
}

// Wheel builds a wheel event at the given position. Button state is left untouched.
func (b *ButtonTracker) Wheel(position common.Position) trackball.PointerEvent {
	var buttons uint32
	if b.pressed {
		buttons = 1
	}
	return b.event(trackball.EventWheel, buttons, position)
}

func (b *ButtonTracker) event(eventType trackball.EventType, buttons uint32, position common.Position) trackball.PointerEvent {
	return trackball.PointerEvent{
		Type:        eventType,
		PointerType: b.pointerType,
		IsPrimary:   b.primary,
		Buttons:     buttons,
		Position:    position,
	}
}
