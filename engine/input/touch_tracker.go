package input

import (
	"maps"
	"slices"

	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

// Touch is one active contact as reported by a polling backend.
type Touch struct {
	ID       int
	Position common.Position
}

// TouchTracker converts per-frame touch lists into pointer events and decides which contact is the
// primary one. A contact becomes primary only when it starts while no other contact is down, and it
// stays primary until lifted. Every other contact is reported with IsPrimary false.
type TouchTracker struct {
	primary    *ButtonTracker
	primaryID  int
	hasPrimary bool
	others     map[int]*ButtonTracker
}

// NewTouchTracker creates a tracker with no active contacts.
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{
		primary: NewButtonTracker(trackball.PointerTouch, true),
		others:  make(map[int]*ButtonTracker),
	}
}

// Update compares the contacts down this frame with the previous frame.
//
// Parameters:
//   - touches: every contact currently down, in the backend's reporting order
//
// Returns:
//   - []trackball.PointerEvent: down, move and up events in dispatch order
func (t *TouchTracker) Update(touches []Touch) []trackball.PointerEvent {
	var events []trackball.PointerEvent
	emit := func(ev trackball.PointerEvent, ok bool) {
		if ok {
			events = append(events, ev)
		}
	}

	present := make(map[int]common.Position, len(touches))
	for _, tc := range touches {
		present[tc.ID] = tc.Position
	}

	if t.hasPrimary {
		if pos, ok := present[t.primaryID]; ok {
			emit(t.primary.Track(pos))
		} else {
			emit(t.primary.Release(t.primary.Position()))
			t.hasPrimary = false
		}
	}

	for _, id := range slices.Sorted(maps.Keys(t.others)) {
		if _, ok := present[id]; !ok {
			b := t.others[id]
			emit(b.Release(b.Position()))
			delete(t.others, id)
		}
	}

	for _, tc := range touches {
		if t.hasPrimary && tc.ID == t.primaryID {
			continue
		}
		if b, ok := t.others[tc.ID]; ok {
			emit(b.Track(tc.Position))
			continue
		}
		if !t.hasPrimary && len(t.others) == 0 {
			t.primaryID = tc.ID
			t.hasPrimary = true
			emit(t.primary.Press(tc.Position))
			continue
		}
		b := NewButtonTracker(trackball.PointerTouch, false)
		t.others[tc.ID] = b
		emit(b.Press(tc.Position))
	}
	return events
}
