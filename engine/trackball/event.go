package trackball

import "github.com/Carmen-Shannon/oxy-trackball/common"

// EventType identifies the kind of pointer event.
type EventType int

const (
	EventPointerDown EventType = iota
	EventPointerUp
	EventPointerMove
	EventWheel
)

// PointerType identifies the device that produced a pointer event.
type PointerType int

const (
	PointerMouse PointerType = iota
	PointerTouch
	PointerPen
)

// PointerEvent is a platform-neutral pointer event. Adapters for glfw, ebiten and tcell translate their
// native input into this form.
type PointerEvent struct {
	Type        EventType
	PointerType PointerType
	// IsPrimary is false for every touch contact after the first one currently down.
	IsPrimary bool
	// Buttons is a bitmask of pressed buttons, 0 when none are held.
	Buttons  uint32
	Position common.Position
}

func (t *trackballImpl) HandleEvent(ev PointerEvent) {
	if ev.PointerType == PointerTouch && !ev.IsPrimary {
		return
	}

	switch ev.Type {
	case EventPointerDown:
		t.StartDrag(ev.Position)
	case EventPointerUp:
		t.EndDrag(ev.Position)
	case EventPointerMove:
		if ev.Buttons != 0 {
			t.UpdateDrag(ev.Position)
		}
	case EventWheel:
		// Wheel events are accepted and intentionally have no effect.
	}
}
