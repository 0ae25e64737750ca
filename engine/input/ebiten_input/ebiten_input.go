// Package ebiten_input polls ebiten's mouse, wheel and touch state once per Update and converts it
// into trackball pointer events.
package ebiten_input

import (
	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/input"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller holds the button and touch state carried between ebiten ticks.
type Poller struct {
	mouse    *input.ButtonTracker
	touches  *input.TouchTracker
	touchIDs []ebiten.TouchID
	frame    []input.Touch
}

// NewPoller creates a Poller with no buttons or contacts down.
func NewPoller() *Poller {
	return &Poller{
		mouse:   input.NewButtonTracker(trackball.PointerMouse, true),
		touches: input.NewTouchTracker(),
	}
}

// Poll reads the current input state. Call it once from ebiten.Game.Update.
//
// Returns:
//   - []trackball.PointerEvent: events since the previous call, in dispatch order
func (p *Poller) Poll() []trackball.PointerEvent {
	var events []trackball.PointerEvent
	emit := func(ev trackball.PointerEvent, ok bool) {
		if ok {
			events = append(events, ev)
		}
	}

	cx, cy := ebiten.CursorPosition()
	cursor := common.Position{X: float64(cx), Y: float64(cy)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		emit(p.mouse.Press(cursor))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		emit(p.mouse.Release(cursor))
	default:
		emit(p.mouse.Track(cursor))
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		events = append(events, p.mouse.Wheel(cursor))
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.frame = p.frame[:0]
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p.frame = append(p.frame, input.Touch{
			ID:       int(id),
			Position: common.Position{X: float64(tx), Y: float64(ty)},
		})
	}
	events = append(events, p.touches.Update(p.frame)...)

	return events
}
