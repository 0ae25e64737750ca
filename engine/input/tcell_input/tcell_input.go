// Package tcell_input translates tcell mouse events into trackball pointer events.
package tcell_input

import (
	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/input"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/gdamore/tcell/v2"
)

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Translator tracks the left button across tcell mouse reports, which carry absolute button state
// rather than press and release transitions.
type Translator struct {
	buttons    *input.ButtonTracker
	cellWidth  float64
	cellHeight float64
}

// TranslatorOption is a functional option for configuring a Translator.
type TranslatorOption func(*Translator)

// WithCellSize scales cell coordinates into pixel-like units so the trackball's radians-per-pixel
// setting behaves the same in a terminal as in a window.
//
// Parameters:
//   - width, height: size of one terminal cell in pixels
//
// Returns:
//   - TranslatorOption: option function to apply
func WithCellSize(width, height float64) TranslatorOption {
	return func(t *Translator) {
		t.cellWidth = width
		t.cellHeight = height
	}
}

// NewTranslator creates a Translator. Cells default to 8x16 pixels.
//
// Parameters:
//   - options: functional options to configure the translator
//
// Returns:
//   - *Translator: the translator, button released
func NewTranslator(options ...TranslatorOption) *Translator {
	t := &Translator{
		buttons:    input.NewButtonTracker(trackball.PointerMouse, true),
		cellWidth:  8,
		cellHeight: 16,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Translate converts one tcell mouse event.
//
// Parameters:
//   - ev: the mouse event from Screen.PollEvent
//
// Returns:
//   - []trackball.PointerEvent: zero or more events to pass to Trackball.HandleEvent
func (t *Translator) Translate(ev *tcell.EventMouse) []trackball.PointerEvent {
	x, y := ev.Position()
	pos := common.Position{X: float64(x) * t.cellWidth, Y: float64(y) * t.cellHeight}
	buttons := ev.Buttons()

	var events []trackball.PointerEvent
	if pointerEvent, ok := t.buttons.Update(buttons&tcell.Button1 != 0, pos); ok {
		events = append(events, pointerEvent)
	}
	if buttons&wheelMask != 0 {
		events = append(events, t.buttons.Wheel(pos))
	}
	return events
}

// Dragging reports whether the left button is currently held.
func (t *Translator) Dragging() bool {
	return t.buttons.Pressed()
}
