package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/engine/input/tcell_input"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/Carmen-Shannon/oxy-trackball/engine/wireframe"
	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = 8
	cellHeight = 16
)

type viewer struct {
	screen     tcell.Screen
	tb         trackball.Trackball
	translator *tcell_input.Translator
	next       func()
	chime      *chime
	wasIdle    bool
}

func newViewer(friction, startSpin float64, sound bool) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{
		screen:     screen,
		translator: tcell_input.NewTranslator(tcell_input.WithCellSize(cellWidth, cellHeight)),
	}
	// The ticker loop drains the single pending frame request.
	v.tb = trackball.New(
		trackball.WithScheduler(trackball.FrameSchedulerFunc(func(callback func()) { v.next = callback })),
		trackball.WithFriction(friction),
		trackball.WithStartSpin(startSpin),
	)
	v.wasIdle = v.tb.IsIdle()

	if sound {
		c, err := newChime()
		if err != nil {
			screen.Fini()
			return nil, fmt.Errorf("init audio: %w", err)
		}
		v.chime = c
	}
	return v, nil
}

// handleInput returns false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		for _, pe := range v.translator.Translate(ev) {
			v.tb.HandleEvent(pe)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) frame() {
	if cb := v.next; cb != nil {
		v.next = nil
		cb()
	}

	idle := v.tb.IsIdle()
	if idle && !v.wasIdle && v.chime != nil {
		v.chime.play()
	}
	v.wasIdle = idle

	v.draw()
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for _, s := range wireframe.Project(v.tb.Matrix(), float64(w*cellWidth), float64(h*cellHeight)) {
		plot(v.screen, s.X0/cellWidth, s.Y0/cellHeight, s.X1/cellWidth, s.Y1/cellHeight, style)
	}

	spin, tilt := v.tb.Angles()
	status := fmt.Sprintf(" %-12s spin %+7.3f  tilt %+6.3f  idle %-5v  q: quit ", v.tb.State(), spin, tilt, v.tb.IsIdle())
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

// plot walks a segment in cell space one cell at a time.
func plot(screen tcell.Screen, x0, y0, x1, y1 float64, style tcell.Style) {
	dx, dy := x1-x0, y1-y0
	steps := int(max(abs(dx), abs(dy)))
	if steps == 0 {
		screen.SetContent(int(x0), int(y0), '#', nil, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		screen.SetContent(int(x0+dx*t+0.5), int(y0+dy*t+0.5), '#', nil, style)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (v *viewer) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.frame()
		}
	}
}

func (v *viewer) cleanup() {
	if v.chime != nil {
		v.chime.close()
	}
	v.screen.Fini()
}

func main() {
	friction := flag.Float64("friction", 0.125, "Fraction of velocity lost per tick (0..1)")
	startSpin := flag.Float64("start-spin", 0.02, "Initial spin velocity in radians per millisecond")
	sound := flag.Bool("sound", false, "Play a tone when the cube comes to rest")
	flag.Parse()

	v, err := newViewer(*friction, *startSpin, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.cleanup()

	v.run()
}
