package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-trackball/engine"
	"github.com/Carmen-Shannon/oxy-trackball/engine/renderer"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/Carmen-Shannon/oxy-trackball/engine/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func main() {
	friction := flag.Float64("friction", 0.125, "Fraction of velocity lost per tick (0..1)")
	startSpin := flag.Float64("start-spin", 0.02, "Initial spin velocity in radians per millisecond")
	profile := flag.Bool("profile", false, "Log frame statistics once per second")
	uncapped := flag.Bool("uncapped", false, "Present without vsync")
	fps := flag.Float64("fps", 0, "Frame rate cap, fractional rates allowed (0 = uncapped)")
	flag.Parse()

	// ── Engine + Window ─────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("Trackball"),
		window.WithWidth(960),
		window.WithHeight(720),
	)
	eng := engine.NewEngine(
		engine.WithProfiling(*profile),
		engine.WithWindow(win),
		engine.WithRenderFrameLimit(*fps),
	)

	// ── Trackball, ticked by the engine's frame scheduler ──────────
	tb := trackball.New(
		trackball.WithScheduler(eng),
		trackball.WithFriction(*friction),
		trackball.WithStartSpin(*startSpin),
	)

	// ── Renderer ────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if *uncapped {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
	)
	if err != nil {
		log.Fatalf("[Trackball] failed to create renderer: %v", err)
	}
	defer r.Release()

	win.SetResizeCallback(r.Resize)
	win.SetPointerCallback(tb.HandleEvent)
	win.SetKeyDownCallback(func(keyCode uint32) {
		if glfw.Key(keyCode) == glfw.KeyQ {
			eng.Quit()
		}
	})

	// Nothing moves while the trackball is idle and no drag is in progress.
	eng.SetIdleCheck(func() bool {
		return tb.IsIdle() && !tb.State().Dragging()
	})
	eng.SetRenderCallback(func(deltaTime float32) {
		if err := r.Draw(tb.Matrix()); err != nil {
			log.Printf("[Trackball] draw failed: %v", err)
		}
	})

	eng.Run()
}
