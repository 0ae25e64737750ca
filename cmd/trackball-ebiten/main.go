package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/Carmen-Shannon/oxy-trackball/engine/input/ebiten_input"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
	"github.com/Carmen-Shannon/oxy-trackball/engine/wireframe"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	background = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	lineColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// game ticks the trackball manually from ebiten's fixed-rate Update.
type game struct {
	tb     trackball.Trackball
	poller *ebiten_input.Poller
}

func (g *game) Update() error {
	for _, ev := range g.poller.Poll() {
		g.tb.HandleEvent(ev)
	}
	g.tb.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := screen.Bounds()
	for _, s := range wireframe.Project(g.tb.Matrix(), float64(b.Dx()), float64(b.Dy())) {
		vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 2, lineColor, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	friction := flag.Float64("friction", 0.125, "Fraction of velocity lost per tick (0..1)")
	startSpin := flag.Float64("start-spin", 0.02, "Initial spin velocity in radians per millisecond")
	flag.Parse()

	g := &game{
		tb: trackball.New(
			trackball.WithAutoTick(false),
			trackball.WithFriction(*friction),
			trackball.WithStartSpin(*startSpin),
		),
		poller: ebiten_input.NewPoller(),
	}

	ebiten.SetWindowTitle("Trackball (ebiten)")
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("[Trackball] %v", err)
	}
}
