// Package snapshot rasterizes the trackball cube on the CPU and writes replay recordings to disk as
// WebP frames, so gestures can be inspected without a GPU or a window.
package snapshot

import (
	"image"
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-trackball/engine/wireframe"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
)

// Style holds the colors used by Render.
type Style struct {
	Background color.RGBA
	Line       color.RGBA
}

// DefaultStyle draws light grey lines on a dark background, matching the GPU renderer.
var DefaultStyle = Style{
	Background: color.RGBA{R: 26, G: 26, B: 26, A: 255},
	Line:       color.RGBA{R: 230, G: 230, B: 230, A: 255},
}

// Render draws the cube rotated by orientation into a size x size image. The cube is rasterized at
// size*supersample and downsampled with CatmullRom to smooth the edges.
//
// Parameters:
//   - orientation: the model rotation, typically Trackball.Matrix() or replay.Frame.Matrix
//   - size: output width and height in pixels
//   - supersample: supersampling factor, values below 1 are treated as 1
//   - style: background and line colors
//
// Returns:
//   - *image.NRGBA: the rendered frame
func Render(orientation mgl64.Mat4, size, supersample int, style Style) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	canvas := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	for _, s := range wireframe.Project(orientation, float64(renderSize), float64(renderSize)) {
		drawLine(canvas, s, supersample, style.Line)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if supersample == 1 {
		draw.Draw(dst, dst.Bounds(), canvas, image.Point{}, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return dst
}

// drawLine plots a segment with Bresenham's algorithm, stamping a width x width square per step.
func drawLine(img *image.RGBA, s wireframe.Segment, width int, c color.RGBA) {
	x0, y0 := int(math.Round(s.X0)), int(math.Round(s.Y0))
	x1, y1 := int(math.Round(s.X1)), int(math.Round(s.Y1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		stamp(img, x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func stamp(img *image.RGBA, cx, cy, width int, c color.RGBA) {
	half := width / 2
	b := img.Bounds()
	for y := cy - half; y < cy-half+width; y++ {
		for x := cx - half; x < cx-half+width; x++ {
			if image.Pt(x, y).In(b) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
