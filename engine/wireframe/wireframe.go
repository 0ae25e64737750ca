// Package wireframe holds the unit cube drawn by the trackball viewers and projects it through a
// fixed perspective camera.
package wireframe

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Segment is one projected edge in screen space, origin at the top-left corner.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Camera constants shared by the CPU projection and the GPU renderer.
const (
	FieldOfView = 45.0 // degrees
	Near        = 0.1
	Far         = 100.0
	EyeDistance = 4.0
)

var corners = [8]mgl64.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// Edges indexes corners pairwise: back face, front face, then the four connectors.
var Edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Corners returns the eight cube corners in model space.
func Corners() [8]mgl64.Vec3 {
	return corners
}

// ViewProjection builds the camera transform used to look at the cube.
//
// Parameters:
//   - aspect: viewport width divided by height
//
// Returns:
//   - mgl64.Mat4: projection * view
func ViewProjection(aspect float64) mgl64.Mat4 {
	projection := mgl64.Perspective(mgl64.DegToRad(FieldOfView), aspect, Near, Far)
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 0, EyeDistance},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	return projection.Mul4(view)
}

// Project transforms the cube by orientation and maps each edge into a width x height viewport.
//
// Parameters:
//   - orientation: model rotation, typically Trackball.Matrix()
//   - width, height: viewport size in pixels
//
// Returns:
//   - []Segment: the 12 edges in screen coordinates
func Project(orientation mgl64.Mat4, width, height float64) []Segment {
	if width <= 0 || height <= 0 {
		return nil
	}
	mvp := ViewProjection(width / height).Mul4(orientation)

	var screen [8][2]float64
	for i, c := range corners {
		clip := mvp.Mul4x1(c.Vec4(1))
		ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
		screen[i] = [2]float64{
			(ndcX + 1) * 0.5 * width,
			(1 - ndcY) * 0.5 * height,
		}
	}

	segments := make([]Segment, 0, len(Edges))
	for _, e := range Edges {
		a, b := screen[e[0]], screen[e[1]]
		segments = append(segments, Segment{X0: a[0], Y0: a[1], X1: b[0], Y1: b[1]})
	}
	return segments
}

// Vertices returns the edges as a flat line list of xyz float32 triples, two vertices per edge.
func Vertices() []float32 {
	out := make([]float32, 0, len(Edges)*2*3)
	for _, e := range Edges {
		for _, idx := range e {
			c := corners[idx]
			out = append(out, float32(c.X()), float32(c.Y()), float32(c.Z()))
		}
	}
	return out
}
