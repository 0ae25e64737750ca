package renderer

import (
	"github.com/Carmen-Shannon/oxy-trackball/engine/wireframe"
	"github.com/go-gl/mathgl/mgl64"
)

// CubeUniform is the uniform block read by the wireframe shader at group 0, binding 0.
// Layout matches the WGSL struct: a column-major mat4x4<f32> followed by a vec4<f32>.
type CubeUniform struct {
	MVP   [16]float32
	Color [4]float32
}

// clipCorrection remaps mgl64's OpenGL clip depth [-1, 1] to the WebGPU range [0, 1].
var clipCorrection = mgl64.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// NewCubeUniform builds the uniform for one frame.
//
// Parameters:
//   - orientation: the model rotation from Trackball.Matrix()
//   - aspect: surface width divided by height
//   - color: RGBA line color
//
// Returns:
//   - CubeUniform: the packed uniform
func NewCubeUniform(orientation mgl64.Mat4, aspect float64, color [4]float32) CubeUniform {
	mvp := clipCorrection.Mul4(wireframe.ViewProjection(aspect)).Mul4(orientation)
	u := CubeUniform{Color: color}
	for i, v := range mvp {
		u.MVP[i] = float32(v)
	}
	return u
}
