package trackball

import "github.com/go-gl/mathgl/mgl64"

// Matrix composes the resolved angles into a single rotation. The result is Rx(tilt) * Ry(spin) in
// column-major form for column vectors, so spin about the vertical axis is applied first and tilt
// about the horizontal axis second. Swapping the order would tilt around the spun X axis instead of
// the view's X axis.
func (t *trackballImpl) Matrix() mgl64.Mat4 {
	spin, tilt := t.Angles()
	return mgl64.HomogRotate3DX(tilt).Mul4(mgl64.HomogRotate3DY(spin))
}
