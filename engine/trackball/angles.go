package trackball

import "github.com/Carmen-Shannon/oxy-trackball/common"

// resolveAngles computes the instantaneous spin and tilt from the persisted base angles and the drag
// session. It has no side effects; the drag-update velocity and the matrix builder both call it.
// Tilt is clamped in every state, including Resting and Coasting.
//
// Parameters:
//   - state: the current interaction state
//   - baseSpin, baseTilt: persisted angles in radians
//   - start, current: drag anchor and live pointer position
//   - cfg: the trackball configuration
//
// Returns:
//   - spin, tilt: resolved angles in radians
func resolveAngles(state State, baseSpin, baseTilt float64, start, current common.Position, cfg Config) (spin, tilt float64) {
	delta := current.Sub(start)
	spin, tilt = baseSpin, baseTilt

	switch state {
	case StateDraggingSpin:
		spin += cfg.RadiansPerPixel[0] * delta.X
	case StateDraggingTilt:
		tilt += cfg.RadiansPerPixel[1] * delta.Y
	case StateDraggingInit:
		spin += cfg.RadiansPerPixel[0] * delta.X
		tilt += cfg.RadiansPerPixel[1] * delta.Y
	}

	tilt = min(tilt, cfg.ClampTilt)
	tilt = max(tilt, -cfg.ClampTilt)
	return spin, tilt
}
