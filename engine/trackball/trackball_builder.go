package trackball

import "time"

// TrackballOption is a functional option for configuring a Trackball.
// Options that touch Config are applied after the defaults and before the configuration is frozen.
type TrackballOption func(*trackballImpl)

// WithHomeTilt sets the initial tilt angle.
//
// Parameters:
//   - tilt: initial tilt in radians
//
// Returns:
//   - TrackballOption: functional option to set the home tilt
func WithHomeTilt(tilt float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.HomeTilt = tilt
	}
}

// WithStartSpin sets the initial spin velocity. Zero starts at rest.
//
// Parameters:
//   - spin: initial spin velocity in radians per millisecond
//
// Returns:
//   - TrackballOption: functional option to set the start spin
func WithStartSpin(spin float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.StartSpin = spin
	}
}

// WithAutoTick enables or disables self-scheduling through the FrameScheduler.
// When disabled the host must call Tick once per frame.
//
// Parameters:
//   - enabled: true to let the trackball request its own frames
//
// Returns:
//   - TrackballOption: functional option to set auto ticking
func WithAutoTick(enabled bool) TrackballOption {
	return func(t *trackballImpl) {
		t.config.AutoTick = enabled
	}
}

// WithFriction sets the per-tick velocity decay fraction.
//
// Parameters:
//   - friction: fraction of velocity removed each tick, conceptually in [0, 1]
//
// Returns:
//   - TrackballOption: functional option to set friction
func WithFriction(friction float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.Friction = friction
	}
}

// WithRadiansPerPixel sets the pointer sensitivity per axis.
//
// Parameters:
//   - x: radians of spin per unit of horizontal pointer travel
//   - y: radians of tilt per unit of vertical pointer travel
//
// Returns:
//   - TrackballOption: functional option to set sensitivity
func WithRadiansPerPixel(x, y float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.RadiansPerPixel = [2]float64{x, y}
	}
}

// WithClampTilt sets the symmetric tilt limit.
//
// Parameters:
//   - clamp: maximum absolute tilt in radians
//
// Returns:
//   - TrackballOption: functional option to set the tilt clamp
func WithClampTilt(clamp float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.ClampTilt = clamp
	}
}

// WithEpsilon sets the Epsilon config field. It is stored but not used.
func WithEpsilon(epsilon float64) TrackballOption {
	return func(t *trackballImpl) {
		t.config.Epsilon = epsilon
	}
}

// WithAllowTilt sets the AllowTilt config field. It is stored but not used.
func WithAllowTilt(allow bool) TrackballOption {
	return func(t *trackballImpl) {
		t.config.AllowTilt = allow
	}
}

// WithAllowSpin sets the AllowSpin config field. It is stored but not used.
func WithAllowSpin(allow bool) TrackballOption {
	return func(t *trackballImpl) {
		t.config.AllowSpin = allow
	}
}

// WithScheduler sets the frame scheduler used when AutoTick is enabled.
//
// Parameters:
//   - scheduler: the host's per-frame callback scheduler
//
// Returns:
//   - TrackballOption: functional option to set the scheduler
func WithScheduler(scheduler FrameScheduler) TrackballOption {
	return func(t *trackballImpl) {
		t.scheduler = scheduler
	}
}

// WithClock replaces the wall clock Tick reads elapsed time from.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - TrackballOption: functional option to set the clock
func WithClock(now func() time.Time) TrackballOption {
	return func(t *trackballImpl) {
		t.now = now
	}
}
