package trackball

import "math"

// Config is the immutable configuration of a Trackball. It is assembled once in New from three
// layers (internal defaults, user-facing defaults, caller options) and only ever handed out by value.
//
// Values are not validated. A Friction outside [0, 1] makes momentum grow without bound or flip sign
// every tick; that is the caller's responsibility.
type Config struct {
	// HomeTilt is the initial tilt angle in radians.
	HomeTilt float64
	// StartSpin is the initial spin velocity in radians per millisecond. A non-zero value starts the
	// trackball in the Coasting state.
	StartSpin float64
	// AutoTick makes the trackball request its own Tick from the FrameScheduler every frame.
	AutoTick bool
	// Friction is the fraction of velocity removed per tick. 0 coasts forever, 1 disables momentum.
	Friction float64
	// RadiansPerPixel converts pointer deltas to angles: [0] for X (spin), [1] for Y (tilt).
	RadiansPerPixel [2]float64
	// ClampTilt is the symmetric tilt bound in radians.
	ClampTilt float64

	// Epsilon is accepted but not read by any computation.
	Epsilon float64
	// AllowTilt is accepted but not read by any computation.
	AllowTilt bool
	// AllowSpin is accepted but not read by any computation.
	AllowSpin bool
}

// internalConfig holds the settings users rarely change.
var internalConfig = Config{
	AllowTilt:       true,
	AllowSpin:       true,
	Epsilon:         3,
	RadiansPerPixel: [2]float64{0.01, 0.01},
	ClampTilt:       math.Pi / 2,
}

// applyUserDefaults layers the user-facing defaults over cfg.
func applyUserDefaults(cfg Config) Config {
	cfg.HomeTilt = 0.25
	cfg.StartSpin = 0.02
	cfg.AutoTick = true
	cfg.Friction = 0.125
	return cfg
}

// DefaultConfig returns the configuration a Trackball gets when no options are supplied.
//
// Returns:
//   - Config: internal defaults overlaid with user-facing defaults
func DefaultConfig() Config {
	return applyUserDefaults(internalConfig)
}
