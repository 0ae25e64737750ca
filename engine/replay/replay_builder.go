package replay

import (
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

// RunOption is a functional option for configuring Run.
type RunOption func(*runner)

// WithTrackballOptions passes options through to trackball.New. AutoTick and the clock are always
// overridden so the run stays deterministic.
//
// Parameters:
//   - options: trackball options such as WithFriction or WithStartSpin
//
// Returns:
//   - RunOption: option function to apply
func WithTrackballOptions(options ...trackball.TrackballOption) RunOption {
	return func(r *runner) {
		r.trackballOptions = append(r.trackballOptions, options...)
	}
}

// WithStart sets the manual clock's starting time. Frame.Elapsed is measured from it.
//
// Parameters:
//   - start: the initial clock value
//
// Returns:
//   - RunOption: option function to apply
func WithStart(start time.Time) RunOption {
	return func(r *runner) {
		r.start = start
	}
}
