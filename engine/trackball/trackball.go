package trackball

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/go-gl/mathgl/mgl64"
)

// initialInertia scales the per-update angle delta into the angular velocity used for coasting.
// It is independent of Config.Friction.
const initialInertia = 0.125

// Trackball turns pointer drags into a spin/tilt orientation with momentum.
//
// A Trackball is not safe for concurrent use. Every method is expected to run on the same goroutine
// that delivers pointer events and frame callbacks.
type Trackball interface {
	// StartDrag anchors a new drag at position and enters StateDraggingInit, interrupting any coasting.
	//
	// Parameters:
	//   - position: pointer position where the button went down
	StartDrag(position common.Position)

	// UpdateDrag moves the live pointer position and sets the angular velocity from the resulting
	// change in resolved angles. The state is unchanged.
	//
	// Parameters:
	//   - position: current pointer position
	UpdateDrag(position common.Position)

	// EndDrag bakes the full drag delta into the base angles and enters StateCoasting,
	// or StateResting when Friction is exactly 1.
	//
	// Parameters:
	//   - position: pointer position where the button was released
	EndDrag(position common.Position)

	// Tick advances the integrator by the wall-clock time elapsed since the previous Tick (zero on the
	// first call). With AutoTick enabled it first requests the next frame from the scheduler.
	Tick()

	// Step advances the integrator by an explicit time step, bypassing the clock.
	//
	// Parameters:
	//   - deltaMs: elapsed time in milliseconds
	Step(deltaMs float64)

	// Matrix returns the current orientation as a 4x4 rotation matrix.
	//
	// Returns:
	//   - mgl64.Mat4: column-major rotation, spin applied before tilt
	Matrix() mgl64.Mat4

	// IsIdle reports whether both velocity components fell below the idle threshold on the last tick.
	//
	// Returns:
	//   - bool: true when the host may stop re-rendering
	IsIdle() bool

	// HandleEvent routes a platform-neutral pointer event to StartDrag, UpdateDrag or EndDrag.
	//
	// Parameters:
	//   - ev: the pointer event to handle
	HandleEvent(ev PointerEvent)

	// Angles returns the resolved spin and tilt for the current state, with tilt clamped.
	//
	// Returns:
	//   - spin, tilt: angles in radians
	Angles() (spin, tilt float64)

	// State returns the current interaction state.
	//
	// Returns:
	//   - State: the interaction state
	State() State

	// Velocity returns the angular velocity.
	//
	// Returns:
	//   - spin, tilt: velocity components in radians per millisecond
	Velocity() (spin, tilt float64)

	// Config returns a copy of the frozen configuration.
	//
	// Returns:
	//   - Config: the configuration
	Config() Config
}

type trackballImpl struct {
	config    Config
	scheduler FrameScheduler
	now       func() time.Time

	// Drag session and tick history
	startPosition          common.Position
	currentPosition        common.Position
	previousPosition       common.Position
	previousPositionTwoAgo common.Position

	baseSpin float64
	baseTilt float64

	state        State
	previousTime time.Time
	hasPrevious  bool
	velocity     [2]float64
	idle         bool

	tickFunc func()
}

var _ Trackball = &trackballImpl{}

// New creates a Trackball. Defaults are applied first, then each option in order, after which the
// configuration is frozen. With AutoTick enabled and a scheduler supplied, the first Tick is requested
// immediately.
//
// Parameters:
//   - options: functional options to configure the trackball
//
// Returns:
//   - Trackball: the newly created trackball
func New(options ...TrackballOption) Trackball {
	t := &trackballImpl{
		config: DefaultConfig(),
		now:    time.Now,
	}
	for _, option := range options {
		option(t)
	}

	t.baseTilt = t.config.HomeTilt
	t.velocity = [2]float64{t.config.StartSpin, 0}
	t.state = StateResting
	if t.config.StartSpin != 0 {
		t.state = StateCoasting
	}

	t.tickFunc = t.Tick
	if t.config.AutoTick {
		if t.scheduler == nil {
			log.Printf("[Trackball] AutoTick enabled without a FrameScheduler; caller must invoke Tick")
		} else {
			t.scheduler.RequestFrame(t.tickFunc)
		}
	}
	return t
}

func (t *trackballImpl) StartDrag(position common.Position) {
	t.startPosition = position
	t.currentPosition = position
	t.state = StateDraggingInit
}

func (t *trackballImpl) UpdateDrag(position common.Position) {
	previousSpin, previousTilt := t.Angles()
	t.currentPosition = position
	currentSpin, currentTilt := t.Angles()
	t.velocity[0] = initialInertia * (currentSpin - previousSpin)
	t.velocity[1] = initialInertia * (currentTilt - previousTilt)
}

func (t *trackballImpl) EndDrag(position common.Position) {
	t.currentPosition = position
	t.baseSpin, t.baseTilt = t.Angles()
	if t.config.Friction == 1 {
		t.state = StateResting
	} else {
		t.state = StateCoasting
	}
}

func (t *trackballImpl) IsIdle() bool {
	return t.idle
}

func (t *trackballImpl) Angles() (spin, tilt float64) {
	return resolveAngles(t.state, t.baseSpin, t.baseTilt, t.startPosition, t.currentPosition, t.config)
}

func (t *trackballImpl) State() State {
	return t.state
}

func (t *trackballImpl) Velocity() (spin, tilt float64) {
	return t.velocity[0], t.velocity[1]
}

func (t *trackballImpl) Config() Config {
	return t.config
}
