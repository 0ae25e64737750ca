package trackball

import (
	"math"
	"time"
)

// idleThreshold is the per-component speed (rad/ms) below which momentum counts as stopped.
const idleThreshold = 0.0001

func (t *trackballImpl) Tick() {
	if t.config.AutoTick && t.scheduler != nil {
		t.scheduler.RequestFrame(t.tickFunc)
	}

	now := t.now()
	if !t.hasPrevious {
		t.previousTime = now
		t.hasPrevious = true
	}
	deltaMs := float64(now.Sub(t.previousTime)) / float64(time.Millisecond)
	t.previousTime = now

	t.Step(deltaMs)
}

func (t *trackballImpl) Step(deltaMs float64) {
	// Holding a dragging pointer perfectly still keeps feeding velocity into the base angles.
	heldStill := (t.state == StateDraggingInit || t.state == StateDraggingSpin) &&
		t.currentPosition.Equals(t.previousPositionTwoAgo)

	if t.state == StateCoasting {
		t.baseSpin += t.velocity[0] * deltaMs
		t.baseTilt += t.velocity[1] * deltaMs
		if belowIdle(t.velocity) {
			t.state = StateResting
		}
	} else if heldStill {
		t.baseSpin += t.velocity[0] * deltaMs
		t.baseTilt += t.velocity[1] * deltaMs
	}

	t.velocity[0] *= 1 - t.config.Friction
	t.velocity[1] *= 1 - t.config.Friction

	t.previousPositionTwoAgo = t.previousPosition
	t.previousPosition = t.currentPosition

	t.idle = belowIdle(t.velocity)
}

func belowIdle(v [2]float64) bool {
	return math.Abs(v[0]) < idleThreshold && math.Abs(v[1]) < idleThreshold
}
