package trackball

import (
	"math"
	"testing"
	"time"
)

func TestVelocityDecaysGeometrically(t *testing.T) {
	const friction = 0.3
	tb := newManual(WithFriction(friction))

	// Drag far enough vertically that the resolved tilt saturates at the clamp.
	tb.StartDrag(pos(0, 0))
	tb.UpdateDrag(pos(40, 1000))
	tb.EndDrag(pos(40, 1000))
	spin0, tilt0 := tb.Velocity()

	for n := 1; n <= 20; n++ {
		tb.Step(16)
		spin, tilt := tb.Velocity()
		factor := math.Pow(1-friction, float64(n))
		if math.Abs(spin-spin0*factor) > 1e-15 || math.Abs(tilt-tilt0*factor) > 1e-15 {
			t.Fatalf("tick %d: velocity (%v, %v), want (%v, %v)", n, spin, tilt, spin0*factor, tilt0*factor)
		}
	}
}

func TestCoastingIntegratesVelocity(t *testing.T) {
	tb := New(WithAutoTick(false), WithStartSpin(0.01), WithFriction(0.5)).(*trackballImpl)

	tb.Step(10)
	assertClose(t, "baseSpin after 1 step", tb.baseSpin, 0.1)
	tb.Step(10)
	assertClose(t, "baseSpin after 2 steps", tb.baseSpin, 0.15)
	if tb.State() != StateCoasting {
		t.Fatalf("state = %v, want Coasting", tb.State())
	}
}

func TestCoastingSettlesToResting(t *testing.T) {
	tb := New(WithAutoTick(false), WithStartSpin(0.00005)).(*trackballImpl)

	tb.Step(16)
	if tb.State() != StateResting {
		t.Fatalf("state = %v, want Resting", tb.State())
	}
	assertClose(t, "baseSpin", tb.baseSpin, 0.00005*16)
	if !tb.IsIdle() {
		t.Fatalf("expected idle once velocity is below threshold")
	}
}

func TestCoastingChecksThresholdBeforeDecay(t *testing.T) {
	// 0.0001 is not below the threshold; the decayed value is, so idle flips before the state does.
	tb := New(WithAutoTick(false), WithStartSpin(0.0001), WithFriction(0.5)).(*trackballImpl)

	tb.Step(1)
	if tb.State() != StateCoasting {
		t.Fatalf("state = %v, want Coasting", tb.State())
	}
	if !tb.IsIdle() {
		t.Fatalf("expected idle after decay")
	}
	tb.Step(1)
	if tb.State() != StateResting {
		t.Fatalf("state = %v, want Resting", tb.State())
	}
}

func TestHeldStillDragKeepsIntegrating(t *testing.T) {
	tb := newManual(WithFriction(0.5))

	tb.StartDrag(pos(0, 0))
	tb.UpdateDrag(pos(10, 0))
	assertClose(t, "initial velocity", tb.velocity[0], 0.0125)

	tb.Step(10) // two-ago is still the construction position
	tb.Step(10)
	assertClose(t, "baseSpin before hold registers", tb.baseSpin, 0)

	tb.Step(10) // pointer unchanged for two ticks
	assertClose(t, "baseSpin after first held tick", tb.baseSpin, 0.003125*10)
	tb.Step(10)
	assertClose(t, "baseSpin after second held tick", tb.baseSpin, 0.003125*10+0.0015625*10)

	spin, _ := tb.Angles()
	assertClose(t, "resolved spin", spin, 0.1+0.046875)
	if tb.State() != StateDraggingInit {
		t.Fatalf("state = %v, want DraggingInit", tb.State())
	}
}

func TestHeldStillAppliesToSpinOnlyDrag(t *testing.T) {
	tb := newManual(WithFriction(0))
	tb.state = StateDraggingSpin
	tb.velocity = [2]float64{0.001, 0.002}

	tb.Step(10)
	assertClose(t, "baseSpin", tb.baseSpin, 0.01)
	assertClose(t, "baseTilt", tb.baseTilt, 0.25+0.02)
}

func TestHeldStillIgnoresTiltOnlyDrag(t *testing.T) {
	tb := newManual(WithFriction(0))
	tb.state = StateDraggingTilt
	tb.velocity = [2]float64{0.001, 0.002}

	tb.Step(10)
	assertClose(t, "baseSpin", tb.baseSpin, 0)
	assertClose(t, "baseTilt", tb.baseTilt, 0.25)
}

func TestStepShiftsPositionHistory(t *testing.T) {
	tb := newManual()
	tb.StartDrag(pos(1, 1))
	tb.Step(1)
	tb.UpdateDrag(pos(2, 2))
	tb.Step(1)
	if tb.previousPosition != pos(2, 2) || tb.previousPositionTwoAgo != pos(1, 1) {
		t.Fatalf("history = %+v, %+v", tb.previousPosition, tb.previousPositionTwoAgo)
	}
}

func TestTickUsesElapsedWallClock(t *testing.T) {
	clock := newFakeClock()
	tb := New(WithAutoTick(false), WithStartSpin(0.02), WithClock(clock.Now)).(*trackballImpl)

	tb.Tick()
	assertClose(t, "baseSpin after first tick", tb.baseSpin, 0)
	assertClose(t, "velocity after first tick", tb.velocity[0], 0.0175)

	clock.Advance(10 * time.Millisecond)
	tb.Tick()
	assertClose(t, "baseSpin after second tick", tb.baseSpin, 0.175)

	clock.Advance(500 * time.Microsecond)
	tb.Tick()
	assertClose(t, "baseSpin after sub-millisecond tick", tb.baseSpin, 0.175+0.0175*0.875*0.5)
}

func TestAutoTickReschedulesEveryFrame(t *testing.T) {
	sched := &fakeScheduler{}
	clock := newFakeClock()
	tb := New(WithScheduler(sched), WithClock(clock.Now))

	if sched.total != 1 {
		t.Fatalf("requests after New = %d, want 1", sched.total)
	}
	for i := 0; i < 3; i++ {
		clock.Advance(16 * time.Millisecond)
		sched.runFrame()
	}
	if sched.total != 4 {
		t.Fatalf("requests after 3 frames = %d, want 4", sched.total)
	}
	if tb.State() != StateCoasting {
		t.Fatalf("state = %v, want Coasting", tb.State())
	}
	if spin, _ := tb.Angles(); spin <= 0 {
		t.Fatalf("auto ticking should have advanced spin, got %v", spin)
	}
}

func TestManualTickDoesNotSchedule(t *testing.T) {
	sched := &fakeScheduler{}
	tb := New(WithAutoTick(false), WithScheduler(sched))
	tb.Tick()
	if sched.total != 0 {
		t.Fatalf("requests = %d, want 0", sched.total)
	}
}
