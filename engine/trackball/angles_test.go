package trackball

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-trackball/common"
)

func pos(x, y float64) common.Position {
	return common.Position{X: x, Y: y}
}

func TestResolveAnglesPerState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RadiansPerPixel = [2]float64{0.01, 0.02}
	start, current := pos(10, 10), pos(30, 20)

	cases := []struct {
		state     State
		spin, tlt float64
	}{
		{StateResting, 1, 0.5},
		{StateCoasting, 1, 0.5},
		{StateDraggingInit, 1.2, 0.7},
		{StateDraggingSpin, 1.2, 0.5},
		{StateDraggingTilt, 1, 0.7},
	}
	for _, c := range cases {
		spin, tilt := resolveAngles(c.state, 1, 0.5, start, current, cfg)
		if math.Abs(spin-c.spin) > 1e-12 || math.Abs(tilt-c.tlt) > 1e-12 {
			t.Fatalf("%v: got (%v, %v), want (%v, %v)", c.state, spin, tilt, c.spin, c.tlt)
		}
	}
}

func TestResolveAnglesClampsInEveryState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClampTilt = 0.5
	for _, state := range []State{StateResting, StateCoasting, StateDraggingInit, StateDraggingSpin, StateDraggingTilt} {
		_, tilt := resolveAngles(state, 0, 3, pos(0, 0), pos(0, 1000), cfg)
		if tilt != 0.5 {
			t.Fatalf("%v: tilt = %v, want 0.5", state, tilt)
		}
		_, tilt = resolveAngles(state, 0, -3, pos(0, 0), pos(0, -1000), cfg)
		if tilt != -0.5 {
			t.Fatalf("%v: tilt = %v, want -0.5", state, tilt)
		}
	}
}

func TestResolveAnglesIsPure(t *testing.T) {
	cfg := DefaultConfig()
	start, current := pos(0, 0), pos(7, 9)
	s1, t1 := resolveAngles(StateDraggingInit, 0.3, 0.1, start, current, cfg)
	s2, t2 := resolveAngles(StateDraggingInit, 0.3, 0.1, start, current, cfg)
	if s1 != s2 || t1 != t2 {
		t.Fatalf("repeated calls differ: (%v, %v) vs (%v, %v)", s1, t1, s2, t2)
	}
	if start != pos(0, 0) || current != pos(7, 9) {
		t.Fatalf("inputs were mutated")
	}
}
