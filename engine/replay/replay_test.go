package replay

import (
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

func mustParse(t *testing.T, src string) Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12
}

func TestRunFlingCoasts(t *testing.T) {
	s := mustParse(t, "down 0 0\nmove 10 0\nup 10 0\nwait 16")
	frames := Run(s, WithTrackballOptions(trackball.WithStartSpin(0)))
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}

	f := frames[0]
	if f.State != trackball.StateCoasting || f.Elapsed != 16*time.Millisecond {
		t.Fatalf("frame = %+v, want Coasting at 16ms", f)
	}
	// Release at spin 0.1 with velocity 0.0125 rad/ms, then one 16ms coast step.
	if !near(f.Spin, 0.3) || !near(f.SpinVelocity, 0.0125*0.875) {
		t.Fatalf("spin = %v velocity = %v, want 0.3 and %v", f.Spin, f.SpinVelocity, 0.0125*0.875)
	}
	if !near(f.Tilt, 0.25) || f.TiltVelocity != 0 {
		t.Fatalf("tilt = %v velocity = %v, want home tilt and no tilt velocity", f.Tilt, f.TiltVelocity)
	}
	if f.Idle {
		t.Fatalf("frame reported idle while coasting")
	}
}

func TestRunIgnoresSecondaryTouchAndWheel(t *testing.T) {
	s := mustParse(t, "down 0 0\ntouch 50 50\nwheel\nup 0 0\nwait 16")
	frames := Run(s, WithTrackballOptions(trackball.WithStartSpin(0)))

	f := frames[0]
	if f.Spin != 0 || !near(f.Tilt, 0.25) {
		t.Fatalf("angles = (%v, %v), want (0, 0.25)", f.Spin, f.Tilt)
	}
	if f.State != trackball.StateResting || !f.Idle {
		t.Fatalf("state = %v idle = %v, want Resting and idle", f.State, f.Idle)
	}
}

func TestRunCoastDecaysToRest(t *testing.T) {
	s := mustParse(t, "wait 16 200")
	frames := Run(s, WithTrackballOptions(trackball.WithFriction(0.125)))
	if len(frames) != 200 {
		t.Fatalf("len(frames) = %d, want 200", len(frames))
	}

	last := frames[len(frames)-1]
	if last.State != trackball.StateResting || !last.Idle {
		t.Fatalf("last frame = %+v, want Resting and idle", last)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Spin < frames[i-1].Spin {
			t.Fatalf("spin decreased at frame %d: %v < %v", i, frames[i].Spin, frames[i-1].Spin)
		}
	}
	if last.Elapsed != 200*16*time.Millisecond {
		t.Fatalf("elapsed = %v, want 3.2s", last.Elapsed)
	}
}

func TestRunStartOption(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	frames := Run(mustParse(t, "wait 5 2"), WithStart(start))
	if frames[1].Elapsed != 10*time.Millisecond {
		t.Fatalf("elapsed = %v, want 10ms", frames[1].Elapsed)
	}
}

func TestRunFlingScript(t *testing.T) {
	f, err := os.Open("testdata/fling.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frames := Run(s, WithTrackballOptions(trackball.WithStartSpin(0)))
	if len(frames) != 63 {
		t.Fatalf("len(frames) = %d, want 63", len(frames))
	}
	if frames[0].State != trackball.StateDraggingInit {
		t.Fatalf("first frame state = %v, want DraggingInit", frames[0].State)
	}
	if frames[3].State != trackball.StateCoasting {
		t.Fatalf("frame after release = %v, want Coasting", frames[3].State)
	}
	last := frames[len(frames)-1]
	if last.State != trackball.StateResting || !last.Idle {
		t.Fatalf("last frame = %v idle=%v, want Resting and idle", last.State, last.Idle)
	}
	if last.Spin <= 0.5 {
		t.Fatalf("spin = %v, want the fling to carry past the release angle 0.5", last.Spin)
	}
}
