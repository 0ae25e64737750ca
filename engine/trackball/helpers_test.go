package trackball

import (
	"math"
	"testing"
	"time"
)

const tolerance = 1e-12

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("%s = %.15g, want %.15g", name, got, want)
	}
}

// fakeClock returns a fixed time that tests advance by hand.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeScheduler records requested callbacks and runs them on demand.
type fakeScheduler struct {
	pending []func()
	total   int
}

func (s *fakeScheduler) RequestFrame(callback func()) {
	s.pending = append(s.pending, callback)
	s.total++
}

func (s *fakeScheduler) runFrame() {
	callbacks := s.pending
	s.pending = nil
	for _, cb := range callbacks {
		cb()
	}
}

// newManual builds a trackball that never schedules itself and starts at rest.
func newManual(options ...TrackballOption) *trackballImpl {
	base := []TrackballOption{WithAutoTick(false), WithStartSpin(0)}
	return New(append(base, options...)...).(*trackballImpl)
}
