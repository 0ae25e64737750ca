package trackball

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMatrixIsOrthonormal(t *testing.T) {
	for spin := -7.0; spin <= 7.0; spin += 0.7 {
		for tilt := -1.5; tilt <= 1.5; tilt += 0.25 {
			tb := newManual(WithHomeTilt(tilt))
			tb.baseSpin = spin
			m := tb.Matrix()

			if !m.Transpose().Mul4(m).ApproxEqualThreshold(mgl64.Ident4(), 1e-12) {
				t.Fatalf("spin=%v tilt=%v: columns are not orthonormal: %v", spin, tilt, m)
			}
			if det := m.Det(); math.Abs(det-1) > 1e-12 {
				t.Fatalf("spin=%v tilt=%v: det = %v, want 1", spin, tilt, det)
			}
			if m.Col(3) != (mgl64.Vec4{0, 0, 0, 1}) {
				t.Fatalf("spin=%v tilt=%v: unexpected translation column %v", spin, tilt, m.Col(3))
			}
		}
	}
}

func TestMatrixAppliesSpinBeforeTilt(t *testing.T) {
	tb := newManual(WithHomeTilt(math.Pi / 2))
	tb.baseSpin = math.Pi / 2

	got := tb.Matrix().Mul4x1(mgl64.Vec4{0, 0, 1, 0})
	// Ry(90°) takes +Z to +X, which Rx leaves alone. The reverse order would yield -Y.
	if !got.ApproxEqualThreshold(mgl64.Vec4{1, 0, 0, 0}, 1e-12) {
		t.Fatalf("M*(0,0,1) = %v, want (1,0,0)", got)
	}

	want := mgl64.HomogRotate3DX(math.Pi / 2).Mul4(mgl64.HomogRotate3DY(math.Pi / 2))
	if !tb.Matrix().ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("Matrix() = %v, want %v", tb.Matrix(), want)
	}
}

func TestMatrixUsesClampedTilt(t *testing.T) {
	tb := newManual(WithClampTilt(0.5), WithHomeTilt(0.25))
	tb.baseTilt = 2 // pushed past the clamp by coasting
	want := mgl64.HomogRotate3DX(0.5)
	if !tb.Matrix().ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("Matrix() = %v, want %v", tb.Matrix(), want)
	}
}

func TestMatrixFollowsActiveDrag(t *testing.T) {
	tb := newManual(WithHomeTilt(0))
	tb.StartDrag(pos(0, 0))
	tb.UpdateDrag(pos(100, 0))
	want := mgl64.HomogRotate3DY(1)
	if !tb.Matrix().ApproxEqualThreshold(want, 1e-12) {
		t.Fatalf("Matrix() = %v, want %v", tb.Matrix(), want)
	}
}
