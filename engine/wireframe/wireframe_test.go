package wireframe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVerticesLineList(t *testing.T) {
	v := Vertices()
	if len(v) != 12*2*3 {
		t.Fatalf("len(Vertices()) = %d, want %d", len(v), 72)
	}
	for i, f := range v {
		if f != 1 && f != -1 {
			t.Fatalf("component %d = %v, want +/-1", i, f)
		}
	}
}

func TestEdgesHaveUnitManhattanLength(t *testing.T) {
	for _, e := range Edges {
		a, b := corners[e[0]], corners[e[1]]
		d := a.Sub(b)
		if math.Abs(d.X())+math.Abs(d.Y())+math.Abs(d.Z()) != 2 {
			t.Fatalf("edge %v is not an axis-aligned cube edge", e)
		}
	}
}

func TestProjectIdentityIsCenteredAndSymmetric(t *testing.T) {
	segs := Project(mgl64.Ident4(), 200, 200)
	if len(segs) != 12 {
		t.Fatalf("len(segments) = %d, want 12", len(segs))
	}

	var sumX, sumY float64
	for _, s := range segs {
		sumX += s.X0 + s.X1
		sumY += s.Y0 + s.Y1
		for _, v := range []float64{s.X0, s.Y0, s.X1, s.Y1} {
			if v < 0 || v > 200 {
				t.Fatalf("segment %+v leaves the viewport", s)
			}
		}
	}
	if math.Abs(sumX/24-100) > 1e-9 || math.Abs(sumY/24-100) > 1e-9 {
		t.Fatalf("centroid = (%v, %v), want (100, 100)", sumX/24, sumY/24)
	}

	// Front face (z = +1) is closer to the eye and projects larger than the back face.
	back, front := segs[0], segs[4]
	if math.Abs(front.X1-front.X0) <= math.Abs(back.X1-back.X0) {
		t.Fatalf("front edge %+v not larger than back edge %+v", front, back)
	}
}

func TestProjectRejectsEmptyViewport(t *testing.T) {
	if segs := Project(mgl64.Ident4(), 0, 100); segs != nil {
		t.Fatalf("Project with zero width = %v, want nil", segs)
	}
}
