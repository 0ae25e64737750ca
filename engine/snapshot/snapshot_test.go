package snapshot

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func countLinePixels(t *testing.T, orientation mgl64.Mat4, size, supersample int) int {
	t.Helper()
	img := Render(orientation, size, supersample, DefaultStyle)
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("bounds = %v, want %dx%d", b, size, size)
	}
	bg := color.NRGBAModel.Convert(DefaultStyle.Background).(color.NRGBA)
	if got := img.NRGBAAt(0, 0); supersample == 1 && got != bg {
		t.Fatalf("corner pixel = %v, want background %v", got, bg)
	}

	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != bg.R {
			n++
		}
	}
	return n
}

func TestRenderDrawsCube(t *testing.T) {
	if n := countLinePixels(t, mgl64.Ident4(), 64, 1); n == 0 {
		t.Fatalf("no line pixels drawn")
	}
	if n := countLinePixels(t, mgl64.HomogRotate3DY(0.6), 64, 3); n == 0 {
		t.Fatalf("no line pixels drawn with supersampling")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	m := mgl64.HomogRotate3DX(0.3).Mul4(mgl64.HomogRotate3DY(1.1))
	a := Render(m, 48, 2, DefaultStyle)
	b := Render(m, 48, 2, DefaultStyle)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("two renders of the same matrix differ")
	}
}

func TestRenderOrientationChangesImage(t *testing.T) {
	a := Render(mgl64.Ident4(), 48, 1, DefaultStyle)
	b := Render(mgl64.HomogRotate3DY(0.5), 48, 1, DefaultStyle)
	if bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("rotation did not change the rendered frame")
	}
}
