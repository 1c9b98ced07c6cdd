package render

import (
	"math"
	"testing"

	"github.com/nullforge/raytracer/pkg/math3d"
)

func TestGenerateRayCenterPixelMatchesForward(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 0), 60)
	// odd dimensions so pixel (320, 240)'s center is exactly the image center
	r := cam.GenerateRay(320, 240, 641, 481)

	forward := cam.Forward()
	if math.Abs(r.Dir.X-forward.X) > 1e-6 || math.Abs(r.Dir.Y-forward.Y) > 1e-6 || math.Abs(r.Dir.Z-forward.Z) > 1e-6 {
		t.Errorf("center pixel ray dir = %+v, want forward %+v", r.Dir, forward)
	}
}

func TestGenerateRayIsUnitLength(t *testing.T) {
	cam := NewCamera(math3d.V3(1, 2, 3), 90)
	cam.SetOrientation(0.3, 0.8)

	r := cam.GenerateRay(0, 0, 200, 100)
	if math.Abs(r.Dir.Len()-1) > 1e-9 {
		t.Errorf("ray direction length = %v, want 1", r.Dir.Len())
	}
}

func TestWorldToScreenInverseOfGenerateRay(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 0), 70)
	cam.SetOrientation(0.1, -0.2)

	width, height := 400, 300
	px, py := 123, 87

	r := cam.GenerateRay(px, py, width, height)
	point := cam.Origin.Add(r.Dir.Scale(5))

	x, y, visible := cam.WorldToScreen(point, width, height)
	if !visible {
		t.Fatal("expected the projected point to be visible")
	}
	if math.Abs(x-float64(px)) > 1e-6 || math.Abs(y-float64(py)) > 1e-6 {
		t.Errorf("WorldToScreen = (%v, %v), want approximately (%d, %d)", x, y, px, py)
	}
}

func TestWorldToScreenBehindCameraNotVisible(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 0), 60)
	_, _, visible := cam.WorldToScreen(math3d.V3(0, 0, -5), 200, 100)
	if visible {
		t.Error("expected a point behind the camera to be reported not visible")
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 0), 45)
	cam.SetOrientation(0.5, 1.2)

	right, up, fwd := cam.Right(), cam.Up(), cam.Forward()
	dots := [3]float64{right.Dot(up), up.Dot(fwd), fwd.Dot(right)}
	for _, d := range dots {
		if math.Abs(d) > 1e-9 {
			t.Errorf("basis vectors not orthogonal: dot = %v", d)
		}
	}
	lens := [3]float64{right.Len(), up.Len(), fwd.Len()}
	for _, l := range lens {
		if math.Abs(l-1) > 1e-9 {
			t.Errorf("basis vector not unit length: %v", l)
		}
	}
}
