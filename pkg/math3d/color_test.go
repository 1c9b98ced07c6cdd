package math3d

import (
	"math"
	"testing"
)

func TestMaxToOnePreservesRatioWhenClamping(t *testing.T) {
	c := ColorRGB{R: 4, G: 2, B: 1}
	got := c.MaxToOne()
	if got.R != 1 {
		t.Fatalf("R = %v, want 1 (the max channel divides itself to 1)", got.R)
	}
	if got.G != 0.5 || got.B != 0.25 {
		t.Errorf("MaxToOne(%+v) = %+v, want ratio-preserving {1, 0.5, 0.25}", c, got)
	}
}

func TestMaxToOneLeavesInRangeColorUnchanged(t *testing.T) {
	c := ColorRGB{R: 0.2, G: 0.5, B: 0.9}
	got := c.MaxToOne()
	if got != c {
		t.Errorf("MaxToOne(%+v) = %+v, want unchanged", c, got)
	}
}

func TestMaxToOneFloorsNegativeChannels(t *testing.T) {
	c := ColorRGB{R: -0.5, G: 0.3, B: 0}
	got := c.MaxToOne()
	if got.R != 0 {
		t.Errorf("R = %v, want negative channel floored to 0", got.R)
	}
}

func TestTo8BitRoundsAndClamps(t *testing.T) {
	r, g, b := ColorRGB{R: 1, G: 0.5, B: 0}.To8Bit()
	if r != 255 || b != 0 {
		t.Errorf("To8Bit R/B = %d/%d, want 255/0", r, b)
	}
	if g != 128 {
		t.Errorf("To8Bit G = %d, want 128 (round(0.5*255))", g)
	}
}

func TestAddMulScale(t *testing.T) {
	a := ColorRGB{R: 0.2, G: 0.4, B: 0.6}
	b := ColorRGB{R: 0.1, G: 0.1, B: 0.1}

	sum := a.Add(b)
	if math.Abs(sum.R-0.3) > 1e-12 || math.Abs(sum.G-0.5) > 1e-12 || math.Abs(sum.B-0.7) > 1e-12 {
		t.Errorf("Add = %+v, want {0.3, 0.5, 0.7}", sum)
	}

	prod := a.Mul(Gray(2))
	if prod.R != 0.4 || prod.G != 0.8 || prod.B != 1.2 {
		t.Errorf("Mul by Gray(2) = %+v, want doubled channels", prod)
	}

	scaled := a.Scale(0.5)
	if scaled.R != 0.1 || scaled.G != 0.2 || scaled.B != 0.3 {
		t.Errorf("Scale(0.5) = %+v, want halved channels", scaled)
	}
}
