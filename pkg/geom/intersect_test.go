package geom

import (
	"math"
	"testing"

	"github.com/nullforge/raytracer/pkg/math3d"
)

func TestHitSphere(t *testing.T) {
	s := Sphere{Origin: math3d.V3(0, 0, 5), Radius: 1, MaterialIndex: 3}

	cases := []struct {
		name    string
		ray     Ray
		wantHit bool
		wantT   float64
	}{
		{"head-on hit", NewRay(math3d.Zero3(), math3d.V3(0, 0, 1)), true, 4},
		{"miss beside sphere", NewRay(math3d.Zero3(), math3d.V3(1, 0, 0)), false, 0},
		{"behind ray origin", NewRay(math3d.V3(0, 0, 10), math3d.V3(0, 0, 1)), false, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit := NewHitRecord()
			got := HitSphere(s, c.ray, &hit)
			if got != c.wantHit {
				t.Fatalf("HitSphere = %v, want %v", got, c.wantHit)
			}
			if !c.wantHit {
				return
			}
			if math.Abs(hit.T-c.wantT) > 1e-9 {
				t.Errorf("T = %v, want %v", hit.T, c.wantT)
			}
			if hit.MaterialIndex != 3 {
				t.Errorf("MaterialIndex = %d, want 3", hit.MaterialIndex)
			}
		})
	}
}

func TestHitSphereRespectsTMax(t *testing.T) {
	s := Sphere{Origin: math3d.V3(0, 0, 5), Radius: 1}
	r := NewRay(math3d.Zero3(), math3d.V3(0, 0, 1))
	r.TMax = 9 // 3^2, closer than the t=4 hit

	hit := NewHitRecord()
	if HitSphere(s, r, &hit) {
		t.Fatal("expected HitSphere to reject a hit beyond the narrowed TMax")
	}
}

func TestHitPlane(t *testing.T) {
	p := Plane{Origin: math3d.V3(0, -1, 0), Normal: math3d.V3(0, 1, 0)}
	r := NewRay(math3d.V3(0, 5, 0), math3d.V3(0, -1, 0))

	hit := NewHitRecord()
	if !HitPlane(p, r, &hit) {
		t.Fatal("expected plane hit")
	}
	if math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("T = %v, want 6", hit.T)
	}
}

func TestHitPlaneParallelMisses(t *testing.T) {
	p := Plane{Origin: math3d.V3(0, -1, 0), Normal: math3d.V3(0, 1, 0)}
	r := NewRay(math3d.V3(0, 5, 0), math3d.V3(1, 0, 0))

	hit := NewHitRecord()
	if HitPlane(p, r, &hit) {
		t.Fatal("expected a parallel ray to miss the plane")
	}
}

func triangleXY(cull CullMode) Triangle {
	return NewTriangle(
		math3d.V3(-1, -1, 0),
		math3d.V3(1, -1, 0),
		math3d.V3(0, 1, 0),
		cull, 0,
	)
}

func TestHitTriangleInsideAndOutside(t *testing.T) {
	tri := triangleXY(CullNone)

	hit := NewHitRecord()
	inside := NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))
	if !HitTriangle(tri, inside, &hit, false) {
		t.Fatal("expected a ray through the triangle's centroid to hit")
	}

	hit = NewHitRecord()
	outside := NewRay(math3d.V3(5, 5, -5), math3d.V3(0, 0, 1))
	if HitTriangle(tri, outside, &hit, false) {
		t.Fatal("expected a ray outside the triangle's footprint to miss")
	}
}

func TestHitTriangleCullBackFace(t *testing.T) {
	tri := triangleXY(CullBackFace)

	// from +Z looking toward -Z hits the side facing +Z (front, since the
	// triangle's CCW winding V0,V1,V2 produces a normal pointing toward +Z).
	front := NewRay(math3d.V3(0, 0, 5), math3d.V3(0, 0, -1))
	hit := NewHitRecord()
	if !HitTriangle(tri, front, &hit, false) {
		t.Fatal("expected front-facing hit to survive back-face culling")
	}

	back := NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))
	hit = NewHitRecord()
	if HitTriangle(tri, back, &hit, false) {
		t.Fatal("expected back-facing hit to be culled")
	}
}

func TestHitTriangleShadowRayInvertsCull(t *testing.T) {
	tri := triangleXY(CullBackFace)

	// This ray hits the back face, which a normal ray would cull; a shadow
	// ray (ignoreHitRecord=true) must still detect the occlusion.
	back := NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))
	hit := NewHitRecord()
	if !HitTriangle(tri, back, &hit, true) {
		t.Fatal("expected shadow ray to hit the back face via inverted cull mode")
	}
}

func TestHitSlab(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	hitRay := NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))
	if !HitSlab(box, hitRay) {
		t.Error("expected ray through the box center to hit")
	}

	missRay := NewRay(math3d.V3(5, 5, -5), math3d.V3(0, 0, 1))
	if HitSlab(box, missRay) {
		t.Error("expected ray outside the box footprint to miss")
	}

	behindRay := NewRay(math3d.V3(0, 0, 5), math3d.V3(0, 0, 1))
	if HitSlab(box, behindRay) {
		t.Error("expected a box entirely behind the ray origin to miss")
	}
}

func TestHitSlabDistanceOrdersFrontToBack(t *testing.T) {
	near := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))
	far := NewAABB(math3d.V3(-1, -1, 4), math3d.V3(1, 1, 6))
	r := NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))

	dNear := HitSlabDistance(near, r)
	dFar := HitSlabDistance(far, r)
	if !(dNear < dFar) {
		t.Errorf("expected near box distance (%v) < far box distance (%v)", dNear, dFar)
	}
}
