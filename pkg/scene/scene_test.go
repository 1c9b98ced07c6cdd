package scene

import (
	"math"
	"testing"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
)

func TestGetClosestHitIndependentOfOrder(t *testing.T) {
	near := geom.Sphere{Origin: math3d.V3(0, 0, 3), Radius: 1, MaterialIndex: 0}
	far := geom.Sphere{Origin: math3d.V3(0, 0, 10), Radius: 1, MaterialIndex: 1}
	r := geom.NewRay(math3d.Zero3(), math3d.V3(0, 0, 1))

	forward := New()
	forward.Spheres = []geom.Sphere{near, far}
	backward := New()
	backward.Spheres = []geom.Sphere{far, near}

	hitForward := forward.GetClosestHit(r)
	hitBackward := backward.GetClosestHit(r)

	if !hitForward.DidHit || !hitBackward.DidHit {
		t.Fatal("expected both scenes to report a hit")
	}
	if hitForward.MaterialIndex != 0 || hitBackward.MaterialIndex != 0 {
		t.Fatalf("expected the nearer sphere (material 0) to win regardless of order, got %d and %d",
			hitForward.MaterialIndex, hitBackward.MaterialIndex)
	}
	if math.Abs(hitForward.T-hitBackward.T) > 1e-9 {
		t.Errorf("hit T differs by scene order: %v vs %v", hitForward.T, hitBackward.T)
	}
}

func TestDoesHitShortCircuitsOnOccluder(t *testing.T) {
	sc := New()
	sc.Spheres = []geom.Sphere{{Origin: math3d.V3(0, 0, 3), Radius: 1}}

	origin := math3d.Zero3()
	toLight := math3d.V3(0, 0, 10)
	shadowRay := geom.NewShadowRay(origin, toLight)

	if !sc.DoesHit(shadowRay) {
		t.Fatal("expected occluding sphere between origin and light to register a hit")
	}
}

func TestDoesHitRespectsLightDistance(t *testing.T) {
	sc := New()
	// Sphere sits beyond the light, so it must not occlude.
	sc.Spheres = []geom.Sphere{{Origin: math3d.V3(0, 0, 20), Radius: 1}}

	origin := math3d.Zero3()
	toLight := math3d.V3(0, 0, 5)
	shadowRay := geom.NewShadowRay(origin, toLight)

	if sc.DoesHit(shadowRay) {
		t.Fatal("expected sphere beyond the light to not occlude")
	}
}

func TestMaterialAtOutOfRangeReturnsDefault(t *testing.T) {
	sc := New()
	sc.Materials = []Material{{Kd: 0.3}}

	if got := sc.MaterialAt(5); got != DefaultMaterial() {
		t.Errorf("MaterialAt(out of range) = %+v, want DefaultMaterial()", got)
	}
	if got := sc.MaterialAt(-1); got != DefaultMaterial() {
		t.Errorf("MaterialAt(-1) = %+v, want DefaultMaterial()", got)
	}
	if got := sc.MaterialAt(0); got.Kd != 0.3 {
		t.Errorf("MaterialAt(0).Kd = %v, want 0.3", got.Kd)
	}
}

func TestMeshInstanceRebakeFollowsTransform(t *testing.T) {
	positions := []math3d.Vec3{
		math3d.V3(-1, -1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 1, 0),
	}
	normals := []math3d.Vec3{math3d.V3(0, 0, 1)}
	mesh := geom.NewTriangleMesh("tri", positions, normals, []int{0, 1, 2}, geom.CullNone, 0)

	mi := NewMeshInstance(mesh)
	sc := New()
	sc.Meshes = []*MeshInstance{mi}

	r := geom.NewRay(math3d.V3(0, 0, -5), math3d.V3(0, 0, 1))
	before := sc.GetClosestHit(r)
	if !before.DidHit {
		t.Fatal("expected initial hit against the triangle")
	}

	mesh.SetTransform(math3d.V3(100, 0, 0), math3d.Identity(), math3d.V3(1, 1, 1))
	mi.Rebake()

	after := sc.GetClosestHit(r)
	if after.DidHit {
		t.Fatal("expected the ray to miss after the mesh moved out of its path")
	}
}
