package scene

import (
	"github.com/nullforge/raytracer/pkg/bvh"
	"github.com/nullforge/raytracer/pkg/geom"
)

// MeshInstance couples a world-space triangle mesh with the BVH built over
// it. The BVH is built once; SetTransform followed by Rebake keeps it in
// sync with a moved mesh without re-splitting.
type MeshInstance struct {
	Mesh *geom.TriangleMesh
	BVH  *bvh.BVH
}

// NewMeshInstance builds a BVH over mesh's current triangles.
func NewMeshInstance(mesh *geom.TriangleMesh) *MeshInstance {
	return &MeshInstance{Mesh: mesh, BVH: bvh.Build(mesh)}
}

// Rebake re-bakes the BVH's triangle cache from the mesh's (already
// updated) transform and refits node bounds without re-splitting.
func (mi *MeshInstance) Rebake() {
	mi.BVH.RebakeTriangles()
	mi.BVH.Refit()
}

// Scene aggregates every intersectable object plus the lights and materials
// the render driver shades against. Once built, it is read-only for the
// duration of a render: every worker goroutine shares it without locking.
type Scene struct {
	Meshes    []*MeshInstance
	Spheres   []geom.Sphere
	Planes    []geom.Plane
	Lights    []Light
	Materials []Material
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// MaterialAt returns the material at idx, or a default material if idx is
// out of range (an unmaterialed primitive, or a scene built without one).
func (s *Scene) MaterialAt(idx int) Material {
	if idx < 0 || idx >= len(s.Materials) {
		return DefaultMaterial()
	}
	return s.Materials[idx]
}

// GetClosestHit returns the nearest intersection across every primitive and
// mesh BVH in the scene. The result does not depend on iteration order:
// each kernel call is given a ray narrowed to the best t found so far.
func (s *Scene) GetClosestHit(r geom.Ray) geom.HitRecord {
	hit := geom.NewHitRecord()
	ray := r

	for i := range s.Spheres {
		if geom.HitSphere(s.Spheres[i], ray, &hit) {
			ray.TMax = hit.T * hit.T
		}
	}
	for i := range s.Planes {
		if geom.HitPlane(s.Planes[i], ray, &hit) {
			ray.TMax = hit.T * hit.T
		}
	}
	for _, mi := range s.Meshes {
		if mi.BVH.Hit(ray, &hit, false) {
			ray.TMax = hit.T * hit.T
		}
	}

	return hit
}

// DoesHit reports whether any primitive or mesh occludes the ray within
// (TMin, TMax], short-circuiting on the first hit found. Used for shadow
// rays, where TMax already carries the squared distance to the light.
func (s *Scene) DoesHit(r geom.Ray) bool {
	var hit geom.HitRecord

	for i := range s.Spheres {
		hit = geom.NewHitRecord()
		if geom.HitSphere(s.Spheres[i], r, &hit) {
			return true
		}
	}
	for i := range s.Planes {
		hit = geom.NewHitRecord()
		if geom.HitPlane(s.Planes[i], r, &hit) {
			return true
		}
	}
	for _, mi := range s.Meshes {
		hit = geom.NewHitRecord()
		if mi.BVH.Hit(r, &hit, true) {
			return true
		}
	}

	return false
}
