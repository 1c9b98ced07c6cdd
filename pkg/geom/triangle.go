package geom

import "github.com/nullforge/raytracer/pkg/math3d"

// Triangle is a single baked triangle as stored in a BVH's triangle cache:
// its vertices are already in world space for the mesh's current transform,
// and its normal and centroid are precomputed rather than derived on every
// intersection test.
type Triangle struct {
	V0, V1, V2    math3d.Vec3
	Normal        math3d.Vec3
	Centroid      math3d.Vec3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle builds a Triangle, computing its unit normal and centroid
// from the three vertices.
func NewTriangle(v0, v1, v2 math3d.Vec3, cull CullMode, materialIndex int) Triangle {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	centroid := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		Normal:        normal,
		Centroid:      centroid,
		CullMode:      cull,
		MaterialIndex: materialIndex,
	}
}

// Bounds returns the triangle's tight AABB.
func (t Triangle) Bounds() AABB {
	box := NewEmptyAABB()
	box.Grow(t.V0)
	box.Grow(t.V1)
	box.Grow(t.V2)
	return box
}
