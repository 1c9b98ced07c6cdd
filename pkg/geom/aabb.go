package geom

import (
	"math"

	"github.com/nullforge/raytracer/pkg/math3d"
)

// AABB is an axis-aligned bounding box. The zero value is not empty: it is
// a single point at the origin, so Grow would always include the origin —
// use NewEmptyAABB to start accumulating via Grow.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB builds an AABB from known min/max corners.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewEmptyAABB returns an AABB primed for accumulation via Grow: its min is
// math.MaxFloat64 and its max is -math.MaxFloat64 in every component, so
// the first Grow call
// collapses it onto a single point.
func NewEmptyAABB() AABB {
	inf := math.MaxFloat64
	return AABB{
		Min: math3d.V3(inf, inf, inf),
		Max: math3d.V3(-inf, -inf, -inf),
	}
}

// Grow expands the box to include p.
func (b *AABB) Grow(p math3d.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// GrowBox expands the box to include another box.
func (b *AABB) GrowBox(o AABB) {
	b.Min = b.Min.Min(o.Min)
	b.Max = b.Max.Max(o.Max)
}

// Extent returns Max - Min.
func (b AABB) Extent() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Area returns the half surface area: the sum of the three pairwise
// products of the extent components. Used by the SAH cost model, where
// only the relative ordering of costs matters, never the absolute scale.
func (b AABB) Area() float64 {
	e := b.Extent()
	return e.X*e.Y + e.Y*e.Z + e.Z*e.X
}

// Center returns the midpoint of the box.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Transform returns the AABB bounding all 8 corners of b after being
// carried through m.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]math3d.Vec3{
		math3d.V3(b.Min.X, b.Min.Y, b.Min.Z),
		math3d.V3(b.Max.X, b.Min.Y, b.Min.Z),
		math3d.V3(b.Min.X, b.Max.Y, b.Min.Z),
		math3d.V3(b.Max.X, b.Max.Y, b.Min.Z),
		math3d.V3(b.Min.X, b.Min.Y, b.Max.Z),
		math3d.V3(b.Max.X, b.Min.Y, b.Max.Z),
		math3d.V3(b.Min.X, b.Max.Y, b.Max.Z),
		math3d.V3(b.Max.X, b.Max.Y, b.Max.Z),
	}

	out := NewEmptyAABB()
	for _, c := range corners {
		out.Grow(m.MulVec3(c))
	}
	return out
}

// HitSlab is the boolean ray/AABB slab test. It uses the ray's precomputed
// reciprocal direction so no division happens per axis.
func HitSlab(b AABB, r Ray) bool {
	tmin, tmax := slabInterval(b, r)
	return tmax >= tmin && tmax > 0
}

// HitSlabDistance runs the same slab test but returns the entry distance
// tmin when the ray hits, or math.MaxFloat64 otherwise. Used to order BVH children
// front-to-back during traversal.
func HitSlabDistance(b AABB, r Ray) float64 {
	tmin, tmax := slabInterval(b, r)
	if tmax >= tmin && tmax > 0 {
		return tmin
	}
	return math.MaxFloat64
}

func slabInterval(b AABB, r Ray) (tmin, tmax float64) {
	tx1 := (b.Min.X - r.Origin.X) * r.InvDir.X
	tx2 := (b.Max.X - r.Origin.X) * r.InvDir.X
	tmin, tmax = math.Min(tx1, tx2), math.Max(tx1, tx2)

	ty1 := (b.Min.Y - r.Origin.Y) * r.InvDir.Y
	ty2 := (b.Max.Y - r.Origin.Y) * r.InvDir.Y
	tmin = math.Max(tmin, math.Min(ty1, ty2))
	tmax = math.Min(tmax, math.Max(ty1, ty2))

	tz1 := (b.Min.Z - r.Origin.Z) * r.InvDir.Z
	tz2 := (b.Max.Z - r.Origin.Z) * r.InvDir.Z
	tmin = math.Max(tmin, math.Min(tz1, tz2))
	tmax = math.Min(tmax, math.Max(tz1, tz2))

	return tmin, tmax
}
