package geom

import "math"

// triangleEpsilon is the parallel-ray rejection threshold for
// Moller-Trumbore; larger than a typical 1e-8 epsilon because the scenes
// this core targets are small enough that grazing precision loss matters
// more than rejecting near-parallel hits.
const triangleEpsilon = 1e-2

// HitSphere intersects r against s, updating hit in place when the near
// root t satisfies t >= r.TMin and t*t <= r.TMax. Returns true if hit was
// updated.
func HitSphere(s Sphere, r Ray, hit *HitRecord) bool {
	oc := r.Origin.Sub(s.Origin)
	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}

	sqrtDisc := math.Sqrt(disc)
	t := (-b - sqrtDisc) / (2 * a)
	if t < r.TMin || t*t > r.TMax {
		return false
	}

	point := r.Origin.Add(r.Dir.Scale(t))
	hit.T = t
	hit.Point = point
	hit.Normal = point.Sub(s.Origin).Scale(1 / s.Radius)
	hit.DidHit = true
	hit.MaterialIndex = s.MaterialIndex
	return true
}

// HitPlane intersects r against p, updating hit in place when it finds a
// t with t >= r.TMin and t*t <= r.TMax. Returns true if hit was updated.
func HitPlane(p Plane, r Ray, hit *HitRecord) bool {
	denom := r.Dir.Dot(p.Normal)
	if denom == 0 {
		return false
	}

	t := p.Origin.Sub(r.Origin).Dot(p.Normal) / denom
	if t < r.TMin || t*t > r.TMax {
		return false
	}

	hit.T = t
	hit.Point = r.Origin.Add(r.Dir.Scale(t))
	hit.Normal = p.Normal
	hit.DidHit = true
	hit.MaterialIndex = p.MaterialIndex
	return true
}

// HitTriangle intersects r against tri using Moller-Trumbore. When
// ignoreHitRecord is true (shadow ray use) the triangle's cull mode is
// inverted before the front/back rejection test. Returns true if hit was
// updated.
func HitTriangle(tri Triangle, r Ray, hit *HitRecord, ignoreHitRecord bool) bool {
	e1 := tri.V1.Sub(tri.V0)
	e2 := tri.V2.Sub(tri.V0)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)

	if math.Abs(det) < triangleEpsilon {
		return false
	}
	isBackFacing := det < 0

	cull := tri.CullMode
	if ignoreHitRecord {
		cull = cull.Inverted()
	}
	if cull == CullFrontFace && !isBackFacing {
		return false
	}
	if cull == CullBackFace && isBackFacing {
		return false
	}

	invDet := 1 / det
	s := r.Origin.Sub(tri.V0)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(e1)
	v := r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return false
	}

	t := e2.Dot(q) * invDet
	if t < r.TMin || t*t > r.TMax {
		return false
	}

	hit.T = t
	hit.Point = r.Origin.Add(r.Dir.Scale(t))
	hit.Normal = tri.Normal
	hit.DidHit = true
	hit.MaterialIndex = tri.MaterialIndex
	return true
}
