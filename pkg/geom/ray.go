// Package geom provides the ray-tracing primitives and intersection kernels:
// rays, hit records, axis-aligned bounding boxes, analytic shapes, and
// triangle meshes with their per-frame transform bake.
package geom

import (
	"math"

	"github.com/nullforge/raytracer/pkg/math3d"
)

// DefaultTMin is the ray origin offset used to avoid self-intersection
// ("shadow acne") at the surface a ray is cast from.
const DefaultTMin = 1e-4

// Ray is a parametric ray origin + direction with a precomputed reciprocal
// direction so slab tests never divide. TMax is compared against candidate
// t values as t*t > TMax — see Hit kernels in intersect.go — which lets
// shadow rays store |L|^2 directly without a sqrt.
type Ray struct {
	Origin    math3d.Vec3
	Dir       math3d.Vec3
	InvDir    math3d.Vec3
	TMin      float64
	TMax      float64
}

// NewRay builds a ray with the default t_min and an unbounded t_max.
func NewRay(origin, dir math3d.Vec3) Ray {
	return Ray{
		Origin: origin,
		Dir:    dir,
		InvDir: reciprocal(dir),
		TMin:   DefaultTMin,
		TMax:   math.MaxFloat64,
	}
}

// NewShadowRay builds a ray toward a light, with TMax set to the squared
// distance to the light rather than the distance itself, matching the t^2
// convention used throughout the intersection kernels.
func NewShadowRay(origin, toLight math3d.Vec3) Ray {
	distSq := toLight.LenSq()
	dir := toLight.Normalize()
	return Ray{
		Origin: origin,
		Dir:    dir,
		InvDir: reciprocal(dir),
		TMin:   DefaultTMin,
		TMax:   distSq,
	}
}

func reciprocal(d math3d.Vec3) math3d.Vec3 {
	return math3d.V3(1/d.X, 1/d.Y, 1/d.Z)
}
