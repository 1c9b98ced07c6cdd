package geom

import (
	"math"

	"github.com/nullforge/raytracer/pkg/math3d"
)

// HitRecord describes the closest intersection found so far along a ray.
// T starts at math.MaxFloat64. A kernel overwrites the record whenever it
// finds a t with t >= ray.TMin and t*t <= ray.TMax; callers keep only the
// closest hit by narrowing TMax to T*T after each hit.
type HitRecord struct {
	Point         math3d.Vec3
	Normal        math3d.Vec3
	T             float64
	DidHit        bool
	MaterialIndex int
}

// NewHitRecord returns the initial "no hit yet" record.
func NewHitRecord() HitRecord {
	return HitRecord{T: math.MaxFloat64}
}
