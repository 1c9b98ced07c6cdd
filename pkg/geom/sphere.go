package geom

import "github.com/nullforge/raytracer/pkg/math3d"

// Sphere is an analytic sphere primitive.
type Sphere struct {
	Origin        math3d.Vec3
	Radius        float64
	MaterialIndex int
}

// Plane is an infinite analytic plane primitive.
type Plane struct {
	Origin        math3d.Vec3
	Normal        math3d.Vec3
	MaterialIndex int
}
