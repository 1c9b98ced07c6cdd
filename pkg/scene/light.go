// Package scene aggregates the primitives, meshes, lights and materials
// the render driver shades against, and provides the closest-hit / any-hit
// queries the shading loop needs.
package scene

import "github.com/nullforge/raytracer/pkg/math3d"

// LightType distinguishes point lights (origin + inverse-square falloff)
// from directional lights (parallel rays, no falloff).
type LightType int

const (
	// Point is a positional light with inverse-square falloff.
	Point LightType = iota
	// Directional is a parallel-ray light with no falloff.
	Directional
)

// Light is either a point or directional light source.
type Light struct {
	Type      LightType
	Origin    math3d.Vec3 // used when Type == Point
	Direction math3d.Vec3 // used when Type == Directional, points from the light
	Color     math3d.ColorRGB
	Intensity float64
}
