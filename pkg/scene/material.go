package scene

import (
	"math"

	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
	"github.com/nullforge/raytracer/pkg/shading"
)

// Material holds the parameters the BRDF lighting mode reads. Kd weights
// the Lambert term and Ks weights both specular terms (Phong and
// Cook-Torrance); Roughness and F0 drive the Cook-Torrance microfacet terms.
type Material struct {
	DiffuseColor  math3d.ColorRGB
	SpecularColor math3d.ColorRGB
	Kd            float64
	Ks            float64
	PhongExponent float64
	Roughness     float64
	F0            float64
}

// DefaultMaterial returns a neutral, mostly-diffuse material.
func DefaultMaterial() Material {
	return Material{
		DiffuseColor:  math3d.ColorRGB{R: 0.8, G: 0.8, B: 0.8},
		SpecularColor: math3d.ColorRGB{R: 1, G: 1, B: 1},
		Kd:            1,
		Ks:            0.2,
		PhongExponent: 32,
		Roughness:     0.5,
		F0:            0.04,
	}
}

// Shade evaluates the full BRDF response for light direction l and view
// direction v (both pointing away from the surface) at hit. It sums a
// Lambert diffuse term, a Cook-Torrance specular term built from the
// Schlick Fresnel, GGX normal distribution, and Smith/Schlick-GGX geometry
// terms, and a Phong specular term. When n.l or n.v is not positive it
// returns the Lambert term alone.
func (m Material) Shade(hit geom.HitRecord, l, v math3d.Vec3) math3d.ColorRGB {
	n := hit.Normal
	nDotL := math.Max(0, n.Dot(l))
	nDotV := math.Max(0, n.Dot(v))
	if nDotL <= 0 || nDotV <= 0 {
		return shading.Lambert(m.DiffuseColor, m.Kd)
	}

	h := l.Add(v).Normalize()
	nDotH := math.Max(0, n.Dot(h))
	hDotV := math.Max(0, h.Dot(v))

	diffuse := shading.Lambert(m.DiffuseColor, m.Kd)

	f := shading.SchlickFresnel(m.F0, hDotV)
	d := shading.GGXNormalDistribution(nDotH, m.Roughness)
	g := shading.SmithGeometry(nDotV, nDotL, m.Roughness)
	specDenom := 4 * nDotV * nDotL
	specStrength := (f * d * g) / specDenom
	specular := m.SpecularColor.Scale(m.Ks * specStrength)

	phong := shading.PhongSpecular(m.Ks, l, v, n, m.PhongExponent)
	specular = specular.Add(m.SpecularColor.Scale(phong))

	return diffuse.Add(specular)
}
