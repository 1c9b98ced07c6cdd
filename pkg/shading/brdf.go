// Package shading implements the direct-lighting BRDF terms: Lambert
// diffuse, Phong specular, and the Cook-Torrance microfacet terms (Schlick
// Fresnel, GGX normal distribution, Schlick-GGX/Smith geometry).
package shading

import (
	"math"

	"github.com/nullforge/raytracer/pkg/math3d"
)

// Lambert returns the diffuse term (cd * kd) / pi.
func Lambert(cd math3d.ColorRGB, kd float64) math3d.ColorRGB {
	return cd.Scale(kd / math.Pi)
}

// PhongSpecular returns ks * max(0, r.v)^exp where r is the mirror
// reflection of the incoming light direction l about normal n:
// r = l - 2(n.l)n.
func PhongSpecular(ks float64, l, v, n math3d.Vec3, exp float64) float64 {
	r := l.Sub(n.Scale(2 * n.Dot(l)))
	rv := math.Max(0, r.Dot(v))
	return ks * math.Pow(rv, exp)
}

// SchlickFresnel returns F0 + (1-F0)(1-max(0,h.v))^5.
func SchlickFresnel(f0, hDotV float64) float64 {
	c := 1 - math.Max(0, hDotV)
	return f0 + (1-f0)*c*c*c*c*c
}

// GGXNormalDistribution returns the Trowbridge-Reitz (GGX) NDF value for
// the given n.h cosine and roughness, with alpha = roughness^2.
func GGXNormalDistribution(nDotH, roughness float64) float64 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	d := nDotH*nDotH*(alpha2-1) + 1
	return alpha2 / (math.Pi * d * d)
}

// SchlickGGXGeometry returns the UE4 direct-lighting Schlick-GGX geometry
// term G1 for a single cosine (either n.v or n.l), with k = (roughness+1)^2/8.
func SchlickGGXGeometry(nDotX, roughness float64) float64 {
	k := (roughness + 1) * (roughness + 1) / 8
	return nDotX / (nDotX*(1-k) + k)
}

// SmithGeometry combines the view and light G1 terms: G1(n,v) * G1(n,l).
func SmithGeometry(nDotV, nDotL, roughness float64) float64 {
	return SchlickGGXGeometry(nDotV, roughness) * SchlickGGXGeometry(nDotL, roughness)
}

// LightingMode selects how the render driver combines shadow tests and
// BRDF evaluation into the accumulated pixel color.
type LightingMode int

const (
	// ObservedArea shades with plain white * cos(theta), ignoring material.
	ObservedArea LightingMode = iota
	// Radiance shades with inverse-square-falloff irradiance only.
	Radiance
	// BRDF shades with the material response only, no falloff.
	BRDF
	// Combined multiplies radiance, BRDF, and the cosine foreshortening term.
	Combined
)
