// Package models provides the host-side mesh loaders (OBJ, glTF/GLB) that
// turn on-disk geometry into a geom.TriangleMesh. This is explicitly
// outside the ray-tracing core: it exists only to exercise the core
// end-to-end from the demo command.
package models

import (
	"github.com/nullforge/raytracer/pkg/geom"
	"github.com/nullforge/raytracer/pkg/math3d"
)

// buildTriangleMesh assembles a geom.TriangleMesh from positions and flat
// index triples (positions are used as given, not deduplicated), computing
// one normal per face via
// cross(v1-v0, v2-v0) as spec'd for the OBJ format and reused for glTF.
func buildTriangleMesh(name string, positions []math3d.Vec3, indices []int, cull geom.CullMode, materialIndex int) *geom.TriangleMesh {
	faceCount := len(indices) / 3
	normals := make([]math3d.Vec3, faceCount)
	for f := range faceCount {
		v0 := positions[indices[f*3]]
		v1 := positions[indices[f*3+1]]
		v2 := positions[indices[f*3+2]]
		normals[f] = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
	return geom.NewTriangleMesh(name, positions, normals, indices, cull, materialIndex)
}
