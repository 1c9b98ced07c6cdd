package math3d

import (
	"testing"
)

// BenchmarkMeshTransformCompose mirrors TriangleMesh.UpdateTriangles'
// translation*rotation*scale composition, run once per SetTransform call.
func BenchmarkMeshTransformCompose(b *testing.B) {
	t := Translate(V3(1, 2, 3))
	r := RotateY(0.5)
	s := Scale(V3(2, 2, 2))

	for b.Loop() {
		_ = t.Mul(r).Mul(s)
	}
}

// BenchmarkBakeVertex mirrors the per-vertex MulVec3 call UpdateTriangles
// makes for every position in a mesh whenever its transform changes.
func BenchmarkBakeVertex(b *testing.B) {
	transform := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = transform.MulVec3(v)
	}
}

// BenchmarkBakeNormal mirrors UpdateTriangles' per-face MulVec3Dir+Normalize
// call.
func BenchmarkBakeNormal(b *testing.B) {
	transform := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	n := V3(0, 0, 1)

	for b.Loop() {
		_ = transform.MulVec3Dir(n).Normalize()
	}
}

// BenchmarkMat4Inverse covers Mat4.Inverse, kept as a general Mat4 operation
// even though the render path itself never needs to invert a transform.
func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 2, 2)))

	for b.Loop() {
		_ = m.Inverse()
	}
}

// BenchmarkCameraBasisRebuild mirrors Camera.ensureBasis: a RotateY*RotateX
// composition applied to the canonical forward vector, run once per camera
// move in interactive (-live) mode.
func BenchmarkCameraBasisRebuild(b *testing.B) {
	yaw, pitch := 0.8, 0.3

	for b.Loop() {
		rot := RotateY(yaw).Mul(RotateX(pitch))
		forward := rot.MulVec3Dir(V3(0, 0, 1)).Normalize()
		right := Up().Cross(forward).Normalize()
		_ = forward.Cross(right).Normalize()
	}
}

// BenchmarkVec3Normalize covers Camera.GenerateRay's per-pixel direction
// normalize, the hottest per-pixel Vec3 call in the render loop.
func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

// BenchmarkVec3Cross covers the cross products the Moller-Trumbore triangle
// test and per-face normal computation both depend on.
func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

// BenchmarkVec3Dot covers the n.Dot(l)/n.Dot(v) calls the BRDF terms in
// pkg/shading evaluate once per light per hit.
func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}
