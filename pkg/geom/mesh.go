package geom

import "github.com/nullforge/raytracer/pkg/math3d"

// TriangleMesh owns parallel arrays of model-space positions and per-face
// normals plus a flat index buffer, alongside a rigid transform (separate
// translation, rotation and scale) applied to produce the world-space
// mirror arrays consumed by BVH construction.
//
// Invariants: len(transformedPositions) == len(Positions),
// len(transformedNormals) == len(Indices)/3, and every entry of Indices is
// less than len(Positions).
type TriangleMesh struct {
	Name          string
	Positions     []math3d.Vec3 // model-space vertex positions
	Normals       []math3d.Vec3 // model-space per-face normals, len == len(Indices)/3
	Indices       []int         // flat triangle index triples
	CullMode      CullMode
	MaterialIndex int

	translation math3d.Vec3
	rotation    math3d.Mat4
	scale       math3d.Vec3
	transform   math3d.Mat4

	transformedPositions []math3d.Vec3
	transformedNormals   []math3d.Vec3
}

// NewTriangleMesh builds a mesh from model-space data with an identity
// transform. UpdateTriangles must be called before the mesh can be baked
// into a BVH — NewTriangleMesh does this once automatically.
func NewTriangleMesh(name string, positions, normals []math3d.Vec3, indices []int, cull CullMode, materialIndex int) *TriangleMesh {
	m := &TriangleMesh{
		Name:          name,
		Positions:     positions,
		Normals:       normals,
		Indices:       indices,
		CullMode:      cull,
		MaterialIndex: materialIndex,
		translation:   math3d.Zero3(),
		rotation:      math3d.Identity(),
		scale:         math3d.V3(1, 1, 1),
	}
	m.UpdateTriangles()
	return m
}

// TriangleCount returns the number of triangular faces.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// SetTransform replaces the mesh's translation/rotation/scale and rebakes
// the transformed vertex and normal caches. Callers must then call
// bvh.BVH.RebakeTriangles followed by bvh.BVH.Refit to keep a BVH built
// over this mesh in sync without re-splitting.
func (m *TriangleMesh) SetTransform(translation math3d.Vec3, rotation math3d.Mat4, scale math3d.Vec3) {
	m.translation = translation
	m.rotation = rotation
	m.scale = scale
	m.UpdateTriangles()
}

// UpdateTriangles recomputes transformedPositions and transformedNormals
// from the current translation/rotation/scale. Must be called whenever the
// transform or the underlying model-space arrays change.
func (m *TriangleMesh) UpdateTriangles() {
	m.transform = math3d.Translate(m.translation).
		Mul(m.rotation).
		Mul(math3d.Scale(m.scale))

	if cap(m.transformedPositions) < len(m.Positions) {
		m.transformedPositions = make([]math3d.Vec3, len(m.Positions))
	} else {
		m.transformedPositions = m.transformedPositions[:len(m.Positions)]
	}
	for i, p := range m.Positions {
		m.transformedPositions[i] = m.transform.MulVec3(p)
	}

	faceCount := len(m.Indices) / 3
	if cap(m.transformedNormals) < faceCount {
		m.transformedNormals = make([]math3d.Vec3, faceCount)
	} else {
		m.transformedNormals = m.transformedNormals[:faceCount]
	}
	for i := range faceCount {
		n := m.Normals[i]
		m.transformedNormals[i] = m.transform.MulVec3Dir(n).Normalize()
	}
}

// WorldPosition returns the world-space position of vertex i.
func (m *TriangleMesh) WorldPosition(i int) math3d.Vec3 {
	return m.transformedPositions[i]
}

// WorldNormal returns the world-space normal of face i.
func (m *TriangleMesh) WorldNormal(i int) math3d.Vec3 {
	return m.transformedNormals[i]
}

// BakeTriangle constructs the world-space Triangle for face i, reading the
// current transformed-vertex cache. Used by BVH construction to populate
// its triangle cache once, and by refit callers after a transform change.
func (m *TriangleMesh) BakeTriangle(face int) Triangle {
	i0 := m.Indices[face*3]
	i1 := m.Indices[face*3+1]
	i2 := m.Indices[face*3+2]

	return Triangle{
		V0:            m.transformedPositions[i0],
		V1:            m.transformedPositions[i1],
		V2:            m.transformedPositions[i2],
		Normal:        m.transformedNormals[face],
		Centroid:      m.transformedPositions[i0].Add(m.transformedPositions[i1]).Add(m.transformedPositions[i2]).Scale(1.0 / 3.0),
		CullMode:      m.CullMode,
		MaterialIndex: m.MaterialIndex,
	}
}

// Bounds returns the AABB of the mesh's current world-space vertices.
func (m *TriangleMesh) Bounds() AABB {
	box := NewEmptyAABB()
	for _, p := range m.transformedPositions {
		box.Grow(p)
	}
	return box
}
