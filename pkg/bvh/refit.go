package bvh

import "github.com/nullforge/raytracer/pkg/geom"

// RebakeTriangles refreshes the triangle cache from the mesh's current
// transformed-vertex arrays without touching TriIdx or node topology.
// Call this, then Refit, after the mesh's transform changes.
func (b *BVH) RebakeTriangles() {
	for i := range b.Tris {
		b.Tris[i] = b.mesh.BakeTriangle(i)
	}
}

// Refit recomputes node bounds bottom-up without re-splitting, preserving
// the tree's topology. Sweeps node indices from NodesUsed-1 down to 0,
// skipping index 1 (allocated but never used). Idempotent: calling it twice in a row
// yields identical bounds on the second call.
func (b *BVH) Refit() {
	for i := b.NodesUsed - 1; i >= 0; i-- {
		if i == 1 {
			continue
		}
		node := &b.Nodes[i]
		if node.IsLeaf() {
			box := geom.NewEmptyAABB()
			first := int(node.LeftFirst)
			for k := first; k < first+int(node.TriCount); k++ {
				tri := b.Tris[b.TriIdx[k]]
				box.Grow(tri.V0)
				box.Grow(tri.V1)
				box.Grow(tri.V2)
			}
			node.Bounds = box
			continue
		}

		left := b.Nodes[node.LeftFirst]
		right := b.Nodes[node.LeftFirst+1]
		box := left.Bounds
		box.GrowBox(right.Bounds)
		node.Bounds = box
	}
}
