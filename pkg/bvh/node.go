// Package bvh implements a linear-array bounding volume hierarchy over a
// triangle mesh: SAH-guided construction, bottom-up refit after a
// transform change, and both iterative and recursive traversal.
package bvh

import "github.com/nullforge/raytracer/pkg/geom"

// Node is one entry of the BVH's dense node array. When TriCount > 0 the
// node is a leaf and LeftFirst is the offset into the triangle-index table;
// otherwise it is interior and LeftFirst is the index of the left child
// (the right child is always LeftFirst+1, a consequence of the allocation
// scheme that allocates children in pairs).
type Node struct {
	Bounds    geom.AABB
	LeftFirst uint32
	TriCount  uint32
}

// IsLeaf reports whether the node stores triangles directly.
func (n Node) IsLeaf() bool {
	return n.TriCount > 0
}
