package bvh

import (
	"math"

	"github.com/nullforge/raytracer/pkg/geom"
)

// leafThreshold is the triangle count at or below which a node stops
// splitting and becomes a leaf. Not configurable.
const leafThreshold = 2

// BVH owns a dense node array sized 2N-1 (N = triangle count), a baked
// triangle cache indexed by original face index, and a permutation table
// that construction reorders so each leaf's triangles occupy a contiguous
// range.
type BVH struct {
	mesh      *geom.TriangleMesh
	Nodes     []Node
	Tris      []geom.Triangle
	TriIdx    []int
	NodesUsed int
}

// Build constructs a BVH over mesh's current world-space triangles.
// Node index 1 is allocated but never used, so that child pairs always
// land at indices 2k/2k+1 — this is what lets Refit skip straight past it.
func Build(mesh *geom.TriangleMesh) *BVH {
	n := mesh.TriangleCount()

	b := &BVH{
		mesh:   mesh,
		Nodes:  make([]Node, max(2*n-1, 2)),
		Tris:   make([]geom.Triangle, n),
		TriIdx: make([]int, n),
	}
	for i := range n {
		b.Tris[i] = mesh.BakeTriangle(i)
		b.TriIdx[i] = i
	}

	if n == 0 {
		b.NodesUsed = 1
		return b
	}

	root := &b.Nodes[0]
	root.LeftFirst = 0
	root.TriCount = uint32(n)
	b.NodesUsed = 2

	b.updateNodeBounds(0)
	b.subdivide(0)
	return b
}

func (b *BVH) updateNodeBounds(nodeIdx int) {
	node := &b.Nodes[nodeIdx]
	box := geom.NewEmptyAABB()
	first := int(node.LeftFirst)
	for i := first; i < first+int(node.TriCount); i++ {
		tri := b.Tris[b.TriIdx[i]]
		box.Grow(tri.V0)
		box.Grow(tri.V1)
		box.Grow(tri.V2)
	}
	node.Bounds = box
}

func (b *BVH) subdivide(nodeIdx int) {
	node := &b.Nodes[nodeIdx]
	if node.TriCount <= leafThreshold {
		return
	}

	axis, pos, cost := b.findBestSplit(node)
	_ = cost

	first := int(node.LeftFirst)
	count := int(node.TriCount)
	i := first
	j := first + count - 1
	for i <= j {
		if b.centroidAxis(b.Tris[b.TriIdx[i]], axis) < pos {
			i++
		} else {
			b.TriIdx[i], b.TriIdx[j] = b.TriIdx[j], b.TriIdx[i]
			j--
		}
	}

	leftCount := i - first
	if leftCount == 0 || leftCount == count {
		return // degenerate split: accept as leaf
	}

	leftIdx := b.NodesUsed
	rightIdx := b.NodesUsed + 1
	b.NodesUsed += 2

	b.Nodes[leftIdx].LeftFirst = uint32(first)
	b.Nodes[leftIdx].TriCount = uint32(leftCount)
	b.Nodes[rightIdx].LeftFirst = uint32(i)
	b.Nodes[rightIdx].TriCount = uint32(count - leftCount)

	node.LeftFirst = uint32(leftIdx)
	node.TriCount = 0

	b.updateNodeBounds(leftIdx)
	b.updateNodeBounds(rightIdx)
	b.subdivide(leftIdx)
	b.subdivide(rightIdx)
}

// findBestSplit enumerates every triangle's centroid on every axis as a
// candidate split position and picks the minimum-SAH-cost one. O(N^2) per
// node — acceptable for the scenes this core targets; binned SAH is out of
// scope.
func (b *BVH) findBestSplit(node *Node) (bestAxis int, bestPos float64, bestCost float64) {
	bestCost = math.MaxFloat64
	first := int(node.LeftFirst)
	count := int(node.TriCount)

	for axis := range 3 {
		for i := first; i < first+count; i++ {
			pos := b.centroidAxis(b.Tris[b.TriIdx[i]], axis)
			cost := b.evaluateSAH(node, axis, pos)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestPos = pos
			}
		}
	}
	return bestAxis, bestPos, bestCost
}

func (b *BVH) evaluateSAH(node *Node, axis int, pos float64) float64 {
	leftBox := geom.NewEmptyAABB()
	rightBox := geom.NewEmptyAABB()
	var leftCount, rightCount int

	first := int(node.LeftFirst)
	count := int(node.TriCount)
	for i := first; i < first+count; i++ {
		tri := b.Tris[b.TriIdx[i]]
		if b.centroidAxis(tri, axis) < pos {
			leftCount++
			leftBox.Grow(tri.V0)
			leftBox.Grow(tri.V1)
			leftBox.Grow(tri.V2)
		} else {
			rightCount++
			rightBox.Grow(tri.V0)
			rightBox.Grow(tri.V1)
			rightBox.Grow(tri.V2)
		}
	}

	cost := float64(leftCount)*leftBox.Area() + float64(rightCount)*rightBox.Area()
	if cost <= 0 {
		return math.MaxFloat64
	}
	return cost
}

func (b *BVH) centroidAxis(tri geom.Triangle, axis int) float64 {
	switch axis {
	case 0:
		return tri.Centroid.X
	case 1:
		return tri.Centroid.Y
	default:
		return tri.Centroid.Z
	}
}
