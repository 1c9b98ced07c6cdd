package bvh

import (
	"fmt"
	"math"

	"github.com/nullforge/raytracer/pkg/geom"
)

// maxStackDepth bounds the iterative traversal's node stack. A BVH deeper
// than this is a construction-time invariant violation, not a runtime data
// condition — Hit panics rather than silently truncating traversal.
const maxStackDepth = 64

// Hit is the production traversal path: an iterative walk using a fixed
// 64-entry stack, descending into the nearer child first and pushing the
// farther one whenever the ray hits its bounds. It does not prune the
// pushed child against the current best t — simpler, at the cost
// of occasionally wasted traversal. When ignoreHitRecord is true (a shadow
// ray) it returns true as soon as any triangle is hit.
func (b *BVH) Hit(r geom.Ray, hit *geom.HitRecord, ignoreHitRecord bool) bool {
	if b.NodesUsed == 0 {
		return false
	}

	// ray is narrowed to the closest hit found so far (TMax = t^2, matching
	// the squared-distance convention), so later kernel calls reject
	// anything farther without ever comparing against hit.T directly.
	ray := r

	var stack [maxStackDepth]int
	stackPtr := 0
	nodeIdx := 0
	anyHit := false

	for {
		node := &b.Nodes[nodeIdx]

		if node.IsLeaf() {
			first := int(node.LeftFirst)
			for i := first; i < first+int(node.TriCount); i++ {
				tri := b.Tris[b.TriIdx[i]]
				if geom.HitTriangle(tri, ray, hit, ignoreHitRecord) {
					anyHit = true
					if ignoreHitRecord {
						return true
					}
					ray.TMax = hit.T * hit.T
				}
			}
			if stackPtr == 0 {
				return anyHit
			}
			stackPtr--
			nodeIdx = stack[stackPtr]
			continue
		}

		left := int(node.LeftFirst)
		right := left + 1
		leftDist := geom.HitSlabDistance(b.Nodes[left].Bounds, ray)
		rightDist := geom.HitSlabDistance(b.Nodes[right].Bounds, ray)
		if leftDist > rightDist {
			left, right = right, left
			leftDist, rightDist = rightDist, leftDist
		}

		if leftDist == math.MaxFloat64 {
			if stackPtr == 0 {
				return anyHit
			}
			stackPtr--
			nodeIdx = stack[stackPtr]
			continue
		}

		nodeIdx = left
		if rightDist != math.MaxFloat64 {
			if stackPtr >= maxStackDepth {
				panic(fmt.Sprintf("bvh: traversal stack overflow beyond depth %d", maxStackDepth))
			}
			stack[stackPtr] = right
			stackPtr++
		}
	}
}

// HitRecursive is the reference traversal path, retained for correctness
// testing against Hit. It slab-tests each node on entry rather than
// ordering children by distance, and exhaustively tests every triangle in
// a leaf before returning — unlike the early-return-after-first-triangle
// behavior seen in one reference source variant, which was a bug, not a
// design choice worth preserving.
func (b *BVH) HitRecursive(r geom.Ray, hit *geom.HitRecord, ignoreHitRecord bool) bool {
	if b.NodesUsed == 0 {
		return false
	}
	return b.hitRecursive(0, r, hit, ignoreHitRecord)
}

func (b *BVH) hitRecursive(nodeIdx int, r geom.Ray, hit *geom.HitRecord, ignoreHitRecord bool) bool {
	// hit is shared across the whole recursion, so re-deriving TMax from its
	// current t at the top of every call keeps later sibling calls pruned
	// to the best hit found anywhere earlier in the traversal.
	if hit.DidHit {
		r.TMax = hit.T * hit.T
	}

	node := &b.Nodes[nodeIdx]
	if !geom.HitSlab(node.Bounds, r) {
		return false
	}

	if node.IsLeaf() {
		anyHit := false
		first := int(node.LeftFirst)
		for i := first; i < first+int(node.TriCount); i++ {
			tri := b.Tris[b.TriIdx[i]]
			if geom.HitTriangle(tri, r, hit, ignoreHitRecord) {
				anyHit = true
				if ignoreHitRecord {
					return true
				}
				r.TMax = hit.T * hit.T
			}
		}
		return anyHit
	}

	leftHit := b.hitRecursive(int(node.LeftFirst), r, hit, ignoreHitRecord)
	if ignoreHitRecord && leftHit {
		return true
	}
	rightHit := b.hitRecursive(int(node.LeftFirst)+1, r, hit, ignoreHitRecord)
	return leftHit || rightHit
}

// TriIndexCoverage returns the set of triangle indices referenced across
// all leaf ranges, for invariant testing: after a build this must equal
// {0, ..., N-1} with no omissions or duplicates.
func (b *BVH) TriIndexCoverage() []int {
	seen := make([]int, 0, len(b.Tris))
	var walk func(nodeIdx int)
	walk = func(nodeIdx int) {
		node := b.Nodes[nodeIdx]
		if node.IsLeaf() {
			first := int(node.LeftFirst)
			for i := first; i < first+int(node.TriCount); i++ {
				seen = append(seen, b.TriIdx[i])
			}
			return
		}
		walk(int(node.LeftFirst))
		walk(int(node.LeftFirst) + 1)
	}
	if len(b.Tris) > 0 {
		walk(0)
	}
	return seen
}
