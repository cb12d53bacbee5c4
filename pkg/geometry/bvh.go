package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// BoxedHittable pairs a hittable with its precomputed bounding box
type BoxedHittable struct {
	Box    core.AABB
	Object Hittable
}

// childRef addresses either an inner node or a leaf primitive
type childRef struct {
	index int
	leaf  bool // index addresses BVH.leaves instead of BVH.nodes
}

// bvhNode represents an inner node of the hierarchy.
// A node built over a single primitive has both children aliasing the same leaf.
type bvhNode struct {
	box         core.AABB
	left, right childRef
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes and primitives live in flat arenas and reference each other by index.
// Once built the hierarchy is read-only.
type BVH struct {
	nodes  []bvhNode
	leaves []Hittable
	root   int
}

// NewBVHFromList computes every object's box over the shutter interval and builds a BVH.
// Empty lists and objects without a bounding box are reported as errors.
func NewBVHFromList(list *HittableList, timeFrom, timeTo float64, sampler core.Sampler) (*BVH, error) {
	boxed := make([]BoxedHittable, 0, list.Len())
	for i, object := range list.Objects() {
		box, ok := object.BoundingBox(timeFrom, timeTo)
		if !ok {
			return nil, fmt.Errorf("object %d: %w", i, ErrUnboundedObject)
		}
		boxed = append(boxed, BoxedHittable{Box: box, Object: object})
	}
	return NewBVH(boxed, sampler)
}

// NewBVH constructs a BVH from (box, hittable) pairs.
// The input slice is copied, so the caller's order is left untouched.
func NewBVH(boxed []BoxedHittable, sampler core.Sampler) (*BVH, error) {
	if len(boxed) == 0 {
		return nil, ErrEmptyWorld
	}

	boxedCopy := make([]BoxedHittable, len(boxed))
	copy(boxedCopy, boxed)

	bvh := &BVH{
		nodes: make([]bvhNode, 0, len(boxed)),
	}
	bvh.root = bvh.build(boxedCopy, 0, len(boxedCopy), sampler)

	// Leaf references point at final positions; deeper sorts only touch their own ranges
	bvh.leaves = make([]Hittable, len(boxedCopy))
	for i, b := range boxedCopy {
		bvh.leaves[i] = b.Object
	}

	return bvh, nil
}

// build recursively builds the subtree over boxed[from:to] and returns its node index
func (bvh *BVH) build(boxed []BoxedHittable, from, to int, sampler core.Sampler) int {
	var node bvhNode
	count := to - from

	switch count {
	case 1:
		node.left = childRef{index: from, leaf: true}
		node.right = node.left
		node.box = boxed[from].Box
	case 2:
		node.left = childRef{index: from, leaf: true}
		node.right = childRef{index: from + 1, leaf: true}
		node.box = boxed[from].Box.Union(boxed[from+1].Box)
	default:
		axis := core.SampleAxis(sampler)
		sortByAxis(boxed[from:to], axis)

		mid := from + count/2
		left := bvh.build(boxed, from, mid, sampler)
		right := bvh.build(boxed, mid, to, sampler)
		node.left = childRef{index: left}
		node.right = childRef{index: right}
		node.box = bvh.nodes[left].box.Union(bvh.nodes[right].box)
	}

	bvh.nodes = append(bvh.nodes, node)
	return len(bvh.nodes) - 1
}

// sortByAxis orders boxed hittables by the minimum of their box along axis
func sortByAxis(boxed []BoxedHittable, axis int) {
	sort.Slice(boxed, func(i, j int) bool {
		return boxed[i].Box.Min.Axis(axis) < boxed[j].Box.Min.Axis(axis)
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return bvh.hitNode(bvh.root, ray, tMin, tMax)
}

// hitNode prunes on the node box, then tests both children and keeps the nearer hit
func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitsLeft := bvh.hitChild(node.left, ray, tMin, tMax)
	rightHit, hitsRight := bvh.hitChild(node.right, ray, tMin, tMax)

	switch {
	case hitsLeft && hitsRight:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case hitsLeft:
		return leftHit, true
	case hitsRight:
		return rightHit, true
	default:
		return nil, false
	}
}

func (bvh *BVH) hitChild(ref childRef, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if ref.leaf {
		return bvh.leaves[ref.index].Hit(ray, tMin, tMax)
	}
	return bvh.hitNode(ref.index, ray, tMin, tMax)
}

// BoundingBox returns the root box, which already covers the build time window
func (bvh *BVH) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	return bvh.nodes[bvh.root].box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes    int // Inner nodes
	Leaves   int // Primitives referenced by the tree
	MaxDepth int // Longest root-to-leaf path, counted in nodes
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	return BVHStats{
		Nodes:    len(bvh.nodes),
		Leaves:   len(bvh.leaves),
		MaxDepth: bvh.depth(bvh.root),
	}
}

func (bvh *BVH) depth(index int) int {
	node := bvh.nodes[index]
	depth := 0
	for _, child := range []childRef{node.left, node.right} {
		if !child.leaf {
			depth = max(depth, bvh.depth(child.index))
		}
	}
	return depth + 1
}
