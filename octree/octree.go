// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Package octree implements octree color quantization: pixels are
// grouped by successive 3-bit prefixes of their RGB24 bits into an
// 8-way arena-backed tree, then bottom-up reduction collapses the
// deepest branches into leaves until collapsing another branch would
// leave fewer leaves than the target palette size.
package octree

import (
	"errors"
	"fmt"

	"github.com/edobrowo/paletter/color"
)

// handle is a stable index into a tree's node arena.
type handle int

// empty denotes an absent child.
const empty handle = -1

// root is always a branch, handle 0.
const root handle = 0

// maxHeight is the octree depth: one level per bit of each channel.
const maxHeight = 8

// errInvariant is the sentinel wrapped by every invariant violation:
// a handle out of arena bounds, or a branch/leaf expected at a
// position that turns out to hold the other tag. Either indicates a
// bug in the build or reduce phases, never bad input, so it is raised
// as a panic rather than returned as an error.
var errInvariant = errors.New("octree: internal invariant violated")

// invariantError carries the specific violation observed.
type invariantError struct{ msg string }

func (e *invariantError) Error() string { return "octree: " + e.msg }
func (e *invariantError) Unwrap() error { return errInvariant }

func panicInvariant(format string, args ...any) {
	panic(&invariantError{msg: fmt.Sprintf(format, args...)})
}

// node is a tagged union: a branch (isLeaf == false) holds up to 8
// child handles; a leaf (isLeaf == true) holds 64-bit channel and
// pixel-count accumulators. A live, color-bearing leaf has count >= 1;
// reduction can erase a leaf in place by zeroing its count.
type node struct {
	isLeaf   bool
	children [8]handle
	count    uint64
	r, g, b  uint64
}

func newBranch() node {
	n := node{}
	for i := range n.children {
		n.children[i] = empty
	}
	return n
}

// tree is the arena. branchesByDepth[d] lists, in creation order, the
// handles of branches at tree depth d (d in [1,7]); depth 8 nodes are
// always leaves and are not tracked here since reduction only ever
// walks branches.
type tree struct {
	nodes           []node
	branchesByDepth [maxHeight]([]handle)
	leafCount       int
}

func newTree() *tree {
	return &tree{nodes: []node{newBranch()}}
}

// at returns the node at h, panicking with an invariant violation if h
// falls outside the arena.
func (t *tree) at(h handle) *node {
	if h < 0 || int(h) >= len(t.nodes) {
		panicInvariant("handle %d out of arena bounds [0,%d)", h, len(t.nodes))
	}
	return &t.nodes[h]
}

// branchAt returns the node at h, panicking if it is not a branch.
func (t *tree) branchAt(h handle) *node {
	n := t.at(h)
	if n.isLeaf {
		panicInvariant("branch expected at handle %d, found leaf", h)
	}
	return n
}

// leafAt returns the node at h, panicking if it is not a leaf.
func (t *tree) leafAt(h handle) *node {
	n := t.at(h)
	if !n.isLeaf {
		panicInvariant("leaf expected at handle %d, found branch", h)
	}
	return n
}

// add descends from the root, creating branches along the way, and
// accumulates color into the level-7 leaf for its full prefix.
func (t *tree) add(c color.RGB24) {
	h := root
	for level := 0; level < maxHeight-1; level++ {
		idx := c.LevelIndex(level)
		if t.branchAt(h).children[idx] == empty {
			t.nodes = append(t.nodes, newBranch())
			nh := handle(len(t.nodes) - 1)
			t.branchAt(h).children[idx] = nh
			depth := level + 1
			t.branchesByDepth[depth] = append(t.branchesByDepth[depth], nh)
		}
		h = t.branchAt(h).children[idx]
	}

	idx := c.LevelIndex(maxHeight - 1)
	if t.branchAt(h).children[idx] == empty {
		t.nodes = append(t.nodes, node{
			isLeaf: true,
			count:  1,
			r:      uint64(c.R),
			g:      uint64(c.G),
			b:      uint64(c.B),
		})
		t.branchAt(h).children[idx] = handle(len(t.nodes) - 1)
		t.leafCount++
		return
	}
	leaf := t.leafAt(t.branchAt(h).children[idx])
	leaf.count++
	leaf.r += uint64(c.R)
	leaf.g += uint64(c.G)
	leaf.b += uint64(c.B)
}

// reduce collapses branches bottom-up (depth 7 down to depth 1; the
// root at depth 0 is never reduced) until the live leaf count would
// drop below paletteSize, or no branch has any live child left.
func (t *tree) reduce(paletteSize int) {
	live := t.leafCount
	for depth := maxHeight - 1; depth >= 1; depth-- {
		for _, h := range t.branchesByDepth[depth] {
			n := t.branchAt(h)
			childCount := 0
			var sumCount, sumR, sumG, sumB uint64
			for _, ch := range n.children {
				if ch == empty {
					continue
				}
				childCount++
				child := t.leafAt(ch)
				sumCount += child.count
				sumR += child.r
				sumG += child.g
				sumB += child.b
			}

			// Collapsing replaces childCount leaves with one new leaf.
			after := live - (childCount - 1)
			if after < paletteSize {
				return
			}
			if childCount == 0 {
				return
			}

			for _, ch := range n.children {
				if ch != empty {
					t.leafAt(ch).count = 0
				}
			}
			*t.at(h) = node{isLeaf: true, count: sumCount, r: sumR, g: sumG, b: sumB}
			live = after
		}
	}
}

// emit scans the arena in creation order and returns the average
// color of every live leaf (count > 0), using integer division.
func (t *tree) emit() []color.RGB24 {
	palette := make([]color.RGB24, 0, t.leafCount)
	for _, n := range t.nodes {
		if !n.isLeaf || n.count == 0 {
			continue
		}
		palette = append(palette, color.RGB24{
			R: uint8(n.r / n.count),
			G: uint8(n.g / n.count),
			B: uint8(n.b / n.count),
		})
	}
	return palette
}

// Quantize reduces colors to about paletteSize representative colors
// using octree quantization. A branch collapses as a whole, and
// reduction stops before the leaf count would drop below paletteSize,
// so the palette can hold more than paletteSize colors. If fewer than
// paletteSize distinct 8-bit prefixes exist, fewer colors than
// paletteSize are returned.
// Callers must ensure 1 <= paletteSize <= len(colors); colors must be
// non-empty.
func Quantize(colors []color.RGB24, paletteSize int) []color.RGB24 {
	t := newTree()
	for _, c := range colors {
		t.add(c)
	}
	t.reduce(paletteSize)
	return t.emit()
}
