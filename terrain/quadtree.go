// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package terrain implements a restricted quadtree: a recursive XZ-plane
// subdivision that keeps adjacent leaves within one level of detail (LOD)
// of each other as an observer point moves. It has no dependency on the
// rest of the engine; renderers consume it through Tree.Walk.
package terrain

import (
	"log/slog"
	"math"
)

// Direction names one of the four sides of a quadtree node.
type Direction int

const (
	Bottom Direction = iota
	Top
	Left
	Right
	numDirections
)

func (d Direction) inverse() Direction {
	switch d {
	case Bottom:
		return Top
	case Top:
		return Bottom
	case Left:
		return Right
	default:
		return Left
	}
}

// Quarter indexes a child within its parent's children array. The bit
// layout matches isAtDirection/selectChildren below: bit1 selects
// Bottom(0)/Top(1), bit0 selects Left(0)/Right(1).
type Quarter uint8

const (
	BottomLeft  Quarter = 0
	BottomRight Quarter = 1
	TopLeft     Quarter = 2
	TopRight    Quarter = 3
)

func isAtDirection(q Quarter, d Direction) bool {
	switch d {
	case Bottom:
		return q>>1 == 0
	case Top:
		return q>>1 == 1
	case Left:
		return q&1 == 0
	default: // Right
		return q&1 == 1
	}
}

// selectChildren returns the child of a node at quarter q that lies in
// direction d, used while descending a neighbour search.
func selectChildren(q Quarter, d Direction) Quarter {
	switch d {
	case Bottom:
		return Quarter(q & 1)
	case Top:
		return Quarter(2 + (q & 1))
	case Left:
		return Quarter(2 * (q >> 1))
	default: // Right
		return Quarter(1 + 2*(q>>1))
	}
}

// handle indexes a node within the Tree's node pool. Handles stay valid
// for the lifetime of the node they name: a split only appends new
// handles, and a collapse only releases the handles of the node's own
// (leaf) children, never the node's own handle. -1 means "no node".
type handle int32

const noHandle handle = -1

// node is one vertex of the quadtree, stored by value in Tree.nodes and
// addressed by handle so that splitting or collapsing siblings never
// invalidates a handle a caller is holding onto this frame.
type node struct {
	children     [4]handle
	parent       handle
	quarter      Quarter
	offsetX      float64 // separation from the parent's centre.
	offsetZ      float64
	lod          int
	neighborLods [numDirections]int
	isLeaf       bool
}

// Leaf is a read-only snapshot of one quadtree leaf, as returned by Walk.
type Leaf struct {
	OffsetX, OffsetZ float64 // world-space XZ centre, relative to tree origin.
	Lod              int
	NeighborLods     [4]int
}

// Tree is a restricted quadtree: it maintains the invariant that any two
// adjacent leaves differ in LOD by at most one level.
type Tree struct {
	size         float64
	lodDistances []float64
	nodes        []node
	free         []handle
}

// NewTree creates a quadtree covering a size x size square in the XZ plane,
// starting as a single leaf at LOD 0. lodDistances must have at least one
// entry. Entry i is the distance threshold for splitting a LOD i node; the
// deepest LOD is len(lodDistances)-1, so the last entry is never read and a
// single entry allows no split.
func NewTree(size float64, lodDistances []float64) *Tree {
	t := &Tree{}
	t.SetLodDistances(lodDistances)
	t.SetSize(size)
	return t
}

// SetSize resets the tree to a single root leaf covering the new size.
func (t *Tree) SetSize(size float64) {
	t.size = size
	t.reset()
}

// SetLodDistances resets the tree to a single root leaf using the new
// per-level split distances.
func (t *Tree) SetLodDistances(distances []float64) {
	if len(distances) == 0 {
		slog.Warn("terrain: lodDistances must have at least one entry, defaulting to [1]")
		distances = []float64{1}
	}
	t.lodDistances = append([]float64{}, distances...)
	t.reset()
}

func (t *Tree) reset() {
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
	t.nodes = append(t.nodes, node{
		children: [4]handle{noHandle, noHandle, noHandle, noHandle},
		parent:   noHandle,
		isLeaf:   true,
	})
}

func (t *Tree) maxLod() int { return len(t.lodDistances) - 1 }

func (t *Tree) at(h handle) *node { return &t.nodes[h] }

// alloc returns a fresh node handle, reusing a released slot if one exists.
func (t *Tree) alloc() handle {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		return h
	}
	t.nodes = append(t.nodes, node{})
	return handle(len(t.nodes) - 1)
}

// release returns h and every descendant of h to the free list.
func (t *Tree) release(h handle) {
	n := t.at(h)
	if !n.isLeaf {
		for _, c := range n.children {
			if c != noHandle {
				t.release(c)
			}
		}
	}
	*n = node{}
	t.free = append(t.free, h)
}

// UpdateHighestLodLocation walks the tree from the root, splitting nodes
// closer than their LOD's distance threshold to highestLodLocation and
// collapsing ones that no longer need their current resolution. Call this
// once per frame before submitting terrain for rendering.
func (t *Tree) UpdateHighestLodLocation(x, y, z float64) {
	t.updateNode(0, 0, 0, x, y, z)
}

func (t *Tree) updateNode(h handle, parentX, parentZ, hx, hy, hz float64) {
	n := t.at(h)
	nodeX := parentX + n.offsetX
	nodeZ := parentZ + n.offsetZ
	dx, dy, dz := nodeX-hx, -hy, nodeZ-hz // node's world Y treated as 0.
	distance := math.Sqrt(dx*dx + dy*dy + dz*dz)

	if n.lod < t.maxLod() && distance < t.lodDistances[n.lod] {
		if n.isLeaf {
			t.split(h)
			n = t.at(h)
		}
		for _, c := range n.children {
			t.updateNode(c, nodeX, nodeZ, hx, hy, hz)
		}
		return
	}

	if !n.isLeaf {
		children := n.children
		for _, c := range children {
			t.updateNode(c, nodeX, nodeZ, hx, hy, hz)
		}
		if t.childrenCollapsible(children) {
			t.collapse(h)
		}
	}
}

// childrenCollapsible is true when every child is a leaf and none of a
// child's neighbours is at a finer LOD than the child itself.
func (t *Tree) childrenCollapsible(children [4]handle) bool {
	for _, c := range children {
		cn := t.at(c)
		if !cn.isLeaf {
			return false
		}
		for _, nl := range cn.neighborLods {
			if nl-cn.lod > 0 {
				return false
			}
		}
	}
	return true
}

// split turns a leaf into an internal node with four fresh leaf children,
// then propagates the LOD change to its neighbours.
func (t *Tree) split(h handle) {
	n := t.at(h)
	childSeparation := t.size / math.Pow(2, float64(n.lod+2))
	lod := n.lod + 1
	var children [4]handle
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			q := Quarter(2*i + j)
			c := t.alloc()
			ox := childSeparation
			if j == 0 {
				ox = -childSeparation
			}
			oz := childSeparation
			if i == 0 {
				oz = -childSeparation
			}
			*t.at(c) = node{
				children: [4]handle{noHandle, noHandle, noHandle, noHandle},
				parent:   h,
				quarter:  q,
				offsetX:  ox,
				offsetZ:  oz,
				lod:      lod,
				isLeaf:   true,
			}
			children[q] = c
		}
	}
	n = t.at(h)
	n.children = children
	n.isLeaf = false
	t.updateNeighbours(h)
}

// collapse turns an internal node (whose children must all be leaves) back
// into a single leaf, releasing the children and refreshing neighbour LODs.
func (t *Tree) collapse(h handle) {
	n := t.at(h)
	children := n.children
	n.isLeaf = true
	n.children = [4]handle{noHandle, noHandle, noHandle, noHandle}
	for _, c := range children {
		if c != noHandle {
			t.release(c)
		}
	}
	t.updateNeighbours(h)
}

// updateNeighbours refreshes the neighborLods arrays of h (if a leaf) or
// of all its descendants (if internal), splitting any neighbour whose LOD
// would otherwise differ from h by more than one level.
func (t *Tree) updateNeighbours(h handle) {
	n := t.at(h)
	if !n.isLeaf {
		for _, c := range n.children {
			t.updateNeighbours(c)
		}
		return
	}
	for d := Direction(0); d < numDirections; d++ {
		var path []handle
		t.at(h).neighborLods[d] = -1
		for _, nb := range t.neighbours(h, d, true, &path) {
			path = path[:0]
			inv := d.inverse()
			t.at(nb).neighborLods[inv] = -1
			for _, nnb := range t.neighbours(nb, inv, true, &path) {
				if t.at(nnb).lod > t.at(nb).neighborLods[inv] {
					t.at(nb).neighborLods[inv] = t.at(nnb).lod
				}
			}
			if t.at(nb).lod > t.at(h).neighborLods[d] {
				t.at(h).neighborLods[d] = t.at(nb).lod
			}

			lodDifference := t.at(h).lod - t.at(nb).lod
			switch {
			case lodDifference > 1:
				t.split(nb)
			case lodDifference < -1:
				t.split(h)
			}
		}
	}
}

// neighbours finds every leaf adjacent to h in direction d using the
// classical restricted-quadtree walk: ascend toward the root while h lies
// on the side facing d, then descend the mirrored path back down.
func (t *Tree) neighbours(h handle, d Direction, ascending bool, path *[]handle) []handle {
	n := t.at(h)
	if ascending {
		if n.lod == 0 {
			return nil
		}
		*path = append(*path, h)
		continueAscending := isAtDirection(n.quarter, d)
		return t.neighbours(n.parent, d, continueAscending, path)
	}

	if n.isLeaf {
		return []handle{h}
	}
	if len(*path) == 0 {
		var ret []handle
		inv := d.inverse()
		for _, c := range n.children {
			if isAtDirection(t.at(c).quarter, inv) {
				ret = append(ret, t.neighbours(c, d, false, path)...)
			}
		}
		return ret
	}

	last := len(*path) - 1
	pathNode := (*path)[last]
	*path = (*path)[:last]
	childDir := d
	if t.at(pathNode).parent != h {
		childDir = d.inverse()
	}
	childQ := selectChildren(t.at(pathNode).quarter, childDir)
	return t.neighbours(n.children[childQ], d, false, path)
}

// Walk calls cb for every active leaf, depth-first with children visited
// in quarter order.
func (t *Tree) Walk(cb func(Leaf)) {
	t.walk(0, 0, 0, cb)
}

func (t *Tree) walk(h handle, parentX, parentZ float64, cb func(Leaf)) {
	n := t.at(h)
	x := parentX + n.offsetX
	z := parentZ + n.offsetZ
	if n.isLeaf {
		cb(Leaf{OffsetX: x, OffsetZ: z, Lod: n.lod, NeighborLods: n.neighborLods})
		return
	}
	for _, c := range n.children {
		t.walk(c, x, z, cb)
	}
}

// Size returns the tree's current XZ-plane side length.
func (t *Tree) Size() float64 { return t.size }
