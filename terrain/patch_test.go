// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terrain

import "testing"

func TestPatchForFullWhenNoCoarserNeighbour(t *testing.T) {
	l := Leaf{Lod: 2, NeighborLods: [4]int{2, 2, 2, 2}}
	if got := PatchFor(l); got != PatchFull {
		t.Errorf("got %v, want PatchFull", got)
	}
}

func TestPatchForEdgeWhenOneCoarserNeighbour(t *testing.T) {
	l := Leaf{Lod: 2, NeighborLods: [4]int{2, 1, 2, 2}} // Bottom, Top, Left, Right
	if got := PatchFor(l); got != PatchTop {
		t.Errorf("got %v, want PatchTop", got)
	}
}

func TestPatchForCornerWhenTwoAdjacentCoarserNeighbours(t *testing.T) {
	l := Leaf{Lod: 2, NeighborLods: [4]int{2, 1, 1, 2}} // Top and Left coarser.
	if got := PatchFor(l); got != PatchCornerTL {
		t.Errorf("got %v, want PatchCornerTL", got)
	}
}

func TestPatchForIgnoresMissingNeighbour(t *testing.T) {
	l := Leaf{Lod: 2, NeighborLods: [4]int{-1, -1, -1, -1}}
	if got := PatchFor(l); got != PatchFull {
		t.Errorf("got %v, want PatchFull for a tree-edge leaf", got)
	}
}
