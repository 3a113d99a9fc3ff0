// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terrain

// Patch names which seam-stitching mesh variant a terrain renderer should
// draw for a leaf. A leaf whose neighbour on one or more sides is at a
// coarser LOD needs extra skirt geometry on that side so the two meshes'
// edge vertices line up without a crack; a leaf with two coarser adjacent
// neighbours needs a corner variant that stitches both sides at once.
type Patch int

const (
	PatchFull Patch = iota
	PatchTop
	PatchBottom
	PatchLeft
	PatchRight
	PatchCornerTL
	PatchCornerTR
	PatchCornerBL
	PatchCornerBR
)

// PatchFor selects the seam variant for a leaf from its neighbour LODs. A
// side needs stitching when its neighbour is coarser (lower LOD) than the
// leaf; two adjacent coarser sides select a corner variant instead of
// stacking two edge variants.
func PatchFor(l Leaf) Patch {
	coarseTop := l.NeighborLods[Top] >= 0 && l.NeighborLods[Top] < l.Lod
	coarseBottom := l.NeighborLods[Bottom] >= 0 && l.NeighborLods[Bottom] < l.Lod
	coarseLeft := l.NeighborLods[Left] >= 0 && l.NeighborLods[Left] < l.Lod
	coarseRight := l.NeighborLods[Right] >= 0 && l.NeighborLods[Right] < l.Lod

	switch {
	case coarseTop && coarseLeft:
		return PatchCornerTL
	case coarseTop && coarseRight:
		return PatchCornerTR
	case coarseBottom && coarseLeft:
		return PatchCornerBL
	case coarseBottom && coarseRight:
		return PatchCornerBR
	case coarseTop:
		return PatchTop
	case coarseBottom:
		return PatchBottom
	case coarseLeft:
		return PatchLeft
	case coarseRight:
		return PatchRight
	default:
		return PatchFull
	}
}
