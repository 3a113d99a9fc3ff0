// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"github.com/ochre3d/engine/gpu"
	"github.com/ochre3d/engine/math/lin"
	"github.com/ochre3d/engine/rgraph"
	"github.com/ochre3d/engine/terrain"
)

// terrainPatchSet holds one gpu.Mesh per terrain.Patch seam variant. All
// nine share the same per-vertex layout; only which edges/corners drop a
// row of vertices to stitch against a coarser neighbour differs.
type terrainPatchSet map[terrain.Patch]gpu.Mesh

// TerrainRenderer walks a terrain.Tree's visible leaves every frame and
// submits one draw per leaf, picking the seam patch variant from the
// leaf's neighbour LODs so adjacent LOD levels tile without gaps.
type TerrainRenderer struct {
	rgraph.BindableRenderNode
	queue      *Queue
	target     *rgraph.BindableInput[gpu.FrameBuffer]
	targetSlot int
	patches    terrainPatchSet
	offsetUni  string
	lodUni     string
	tree       *terrain.Tree
	treeHeight float64
}

// NewTerrainRenderer creates a terrain renderer over tree, drawing with
// patches (one mesh per terrain.Patch variant) and setting offsetUniform /
// lodUniform per draw so the vertex shader can apply the leaf's XZ offset
// and LOD scale.
func NewTerrainRenderer(name string, tree *terrain.Tree, patches terrainPatchSet, offsetUniform, lodUniform string, filters ...Filter) *TerrainRenderer {
	r := &TerrainRenderer{
		BindableRenderNode: rgraph.NewBindableRenderNode(name),
		queue:              NewQueue(filters...),
		patches:            patches,
		offsetUni:          offsetUniform,
		lodUni:             lodUniform,
		tree:               tree,
	}
	r.targetSlot = r.AddBindable(true)
	r.target = rgraph.AddBindableInput[gpu.FrameBuffer](&r.BindableRenderNode, "target", r.targetSlot)
	return r
}

// SetTarget assigns the framebuffer this renderer draws into directly,
// bypassing the render graph's Connect wiring. Used for private targets not
// otherwise part of the graph, such as a shadow subgraph's per-caster depth
// buffer.
func (r *TerrainRenderer) SetTarget(fb gpu.FrameBuffer) { r.SetBindable(r.targetSlot, fb) }

// leafBounds returns a generous AABB for frustum-culling leaf: the tree's
// footprint is flat in XZ, so Y spans the full configured terrain height
// range rather than an exact heightfield bound.
func (r *TerrainRenderer) leafBounds(leaf terrain.Leaf) (min, max lin.V3) {
	half := r.tree.Size() / float64(int(1)<<uint(leaf.Lod)) / 2
	min = lin.V3{X: leaf.OffsetX - half, Y: -r.treeHeight, Z: leaf.OffsetZ - half}
	max = lin.V3{X: leaf.OffsetX + half, Y: r.treeHeight, Z: leaf.OffsetZ + half}
	return min, max
}

// terrainLeafRenderable adapts a terrain.Leaf to Bounded for the queue's
// filter pass.
type terrainLeafRenderable struct {
	leaf terrain.Leaf
	minB lin.V3
	maxB lin.V3
}

func (t *terrainLeafRenderable) Bounds() (min, max lin.V3) { return t.minB, t.maxB }

// SubmitVisible walks tree and submits every leaf under pass, using patches
// to pick the correct seam mesh for each leaf's neighbour-LOD gaps.
func (r *TerrainRenderer) SubmitVisible(pass Pass) {
	r.tree.Walk(func(leaf terrain.Leaf) {
		min, max := r.leafBounds(leaf)
		tr := &terrainLeafRenderable{leaf: leaf, minB: min, maxB: max}
		r.queue.Submit(tr, pass, tr)
	})
}

// SetHeightRange configures the vertical extent used for leaf AABBs.
func (r *TerrainRenderer) SetHeightRange(height float64) { r.treeHeight = height }

func (r *TerrainRenderer) SortQueue()  { r.queue.SortQueue() }
func (r *TerrainRenderer) ClearQueue() { r.queue.ClearQueue() }

// Execute binds the target framebuffer, then draws every queued leaf with
// the patch variant matching its neighbour-LOD gaps.
func (r *TerrainRenderer) Execute() {
	r.BindAndRun(func() {
		var active gpu.Program
		r.queue.Render(
			func(pass Pass) {
				if p, ok := pass.(gpu.Program); ok {
					active = p
					p.Bind()
				}
			},
			func(renderable any) {
				tr := renderable.(*terrainLeafRenderable)
				mesh, ok := r.patches[terrain.PatchFor(tr.leaf)]
				if !ok {
					return
				}
				if active != nil {
					active.UniformVariable(r.offsetUni).Set([2]float32{float32(tr.leaf.OffsetX), float32(tr.leaf.OffsetZ)})
					active.UniformVariable(r.lodUni).Set(int32(tr.leaf.Lod))
				}
				mesh.Bind()
				mesh.Unbind()
			},
		)
	})
}
