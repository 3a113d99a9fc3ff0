// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"github.com/ochre3d/engine/gpu"
	"github.com/ochre3d/engine/math/lin"
	"github.com/ochre3d/engine/rgraph"
)

// MeshRenderable is one indexed-triangle draw: a GPU mesh, the program it's
// drawn with, and the world transform + bounds a System computed this
// frame.
type MeshRenderable struct {
	Mesh      gpu.Mesh
	Transform *lin.M4
	BoundsMin lin.V3
	BoundsMax lin.V3
}

// Bounds implements Bounded for frustum culling.
func (r *MeshRenderable) Bounds() (min, max lin.V3) { return r.BoundsMin, r.BoundsMax }

// MeshRenderer is a BindableRenderNode that draws indexed triangle meshes,
// one gpu.Program bind per distinct Pass (typically the Program itself).
type MeshRenderer struct {
	rgraph.BindableRenderNode
	queue      *Queue
	target     *rgraph.BindableInput[gpu.FrameBuffer]
	targetSlot int
	modelUni   string
}

// NewMeshRenderer creates a mesh renderer with a single "target" framebuffer
// input and its own submit queue, filtered by filters (typically a Frustum).
func NewMeshRenderer(name, modelUniformName string, filters ...Filter) *MeshRenderer {
	r := &MeshRenderer{
		BindableRenderNode: rgraph.NewBindableRenderNode(name),
		queue:              NewQueue(filters...),
		modelUni:           modelUniformName,
	}
	r.targetSlot = r.AddBindable(true)
	r.target = rgraph.AddBindableInput[gpu.FrameBuffer](&r.BindableRenderNode, "target", r.targetSlot)
	return r
}

// SetTarget assigns the framebuffer this renderer draws into directly,
// bypassing the render graph's Connect wiring. Used for private targets not
// otherwise part of the graph, such as a shadow subgraph's per-caster depth
// buffer.
func (r *MeshRenderer) SetTarget(fb gpu.FrameBuffer) { r.SetBindable(r.targetSlot, fb) }

// Submit enqueues a mesh draw under program, rejecting it if a filter
// (frustum culling) refuses the renderable's bounds.
func (r *MeshRenderer) Submit(renderable *MeshRenderable, program gpu.Program) {
	r.queue.Submit(renderable, program, renderable)
}

// SortQueue orders the queue by pass (program) to minimise program binds.
func (r *MeshRenderer) SortQueue() { r.queue.SortQueue() }

// ClearQueue empties the queue after Execute has drawn it.
func (r *MeshRenderer) ClearQueue() { r.queue.ClearQueue() }

// Execute binds the target framebuffer, then draws the sorted queue,
// binding each new program once and setting its model-matrix uniform per
// draw.
func (r *MeshRenderer) Execute() {
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
				mr := renderable.(*MeshRenderable)
				if active != nil {
					active.UniformVariable(r.modelUni).Set(mr.Transform)
				}
				mr.Mesh.Bind()
				mr.Mesh.Unbind()
			},
		)
	})
}
