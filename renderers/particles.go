// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"github.com/ochre3d/engine/gpu"
	"github.com/ochre3d/engine/math/lin"
	"github.com/ochre3d/engine/rgraph"
)

// ParticleSystem is one emitter's instanced draw: a shared unit mesh plus a
// per-instance buffer (position, size, colour, ...) the owning System
// refreshes before submission.
type ParticleSystem struct {
	Mesh      gpu.Mesh
	Instances gpu.VertexData // per-instance attribute buffer, lloc agreed with the shader.
	BoundsMin lin.V3
	BoundsMax lin.V3
}

// Bounds implements Bounded, culling the whole emitter as one unit rather
// than per particle.
func (p *ParticleSystem) Bounds() (min, max lin.V3) { return p.BoundsMin, p.BoundsMax }

// ParticleRenderer draws instanced particle systems: one bind of the shared
// mesh per system, rather than one draw per particle. The instance data is
// not bound.
type ParticleRenderer struct {
	rgraph.BindableRenderNode
	queue    *Queue
	target   *rgraph.BindableInput[gpu.FrameBuffer]
	countUni string
}

// NewParticleRenderer creates a particle renderer, setting
// instanceCountUniformName to each emitter's live instance count per draw so
// the vertex shader knows how many instances to step through, filtered by
// filters (typically a Frustum over each emitter's bounds).
func NewParticleRenderer(name, instanceCountUniformName string, filters ...Filter) *ParticleRenderer {
	r := &ParticleRenderer{
		BindableRenderNode: rgraph.NewBindableRenderNode(name),
		queue:              NewQueue(filters...),
		countUni:           instanceCountUniformName,
	}
	slot := r.AddBindable(true)
	r.target = rgraph.AddBindableInput[gpu.FrameBuffer](&r.BindableRenderNode, "target", slot)
	return r
}

// Submit enqueues an emitter's instanced draw under program.
func (r *ParticleRenderer) Submit(system *ParticleSystem, program gpu.Program) {
	r.queue.Submit(system, program, system)
}

func (r *ParticleRenderer) SortQueue()  { r.queue.SortQueue() }
func (r *ParticleRenderer) ClearQueue() { r.queue.ClearQueue() }

// Execute binds the target framebuffer, then instance-draws every queued
// emitter, setting the active program's instance-count uniform from the
// emitter's live per-instance buffer length before each bind.
func (r *ParticleRenderer) Execute() {
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
				ps := renderable.(*ParticleSystem)
				if active != nil && ps.Instances != nil {
					active.UniformVariable(r.countUni).Set(int32(ps.Instances.Len()))
				}
				ps.Mesh.Bind()
				ps.Mesh.Unbind()
			},
		)
	})
}
