// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"github.com/ochre3d/engine/gpu"
	"github.com/ochre3d/engine/rgraph"
)

// Sprite2D is one orthographic-space quad: a texture and a screen-space
// position/size. No batch mesh is built from it.
type Sprite2D struct {
	Texture gpu.Texture
	X, Y    float32
	W, H    float32
}

// TwoDRenderer batches orthographic sprite draws. Unlike the 3D renderers,
// it has no frustum filter — screen-space renderables are pre-clipped by
// the layer that positions them — so Submit passes a nil Bounded.
type TwoDRenderer struct {
	rgraph.BindableRenderNode
	queue  *Queue
	target *rgraph.BindableInput[gpu.FrameBuffer]
}

// NewTwoDRenderer creates a 2D batch renderer.
func NewTwoDRenderer(name string) *TwoDRenderer {
	r := &TwoDRenderer{
		BindableRenderNode: rgraph.NewBindableRenderNode(name),
		queue:              NewQueue(),
	}
	slot := r.AddBindable(true)
	r.target = rgraph.AddBindableInput[gpu.FrameBuffer](&r.BindableRenderNode, "target", slot)
	return r
}

// Submit enqueues sprite under the given texture pass, batching by texture
// to minimise binds.
func (r *TwoDRenderer) Submit(sprite *Sprite2D, texture gpu.Texture) {
	r.queue.Submit(sprite, texture, nil)
}

func (r *TwoDRenderer) SortQueue()  { r.queue.SortQueue() }
func (r *TwoDRenderer) ClearQueue() { r.queue.ClearQueue() }

// Execute binds the target framebuffer, then walks the queued sprites in
// texture order, binding each new texture exactly once. It issues no draw
// for the sprites themselves.
func (r *TwoDRenderer) Execute() {
	r.BindAndRun(func() {
		var active gpu.Texture
		r.queue.Render(
			func(pass Pass) {
				if t, ok := pass.(gpu.Texture); ok {
					active = t
					t.Bind()
				}
			},
			func(renderable any) {
				_ = active
				_ = renderable.(*Sprite2D)
			},
		)
	})
}
