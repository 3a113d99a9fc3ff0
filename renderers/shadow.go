// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"fmt"

	"github.com/ochre3d/engine/gpu"
	"github.com/ochre3d/engine/math/lin"
	"github.com/ochre3d/engine/rgraph"
)

// MaxShadowCasters is a shadow-caster cap of 14 lights. NewShadowSubgraph
// takes its cap as the maxCasters argument and does not read this constant.
const MaxShadowCasters = 14

// shadowCaster is one light's shadow-map slot: its own mesh and terrain
// renderers drawing into a private depth target from the light's
// view/projection, plus whether the slot is in use.
type shadowCaster struct {
	active     bool
	view       *lin.M4
	projection *lin.M4
	resolution int
	target     gpu.FrameBuffer
	mesh       *MeshRenderer
	terrain    *TerrainRenderer
}

// ShadowSubgraph is a BindableRenderNode wrapping an internal mini render
// graph: up to its configured shadow-caster cap, each clearing its own
// depth target and drawing terrain+meshes from a light's view/projection.
// The shadow maps are not merged: nothing writes the "shadow" output and
// the camera's inverse view-projection is only stored.
type ShadowSubgraph struct {
	rgraph.BindableRenderNode
	casters     []shadowCaster
	position    *rgraph.BindableInput[gpu.Texture]
	normal      *rgraph.BindableInput[gpu.Texture]
	output      *rgraph.BindableOutput[gpu.Texture]
	outputSlot  int
	invCameraVP *lin.M4
}

// NewShadowSubgraph creates a shadow subgraph able to hold up to maxCasters
// simultaneous shadow-casting lights.
func NewShadowSubgraph(name string, maxCasters int) *ShadowSubgraph {
	s := &ShadowSubgraph{
		BindableRenderNode: rgraph.NewBindableRenderNode(name),
		casters:            make([]shadowCaster, maxCasters),
	}
	posSlot := s.AddBindable(false)
	normSlot := s.AddBindable(false)
	s.outputSlot = s.AddBindable(false)
	s.position = rgraph.AddBindableInput[gpu.Texture](&s.BindableRenderNode, "position", posSlot)
	s.normal = rgraph.AddBindableInput[gpu.Texture](&s.BindableRenderNode, "normal", normSlot)
	s.output = rgraph.AddBindableOutput[gpu.Texture](&s.BindableRenderNode, "shadow", s.outputSlot)
	return s
}

// SetInvCameraViewProjectionMatrix stores the camera's inverse
// view-projection matrix; Execute does not read it.
func (s *ShadowSubgraph) SetInvCameraViewProjectionMatrix(m *lin.M4) { s.invCameraVP = m }

// AddShadow allocates the first free caster slot sized for resolution,
// wiring mesh and terrain to draw into target from view/projection, and
// returns the slot's index, or an index >= len(s.casters) if none are
// free. target, mesh, and terrain are supplied by the caller rather than
// constructed here: target is a concrete gpu.FrameBuffer from the host's
// backend, and mesh/terrain are renderers the caller already built with
// NewMeshRenderer/NewTerrainRenderer (typically filtered by a shared
// Frustum), matching how every other renderer's framebuffer input is
// always supplied externally rather than self-constructed.
func (s *ShadowSubgraph) AddShadow(resolution int, view, projection *lin.M4, target gpu.FrameBuffer, mesh *MeshRenderer, terrain *TerrainRenderer) int {
	for i := range s.casters {
		if !s.casters[i].active {
			mesh.SetTarget(target)
			terrain.SetTarget(target)
			s.casters[i] = shadowCaster{
				active:     true,
				view:       view,
				projection: projection,
				resolution: resolution,
				target:     target,
				mesh:       mesh,
				terrain:    terrain,
			}
			return i
		}
	}
	return len(s.casters)
}

// SetShadowVPMatrix updates an existing caster's view/projection matrices.
func (s *ShadowSubgraph) SetShadowVPMatrix(index int, view, projection *lin.M4) error {
	if index < 0 || index >= len(s.casters) || !s.casters[index].active {
		return fmt.Errorf("renderers: no active shadow caster at index %d", index)
	}
	s.casters[index].view = view
	s.casters[index].projection = projection
	return nil
}

// RemoveShadow frees the caster slot at index.
func (s *ShadowSubgraph) RemoveShadow(index int) {
	if index >= 0 && index < len(s.casters) {
		s.casters[index] = shadowCaster{}
	}
}

// SubmitTerrain calls submit with every active caster's terrain renderer,
// so what submit queues is drawn into each light's depth target.
func (s *ShadowSubgraph) SubmitTerrain(submit func(tr *TerrainRenderer)) {
	for i := range s.casters {
		if s.casters[i].active {
			submit(s.casters[i].terrain)
		}
	}
}

// SubmitMesh calls submit with every active caster's mesh renderer.
func (s *ShadowSubgraph) SubmitMesh(submit func(mr *MeshRenderer)) {
	for i := range s.casters {
		if s.casters[i].active {
			submit(s.casters[i].mesh)
		}
	}
}

// Execute clears and draws each active caster's depth target from its own
// view/projection. It does not merge the shadow maps and does not write
// the subgraph's "shadow" output texture.
func (s *ShadowSubgraph) Execute() {
	s.BindAndRun(func() {
		for i := range s.casters {
			c := &s.casters[i]
			if !c.active {
				continue
			}
			c.target.Clear()
			c.terrain.SortQueue()
			c.terrain.Execute()
			c.terrain.ClearQueue()
			c.mesh.SortQueue()
			c.mesh.Execute()
			c.mesh.ClearQueue()
		}
		// No merge of the active shadow maps runs here or elsewhere in the
		// module; the "shadow" output slot is left as it is.
	})
}
