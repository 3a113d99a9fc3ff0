// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import "testing"

const shaderYAML = `
name: terrain
pass: forward
stages: [vert, frag]
render: cullOff
attrs:
  - name: position
    scope: vertex
  - name: offset
    scope: instance
uniforms:
  - name: model
    scope: model
  - name: albedo
    scope: material
`

func TestLoadShaderDescription(t *testing.T) {
	shader, err := LoadShaderDescription([]byte(shaderYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shader.Name != "terrain" || shader.Pass != "forward" {
		t.Fatalf("unexpected shader: %+v", shader)
	}
	if shader.Stages != StageVertex|StageFragment {
		t.Errorf("expecting vertex|fragment stages, got %v", shader.Stages)
	}
	if !shader.CullModeNone {
		t.Errorf("expecting cullOff render flag to set CullModeNone")
	}
	if len(shader.Attrs) != 2 || shader.Attrs[0].Location != 0 || shader.Attrs[1].Location != 1 {
		t.Errorf("expecting sequential attribute locations, got %+v", shader.Attrs)
	}
	if shader.Attrs[1].Scope != InstanceAttribute {
		t.Errorf("expecting the offset attribute to be instance-scoped")
	}
	if len(shader.Uniforms) != 2 || shader.Uniforms[0].Scope != ModelScope || shader.Uniforms[1].Scope != MaterialScope {
		t.Errorf("unexpected uniforms: %+v", shader.Uniforms)
	}
}

func TestLoadShaderDescriptionRejectsUnknownStage(t *testing.T) {
	_, err := LoadShaderDescription([]byte("name: x\nstages: [tess]\n"))
	if err == nil {
		t.Errorf("expecting an unsupported stage to be rejected")
	}
}
