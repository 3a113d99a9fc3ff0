// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package asset decodes on-disk scene, shader, material, font, and texture
// descriptions into the types the ecs/rgraph/gpu cores consume, keeping
// the engine's runtime core free of file formats and codecs.
package asset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var shaderStages = map[string]ShaderStage{
	"vert": StageVertex,
	"geom": StageGeometry,
	"frag": StageFragment,
}

var attributeScopes = map[string]AttributeScope{
	"vertex":   VertexAttribute,
	"instance": InstanceAttribute,
}

var uniformScopes = map[string]UniformScope{
	"scene":    SceneScope,
	"material": MaterialScope,
	"model":    ModelScope,
}

// ShaderDescription binds a compiled gpu.Program's named attributes and
// uniforms to the render graph's data, generalizing the teacher's
// `ShaderAttributes`/`ShaderAttributeScope`/`ShaderUniformScope` maps from a
// fixed attribute/uniform index scheme to plain name lookups, since
// gpu.Program resolves attribute locations and uniform variables by name at
// bind time rather than through a pre-declared index table.
type ShaderDescription struct {
	Name   string // unique shader name, matching asset filenames Name.vert/.frag.
	Pass   string // render pass this shader belongs to.
	Stages ShaderStage

	CullModeNone bool // true disables backface culling.
	DrawLines    bool // true draws lines instead of triangles.

	Attrs    []ShaderAttribute
	Uniforms []ShaderUniform
}

// ShaderAttribute is one named vertex or per-instance attribute the shader
// expects, at the layout location LoadShaderDescription assigned from its
// declaration order.
type ShaderAttribute struct {
	Name     string
	Location uint32
	Scope    AttributeScope
}

// ShaderUniform is one named uniform the shader expects, looked up on the
// bound gpu.Program via UniformVariable(Name).
type ShaderUniform struct {
	Name  string
	Scope UniformScope
}

// LoadShaderDescription decodes a YAML shader description. Attribute
// locations are assigned in declaration order (0, 1, 2, ...) rather than
// looked up in a fixed name table, so new attributes don't require a code
// change here.
func LoadShaderDescription(data []byte) (*ShaderDescription, error) {
	var cfg shaderConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("asset: shader yaml: %w", err)
	}

	stages := ShaderStage(0)
	for _, stg := range cfg.Stages {
		stage, ok := shaderStages[stg]
		if !ok {
			return nil, fmt.Errorf("asset: unsupported shader stage %q", stg)
		}
		stages |= stage
	}

	attrs := make([]ShaderAttribute, 0, len(cfg.Attrs))
	for i, a := range cfg.Attrs {
		scope, ok := attributeScopes[a.Scope]
		if !ok {
			return nil, fmt.Errorf("asset: unsupported attribute scope %q", a.Scope)
		}
		attrs = append(attrs, ShaderAttribute{Name: a.Name, Location: uint32(i), Scope: scope})
	}

	uniforms := make([]ShaderUniform, 0, len(cfg.Uniforms))
	for _, u := range cfg.Uniforms {
		scope, ok := uniformScopes[u.Scope]
		if !ok {
			return nil, fmt.Errorf("asset: unsupported uniform scope %q", u.Scope)
		}
		uniforms = append(uniforms, ShaderUniform{Name: u.Name, Scope: scope})
	}

	shader := &ShaderDescription{
		Name:     cfg.Name,
		Pass:     cfg.Pass,
		Stages:   stages,
		Attrs:    attrs,
		Uniforms: uniforms,
	}
	if cfg.Render != "" {
		shader.CullModeNone = strings.Contains(cfg.Render, "cullOff")
		shader.DrawLines = strings.Contains(cfg.Render, "drawLines")
	}
	return shader, nil
}

type shaderConfig struct {
	Name   string   `yaml:"name"`
	Pass   string   `yaml:"pass"`
	Stages []string `yaml:"stages"`
	Render string   `yaml:"render"`
	Attrs  []struct {
		Name  string `yaml:"name"`
		Scope string `yaml:"scope"`
	} `yaml:"attrs"`
	Uniforms []struct {
		Name  string `yaml:"name"`
		Scope string `yaml:"scope"`
	} `yaml:"uniforms"`
}

// ShaderStage identifies the programmable shader stages a shader can have.
type ShaderStage uint8

const (
	StageVertex   ShaderStage = 1 << iota // vertex processing.
	StageGeometry                         // e.g. turn points into quads.
	StageFragment                         // pixel processing.
)

// AttributeScope identifies whether an attribute varies per vertex or per
// instance.
type AttributeScope uint8

const (
	VertexAttribute AttributeScope = iota
	InstanceAttribute
)

// UniformScope identifies how often a uniform's value changes.
type UniformScope uint8

const (
	SceneScope    UniformScope = iota // set once per frame (camera, lights).
	MaterialScope                     // set once per material.
	ModelScope                        // set once per draw (model matrix, LOD offset).
)
