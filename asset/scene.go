// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneDescription is a scene's on-disk composition: which materials it
// uses and which meshes/terrains its entities are built from. It is a
// loading-time manifest only — nothing here is retained by ecs/rgraph once
// the scene has been built into entities and graph nodes.
type SceneDescription struct {
	Name      string               `yaml:"name"`
	Materials []MaterialDescription `yaml:"materials"`
	Entities  []EntityDescription   `yaml:"entities"`
}

// MaterialDescription names the shader and texture/uniform bindings one
// material applies. Uniforms are left as raw YAML scalars (strings,
// numbers); asset/scene.go's caller converts them into gpu.UniformVariable
// values once a Program is compiled against this material's shader.
type MaterialDescription struct {
	Name     string            `yaml:"name"`
	Shader   string            `yaml:"shader"`
	Textures map[string]string `yaml:"textures"`
	Uniforms map[string]any    `yaml:"uniforms"`
}

// EntityDescription is one scene entity: a mesh or terrain asset, the
// material to draw it with, and its initial world-space transform.
type EntityDescription struct {
	Name     string     `yaml:"name"`
	Mesh     string     `yaml:"mesh"`
	Material string     `yaml:"material"`
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"`
	Scale    float64    `yaml:"scale"`
}

// LoadScene decodes a YAML scene description.
func LoadScene(data []byte) (*SceneDescription, error) {
	var scene SceneDescription
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("asset: scene yaml: %w", err)
	}
	return &scene, nil
}
