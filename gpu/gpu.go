// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package gpu describes the GPU resources a render graph node binds and
// unbinds: textures, framebuffers, meshes, compiled programs, and their
// uniform data. It is a resource-handle abstraction, not a graphics API
// wrapper — spec.md explicitly leaves the backing GPU API version
// unspecified, so this package never issues a draw call itself. A host
// links in a concrete backend satisfying these interfaces.
package gpu

// Bindable is anything a render graph node can push onto and pop off of
// the active GPU state: a texture unit, a framebuffer attachment, a bound
// program, a vertex buffer. Bind/Unbind must be safely nestable in LIFO
// order, since BindableRenderNode binds its auto-bind slots in order and
// unbinds them in reverse.
type Bindable interface {
	Bind()
	Unbind()
}

// PrimitiveType names the topology a Mesh's face data is drawn with.
type PrimitiveType int

const (
	Triangles PrimitiveType = iota
	TriangleStrip
	Lines
	Points
)

// ColorFormat names a texture or framebuffer attachment's pixel layout.
type ColorFormat int

const (
	RGBA8 ColorFormat = iota
	RGB8
	Depth24Stencil8
	Depth32F
	R8
)

// WrapMode names how a texture samples outside the [0,1] UV range.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// FilterMode names texture minification/magnification behaviour.
type FilterMode int

const (
	FilterLinear FilterMode = iota
	FilterNearest
	FilterLinearMipmap
)

// Usage names how frequently a buffer's contents are expected to change,
// letting a backend pick a matching GPU memory residency.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)
