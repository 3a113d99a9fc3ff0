// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gpu

// Program is a compiled, linked shader program. spec.md §6 treats the RG
// as only ever referencing an already-compiled program, so Program has no
// source-loading surface of its own; asset/ compiles and hands one in.
type Program interface {
	Bindable

	Name() string
	// AttributeLocation returns the vertex layout location bound to name,
	// or -1 if the program has no such attribute.
	AttributeLocation(name string) int
	// UniformVariable returns the named uniform, registering a fresh
	// binding point on first use.
	UniformVariable(name string) UniformVariable
}

// UniformVariable is a single named value on a bound Program: a matrix, a
// colour, a float. Set is type-erased since uniform shapes vary (mat4,
// vec3, float, int); backends assert the concrete type they expect.
type UniformVariable interface {
	Name() string
	Set(value any)
}

// UniformBuffer is a block of uniform data shared across a program (camera
// matrices, light parameters) bound once per frame rather than re-set per
// draw call.
type UniformBuffer interface {
	Bindable

	Name() string
	// Set replaces the buffer's raw bytes, typically packed by the caller
	// to match the shader's std140 layout.
	Set(data []byte)
}
