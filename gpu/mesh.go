// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gpu

// VertexData carries one per-vertex attribute buffer (positions, normals,
// UVs, ...) bound/copied to the GPU at a given shader layout location.
type VertexData interface {
	// Set replaces the buffer's contents with data, which must be
	// []float32 or []byte, and marks it for rebind.
	Set(data any)
	Len() int     // number of vertices covered.
	Size() uint32 // buffer size in bytes.
}

// FaceData carries the vertex draw order for indexed drawing.
type FaceData interface {
	Set(indices []uint16)
	Len() int
	Size() uint32
}

// Mesh is a GPU-resident vertex buffer set plus an optional index buffer,
// bound and drawn as one PrimitiveType by a renderer node.
type Mesh interface {
	Bindable

	Name() string
	Primitive() PrimitiveType

	// AddVertexData registers a new per-vertex attribute at shader layout
	// location lloc with span values per vertex, returning the buffer a
	// caller fills via Set.
	AddVertexData(lloc uint32, span int, usage Usage) VertexData
	SetFaceData(usage Usage) FaceData

	// VertexCount is the number of vertices to draw (indexed or not).
	VertexCount() int
}
