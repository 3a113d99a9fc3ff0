// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gpu

// Texture is a GPU-resident image bindable to a texture unit. A backend
// implementation owns the actual GPU handle; this package only describes
// the shape a render graph node binds against.
type Texture interface {
	Bindable

	Name() string
	Width() int
	Height() int
	Format() ColorFormat

	SetWrap(s, t WrapMode)
	SetFilter(min, mag FilterMode)

	// Upload replaces the texture's pixel data. pix must match
	// width*height*bytesPerPixel(format).
	Upload(width, height int, pix []byte) error
}

// FrameBuffer is a GPU render target a BindableRenderNode draws into
// instead of the screen: a shadow map, a post-process intermediate, or an
// offscreen scene pass.
type FrameBuffer interface {
	Bindable

	Width() int
	Height() int

	// ColorAttachment returns the framebuffer's colour target, or nil if
	// it only has a depth attachment (as with a shadow map).
	ColorAttachment() Texture
	// DepthAttachment returns the framebuffer's depth target, or nil if
	// it only renders colour.
	DepthAttachment() Texture

	Clear()
}
