// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terrain

// height.go exposes the simplex noise generator in noise.go as a terrain
// elevation sampler. The QuadTree itself is purely a 2D LOD subdivision and
// has no notion of height; HeightField is a supplementary piece a terrain
// renderer uses to turn a leaf's XZ offset into actual vertex heights.

// HeightField produces deterministic world-space elevations from a seed,
// so the same seed always regenerates the same terrain.
type HeightField struct {
	n      *noise
	scale  float64 // horizontal frequency.
	amp    float64 // vertical amplitude.
}

// NewHeightField creates a height sampler. Use seed 0 to get a new random
// field each run, or a previously returned Seed() to recreate one.
func NewHeightField(seed int64, scale, amplitude float64) *HeightField {
	if scale <= 0 {
		scale = 0.01
	}
	return &HeightField{n: newNoise(seed), scale: scale, amp: amplitude}
}

// Seed returns the seed in use, useful for persisting a generated map.
func (h *HeightField) Seed() int64 { return h.n.seed }

// Height returns the terrain elevation at the given world-space XZ location.
func (h *HeightField) Height(x, z float64) float64 {
	return h.n.generate(x*h.scale, z*h.scale) * h.amp
}
