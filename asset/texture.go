// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/ochre3d/engine/gpu"
)

// LoadTexture decodes a PNG, JPEG, or BMP image and uploads it into tex,
// converting to NRGBA first since gpu.Texture.Upload expects a fixed byte
// layout regardless of the source codec's native pixel format.
func LoadTexture(data []byte, tex gpu.Texture) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("asset: texture decode: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	if err := tex.Upload(width, height, nrgba.Pix); err != nil {
		return fmt.Errorf("asset: texture upload: %w", err)
	}
	return nil
}
