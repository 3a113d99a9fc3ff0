// SPDX-FileCopyrightText: © 2024-2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package asset

// font.go builds a font glyph atlas image plus per-glyph layout data,
// feeding the 2D renderer's texture input and asset/wrap.go's line-wrap
// measurement.
// Cobbled together based on some minimal atlas examples:
// - https://github.com/udhos/ratlas (uses golang freetype instead of x/image)
// - https://gist.github.com/baines/b0f9e4be04ba4e6f56cab82eef5008ff  (C + freetype)

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Runes can be overridden by the host application.
// Default: attempt to load basic runes plus some symbols.
var Runes = []rune(" ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890`~!@#$%^&*()[]{}/=?+\\|-_.>,<'\";:")

// Glyph is one character's position and layout within a FontAtlas image.
type Glyph struct {
	Rune        rune
	X, Y        int // top-left corner within the atlas image.
	Width       int
	LineHeight  int
	XOffset     int
	YOffset     int
	XAdvance    int
}

// FontAtlas is a single bitmap holding every glyph of a font at one size,
// plus the per-glyph layout data needed to lay out strings.
type FontAtlas struct {
	Pixels []byte // NRGBA atlas image.
	Width  int
	Height int
	Glyphs []Glyph
}

// Glyph looks up a rune's layout in the atlas, returning ok=false if the
// rune wasn't baked in (usually because it was outside the Runes set when
// the atlas was built).
func (a *FontAtlas) Glyph(r rune) (g Glyph, ok bool) {
	for _, have := range a.Glyphs {
		if have.Rune == r {
			return have, true
		}
	}
	return Glyph{}, false
}

// LoadFont parses a TrueType/OpenType font and bakes Runes into a single
// atlas image at the given point size.
func LoadFont(ttfBytes []byte, size int) (*FontAtlas, error) {
	f, err := opentype.Parse(ttfBytes)
	if err != nil {
		return nil, fmt.Errorf("asset: opentype parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("asset: opentype face: %w", err)
	}

	// A reasonable amount of runes with a reasonable font size should easily
	// fit into a 512x512 image.
	imgSize := 512
	atlas := &FontAtlas{Width: imgSize, Height: imgSize}
	img := image.NewNRGBA(image.Rect(0, 0, imgSize, imgSize))
	penx, peny := 0, 0
	lineHeight := face.Metrics().Height.Round()
	ascent := face.Metrics().Ascent.Round()

	for _, r := range Runes {
		bounds, _, ok := face.GlyphBounds(r)
		if !ok {
			slog.Error("asset: glyph not found in font", "rune", r, "char", string(r))
			continue
		}
		minX := bounds.Min.X.Floor()
		minY := bounds.Min.Y.Floor()
		maxX := bounds.Max.X.Ceil()
		maxY := bounds.Max.Y.Ceil()
		glyphWidth := maxX - minX + 2 // width padding.
		glyphHeight := maxY - minY
		descent := int(float32(maxY) + (float32(bounds.Min.Y)/64.0 - float32(minY)))
		bearingX := int(float32(bounds.Min.X) / 64.0)

		if penx+glyphWidth >= imgSize {
			penx = 0
			peny += lineHeight
			if peny >= imgSize {
				return nil, fmt.Errorf("asset: font atlas too small for rune set at size %d", imgSize)
			}
		}

		dst := image.NewNRGBA(image.Rect(0, 0, glyphWidth, glyphHeight))
		d := &font.Drawer{
			Dot:  fixed.P(-minX+1, -minY),
			Dst:  dst,
			Src:  image.White,
			Face: face,
		}
		dr, mask, maskp, xadvance, _ := d.Face.Glyph(d.Dot, r)
		draw.DrawMask(d.Dst, dr, d.Src, image.Point{}, mask, maskp, draw.Over)

		base := maxY - descent + (ascent + minY)
		draw.Draw(img, image.Rect(penx, peny+base, penx+glyphWidth, peny+base+glyphHeight), dst, image.Point{}, draw.Src)

		atlas.Glyphs = append(atlas.Glyphs, Glyph{
			Rune: r, X: penx, Y: peny,
			Width: glyphWidth, LineHeight: lineHeight,
			XOffset: bearingX, YOffset: 0,
			XAdvance: xadvance.Round(),
		})
		penx += glyphWidth
	}

	atlas.Pixels = []byte(img.Pix)
	return atlas, nil
}
