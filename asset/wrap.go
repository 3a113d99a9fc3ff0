// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

// wrap.go computes label line-wrap boundaries for the 2D renderer's text
// batches, generalizing the teacher's Ent.SetWrap/label.wrap (a single
// pixel-width cutoff) into a full greedy word-wrap over a FontAtlas's
// measured glyph advances.

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WrapText splits text into lines no wider than maxWidth pixels when laid
// out with atlas, breaking on runs of whitespace. A single word wider than
// maxWidth is kept on its own line rather than split mid-glyph. text is
// first normalized to NFC so combining-character sequences measure as the
// composed glyph the atlas was baked with.
func WrapText(atlas *FontAtlas, text string, maxWidth int) []string {
	normalized := norm.NFC.String(text)
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return nil
	}

	spaceWidth := glyphAdvance(atlas, ' ')
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := measure(atlas, word)
		if current.Len() == 0 {
			current.WriteString(word)
			currentWidth = wordWidth
			continue
		}
		candidateWidth := currentWidth + spaceWidth + wordWidth
		if candidateWidth > maxWidth {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = wordWidth
			continue
		}
		current.WriteByte(' ')
		current.WriteString(word)
		currentWidth = candidateWidth
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

func measure(atlas *FontAtlas, s string) int {
	width := 0
	for _, r := range s {
		width += glyphAdvance(atlas, r)
	}
	return width
}

func glyphAdvance(atlas *FontAtlas, r rune) int {
	if g, ok := atlas.Glyph(r); ok {
		return g.XAdvance
	}
	return 0
}
