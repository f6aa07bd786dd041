/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// The font atlas holds the printable ASCII range in a single row.
const (
	firstGlyph  = ' '
	lastGlyph   = '~'
	glyphWidth  = 7
	glyphHeight = 13
)

/// createFont renders the fixed 7x13 font into a texture atlas.
///
func createFont(renderer *sdl.Renderer) (*sdl.Texture, error) {
	face := basicfont.Face7x13
	n := lastGlyph - firstGlyph + 1

	surface, err := sdl.CreateRGBSurface(0, n*glyphWidth, glyphHeight, 32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000)
	if err != nil {
		return nil, fmt.Errorf("creating font surface: %w", err)
	}
	defer surface.Free()

	d := font.Drawer{
		Dst:  surface,
		Src:  image.White,
		Face: face,
	}

	for c := firstGlyph; c <= lastGlyph; c++ {
		d.Dot = fixed.P(int(c-firstGlyph)*glyphWidth, face.Ascent)
		d.DrawString(string(rune(c)))
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("creating font texture: %w", err)
	}

	_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}

/// drawText using the font atlas.
///
func (s *sdlScreen) drawText(text string, x, y int32) {
	src := sdl.Rect{W: glyphWidth, H: glyphHeight}
	dst := sdl.Rect{X: x, Y: y, W: glyphWidth, H: glyphHeight}

	// loop over all the characters in the string
	for _, c := range text {
		if c > firstGlyph && c <= lastGlyph {
			src.X = (c - firstGlyph) * glyphWidth

			// draw the character to the renderer
			_ = s.renderer.Copy(s.font, &src, &dst)
		}

		// advance
		dst.X += glyphWidth
	}
}
