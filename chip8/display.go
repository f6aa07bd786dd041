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

package chip8

// Resolution of the CHIP-8 display.
const (
	Width  = 64
	Height = 32
)

// Frame is a row-major copy of the display. Each pixel is 0 (off) or 1 (on).
type Frame [Height][Width]byte

// Pixel returns true if the pixel at x, y is on.
func (f Frame) Pixel(x, y int) bool {
	return f[y][x] != 0
}

// Lit returns the number of pixels turned on.
func (f Frame) Lit() int {
	n := 0

	for y := range f {
		for x := range f[y] {
			n += int(f[y][x])
		}
	}

	return n
}

// Display is the 64x32 monochrome video memory.
type Display struct {
	pixels Frame

	// redraw is set whenever the video memory has been written.
	redraw bool
}

// Clear turns off every pixel.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.redraw = true
}

// Draw XORs a sprite onto the display at x, y. Each byte of the sprite
// is one row of 8 pixels, MSB first. Coordinates wrap around the edges
// of the display. Returns true if any pixel was turned off.
func (d *Display) Draw(x, y int, sprite []byte) bool {
	c := byte(0)

	for row, b := range sprite {
		py := (y + row) % Height

		for bit := 0; bit < 8; bit++ {
			px := (x + bit) % Width

			// sprite pixel for this column
			s := b >> (7 - bit) & 1

			// collision if an on pixel is flipped off
			c |= s & d.pixels[py][px]

			d.pixels[py][px] ^= s
		}
	}

	// always redraw, even if nothing changed
	d.redraw = true

	return c != 0
}

// Snapshot returns a copy of the video memory.
func (d *Display) Snapshot() Frame {
	return d.pixels
}
