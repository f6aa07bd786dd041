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

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayDraw(t *testing.T) {
	var d Display

	assert.False(t, d.Draw(0, 0, []byte{0xF0, 0x90}))
	assert.True(t, d.redraw)

	frame := d.Snapshot()
	assert.Equal(t, 6, frame.Lit())
	assert.True(t, frame.Pixel(0, 0))
	assert.True(t, frame.Pixel(3, 0))
	assert.False(t, frame.Pixel(4, 0))
	assert.True(t, frame.Pixel(0, 1))
	assert.False(t, frame.Pixel(1, 1))
	assert.True(t, frame.Pixel(3, 1))

	// overlapping a single lit pixel is a collision
	assert.True(t, d.Draw(3, 1, []byte{0x80}))
	frame = d.Snapshot()
	assert.False(t, frame.Pixel(3, 1))
	assert.Equal(t, 5, frame.Lit())
}

func TestDisplayWrap(t *testing.T) {
	var d Display

	d.Draw(62, 31, []byte{0xC0, 0xC0})
	frame := d.Snapshot()

	assert.True(t, frame.Pixel(62, 31))
	assert.True(t, frame.Pixel(63, 31))
	assert.True(t, frame.Pixel(62, 0))
	assert.True(t, frame.Pixel(63, 0))
	assert.Equal(t, 4, frame.Lit())

	// coordinates past the edge wrap too
	d.Clear()
	d.Draw(Width+1, Height+2, []byte{0x80})
	frame = d.Snapshot()
	assert.True(t, frame.Pixel(1, 2))
}

func TestDisplayEmptySprite(t *testing.T) {
	var d Display

	assert.False(t, d.Draw(0, 0, nil))
	assert.True(t, d.redraw)
	assert.Equal(t, 0, d.Snapshot().Lit())
}

func TestDisplayClear(t *testing.T) {
	var d Display

	d.Draw(10, 10, []byte{0xFF})
	d.redraw = false
	d.Clear()

	assert.True(t, d.redraw)
	assert.Equal(t, 0, d.Snapshot().Lit())
}

func TestSnapshotIsCopy(t *testing.T) {
	var d Display

	frame := d.Snapshot()
	d.Draw(0, 0, []byte{0x80})

	assert.False(t, frame.Pixel(0, 0))
}
