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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestEventLogWindow(t *testing.T) {
	l := NewEventLog()

	assert.Empty(t, l.Window(3))

	l.Log("Loaded", "pong.ch8")
	l.Logf("Speed: %d Hz", 120)
	l.Logln("Reset")

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []string{"Speed: 120 Hz", "", "Reset"}, l.Window(3))
	assert.Equal(t, []string{"Loaded pong.ch8", "Speed: 120 Hz", "", "Reset"}, l.Window(10))
}

func TestEventLogScroll(t *testing.T) {
	l := NewEventLog()
	for i := 0; i < 10; i++ {
		l.Logf("line %d", i)
	}

	l.ScrollUp()
	l.ScrollUp()
	assert.Equal(t, []string{"line 5", "line 6", "line 7"}, l.Window(3))

	// new lines don't move a scrolled log
	l.Log("line 10")
	assert.Equal(t, []string{"line 5", "line 6", "line 7"}, l.Window(3))

	l.ScrollDown(3)
	assert.Equal(t, []string{"line 6", "line 7", "line 8"}, l.Window(3))

	l.End()
	assert.Equal(t, []string{"line 8", "line 9", "line 10"}, l.Window(3))

	l.Home()
	assert.Equal(t, []string{"line 0", "line 1", "line 2"}, l.Window(3))

	l.ScrollUp()
	assert.Equal(t, []string{"line 0", "line 1", "line 2"}, l.Window(3))

	// scrolling down from the top skips to the first full window
	l.ScrollDown(3)
	assert.Equal(t, []string{"line 0", "line 1", "line 2"}, l.Window(3))
	l.ScrollDown(3)
	assert.Equal(t, []string{"line 1", "line 2", "line 3"}, l.Window(3))
}

func TestEventLogLimit(t *testing.T) {
	l := NewEventLog()
	for i := 0; i < maxEvents+20; i++ {
		l.Logf("line %d", i)
	}

	assert.Equal(t, maxEvents, l.Len())
	assert.Equal(t, []string{fmt.Sprintf("line %d", maxEvents+19)}, l.Window(1))
	assert.Equal(t, "line 20", l.buf[0])
}
