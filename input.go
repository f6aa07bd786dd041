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
	"github.com/massung/chip8vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	sdlKeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}

	/// Mapping of emulation keys to front end commands.
	///
	sdlCommands = map[sdl.Scancode]command{
		sdl.SCANCODE_ESCAPE:       cmdQuit,
		sdl.SCANCODE_BACKSPACE:    cmdReset,
		sdl.SCANCODE_SPACE:        cmdPause,
		sdl.SCANCODE_F5:           cmdPause,
		sdl.SCANCODE_F6:           cmdStep,
		sdl.SCANCODE_F10:          cmdStep,
		sdl.SCANCODE_F7:           cmdStepOver,
		sdl.SCANCODE_F11:          cmdStepOver,
		sdl.SCANCODE_F9:           cmdBreakpoint,
		sdl.SCANCODE_LEFTBRACKET:  cmdSlower,
		sdl.SCANCODE_RIGHTBRACKET: cmdFaster,
		sdl.SCANCODE_F1:           cmdOverlay,
		sdl.SCANCODE_TAB:          cmdOverlay,
		sdl.SCANCODE_PAGEUP:       cmdScrollUp,
		sdl.SCANCODE_UP:           cmdScrollUp,
		sdl.SCANCODE_PAGEDOWN:     cmdScrollDown,
		sdl.SCANCODE_DOWN:         cmdScrollDown,
		sdl.SCANCODE_H:            cmdHelp,
	}
)

// Keys returns the state of the CHIP-8 keys from the SDL keyboard state.
func (s *sdlScreen) Keys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool

	state := sdl.GetKeyboardState()

	for code, key := range sdlKeyMap {
		if int(code) < len(state) && state[code] != 0 {
			keys[key] = true
		}
	}

	return keys
}

/// processEvents from SDL and map emulation keys to runner commands.
///
func (s *sdlScreen) processEvents(r *runner) bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}

			if cmd, ok := sdlCommands[ev.Keysym.Scancode]; ok && !r.do(cmd) {
				return false
			}
		}
	}

	return true
}
