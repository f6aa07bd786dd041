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

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keypad is the source of key states. It is polled once at the start
// of every cycle.
type Keypad interface {
	Keys() [KeyCount]bool
}

// Speaker receives the sound timer expiring.
type Speaker interface {
	SoundExpired()
}

// KeypadFunc adapts a function to the Keypad interface.
type KeypadFunc func() [KeyCount]bool

// Keys calls f.
func (f KeypadFunc) Keys() [KeyCount]bool {
	return f()
}

// PressKey emulates a CHIP-8 key being pressed. It only has an effect
// when no Keypad is attached, otherwise the next cycle overwrites it.
func (vm *CHIP_8) PressKey(key uint) {
	if key < KeyCount {
		vm.Keys[key] = true
	}
}

// ReleaseKey emulates a CHIP-8 key being released.
func (vm *CHIP_8) ReleaseKey(key uint) {
	if key < KeyCount {
		vm.Keys[key] = false
	}
}

// pollKeys refreshes the key state from the attached keypad.
func (vm *CHIP_8) pollKeys() {
	if vm.keypad != nil {
		vm.Keys = vm.keypad.Keys()
	}
}

// pressedKey returns the lowest pressed key.
func (vm *CHIP_8) pressedKey() (byte, bool) {
	for i, down := range vm.Keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}

// Waiting returns the register a blocked FX0A instruction will load
// once a key is pressed.
func (vm *CHIP_8) Waiting() (uint, bool) {
	if vm.wait < 0 {
		return 0, false
	}

	return uint(vm.wait), true
}
