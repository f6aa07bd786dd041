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

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack holds subroutine return addresses.
type Stack struct {
	// Cells are the return addresses, Cells[SP-1] is the top.
	Cells [StackDepth]uint16

	// SP is the number of addresses on the stack (0 = empty).
	SP int
}

// push a return address.
func (s *Stack) push(address uint16) error {
	if s.SP >= StackDepth {
		return StackOverflow
	}

	s.Cells[s.SP] = address
	s.SP++

	return nil
}

// pop the most recent return address.
func (s *Stack) pop() (uint16, error) {
	if s.SP == 0 {
		return 0, StackUnderflow
	}

	// pre-decrement
	s.SP--

	return s.Cells[s.SP], nil
}

// Top returns the most recent return address, if any.
func (s *Stack) Top() (uint16, bool) {
	if s.SP == 0 {
		return 0, false
	}

	return s.Cells[s.SP-1], true
}
