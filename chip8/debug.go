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

// ToggleBreakpoint sets or clears a breakpoint at address. Returns true
// if the breakpoint is now set.
func (vm *CHIP_8) ToggleBreakpoint(address uint16) bool {
	vm.over = -1

	if vm.breakpoints.Contains(address) {
		delete(vm.breakpoints, address)
		return false
	}

	vm.breakpoints.Add(address)
	return true
}

// Breakpoint returns true if there is a breakpoint at address.
func (vm *CHIP_8) Breakpoint(address uint16) bool {
	return vm.breakpoints.Contains(address)
}

// StepOver arms a one-shot breakpoint after the instruction at the
// program counter when it is a subroutine call. Returns false if the
// instruction is not a call, in which case the caller should just step.
func (vm *CHIP_8) StepOver() bool {
	if int(vm.PC)+1 >= MemorySize {
		return false
	}

	op := uint16(vm.Memory[vm.PC])<<8 | uint16(vm.Memory[vm.PC+1])
	if op&0xF000 != 0x2000 {
		return false
	}

	vm.over = int(vm.PC) + InstructionSize
	return true
}

// CancelStepOver disarms the breakpoint set by StepOver.
func (vm *CHIP_8) CancelStepOver() {
	vm.over = -1
}

// Run executes up to n cycles. It stops early with ErrBreakpoint when
// the program counter reaches a breakpoint after at least one cycle, or
// with the fault that stopped the machine. Returns the cycles run.
//
// Stopping at any breakpoint disarms a pending StepOver.
func (vm *CHIP_8) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := vm.Cycle(); err != nil {
			return i, err
		}

		if int(vm.PC) == vm.over {
			vm.over = -1
			return i + 1, ErrBreakpoint
		}

		if vm.breakpoints.Contains(vm.PC) {
			vm.over = -1
			return i + 1, ErrBreakpoint
		}
	}

	return n, nil
}
