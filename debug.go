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

	"github.com/massung/chip8vm/chip8"
)

// Rows of text in each part of the debugger overlay.
const (
	asmLines = 8
	logLines = 6
)

/// DebugAssembly returns the disassembled instructions around the
/// CHIP-8 program counter. The current instruction is marked with '>'
/// and breakpoints with '*'.
///
func DebugAssembly(vm *chip8.CHIP_8) []string {
	address := int(vm.PC) - 4
	if address < 0 {
		address = 0
	}

	lines := make([]string, 0, asmLines)

	for i := 0; i < asmLines; i++ {
		a := uint16(address + i*chip8.InstructionSize)

		text := vm.Disassemble(a)
		if text == "" {
			break
		}

		mark := ' '
		if vm.Breakpoint(a) {
			mark = '*'
		}
		if a == vm.PC {
			mark = '>'
		}

		lines = append(lines, fmt.Sprintf("%c %s", mark, text))
	}

	return lines
}

/// DebugRegisters returns the current value of all the CHIP-8 registers,
/// two virtual registers per line followed by the special registers.
///
func DebugRegisters(vm *chip8.CHIP_8) []string {
	lines := make([]string, 0, 8)

	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("V%X - #%02X  V%X - #%02X", i, vm.V[i], i+8, vm.V[i+8]))
	}

	top := "----"
	if address, ok := vm.Stack.Top(); ok {
		top = fmt.Sprintf("#%04X", address)
	}

	lines[0] += fmt.Sprintf("   PC - #%04X", vm.PC)
	lines[1] += fmt.Sprintf("   I  - #%04X", vm.I)
	lines[2] += fmt.Sprintf("   SP - %d", vm.Stack.SP)
	lines[3] += fmt.Sprintf("   RA - %s", top)
	lines[4] += fmt.Sprintf("   DT - #%02X", vm.DT)
	lines[5] += fmt.Sprintf("   ST - #%02X", vm.ST)

	if reg, ok := vm.Waiting(); ok {
		lines[6] += fmt.Sprintf("   K -> V%X", reg)
	}

	return lines
}

// statusLine summarizes the runner state.
func statusLine(r *runner) string {
	state := "RUNNING"
	switch {
	case r.fault != nil:
		state = "FAULT"
	case r.paused:
		state = "PAUSED"
	}

	return fmt.Sprintf("%-7s %d Hz  %d cycles", state, r.hz, r.vm.Cycles)
}

// overlayLines is the full debugger overlay text.
func overlayLines(r *runner) []string {
	lines := []string{statusLine(r), ""}

	lines = append(lines, DebugAssembly(r.vm)...)
	lines = append(lines, "")
	lines = append(lines, DebugRegisters(r.vm)...)
	lines = append(lines, "")
	lines = append(lines, r.events.Window(logLines)...)

	return lines
}

// overlayHeight is the number of text rows overlayLines can return.
const overlayHeight = 2 + asmLines + 1 + 8 + 1 + logLines
