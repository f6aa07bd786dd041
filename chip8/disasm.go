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
	"fmt"
	"strings"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// mnemonic returns the upper-case name of an instruction.
func mnemonic(ins *chip8cpu.Instruction) string {
	if ins == nil {
		return ""
	}

	return strings.ToUpper(ins.Name)
}

/// Disassemble a CHIP-8 instruction in memory.
///
func (vm *CHIP_8) Disassemble(address uint16) string {
	if int(address) >= MemorySize-1 {
		return ""
	}

	// fetch the instruction at this location
	op := uint16(vm.Memory[address])<<8 | uint16(vm.Memory[address+1])

	// end of program memory?
	if op == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	return fmt.Sprintf("%04X - %s", address, DisassembleOpcode(op))
}

/// DisassembleOpcode returns the assembly text of a single instruction.
/// Opcodes that do not decode are shown as data words.
///
func DisassembleOpcode(op uint16) string {
	o, ok := Lookup(op)
	if !ok {
		return fmt.Sprintf("%-6s #%04X", "DW", op)
	}

	operands := formatOperands(o.Pattern, Decode(op))
	if operands == "" {
		return o.Name()
	}

	return fmt.Sprintf("%-6s %s", o.Name(), operands)
}

// formatOperands renders the operands of an instruction by pattern.
func formatOperands(pattern string, in Instruction) string {
	switch pattern {
	case "00E0", "00EE":
		return ""
	case "1NNN", "2NNN":
		return fmt.Sprintf("#%03X", in.NNN)
	case "ANNN":
		return fmt.Sprintf("I, #%03X", in.NNN)
	case "BNNN":
		return fmt.Sprintf("V0, #%03X", in.NNN)
	case "3XKK", "4XKK", "6XKK", "7XKK", "CXKK":
		return fmt.Sprintf("V%X, #%02X", in.X, in.KK)
	case "8XY6", "8XYE", "EX9E", "EXA1":
		return fmt.Sprintf("V%X", in.X)
	case "DXYN":
		return fmt.Sprintf("V%X, V%X, %d", in.X, in.Y, in.N)
	case "FX07":
		return fmt.Sprintf("V%X, DT", in.X)
	case "FX0A":
		return fmt.Sprintf("V%X, K", in.X)
	case "FX15":
		return fmt.Sprintf("DT, V%X", in.X)
	case "FX18":
		return fmt.Sprintf("ST, V%X", in.X)
	case "FX1E":
		return fmt.Sprintf("I, V%X", in.X)
	case "FX29":
		return fmt.Sprintf("F, V%X", in.X)
	case "FX33":
		return fmt.Sprintf("B, V%X", in.X)
	case "FX55":
		return fmt.Sprintf("[I], V%X", in.X)
	case "FX65":
		return fmt.Sprintf("V%X, [I]", in.X)
	}

	// the remaining register to register forms
	return fmt.Sprintf("V%X, V%X", in.X, in.Y)
}
