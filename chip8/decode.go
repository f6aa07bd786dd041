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
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a 16-bit instruction split into its operand fields.
type Instruction struct {
	Opcode uint16

	// Family is the first nibble, selecting the opcode family.
	Family uint8

	// X and Y are register indices, N is a 4-bit literal.
	X, Y, N uint8

	// NNN is a 12-bit address.
	NNN uint16

	// KK is an 8-bit literal.
	KK uint8
}

// Decode splits an instruction into its fields.
func Decode(op uint16) Instruction {
	return Instruction{
		Opcode: op,
		Family: uint8(op >> 12),
		X:      uint8(op >> 8 & 0xF),
		Y:      uint8(op >> 4 & 0xF),
		N:      uint8(op & 0xF),
		NNN:    op & 0xFFF,
		KK:     uint8(op & 0xFF),
	}
}

// Opcode is one entry of the instruction table. An instruction matches
// when op&Mask == Value.
type Opcode struct {
	// Pattern is the conventional notation, e.g. "8XY4".
	Pattern string

	Mask  uint16
	Value uint16

	// Instruction is the mnemonic this opcode assembles from.
	Instruction *chip8cpu.Instruction

	exec func(vm *CHIP_8, in Instruction) error
}

// Opcodes is the complete CHIP-8 instruction set.
var Opcodes = []*Opcode{
	{"00E0", 0xFFFF, 0x00E0, chip8cpu.Cls, (*CHIP_8).cls},
	{"00EE", 0xFFFF, 0x00EE, chip8cpu.Ret, (*CHIP_8).ret},
	{"1NNN", 0xF000, 0x1000, chip8cpu.Jp, (*CHIP_8).jump},
	{"2NNN", 0xF000, 0x2000, chip8cpu.Call, (*CHIP_8).call},
	{"3XKK", 0xF000, 0x3000, chip8cpu.Se, (*CHIP_8).skipIf},
	{"4XKK", 0xF000, 0x4000, chip8cpu.Sne, (*CHIP_8).skipIfNot},
	{"5XY0", 0xF00F, 0x5000, chip8cpu.Se, (*CHIP_8).skipIfXY},
	{"6XKK", 0xF000, 0x6000, chip8cpu.Ld, (*CHIP_8).loadX},
	{"7XKK", 0xF000, 0x7000, chip8cpu.Add, (*CHIP_8).addX},
	{"8XY0", 0xF00F, 0x8000, chip8cpu.Ld, (*CHIP_8).loadXY},
	{"8XY1", 0xF00F, 0x8001, chip8cpu.Or, (*CHIP_8).or},
	{"8XY2", 0xF00F, 0x8002, chip8cpu.And, (*CHIP_8).and},
	{"8XY3", 0xF00F, 0x8003, chip8cpu.Xor, (*CHIP_8).xor},
	{"8XY4", 0xF00F, 0x8004, chip8cpu.Add, (*CHIP_8).addXY},
	{"8XY5", 0xF00F, 0x8005, chip8cpu.Sub, (*CHIP_8).subXY},
	{"8XY6", 0xF00F, 0x8006, chip8cpu.Shr, (*CHIP_8).shr},
	{"8XY7", 0xF00F, 0x8007, chip8cpu.Subn, (*CHIP_8).subYX},
	{"8XYE", 0xF00F, 0x800E, chip8cpu.Shl, (*CHIP_8).shl},
	{"9XY0", 0xF00F, 0x9000, chip8cpu.Sne, (*CHIP_8).skipIfNotXY},
	{"ANNN", 0xF000, 0xA000, chip8cpu.Ld, (*CHIP_8).loadI},
	{"BNNN", 0xF000, 0xB000, chip8cpu.Jp, (*CHIP_8).jumpV0},
	{"CXKK", 0xF000, 0xC000, chip8cpu.Rnd, (*CHIP_8).rnd},
	{"DXYN", 0xF000, 0xD000, chip8cpu.Drw, (*CHIP_8).drw},
	{"EX9E", 0xF0FF, 0xE09E, chip8cpu.Skp, (*CHIP_8).skipIfPressed},
	{"EXA1", 0xF0FF, 0xE0A1, chip8cpu.Sknp, (*CHIP_8).skipIfNotPressed},
	{"FX07", 0xF0FF, 0xF007, chip8cpu.Ld, (*CHIP_8).loadXDT},
	{"FX0A", 0xF0FF, 0xF00A, chip8cpu.Ld, (*CHIP_8).loadXK},
	{"FX15", 0xF0FF, 0xF015, chip8cpu.Ld, (*CHIP_8).loadDTX},
	{"FX18", 0xF0FF, 0xF018, chip8cpu.Ld, (*CHIP_8).loadSTX},
	{"FX1E", 0xF0FF, 0xF01E, chip8cpu.Add, (*CHIP_8).addIX},
	{"FX29", 0xF0FF, 0xF029, chip8cpu.Ld, (*CHIP_8).loadF},
	{"FX33", 0xF0FF, 0xF033, chip8cpu.Ld, (*CHIP_8).loadB},
	{"FX55", 0xF0FF, 0xF055, chip8cpu.Ld, (*CHIP_8).saveRegs},
	{"FX65", 0xF0FF, 0xF065, chip8cpu.Ld, (*CHIP_8).loadRegs},
}

// families indexes Opcodes by their first nibble.
var families [16][]*Opcode

func init() {
	for _, op := range Opcodes {
		f := op.Value >> 12
		families[f] = append(families[f], op)
	}
}

// Lookup finds the table entry for an instruction.
func Lookup(op uint16) (*Opcode, bool) {
	for _, o := range families[op>>12] {
		if op&o.Mask == o.Value {
			return o, true
		}
	}

	return nil, false
}

// Name returns the upper-case mnemonic of the opcode.
func (o *Opcode) Name() string {
	return mnemonic(o.Instruction)
}
