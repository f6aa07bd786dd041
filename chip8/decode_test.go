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

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	in := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), in.Opcode)
	assert.Equal(t, uint8(0xD), in.Family)
	assert.Equal(t, uint8(1), in.X)
	assert.Equal(t, uint8(2), in.Y)
	assert.Equal(t, uint8(0xF), in.N)
	assert.Equal(t, uint16(0x12F), in.NNN)
	assert.Equal(t, uint8(0x2F), in.KK)
}

func TestOpcodeTable(t *testing.T) {
	assert.Len(t, Opcodes, 34)

	for _, o := range Opcodes {
		assert.NotNil(t, o.Instruction)
		assert.NotNil(t, o.exec)
		assert.Equal(t, o.Value, o.Value&o.Mask)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		op      uint16
		pattern string
	}{
		{0x00E0, "00E0"},
		{0x00EE, "00EE"},
		{0x1ABC, "1NNN"},
		{0x2ABC, "2NNN"},
		{0x3A12, "3XKK"},
		{0x4A12, "4XKK"},
		{0x5AB0, "5XY0"},
		{0x6A12, "6XKK"},
		{0x7A12, "7XKK"},
		{0x8AB0, "8XY0"},
		{0x8AB1, "8XY1"},
		{0x8AB2, "8XY2"},
		{0x8AB3, "8XY3"},
		{0x8AB4, "8XY4"},
		{0x8AB5, "8XY5"},
		{0x8AB6, "8XY6"},
		{0x8AB7, "8XY7"},
		{0x8ABE, "8XYE"},
		{0x9AB0, "9XY0"},
		{0xAABC, "ANNN"},
		{0xBABC, "BNNN"},
		{0xCA12, "CXKK"},
		{0xDAB5, "DXYN"},
		{0xEA9E, "EX9E"},
		{0xEAA1, "EXA1"},
		{0xFA07, "FX07"},
		{0xFA0A, "FX0A"},
		{0xFA15, "FX15"},
		{0xFA18, "FX18"},
		{0xFA1E, "FX1E"},
		{0xFA29, "FX29"},
		{0xFA33, "FX33"},
		{0xFA55, "FX55"},
		{0xFA65, "FX65"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			o, ok := Lookup(tt.op)
			assert.True(t, ok)
			assert.Equal(t, tt.pattern, o.Pattern)

			// exactly one entry matches
			n := 0
			for _, o := range Opcodes {
				if tt.op&o.Mask == o.Value {
					n++
				}
			}
			assert.Equal(t, 1, n)
		})
	}
}

func TestLookupInvalid(t *testing.T) {
	for _, op := range []uint16{0x0000, 0x0123, 0x00E1, 0x5AB1, 0x8AB8, 0x8ABF, 0x9AB1, 0xEA00, 0xFA00, 0xFAFF} {
		_, ok := Lookup(op)
		assert.False(t, ok)
	}
}

func TestOpcodeName(t *testing.T) {
	o, ok := Lookup(0xD125)
	assert.True(t, ok)
	assert.Equal(t, chip8cpu.Drw, o.Instruction)
	assert.Equal(t, "DRW", o.Name())
}
