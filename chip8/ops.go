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

// All handlers run after fetch has advanced the program counter past
// the instruction, so skipping only needs to advance it once more.

/// Clear the video display memory.
///
func (vm *CHIP_8) cls(_ Instruction) error {
	vm.Video.Clear()
	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret(_ Instruction) error {
	address, err := vm.Stack.pop()
	if err != nil {
		return vm.fault(StackUnderflow, 0)
	}

	vm.PC = address
	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(in Instruction) error {
	vm.PC = in.NNN
	return nil
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(in Instruction) error {
	if err := vm.Stack.push(vm.PC); err != nil {
		return vm.fault(StackOverflow, 0)
	}

	vm.PC = in.NNN
	return nil
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(in Instruction) error {
	vm.PC = in.NNN + uint16(vm.V[0])
	return nil
}

// skipWhen advances past the next instruction if cond holds.
func (vm *CHIP_8) skipWhen(cond bool) error {
	if cond {
		vm.PC += 2
	}

	return nil
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(in Instruction) error {
	return vm.skipWhen(vm.V[in.X] == in.KK)
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(in Instruction) error {
	return vm.skipWhen(vm.V[in.X] != in.KK)
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(in Instruction) error {
	return vm.skipWhen(vm.V[in.X] == vm.V[in.Y])
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(in Instruction) error {
	return vm.skipWhen(vm.V[in.X] != vm.V[in.Y])
}

// key returns the key state for the key number in vx.
func (vm *CHIP_8) key(x uint8) (bool, error) {
	k := vm.V[x]
	if int(k) >= KeyCount {
		return false, vm.fault(InvalidKey, int(k))
	}

	return vm.Keys[k], nil
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(in Instruction) error {
	down, err := vm.key(in.X)
	if err != nil {
		return err
	}

	return vm.skipWhen(down)
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(in Instruction) error {
	down, err := vm.key(in.X)
	if err != nil {
		return err
	}

	return vm.skipWhen(!down)
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(in Instruction) error {
	vm.V[in.X] = in.KK
	return nil
}

/// load y into vx.
///
func (vm *CHIP_8) loadXY(in Instruction) error {
	vm.V[in.X] = vm.V[in.Y]
	return nil
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(in Instruction) error {
	vm.V[in.X] = vm.DT
	return nil
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(in Instruction) error {
	vm.DT = vm.V[in.X]
	return nil
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(in Instruction) error {
	vm.ST = vm.V[in.X]
	return nil
}

/// load vx with next key hit (blocking).
///
func (vm *CHIP_8) loadXK(in Instruction) error {
	if key, ok := vm.pressedKey(); ok {
		vm.V[in.X] = key
		vm.wait = -1
		return nil
	}

	// stay on this instruction until a key is down
	vm.PC -= 2
	vm.wait = int(in.X)

	return nil
}

/// load address register.
///
func (vm *CHIP_8) loadI(in Instruction) error {
	vm.I = in.NNN
	return nil
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(in Instruction) error {
	vm.I = uint16(vm.V[in.X]) * GlyphSize
	return nil
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(in Instruction) error {
	m, err := vm.span(vm.I, 3)
	if err != nil {
		return err
	}

	n := vm.V[in.X]

	m[0] = n / 100
	m[1] = n / 10 % 10
	m[2] = n % 10

	return nil
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(in Instruction) error {
	vm.V[in.X] |= vm.V[in.Y]
	return nil
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(in Instruction) error {
	vm.V[in.X] &= vm.V[in.Y]
	return nil
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(in Instruction) error {
	vm.V[in.X] ^= vm.V[in.Y]
	return nil
}

// flag converts a condition to a VF value.
func flag(cond bool) byte {
	if cond {
		return 1
	}

	return 0
}

// The arithmetic handlers write VF before vx, so when x is F the result
// replaces the flag.

/// add n to vx, set carry.
///
func (vm *CHIP_8) addX(in Instruction) error {
	x := vm.V[in.X]

	vm.V[0xF] = flag(uint(x)+uint(in.KK) > 0xFF)
	vm.V[in.X] = x + in.KK

	return nil
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(in Instruction) error {
	x, y := vm.V[in.X], vm.V[in.Y]

	vm.V[0xF] = flag(uint(x)+uint(y) > 0xFF)
	vm.V[in.X] = x + y

	return nil
}

/// subtract vy from vx, set carry if vx > vy.
///
func (vm *CHIP_8) subXY(in Instruction) error {
	x, y := vm.V[in.X], vm.V[in.Y]

	vm.V[0xF] = flag(x > y)
	vm.V[in.X] = x - y

	return nil
}

/// subtract vx from vy and store in vx, set carry if vy > vx.
///
func (vm *CHIP_8) subYX(in Instruction) error {
	x, y := vm.V[in.X], vm.V[in.Y]

	vm.V[0xF] = flag(y > x)
	vm.V[in.X] = y - x

	return nil
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(in Instruction) error {
	x := vm.V[in.X]

	vm.V[0xF] = x & 1
	vm.V[in.X] = x >> 1

	return nil
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(in Instruction) error {
	x := vm.V[in.X]

	vm.V[0xF] = x >> 7
	vm.V[in.X] = x << 1

	return nil
}

/// add vx to i.
///
func (vm *CHIP_8) addIX(in Instruction) error {
	vm.I += uint16(vm.V[in.X])
	return nil
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(in Instruction) error {
	vm.V[in.X] = byte(vm.rand.Intn(0x100)) & in.KK
	return nil
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *CHIP_8) drw(in Instruction) error {
	sprite, err := vm.span(vm.I, int(in.N))
	if err != nil {
		return err
	}

	collision := vm.Video.Draw(int(vm.V[in.X]), int(vm.V[in.Y]), sprite)

	// set carry flag if any collision occurred
	vm.V[0xF] = flag(collision)

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(in Instruction) error {
	m, err := vm.span(vm.I, int(in.X)+1)
	if err != nil {
		return err
	}

	copy(m, vm.V[:in.X+1])
	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(in Instruction) error {
	m, err := vm.span(vm.I, int(in.X)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:in.X+1], m)
	return nil
}
