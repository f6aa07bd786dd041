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
	"errors"
	"fmt"
)

// Errno describes why the virtual machine stopped executing.
type Errno int

// Faults raised by the virtual machine.
const (
	InvalidOpcode Errno = iota
	IllegalAddress
	StackOverflow
	StackUnderflow
	InvalidKey
	ProgramTooLarge
)

var strErrno = []string{
	"invalid opcode",
	"illegal address",
	"stack overflow",
	"stack underflow",
	"invalid key",
	"program too large",
}

func (e Errno) Error() string {
	if e < 0 || int(e) >= len(strErrno) {
		return fmt.Sprintf("errno %d", int(e))
	}

	return strErrno[e]
}

// ErrBreakpoint is returned by Run when the program counter lands on
// a breakpoint. It is not a fault; the machine can be resumed.
var ErrBreakpoint = errors.New("breakpoint")

// Fault is a terminal execution error. The machine state is left as it
// was when the faulting instruction was fetched.
type Fault struct {
	Errno  Errno  // nature of the fault
	PC     uint16 // address of the faulting instruction
	Opcode uint16 // instruction that raised the fault
	Addr   int    // offending address or value for IllegalAddress and InvalidKey
}

func (f *Fault) Error() string {
	msg := "chip8: " + f.Errno.Error()

	switch f.Errno {
	case InvalidOpcode:
		msg += fmt.Sprintf(" %04X", f.Opcode)
	case IllegalAddress:
		msg += fmt.Sprintf(" #%04X", f.Addr)
	case InvalidKey:
		msg += fmt.Sprintf(" %d", f.Addr)
	case ProgramTooLarge:
		return msg + fmt.Sprintf(" (%d bytes)", f.Addr)
	}

	return msg + fmt.Sprintf(" at #%04X", f.PC)
}

// Unwrap returns the Errno so callers can use errors.Is.
func (f *Fault) Unwrap() error {
	return f.Errno
}

// fault builds a Fault for the instruction currently executing.
func (vm *CHIP_8) fault(errno Errno, addr int) *Fault {
	return &Fault{
		Errno:  errno,
		PC:     vm.lastPC,
		Opcode: vm.opcode,
		Addr:   addr,
	}
}
