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

// Package chip8 implements the CHIP-8 virtual machine.
//
// The machine is a state machine advanced one instruction at a time by
// Cycle. It owns no window, clock or audio device: the caller paces the
// cycles (nominally 60 per second), reads the display after each cycle
// when Redraw is set, supplies key states through a Keypad and receives
// the sound timer expiring through a Speaker.
//
// The machine is not safe for concurrent use. A host that renders on
// another goroutine must hold one lock around each Cycle call and each
// read of the display.
package chip8

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// ProgramStart is where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits in memory.
	MaxProgramSize = MemorySize - ProgramStart

	// InstructionSize is the width of every instruction in bytes.
	InstructionSize = 2
)

// CHIP_8 virtual machine emulator.
type CHIP_8 struct {
	// ROM holds the glyph table and the loaded program. It is the
	// pristine state that Memory is reset back to.
	ROM [MemorySize]byte

	// Memory addressable by CHIP-8. The first 512 bytes are reserved
	// for the glyph sprites.
	Memory [MemorySize]byte

	// Video memory for CHIP-8 (64x32 pixels).
	Video Display

	// PC is the program counter. All programs begin at 0x200.
	PC uint16

	// I is the address register.
	I uint16

	// V are the 16 virtual registers. VF doubles as the carry, borrow
	// and collision flag.
	V [16]byte

	// Stack of subroutine return addresses.
	Stack Stack

	// DT and ST are the delay and sound timers, counted down once per
	// cycle.
	DT byte
	ST byte

	// Keys hold the current state for the 16-key pad keys.
	Keys [KeyCount]bool

	// Cycles is how many cycles have been completed since reset.
	Cycles int64

	// wait is the register a blocked FX0A is loading, or -1.
	wait int

	// lastPC and opcode identify the instruction being executed.
	lastPC uint16
	opcode uint16

	keypad  Keypad
	speaker Speaker
	rand    *rand.Rand
	logger  *log.Logger

	// breakpoints stop Run, over is a one-shot breakpoint set by StepOver.
	breakpoints set.Set[uint16]
	over        int
}

// Option configures a virtual machine.
type Option func(vm *CHIP_8)

// WithKeypad attaches the source of key states.
func WithKeypad(k Keypad) Option {
	return func(vm *CHIP_8) {
		vm.keypad = k
	}
}

// WithSpeaker attaches the receiver of the sound timer expiring.
func WithSpeaker(s Speaker) Option {
	return func(vm *CHIP_8) {
		vm.speaker = s
	}
}

// WithRand sets the random number source used by CXKK.
func WithRand(r *rand.Rand) Option {
	return func(vm *CHIP_8) {
		vm.rand = r
	}
}

// WithLogger traces execution and faults to the logger.
func WithLogger(logger *log.Logger) Option {
	return func(vm *CHIP_8) {
		vm.logger = logger
	}
}

// New returns a virtual machine with no program loaded.
func New(opts ...Option) *CHIP_8 {
	vm := &CHIP_8{
		breakpoints: set.New[uint16](),
	}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.rand == nil {
		vm.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// copy the glyph sprites into the reserved area
	copy(vm.ROM[:], glyphs[:])

	vm.Reset()

	return vm
}

// LoadROM loads a program from a byte array and returns a new CHIP-8
// virtual machine.
func LoadROM(program []byte, opts ...Option) (*CHIP_8, error) {
	vm := New(opts...)

	if err := vm.Load(program); err != nil {
		return nil, err
	}

	return vm, nil
}

// LoadFile loads a program image file and returns a new CHIP-8 virtual
// machine.
func LoadFile(file string, opts ...Option) (*CHIP_8, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}

	return LoadROM(program, opts...)
}

// Load replaces the program and resets the virtual machine.
func (vm *CHIP_8) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return &Fault{Errno: ProgramTooLarge, Addr: len(program)}
	}

	// clear any previous program
	for i := ProgramStart; i < MemorySize; i++ {
		vm.ROM[i] = 0
	}

	copy(vm.ROM[ProgramStart:], program)

	vm.Reset()

	return nil
}

// Reset the CHIP-8 virtual machine to the freshly loaded state.
func (vm *CHIP_8) Reset() {
	vm.Memory = vm.ROM

	// reset video memory
	vm.Video = Display{}

	// reset keys
	vm.Keys = [KeyCount]bool{}

	// reset program counter and stack
	vm.PC = ProgramStart
	vm.Stack = Stack{}

	// reset address and virtual registers
	vm.I = 0
	vm.V = [16]byte{}

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.Cycles = 0

	// not waiting for a key
	vm.wait = -1
	vm.over = -1
}

// Redraw returns true if the display changed during the last cycle.
func (vm *CHIP_8) Redraw() bool {
	return vm.Video.redraw
}

// Frame returns a copy of the display.
func (vm *CHIP_8) Frame() Frame {
	return vm.Video.Snapshot()
}

// Cycle runs one fetch, decode, execute and timer cycle. Keys are
// polled first and the redraw flag is cleared before execution.
//
// A fault leaves the program counter on the faulting instruction and
// the timers untouched, so calling Cycle again raises it again.
func (vm *CHIP_8) Cycle() error {
	vm.pollKeys()

	vm.Video.redraw = false

	op, err := vm.fetch()
	if err != nil {
		return vm.trap(err)
	}

	if err := vm.execute(op); err != nil {
		return vm.trap(err)
	}

	vm.tick()

	// increment the cycle count
	vm.Cycles++

	return nil
}

// Execute decodes and runs a single instruction as if it had been
// fetched from the program counter. Keys and timers are not touched.
func (vm *CHIP_8) Execute(op uint16) error {
	vm.lastPC = vm.PC
	vm.opcode = op
	vm.PC += InstructionSize

	if err := vm.execute(op); err != nil {
		return vm.trap(err)
	}

	return nil
}

// fetch the next 16-bit instruction to execute and advance the program
// counter past it.
func (vm *CHIP_8) fetch() (uint16, error) {
	vm.lastPC = vm.PC
	vm.opcode = 0

	m, err := vm.span(vm.PC, InstructionSize)
	if err != nil {
		return 0, err
	}

	vm.opcode = uint16(m[0])<<8 | uint16(m[1])

	// advance the program counter
	vm.PC += InstructionSize

	return vm.opcode, nil
}

// execute dispatches a fetched instruction to its handler.
func (vm *CHIP_8) execute(op uint16) error {
	o, ok := Lookup(op)
	if !ok {
		return vm.fault(InvalidOpcode, 0)
	}

	if vm.logger != nil {
		vm.logger.Debug("Executing instruction",
			log.Hex("pc", vm.lastPC),
			log.Hex("opcode", op),
			log.String("instruction", o.Name()))
	}

	return o.exec(vm, Decode(op))
}

// trap restores the program counter to the faulting instruction.
func (vm *CHIP_8) trap(err error) error {
	vm.PC = vm.lastPC

	if vm.logger != nil {
		vm.logger.Warn("Execution fault", log.Err(err))
	}

	return err
}

// span returns n bytes of memory starting at address.
func (vm *CHIP_8) span(address uint16, n int) ([]byte, error) {
	end := int(address) + n
	if end > MemorySize {
		bad := int(address)
		if bad < MemorySize {
			bad = MemorySize
		}

		return nil, vm.fault(IllegalAddress, bad)
	}

	return vm.Memory[address:end], nil
}
