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
	"errors"
	"testing"
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestRunner returns a runner for a program of opcodes at 60 Hz.
func newTestRunner(t *testing.T, ops ...uint16) *runner {
	t.Helper()

	program := make([]byte, 0, len(ops)*2)
	for _, op := range ops {
		program = append(program, byte(op>>8), byte(op))
	}

	logger := log.NewTestLogger(t)

	vm, err := chip8.LoadROM(program, chip8.WithLogger(logger))
	assert.NoError(t, err)

	return newRunner(vm, logger, NewEventLog(), 60)
}

func lastEvent(r *runner) string {
	if r.events.Len() == 0 {
		return ""
	}
	return r.events.buf[r.events.Len()-1]
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRunnerPacing(t *testing.T) {
	r := newTestRunner(t, 0x1200)

	r.update(epoch)
	assert.Equal(t, int64(0), r.vm.Cycles)

	r.update(epoch.Add(250 * time.Millisecond))
	assert.Equal(t, int64(15), r.vm.Cycles)

	// a stall only catches up a quarter second
	r.update(epoch.Add(10250 * time.Millisecond))
	assert.Equal(t, int64(30), r.vm.Cycles)
}

func TestRunnerPacingFractions(t *testing.T) {
	r := newTestRunner(t, 0x1200)

	r.update(epoch)
	r.update(epoch.Add(10 * time.Millisecond))
	assert.Equal(t, int64(0), r.vm.Cycles)

	r.update(epoch.Add(20 * time.Millisecond))
	assert.Equal(t, int64(1), r.vm.Cycles)
}

func TestRunnerPaused(t *testing.T) {
	r := newTestRunner(t, 0x1200)
	r.paused = true

	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))
	assert.Equal(t, int64(0), r.vm.Cycles)

	// resuming picks up at the next update
	assert.True(t, r.do(cmdPause))
	r.update(epoch.Add(1250 * time.Millisecond))
	assert.Equal(t, int64(15), r.vm.Cycles)
}

func TestRunnerBreakpoint(t *testing.T) {
	r := newTestRunner(t, 0x6001, 0x6102, 0x1204)
	r.vm.ToggleBreakpoint(0x202)

	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))

	assert.True(t, r.paused)
	assert.Nil(t, r.Fault())
	assert.Equal(t, int64(1), r.vm.Cycles)
	assert.Equal(t, "Breakpoint at #0202", lastEvent(r))

	assert.True(t, r.do(cmdPause))
	assert.False(t, r.paused)
	r.update(epoch.Add(500 * time.Millisecond))
	assert.Equal(t, byte(2), r.vm.V[1])
}

func TestRunnerFault(t *testing.T) {
	r := newTestRunner(t, 0x6001, 0x0123)

	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))

	assert.True(t, r.paused)
	assert.True(t, errors.Is(r.Fault(), chip8.InvalidOpcode))
	assert.Equal(t, "chip8: invalid opcode 0123 at #0202", lastEvent(r))

	// a faulted machine stays paused until reset
	assert.True(t, r.do(cmdPause))
	assert.True(t, r.paused)

	assert.True(t, r.do(cmdStep))
	assert.Equal(t, int64(1), r.vm.Cycles)

	assert.True(t, r.do(cmdReset))
	assert.Nil(t, r.Fault())
	assert.Equal(t, uint16(chip8.ProgramStart), r.vm.PC)

	assert.True(t, r.do(cmdPause))
	assert.False(t, r.paused)
}

func TestRunnerStep(t *testing.T) {
	r := newTestRunner(t, 0x6001, 0x6102, 0x1204)

	// stepping needs a paused machine
	assert.True(t, r.do(cmdStep))
	assert.Equal(t, int64(0), r.vm.Cycles)

	r.paused = true
	assert.True(t, r.do(cmdStep))
	assert.Equal(t, int64(1), r.vm.Cycles)
	assert.Equal(t, uint16(0x202), r.vm.PC)

	// not a call, so it steps
	assert.True(t, r.do(cmdStepOver))
	assert.True(t, r.paused)
	assert.Equal(t, uint16(0x204), r.vm.PC)
}

func TestRunnerStepOver(t *testing.T) {
	r := newTestRunner(t, 0x2206, 0x6001, 0x1202, 0x6105, 0x00EE)
	r.paused = true

	assert.True(t, r.do(cmdStepOver))
	assert.False(t, r.paused)

	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))

	assert.True(t, r.paused)
	assert.Equal(t, int64(3), r.vm.Cycles)
	assert.Equal(t, uint16(0x202), r.vm.PC)
	assert.Equal(t, byte(5), r.vm.V[1])
}

func TestRunnerBreakpointCommand(t *testing.T) {
	r := newTestRunner(t, 0x1200)

	assert.True(t, r.do(cmdBreakpoint))
	assert.True(t, r.vm.Breakpoint(0x200))
	assert.Equal(t, "Breakpoint set at #0200", lastEvent(r))

	assert.True(t, r.do(cmdBreakpoint))
	assert.False(t, r.vm.Breakpoint(0x200))
	assert.Equal(t, "Breakpoint cleared at #0200", lastEvent(r))
}

func TestRunnerSpeed(t *testing.T) {
	r := newTestRunner(t, 0x1200)

	assert.True(t, r.do(cmdFaster))
	assert.Equal(t, 120, r.hz)
	assert.Equal(t, "Speed: 120 Hz", lastEvent(r))

	for i := 0; i < 20; i++ {
		r.do(cmdFaster)
	}
	assert.Equal(t, maxHz, r.hz)

	for i := 0; i < 20; i++ {
		r.do(cmdSlower)
	}
	assert.Equal(t, minHz, r.hz)
}

func TestRunnerCommands(t *testing.T) {
	r := newTestRunner(t, 0x00E0, 0x1202)

	assert.False(t, r.do(cmdQuit))
	assert.True(t, r.do(cmdNone))

	assert.True(t, r.takeDirty())
	assert.False(t, r.takeDirty())

	assert.True(t, r.do(cmdOverlay))
	assert.True(t, r.overlay)
	assert.True(t, r.takeDirty())

	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))
	assert.True(t, r.takeDirty())

	assert.True(t, r.do(cmdHelp))
	assert.Equal(t, helpText[len(helpText)-1], lastEvent(r))
}

func TestRunnerPauseCancelsStepOver(t *testing.T) {
	r := newTestRunner(t, 0x2206, 0x6001, 0x1202, 0x6105, 0x00EE)
	r.paused = true

	assert.True(t, r.do(cmdStepOver))
	assert.True(t, r.do(cmdPause))
	assert.True(t, r.paused)

	// finish the subroutine by stepping, then run past the return address
	r.do(cmdStep)
	r.do(cmdStep)
	r.do(cmdStep)
	assert.Equal(t, uint16(0x202), r.vm.PC)

	assert.True(t, r.do(cmdPause))
	r.update(epoch)
	r.update(epoch.Add(250 * time.Millisecond))

	assert.False(t, r.paused)
	assert.Equal(t, int64(18), r.vm.Cycles)
}
