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
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Speed limits for the machine, in instructions per second.
const (
	minHz = 1
	maxHz = 7680
)

// maxBacklog limits how far behind the runner may fall before it stops
// trying to catch up, in seconds of machine time.
const maxBacklog = 0.25

// command is a front end action that is not a CHIP-8 key.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdStep
	cmdStepOver
	cmdBreakpoint
	cmdFaster
	cmdSlower
	cmdReset
	cmdOverlay
	cmdScrollUp
	cmdScrollDown
	cmdHelp
)

// runner paces a virtual machine in real time and carries the debugger
// state shared by all front ends. It is driven from a single goroutine.
type runner struct {
	vm     *chip8.CHIP_8
	logger *log.Logger
	events *EventLog
	beeper *beeper

	hz      int
	paused  bool
	overlay bool

	// last is when update was last called, backlog the fraction of an
	// instruction owed since then.
	last    time.Time
	backlog float64

	// dirty is set when the display changed since the last draw.
	dirty bool

	// fault is the error that stopped the machine.
	fault error
}

func newRunner(vm *chip8.CHIP_8, logger *log.Logger, events *EventLog, hz int) *runner {
	return &runner{
		vm:     vm,
		logger: logger,
		events: events,
		hz:     hz,
		dirty:  true,
	}
}

// update runs the instructions that are due at now.
func (r *runner) update(now time.Time) {
	elapsed := time.Duration(0)
	if !r.last.IsZero() {
		elapsed = now.Sub(r.last)
	}
	r.last = now

	if r.paused {
		r.sound(false)
		return
	}

	r.backlog += elapsed.Seconds() * float64(r.hz)
	if limit := maxBacklog * float64(r.hz); r.backlog > limit {
		r.backlog = limit
	}

	n := int(r.backlog)
	r.backlog -= float64(n)

	for i := 0; i < n && !r.paused; i++ {
		r.cycle()
	}

	r.sound(r.vm.Sounding() && !r.paused)
}

// cycle runs one instruction and stops at breakpoints and faults.
func (r *runner) cycle() {
	_, err := r.vm.Run(1)

	if r.vm.Redraw() {
		r.dirty = true
	}

	if err != nil {
		r.stop(err)
	}
}

// stop pauses the machine after Run returned err.
func (r *runner) stop(err error) {
	r.paused = true

	if errors.Is(err, chip8.ErrBreakpoint) {
		r.events.Logf("Breakpoint at #%04X", r.vm.PC)
		r.logger.Info("Breakpoint", log.Hex("pc", r.vm.PC))
		return
	}

	r.fault = err

	r.events.Logln(err.Error())
	r.logger.Error("Machine stopped", log.Err(err))
}

func (r *runner) sound(on bool) {
	if r.beeper != nil {
		r.beeper.Play(on)
	}
}

// Fault returns the error that stopped the machine, if any.
func (r *runner) Fault() error {
	return r.fault
}

// takeDirty returns true once after the display changed.
func (r *runner) takeDirty() bool {
	dirty := r.dirty
	r.dirty = false
	return dirty
}

// do performs a front end command. Returns false to quit.
func (r *runner) do(cmd command) bool {
	switch cmd {
	case cmdQuit:
		return false
	case cmdPause:
		r.togglePause()
	case cmdStep:
		if r.paused {
			r.step()
		}
	case cmdStepOver:
		if r.paused {
			if r.vm.StepOver() {
				r.paused = false
			} else {
				r.step()
			}
		}
	case cmdBreakpoint:
		if r.vm.ToggleBreakpoint(r.vm.PC) {
			r.events.Logf("Breakpoint set at #%04X", r.vm.PC)
		} else {
			r.events.Logf("Breakpoint cleared at #%04X", r.vm.PC)
		}
	case cmdFaster:
		r.setSpeed(r.hz * 2)
	case cmdSlower:
		r.setSpeed(r.hz / 2)
	case cmdReset:
		r.vm.Reset()
		r.fault = nil
		r.dirty = true
		r.events.Logln("Reset")
	case cmdOverlay:
		r.overlay = !r.overlay
		r.dirty = true
	case cmdScrollUp:
		r.events.ScrollUp()
	case cmdScrollDown:
		r.events.ScrollDown(logLines)
	case cmdHelp:
		r.help()
	}

	return true
}

func (r *runner) togglePause() {
	if r.paused && r.fault != nil {
		r.events.Log("Machine faulted, reset to continue")
		return
	}

	r.paused = !r.paused

	if r.paused {
		r.vm.CancelStepOver()
		r.events.Logf("Paused at #%04X", r.vm.PC)
	} else {
		r.events.Log("Running")
	}
}

// step runs a single instruction while paused.
func (r *runner) step() {
	if r.fault != nil {
		return
	}

	r.vm.CancelStepOver()

	_, err := r.vm.Run(1)
	r.dirty = true

	if err != nil && !errors.Is(err, chip8.ErrBreakpoint) {
		r.stop(err)
	}
}

func (r *runner) setSpeed(hz int) {
	r.hz = min(max(hz, minHz), maxHz)
	r.events.Logf("Speed: %d Hz", r.hz)
}

// help logs the key bindings.
func (r *runner) help() {
	for _, line := range helpText {
		r.events.Log(line)
	}
}

var helpText = []string{
	"Virtual keys:",
	"  1-2-3-4",
	"  Q-W-E-R",
	"  A-S-D-F",
	"  Z-X-C-V",
	"",
	"Emulation keys:",
	"  ESC      - Quit",
	"  BS       - Reset",
	"  SPACE    - Pause",
	"  F6/F10   - Step",
	"  F7/F11   - Step over",
	"  F9       - Breakpoint",
	"  [ ]      - Speed",
	"  F1/TAB   - Debugger",
	"  Pg Up/Dn - Scroll log",
	"  H        - Help",
}
