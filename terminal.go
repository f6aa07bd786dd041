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
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// keyLayout maps keyboard characters to CHIP-8 keys by index.
const keyLayout = "x123qweasdzc4rfv"

// keyDecay is how long a key counts as held after its character was
// read. Terminals do not report key releases.
const keyDecay = 150 * time.Millisecond

// terminalCommands maps the non-keypad characters to runner commands.
var terminalCommands = map[byte]command{
	0x03: cmdQuit, // ctrl-c
	0x1B: cmdQuit, // escape
	0x7F: cmdReset,
	0x08: cmdReset,
	' ':  cmdPause,
	'.':  cmdStep,
	',':  cmdStepOver,
	'b':  cmdBreakpoint,
	'[':  cmdSlower,
	']':  cmdFaster,
	'\t': cmdOverlay,
	'-':  cmdScrollUp,
	'=':  cmdScrollDown,
	'h':  cmdHelp,
}

// terminal draws the display with half block characters in a raw mode
// terminal and reads keys from stdin.
type terminal struct {
	in     *os.File
	out    io.Writer
	logger *log.Logger

	state *term.State
	input chan command

	mu      sync.Mutex
	pressed [chip8.KeyCount]time.Time

	// prev is the last frame written, to skip unchanged frames.
	prev string
}

func newTerminal(logger *log.Logger) *terminal {
	return &terminal{
		in:     os.Stdin,
		out:    os.Stdout,
		logger: logger,
		input:  make(chan command, 16),
	}
}

// Keys returns the keys read within the decay window.
func (t *terminal) Keys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool

	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, at := range t.pressed {
		keys[i] = !at.IsZero() && now.Sub(at) < keyDecay
	}

	return keys
}

// press handles one character read from the terminal.
func (t *terminal) press(b byte, now time.Time) {
	if i := strings.IndexByte(keyLayout, lower(b)); i >= 0 {
		t.mu.Lock()
		t.pressed[i] = now
		t.mu.Unlock()
		return
	}

	if cmd, ok := terminalCommands[b]; ok {
		t.send(cmd)
	}
}

// send queues a command, dropping it when the queue is full or nobody
// is reading anymore.
func (t *terminal) send(cmd command) {
	select {
	case t.input <- cmd:
	default:
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func (t *terminal) start() error {
	fd := int(t.in.Fd())

	if w, h, err := term.GetSize(fd); err == nil && (w < chip8.Width || h < chip8.Height/2) {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("columns", w), log.Int("rows", h))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.state = state

	go t.read()

	// clear and hide the cursor
	_, _ = io.WriteString(t.out, "\x1b[2J\x1b[?25l")

	return nil
}

// read forwards stdin until it is closed. The goroutine ends with the
// process.
func (t *terminal) read() {
	buf := make([]byte, 16)

	for {
		n, err := t.in.Read(buf)

		now := time.Now()
		for _, b := range buf[:n] {
			t.press(b, now)
		}

		if err != nil {
			t.send(cmdQuit)
			return
		}
	}
}

func (t *terminal) close() {
	if t.state == nil {
		return
	}

	_, _ = io.WriteString(t.out, "\x1b[0m\x1b[?25h\r\n")
	_ = term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
}

func (t *terminal) run(ctx context.Context, r *runner) error {
	if err := t.start(); err != nil {
		return err
	}
	defer t.close()

	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-t.input:
			if !r.do(cmd) {
				return nil
			}
		case now := <-video.C:
			r.update(now)

			// there is no debugger to inspect a fault with
			if err := r.Fault(); err != nil {
				return err
			}

			t.draw(r)
		}
	}
}

func (t *terminal) draw(r *runner) {
	frame := r.vm.Frame()

	var sb strings.Builder
	sb.WriteString("\x1b[H")
	sb.WriteString(renderFrame(&frame))

	if r.overlay {
		for _, line := range overlayLines(r) {
			sb.WriteString("\x1b[K")
			sb.WriteString(line)
			sb.WriteString("\r\n")
		}
	}

	// clear whatever a previous overlay left behind
	sb.WriteString("\x1b[J")

	s := sb.String()
	if s == t.prev {
		return
	}
	t.prev = s

	_, _ = io.WriteString(t.out, s)
}

// halfBlocks is indexed by top pixel | bottom pixel<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// renderFrame draws two pixel rows per line of text.
func renderFrame(frame *chip8.Frame) string {
	var sb strings.Builder

	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			i := 0
			if frame.Pixel(x, y) {
				i |= 1
			}
			if frame.Pixel(x, y+1) {
				i |= 2
			}

			sb.WriteString(halfBlocks[i])
		}

		sb.WriteString("\r\n")
	}

	return sb.String()
}
