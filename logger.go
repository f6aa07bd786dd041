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
	"strings"
)

// maxEvents is how many lines the event log keeps.
const maxEvents = 500

// EventLog is the machine's output log that can be viewed and scrolled
// in the debugger overlay.
type EventLog struct {
	// buf contains each line of logged text.
	buf []string

	// pos is the current user read position within the log.
	pos int
}

// NewEventLog creates a new, empty EventLog.
func NewEventLog() *EventLog {
	return &EventLog{
		buf: make([]string, 0, 100),
	}
}

// Log outputs a new line to the log.
func (l *EventLog) Log(s ...string) {
	l.append(strings.Join(s, " "))
}

// Logf outputs a formatted line to the log.
func (l *EventLog) Logf(format string, args ...any) {
	l.append(fmt.Sprintf(format, args...))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (l *EventLog) Logln(s ...string) {
	l.append("", strings.Join(s, " "))
}

func (l *EventLog) append(lines ...string) {
	scroll := l.pos == len(l.buf)

	l.buf = append(l.buf, lines...)

	// drop the oldest lines
	if over := len(l.buf) - maxEvents; over > 0 {
		l.buf = append(l.buf[:0], l.buf[over:]...)

		if l.pos -= over; l.pos < 0 {
			l.pos = 0
		}
	}

	if scroll {
		l.pos = len(l.buf)
	}
}

// Len returns the number of lines logged.
func (l *EventLog) Len() int {
	return len(l.buf)
}

// Window returns the n lines ending at the read position.
func (l *EventLog) Window(n int) []string {
	start := l.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	if start+n >= len(l.buf) {
		return l.buf[start:]
	}

	return l.buf[start : start+n]
}

// Home scrolls the log to the beginning.
func (l *EventLog) Home() {
	l.pos = 0
}

// End scrolls the log to the end.
func (l *EventLog) End() {
	l.pos = len(l.buf)
}

// ScrollUp scrolls the log back one position.
func (l *EventLog) ScrollUp() {
	l.pos--

	// clamp to home
	if l.pos < 0 {
		l.Home()
	}
}

// ScrollDown scrolls the log forward one position.
func (l *EventLog) ScrollDown(windowSize int) {
	l.pos++

	// if less than the window size, drop to it
	if l.pos < windowSize {
		l.pos = windowSize
	}

	// clamp to end
	if l.pos >= len(l.buf) {
		l.End()
	}
}
