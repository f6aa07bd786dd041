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

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want optionFlags
	}{
		{
			name: "defaults",
			args: []string{"chip8", "pong.ch8"},
			want: optionFlags{rom: "pong.ch8", video: videoEbiten, hz: 60, scale: 10},
		},
		{
			name: "terminal",
			args: []string{"chip8", "-video", "TERM", "-hz", "500", "-seed", "7", "-mute", "pong.ch8"},
			want: optionFlags{rom: "pong.ch8", video: videoTerminal, hz: 500, scale: 10, seed: 7, mute: true},
		},
		{
			name: "sdl debugger",
			args: []string{"chip8", "-video", "sdl", "-scale", "4", "-paused", "-debug", "brix.ch8"},
			want: optionFlags{rom: "brix.ch8", video: videoSDL, hz: 60, scale: 4, paused: true, debug: true},
		},
		{
			name: "window without program",
			args: []string{"chip8", "-q"},
			want: optionFlags{video: videoEbiten, hz: 60, scale: 10, quiet: true},
		},
		{
			name: "version",
			args: []string{"chip8", "-version"},
			want: optionFlags{video: videoEbiten, hz: 60, scale: 10, version: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"chip8", "-turbo", "pong.ch8"}, "flag provided but not defined: -turbo"},
		{"unknown backend", []string{"chip8", "-video", "vga", "pong.ch8"}, "unsupported video backend: vga"},
		{"too slow", []string{"chip8", "-hz", "0", "pong.ch8"}, "speed must be between"},
		{"too fast", []string{"chip8", "-hz", "100000", "pong.ch8"}, "speed must be between"},
		{"bad scale", []string{"chip8", "-scale", "0", "pong.ch8"}, "scale must be at least 1"},
		{"terminal without program", []string{"chip8", "-video", "term"}, "a program is required"},
		{"two programs", []string{"chip8", "pong.ch8", "brix.ch8"}, "only one program"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			assert.ErrorContains(t, err, tt.msg)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, createLogger(false, false))
	assert.NotNil(t, createLogger(true, false))
	assert.NotNil(t, createLogger(false, true))
}
