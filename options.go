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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Video backends.
const (
	videoEbiten   = "ebiten"
	videoSDL      = "sdl"
	videoTerminal = "term"
)

var videoBackends = []string{videoEbiten, videoSDL, videoTerminal}

// optionFlags are the command line options.
type optionFlags struct {
	rom   string
	video string

	hz    int
	scale int
	seed  int64

	mute    bool
	paused  bool
	debug   bool
	quiet   bool
	version bool
}

// UsageError is returned when the command line could not be parsed and
// the usage should be shown.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the reason and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}

	fmt.Printf("usage: chip8 [options] <program>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// parseFlags reads the options from the process arguments.
func parseFlags(args []string) (optionFlags, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := optionFlags{}

	flags.StringVar(&opts.video, "video", videoEbiten, "video backend ("+strings.Join(videoBackends, "/")+")")
	flags.IntVar(&opts.hz, "hz", 60, "instructions executed per second, the timers count down once per instruction")
	flags.IntVar(&opts.scale, "scale", 10, "window pixels per CHIP-8 pixel")
	flags.Int64Var(&opts.seed, "seed", 0, "random number seed, time based if 0")
	flags.BoolVar(&opts.mute, "mute", false, "disable the beeper")
	flags.BoolVar(&opts.paused, "paused", false, "start with the machine paused")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging of every executed instruction")
	flags.BoolVar(&opts.quiet, "q", false, "only log errors")
	flags.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if opts.version {
		return opts, nil
	}

	rest := flags.Args()
	switch {
	case len(rest) > 1:
		return opts, &UsageError{flags: flags, msg: "only one program can be run"}
	case len(rest) == 1:
		opts.rom = rest[0]
	}

	if err := validateOptions(&opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, nil
}

// validateOptions normalizes and checks the option values.
func validateOptions(opts *optionFlags) error {
	opts.video = strings.ToLower(opts.video)

	valid := false
	for _, backend := range videoBackends {
		if opts.video == backend {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unsupported video backend: %s. Valid options: %s",
			opts.video, strings.Join(videoBackends, ", "))
	}

	if opts.hz < minHz || opts.hz > maxHz {
		return fmt.Errorf("speed must be between %d and %d Hz", minHz, maxHz)
	}

	if opts.scale < 1 {
		return errors.New("scale must be at least 1")
	}

	// there is no file dialog without a window
	if opts.video == videoTerminal && opts.rom == "" {
		return errors.New("a program is required for the terminal backend")
	}

	return nil
}

// createLogger creates a logger with the level selected by the options.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
