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

// Package main runs CHIP-8 programs in a window or a terminal, with a
// built in debugger.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// frontend renders the display, supplies the keypad and turns host input
// into runner commands until the user quits.
type frontend interface {
	chip8.Keypad

	run(ctx context.Context, r *runner) error
	close()
}

func init() {
	// window backends must run on the main thread
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := parseFlags(os.Args)
	logger := createLogger(opts.debug, opts.quiet)

	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	if opts.version {
		fmt.Println(buildinfo.Version(version, commit, date))
		return
	}

	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		if opts.video != videoTerminal {
			dialog.Message("%s", err).Title("CHIP-8").Error()
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func printBanner(logger *log.Logger, opts optionFlags) {
	if opts.quiet {
		return
	}

	logger.Info("chip8", log.String("version", buildinfo.Version(version, commit, date)))
}

// run loads the program and runs it until the user quits.
func run(ctx context.Context, logger *log.Logger, opts optionFlags) error {
	if opts.rom == "" {
		path, err := loadDialog()
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("selecting program: %w", err)
		}
		opts.rom = path
	}

	fe, err := newFrontend(logger, opts)
	if err != nil {
		return err
	}
	defer fe.close()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	machineOpts := []chip8.Option{
		chip8.WithKeypad(fe),
		chip8.WithLogger(logger),
		chip8.WithRand(rand.New(rand.NewSource(seed))),
	}

	var speaker *beeper
	if !opts.mute {
		if speaker, err = newBeeper(logger); err != nil {
			logger.Warn("Audio disabled", log.Err(err))
			speaker = nil
		} else {
			defer speaker.Close()
			machineOpts = append(machineOpts, chip8.WithSpeaker(speaker))
		}
	}

	vm, err := chip8.LoadFile(opts.rom, machineOpts...)
	if err != nil {
		return fmt.Errorf("loading '%s': %w", opts.rom, err)
	}

	logger.Info("Loaded program", log.String("file", opts.rom), log.Int("seed", int(seed)))

	events := NewEventLog()
	events.Log("Loaded", filepath.Base(opts.rom))
	events.Log("Press H for help")

	r := newRunner(vm, logger, events, opts.hz)
	r.beeper = speaker
	r.paused = opts.paused

	return fe.run(ctx, r)
}

func newFrontend(logger *log.Logger, opts optionFlags) (frontend, error) {
	switch opts.video {
	case videoSDL:
		return newSDLScreen(opts.scale)
	case videoTerminal:
		return newTerminal(logger), nil
	default:
		return newEbitenScreen(opts.scale), nil
	}
}

/// loadDialog asks for a program to run.
///
func loadDialog() (string, error) {
	return dialog.File().
		Title("Load CHIP-8 program").
		Filter("CHIP-8 programs", "ch8", "c8").
		Filter("All files", "*").
		Load()
}
