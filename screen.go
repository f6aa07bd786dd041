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
	"time"

	"github.com/massung/chip8vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// Overlay panel layout in window pixels.
const (
	panelMargin = 8
	panelWidth  = 420
)

// sdlScreen is the SDL window front end.
type sdlScreen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// screen is the render target for the CHIP-8 video memory.
	screen *sdl.Texture

	font  *sdl.Texture
	scale int32

	overlay bool
}

/// newSDLScreen creates the window, renderer and render target for the
/// CHIP-8 video memory.
///
func newSDLScreen(scale int) (*sdlScreen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	s := &sdlScreen{scale: int32(scale)}
	w, h := s.size()

	var err error

	flags := sdl.WINDOW_OPENGL | sdl.WINDOWPOS_CENTERED
	if s.window, s.renderer, err = sdl.CreateWindowAndRenderer(w, h, uint32(flags)); err != nil {
		s.close()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	s.window.SetTitle("CHIP-8")

	// create a render target for the display
	s.screen, err = s.renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("creating screen texture: %w", err)
	}

	if s.font, err = createFont(s.renderer); err != nil {
		s.close()
		return nil, err
	}

	return s, nil
}

// size returns the window size with or without the overlay panel.
func (s *sdlScreen) size() (int32, int32) {
	w, h := chip8.Width*s.scale, chip8.Height*s.scale

	if s.overlay {
		w += panelWidth
		h = max(h, overlayHeight*glyphHeight+2*panelMargin)
	}

	return w, h
}

func (s *sdlScreen) close() {
	if s.font != nil {
		_ = s.font.Destroy()
	}
	if s.screen != nil {
		_ = s.screen.Destroy()
	}
	if s.renderer != nil {
		_ = s.renderer.Destroy()
	}
	if s.window != nil {
		_ = s.window.Destroy()
	}

	sdl.Quit()
}

func (s *sdlScreen) run(ctx context.Context, r *runner) error {
	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	// loop until window closed or user quit
	for s.processEvents(r) {
		select {
		case <-ctx.Done():
			return nil
		case now := <-video.C:
			r.update(now)
			s.refresh(r)
		}
	}

	return nil
}

// refresh draws the next frame.
func (s *sdlScreen) refresh(r *runner) {
	if s.overlay != r.overlay {
		s.overlay = r.overlay
		s.window.SetSize(s.size())
	}

	_ = s.renderer.SetDrawColor(32, 42, 53, 255)
	_ = s.renderer.Clear()

	s.refreshScreen(r.vm)
	s.copyScreen()

	if s.overlay {
		x := chip8.Width*s.scale + panelMargin
		for i, line := range overlayLines(r) {
			s.drawText(line, x, panelMargin+int32(i)*glyphHeight)
		}
	}

	// show the new frame
	s.renderer.Present()
}

/// refreshScreen with the CHIP-8 video memory.
///
func (s *sdlScreen) refreshScreen(vm *chip8.CHIP_8) {
	if err := s.renderer.SetRenderTarget(s.screen); err != nil {
		return
	}

	// the background color for the screen
	_ = s.renderer.SetDrawColor(143, 145, 133, 255)
	_ = s.renderer.Clear()

	// set the pixel color
	_ = s.renderer.SetDrawColor(17, 29, 43, 255)

	frame := vm.Frame()

	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if frame.Pixel(x, y) {
				_ = s.renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	_ = s.renderer.SetRenderTarget(nil)
}

/// copyScreen stretches the render target into the window.
///
func (s *sdlScreen) copyScreen() {
	src := sdl.Rect{W: chip8.Width, H: chip8.Height}
	dst := sdl.Rect{W: chip8.Width * s.scale, H: chip8.Height * s.scale}

	_ = s.renderer.Copy(s.screen, &src, &dst)
}
