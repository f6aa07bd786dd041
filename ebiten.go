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
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/massung/chip8vm/chip8"
	"golang.org/x/image/font/basicfont"
)

var (
	ebitenKeyMap = [chip8.KeyCount]ebiten.Key{
		ebiten.KeyX,
		ebiten.Key1,
		ebiten.Key2,
		ebiten.Key3,
		ebiten.KeyQ,
		ebiten.KeyW,
		ebiten.KeyE,
		ebiten.KeyA,
		ebiten.KeyS,
		ebiten.KeyD,
		ebiten.KeyZ,
		ebiten.KeyC,
		ebiten.Key4,
		ebiten.KeyR,
		ebiten.KeyF,
		ebiten.KeyV,
	}

	ebitenCommands = map[ebiten.Key]command{
		ebiten.KeyEscape:       cmdQuit,
		ebiten.KeyBackspace:    cmdReset,
		ebiten.KeySpace:        cmdPause,
		ebiten.KeyF5:           cmdPause,
		ebiten.KeyF6:           cmdStep,
		ebiten.KeyF10:          cmdStep,
		ebiten.KeyF7:           cmdStepOver,
		ebiten.KeyF11:          cmdStepOver,
		ebiten.KeyF9:           cmdBreakpoint,
		ebiten.KeyBracketLeft:  cmdSlower,
		ebiten.KeyBracketRight: cmdFaster,
		ebiten.KeyF1:           cmdOverlay,
		ebiten.KeyTab:          cmdOverlay,
		ebiten.KeyPageUp:       cmdScrollUp,
		ebiten.KeyArrowUp:      cmdScrollUp,
		ebiten.KeyPageDown:     cmdScrollDown,
		ebiten.KeyArrowDown:    cmdScrollDown,
		ebiten.KeyH:            cmdHelp,
	}

	background = color.RGBA{143, 145, 133, 255}
	foreground = color.RGBA{17, 29, 43, 255}
	panelColor = color.RGBA{32, 42, 53, 200}
	textColor  = color.RGBA{220, 220, 220, 255}
)

// ebitenScreen is the ebiten game front end.
type ebitenScreen struct {
	ctx    context.Context
	runner *runner
	scale  int

	screen *ebiten.Image
	pixels []byte
}

func newEbitenScreen(scale int) *ebitenScreen {
	return &ebitenScreen{
		scale:  scale,
		pixels: make([]byte, chip8.Width*chip8.Height*4),
	}
}

func (g *ebitenScreen) run(ctx context.Context, r *runner) error {
	g.ctx = ctx
	g.runner = r

	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("CHIP-8")
	ebiten.SetTPS(60)

	return ebiten.RunGame(g)
}

func (g *ebitenScreen) close() {}

// Keys returns the state of the CHIP-8 keys.
func (g *ebitenScreen) Keys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool

	for i, key := range ebitenKeyMap {
		keys[i] = ebiten.IsKeyPressed(key)
	}

	return keys
}

func (g *ebitenScreen) Update() error {
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for key, cmd := range ebitenCommands {
		if inpututil.IsKeyJustPressed(key) && !g.runner.do(cmd) {
			return ebiten.Termination
		}
	}

	g.runner.update(time.Now())

	return nil
}

func (g *ebitenScreen) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(chip8.Width, chip8.Height)
	}

	if g.runner.takeDirty() {
		frame := g.runner.vm.Frame()
		fillPixels(g.pixels, &frame)
		g.screen.WritePixels(g.pixels)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)

	if g.runner.overlay {
		g.drawOverlay(screen)
	}
}

// drawOverlay shows the debugger over the display.
func (g *ebitenScreen) drawOverlay(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lines := overlayLines(g.runner)

	w := screen.Bounds().Dx()
	h := len(lines)*glyphHeight + 2*panelMargin
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), panelColor)

	for i, line := range lines {
		text.Draw(screen, line, face, panelMargin, panelMargin+face.Ascent+i*glyphHeight, textColor)
	}
}

func (g *ebitenScreen) Layout(_, _ int) (int, int) {
	w, h := chip8.Width*g.scale, chip8.Height*g.scale

	// keep room for the overlay text at small scales
	return max(w, panelWidth), max(h, overlayHeight*glyphHeight+2*panelMargin)
}

// fillPixels converts a frame to RGBA pixels.
func fillPixels(pixels []byte, frame *chip8.Frame) {
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			c := background
			if frame.Pixel(x, y) {
				c = foreground
			}

			i := (y*chip8.Width + x) * 4
			pixels[i+0] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
		}
	}
}
