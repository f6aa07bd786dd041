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
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/retrogolib/log"
)

// Beeper output format.
const (
	sampleRate = 44100
	toneHz     = 440
	toneVolume = 0.15
)

// tone is an endless mono float32 square wave that is silent while off.
type tone struct {
	on    atomic.Bool
	phase int
}

// Read fills p with whole samples.
func (t *tone) Read(p []byte) (int, error) {
	period := sampleRate / toneHz
	on := t.on.Load()

	n := len(p) / 4 * 4

	for i := 0; i < n; i += 4 {
		v := float32(0)

		if on {
			v = toneVolume
			if t.phase >= period/2 {
				v = -toneVolume
			}
		}

		t.phase = (t.phase + 1) % period

		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(v))
	}

	return n, nil
}

// beeper plays a tone while the sound timer is running.
type beeper struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *tone
	logger *log.Logger
}

func newBeeper(logger *log.Logger) (*beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &beeper{
		ctx:    ctx,
		tone:   &tone{},
		logger: logger,
	}

	b.player = ctx.NewPlayer(b.tone)
	b.player.Play()

	return b, nil
}

// Play turns the tone on or off.
func (b *beeper) Play(on bool) {
	b.tone.on.Store(on)
}

// SoundExpired is called by the machine when the sound timer runs out.
func (b *beeper) SoundExpired() {
	b.tone.on.Store(false)
	b.logger.Debug("Sound timer expired")
}

// Close stops the tone.
func (b *beeper) Close() {
	if b.player != nil {
		_ = b.player.Close()
		b.player = nil
	}
}
