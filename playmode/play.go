// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package playmode sets the emulation running for the pleasure of the
// player. It connects the emulated machine to the SDL window, the host
// keyboard and the audio device, and paces the whole thing to a fixed
// instruction rate.
package playmode

import (
	"os"
	"os/signal"

	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/gui"
	"github.com/clint07/gopher8/gui/sdlplay"
	"github.com/clint07/gopher8/hardware"
	"github.com/clint07/gopher8/hardware/audio"
	"github.com/clint07/gopher8/performance/limiter"
	"github.com/clint07/gopher8/random"
	"github.com/clint07/gopher8/romloader"
	"github.com/clint07/gopher8/wavwriter"
)

// sentinal error returned when the GUI detects a quit event.
const quitEvent = "user input quit event"

type playmode struct {
	ch8    *hardware.Chip8
	scr    *sdlplay.SdlPlay
	mixers []audio.Mixer

	guiChannel chan gui.Event
	intChan    chan os.Signal
}

// Play sets the emulation running.
//
// The wavFile argument is the name of a file to write the machine's tone
// output to. The empty string disables the recording.
func Play(ld *romloader.Loader, scale float32, hz int, wavFile string) error {
	pl := &playmode{
		ch8: hardware.NewChip8(random.NewRandom()),
	}

	var err error

	pl.scr, err = sdlplay.NewSdlPlay(scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer pl.scr.Destroy()

	pl.mixers = append(pl.mixers, pl.scr)

	if wavFile != "" {
		aw, err := wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		pl.mixers = append(pl.mixers, aw)
	}
	defer func() {
		for _, m := range pl.mixers {
			_ = m.EndMixing()
		}
	}()

	err = pl.ch8.AttachProgram(ld)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// connect gui
	pl.guiChannel = make(chan gui.Event, 2)
	pl.scr.SetEventChannel(pl.guiChannel)

	err = pl.scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// redirect interrupt signal to an os.Signal channel so that ctrl-c runs
	// the deferred teardown
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)

	lmtr := limiter.NewLimiter(hz)

	err = pl.ch8.Run(func() (bool, error) {
		lmtr.Wait()

		if pl.ch8.Scr.Dirty() {
			if err := pl.scr.SetPixels(pl.ch8.Scr.Snapshot()); err != nil {
				return false, err
			}
			pl.ch8.Scr.AcknowledgeDirty()
		}

		tone := pl.ch8.Timer.SoundActive()
		for _, m := range pl.mixers {
			if err := m.SetTone(tone); err != nil {
				return false, err
			}
		}

		return pl.eventHandler()
	})

	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (pl *playmode) eventHandler() (bool, error) {
	select {
	case <-pl.intChan:
		return false, nil

	case ev := <-pl.guiChannel:
		switch ev.ID {
		case gui.EventWindowClose:
			return false, nil
		case gui.EventKeyboard:
			return true, pl.keyboardHandler(ev.Data.(gui.EventDataKeyboard))
		}

	default:
	}

	return true, nil
}
