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

package sdlplay

import (
	"github.com/clint07/gopher8/curated"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate    = 44100
	toneFrequency = 440
	toneAmplitude = 24
)

// sound plays the single square wave tone of the machine through an SDL
// queueing audio device. the tone is pre-rendered; SetTone() just keeps the
// queue topped up while the tone is active.
type sound struct {
	id sdl.AudioDeviceID

	// a tenth of a second of square wave
	tone []byte

	active bool
}

func newSound() (*sound, error) {
	snd := &sound{}

	// prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init()
	spec := sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var actual sdl.AudioSpec

	var err error
	snd.id, err = sdl.OpenAudioDevice("", false, &spec, &actual, 0)
	if err != nil {
		return nil, err
	}

	snd.tone = make([]byte, sampleRate/10)
	halfPeriod := sampleRate / toneFrequency / 2
	for i := range snd.tone {
		if (i/halfPeriod)%2 == 0 {
			snd.tone[i] = 128 + toneAmplitude
		} else {
			snd.tone[i] = 128 - toneAmplitude
		}
	}

	sdl.PauseAudioDevice(snd.id, true)

	return snd, nil
}

// SetTone implements the audio.Mixer interface.
func (snd *sound) SetTone(active bool) error {
	if active {
		// top up the queue so the device never runs dry mid-tone
		if sdl.GetQueuedAudioSize(snd.id) < uint32(len(snd.tone)) {
			if err := sdl.QueueAudio(snd.id, snd.tone); err != nil {
				return curated.Errorf("sdlplay: %v", err)
			}
		}
		if !snd.active {
			sdl.PauseAudioDevice(snd.id, false)
			snd.active = true
		}
	} else if snd.active {
		sdl.PauseAudioDevice(snd.id, true)
		sdl.ClearQueuedAudio(snd.id)
		snd.active = false
	}

	return nil
}

// EndMixing implements the audio.Mixer interface.
func (snd *sound) EndMixing() error {
	sdl.CloseAudioDevice(snd.id)
	return nil
}
