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

// Package wavwriter allows writing of the machine's tone output to disk as
// a WAV file. Note that tone transitions are buffered in memory in their
// entirety and rendered to disk on program end. It is therefore probably
// only suitable for testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/logger"
	"github.com/youpy/go-wav"
)

const (
	sampleRate    = 44100
	toneFrequency = 440
	toneAmplitude = 24
)

type toneEvent struct {
	at     time.Duration
	active bool
}

// WavWriter implements the audio.Mixer interface.
type WavWriter struct {
	filename string
	start    time.Time
	events   []toneEvent
	active   bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		start:    time.Now(),
		events:   make([]toneEvent, 0),
	}

	return aw, nil
}

// SetTone implements the audio.Mixer interface. Only transitions are
// recorded; the audio itself is synthesised in EndMixing().
func (aw *WavWriter) SetTone(active bool) error {
	if active == aw.active {
		return nil
	}

	aw.events = append(aw.events, toneEvent{
		at:     time.Since(aw.start),
		active: active,
	})
	aw.active = active

	return nil
}

// EndMixing implements the audio.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	// close off a tone still sounding at the end of the session
	if aw.active {
		aw.events = append(aw.events, toneEvent{
			at:     time.Since(aw.start),
			active: false,
		})
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buffer := aw.render()

	enc := wav.NewWriter(f, uint32(len(buffer)), 1, sampleRate, 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	err = enc.WriteSamples(buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// render the recorded transitions as 8bit mono samples. silence between
// tones, a square wave during them.
func (aw *WavWriter) render() []wav.Sample {
	if len(aw.events) == 0 {
		return nil
	}

	end := aw.events[len(aw.events)-1].at
	numSamples := int(end.Seconds() * sampleRate)
	buffer := make([]wav.Sample, numSamples)

	halfPeriod := sampleRate / toneFrequency / 2

	active := false
	ev := 0
	for i := range buffer {
		at := time.Duration(i) * time.Second / sampleRate
		for ev < len(aw.events) && aw.events[ev].at <= at {
			active = aw.events[ev].active
			ev++
		}

		v := 128
		if active && (i/halfPeriod)%2 == 0 {
			v = 128 + toneAmplitude
		} else if active {
			v = 128 - toneAmplitude
		}
		buffer[i].Values[0] = v
	}

	return buffer
}
