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

// Package sdlplay is an SDL implementation of the gui.GUI interface. It
// registers with the emulation as a video.PixelRenderer and an audio.Mixer
// and presents a single window scaled up from the native display size.
package sdlplay

import (
	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/gui"
	"github.com/clint07/gopher8/hardware/video"
	"github.com/clint07/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL guiLoop with the parent process
	eventChannel chan gui.Event

	// all audio is handled by the sound type
	snd *sound

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture on every
	// SetPixels(). it is equal to HorizPixels * Scanlines * pixelDepth
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// The returned SdlPlay implements gui.GUI, video.PixelRenderer and
// audio.Mixer. The window starts hidden; it is shown on a ReqSetVisibility
// request.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(video.HorizPixels)*scale), int32(float32(video.Scanlines)*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the pixel array. the renderer scales it to
	// fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.HorizPixels, video.Scanlines)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.HorizPixels*video.Scanlines*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// gui events are serviced by a separate go routine
	go scr.guiLoop()

	return scr, nil
}

// SetPixels implements the video.PixelRenderer interface. Set pixels are
// drawn white, unset pixels black.
func (scr *SdlPlay) SetPixels(pixels []bool) error {
	for i, p := range pixels {
		var v byte
		if p {
			v = 255
		}
		o := i * pixelDepth
		scr.pixels[o] = v
		scr.pixels[o+1] = v
		scr.pixels[o+2] = v
	}

	err := scr.texture.Update(nil, scr.pixels, video.HorizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetTone implements the audio.Mixer interface.
func (scr *SdlPlay) SetTone(active bool) error {
	return scr.snd.SetTone(active)
}

// EndMixing implements the audio.Mixer interface.
func (scr *SdlPlay) EndMixing() error {
	return scr.snd.EndMixing()
}

// SetFeature implements the gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()

			// default to the top-most window when visibility is requested
			scr.window.Raise()
		} else {
			scr.window.Hide()
		}
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(events chan gui.Event) {
	scr.eventChannel = events
}

// Destroy tears down the SDL resources.
func (scr *SdlPlay) Destroy() {
	if err := scr.snd.EndMixing(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}

	if err := scr.texture.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}

	if err := scr.renderer.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}

	if err := scr.window.Destroy(); err != nil {
		logger.Logf("sdlplay", "%v", err)
	}
}
