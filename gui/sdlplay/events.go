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
	"github.com/clint07/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// guiLoop listens for SDL events and is run concurrently.
func (scr *SdlPlay) guiLoop() {
	for {
		sdlEvent := sdl.WaitEvent()
		switch sdlEvent := sdlEvent.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.send(gui.Event{ID: gui.EventWindowClose})

		case *sdl.KeyboardEvent:
			if sdlEvent.Repeat != 0 {
				break
			}

			switch sdlEvent.Type {
			case sdl.KEYDOWN:
				scr.send(gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(sdlEvent.Keysym.Sym),
						Down: true}})
			case sdl.KEYUP:
				scr.send(gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(sdlEvent.Keysym.Sym),
						Down: false}})
			}

		default:
		}
	}
}

// events are dropped when no channel has been attached.
func (scr *SdlPlay) send(ev gui.Event) {
	if scr.eventChannel == nil {
		return
	}
	scr.eventChannel <- ev
}
