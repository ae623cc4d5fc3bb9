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

package digest_test

import (
	"testing"

	"github.com/clint07/gopher8/digest"
	"github.com/clint07/gopher8/hardware/video"
	"github.com/clint07/gopher8/test"
)

func TestVideoDigest(t *testing.T) {
	scr := video.NewDisplay()
	dig := digest.NewVideo()

	blank := dig.Hash()

	err := dig.SetPixels(scr.Snapshot())
	test.ExpectedSuccess(t, err)
	test.Equate(t, dig.Hash() == blank, false)
	test.Equate(t, dig.NumFrames(), 1)

	// identical sequences produce identical fingerprints
	scr.DrawSprite(10, 10, []uint8{0xff, 0x81, 0xff})
	err = dig.SetPixels(scr.Snapshot())
	test.ExpectedSuccess(t, err)
	after := dig.Hash()

	dig2 := digest.NewVideo()
	scr2 := video.NewDisplay()
	_ = dig2.SetPixels(scr2.Snapshot())
	scr2.DrawSprite(10, 10, []uint8{0xff, 0x81, 0xff})
	_ = dig2.SetPixels(scr2.Snapshot())
	test.Equate(t, dig2.Hash(), after)

	// the digest chains so the same frame hashed in a different order gives
	// a different value
	dig3 := digest.NewVideo()
	scr3 := video.NewDisplay()
	scr3.DrawSprite(10, 10, []uint8{0xff, 0x81, 0xff})
	_ = dig3.SetPixels(scr3.Snapshot())
	_ = dig3.SetPixels(video.NewDisplay().Snapshot())
	test.Equate(t, dig3.Hash() == after, false)

	dig.ResetDigest()
	test.Equate(t, dig.NumFrames(), 0)
}
