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

// Package digest is used to create mathematical hashes of the emulation's
// video output. The digest is chained from frame to frame so a single value
// fingerprints an entire sequence of frames. It is useful for comparing
// emulation output without a person watching the screen.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/clint07/gopher8/hardware/video"
)

// Video is an implementation of the video.PixelRenderer interface. It
// generates a SHA-1 value of every frame it is sent. It does not display the
// image anywhere.
type Video struct {
	digest [sha1.Size]byte

	// pixel data for the current frame, prefixed with the previous digest
	// value so that fingerprints chain
	frame []byte

	numFrames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}
	dig.frame = make([]byte, sha1.Size+video.HorizPixels*video.Scanlines)
	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.numFrames = 0
}

// NumFrames returns the number of frames that have been hashed since the
// last reset.
func (dig *Video) NumFrames() int {
	return dig.numFrames
}

// SetPixels implements the video.PixelRenderer interface.
func (dig *Video) SetPixels(pixels []bool) error {
	copy(dig.frame, dig.digest[:])

	for i, p := range pixels {
		var v byte
		if p {
			v = 1
		}
		dig.frame[sha1.Size+i] = v
	}

	dig.digest = sha1.Sum(dig.frame)
	dig.numFrames++

	return nil
}
