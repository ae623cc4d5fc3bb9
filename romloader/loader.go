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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/clint07/gopher8/curated"
	"github.com/clint07/gopher8/logger"
	"github.com/sqweek/dialog"
)

// Sentinal errors returned by the romloader package.
const (
	LoadError       = "romloader: %v"
	DialogCancelled = "romloader: file selection cancelled"
)

// Loader is used to specify the program to attach to the emulated machine.
type Loader struct {
	// filename of program to load.
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// FileExtensions is the list of file extensions that are recognised by the
// romloader package.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// An empty filename asks the operating system for one with a file selection
// dialog. A cancelled dialog is a DialogCancelled error.
//
// An unrecognised file extension is logged but is not an error. Many
// programs in the wild have no extension at all.
func NewLoader(filename string) (Loader, error) {
	if filename == "" {
		var err error
		filename, err = dialog.File().Title("Select CHIP-8 program").
			Filter("CHIP-8 programs", "ch8", "c8", "rom", "bin").
			Filter("All files", "*").Load()
		if err != nil {
			if err == dialog.Cancelled {
				return Loader{}, curated.Errorf(DialogCancelled)
			}
			return Loader{}, curated.Errorf(LoadError, err)
		}
	}

	ld := Loader{
		Filename: filename,
	}

	ext := strings.ToUpper(path.Ext(filename))
	if ext != "" {
		recognised := false
		for _, e := range FileExtensions {
			if ext == e {
				recognised = true
				break
			}
		}
		if !recognised {
			logger.Logf("romloader", "unrecognised file extension (%s)", ext)
		}
	}

	return ld, nil
}

// ShortName returns a shortened version of the Loader filename, suitable
// for window titles and log entries.
func (ld Loader) ShortName() string {
	sn := path.Base(ld.Filename)
	return strings.TrimSuffix(sn, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough
	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash and check consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
