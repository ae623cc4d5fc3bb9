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

package main

import (
	"fmt"
	"os"

	"github.com/clint07/gopher8/logger"
	"github.com/clint07/gopher8/modalflag"
	"github.com/clint07/gopher8/playmode"
	"github.com/clint07/gopher8/romloader"
	"github.com/clint07/gopher8/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 10.0, "window scaling")
	hz := md.AddInt("hz", 500, "instructions per second")
	wav := md.AddString("wav", "", "record tone output to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
		// an empty filename asks the operating system for one
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld, err := romloader.NewLoader(filename)
	if err != nil {
		return err
	}

	return playmode.Play(&ld, float32(*scale), *hz, *wav)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, ok := version.Version()
	if !ok {
		fmt.Fprintf(md.Output, "%s (no version information)\n", version.ApplicationName)
		return nil
	}
	fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, ver, rev)

	return nil
}
