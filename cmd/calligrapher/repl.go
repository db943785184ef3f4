// seehuhn.de/go/calligraphy - animated calligraphic letterforms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/raster"
)

// Intp is our interpreter object
type Intp struct {
	font   *calligraphy.Font
	style  calligraphy.Style
	width  int
	height int

	// offset is the phase shown by the frame commands
	offset float64

	canvas *raster.Canvas
	repl   *readline.Instance
}

// NewIntp creates an interpreter showing the letters of font on a drawing
// surface of the given size.
func NewIntp(font *calligraphy.Font, style calligraphy.Style, width, height int) *Intp {
	width, height = max(width, 1), max(height, 1)
	font.Rescale(float64(height))
	return &Intp{
		font:   font,
		style:  style,
		width:  width,
		height: height,
		canvas: raster.NewCanvas(width, height),
	}
}

func (intp *Intp) String() string {
	if intp == nil || intp.font.Current() == nil {
		return "()"
	}
	l := intp.font.Current()
	return fmt.Sprintf("( letter=%s %s offset=%.3f theme=%s %dx%d )",
		l.Symbol, l.Direction(), intp.offset, intp.style.Name, intp.width, intp.height)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var errUnknownCommand = errors.New("unknown command")

// execute runs a single command line.
func (intp *Intp) execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	cmd, ok := commandMap[name]
	if !ok {
		return false, fmt.Errorf("%q: %w, try 'help'", fields[0], errUnknownCommand)
	}
	args := fields[1:]
	if len(args) < cmd.minArgs {
		return false, fmt.Errorf("usage: %s %s", cmd.name, cmd.args)
	}
	tracer().Debugf("cmd = %s %v", name, args)
	return cmd.fn(intp, args)
}

// completer returns the tab completion for the command names.
func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range commandList {
		items = append(items, readline.PcItem(cmd.name))
	}
	return readline.NewPrefixCompleter(items...)
}
