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

// Command calligrapher is an interactive shell for exploring the drawing
// animation of calligraphic letters.  Frames can be inspected, written as
// PNG, SVG or PDF files, and played back in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/outline"
	"seehuhn.de/go/calligraphy/testcases"
)

// tracer traces with key 'calligraphy.shell'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.shell")
}

// traceKeys lists the tracers of all packages, which are configured
// together by the -trace flag.
var traceKeys = []string{
	"calligraphy",
	"calligraphy.outline",
	"calligraphy.raster",
	"calligraphy.svg",
	"calligraphy.pdf",
	"calligraphy.anim",
	"calligraphy.shell",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "OpenType font to load; the built-in test alphabet is used if empty")
	letters := flag.String("letters", strings.Join(hebrewLetters, ""), "Letters to load from the font")
	width := flag.Int("width", 800, "Width of the drawing surface in pixels")
	height := flag.Int("height", 600, "Height of the drawing surface in pixels")
	theme := flag.String("theme", "light", "Colour theme [light|dark]")
	flag.Parse()

	level, ok := traceLevel(*tlevel)
	if !ok {
		pterm.Error.Printf("invalid trace level: %s\n", *tlevel)
		os.Exit(2)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}

	style, err := calligraphy.StyleByName(*theme)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	font, err := loadFont(*fontname, *letters)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(4)
	}
	pterm.Info.Printf("Welcome to calligrapher: %d letters loaded\n", font.Len())

	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "calligrapher > ",
		AutoComplete: completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := NewIntp(font, style, *width, *height)
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D or 'quit'")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(s string) (tracing.TraceLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, true
	case "info":
		return tracing.LevelInfo, true
	case "error":
		return tracing.LevelError, true
	}
	return tracing.LevelError, false
}

// loadFont loads the given letters from an OpenType font file.  Without a
// file name, the built-in test alphabet is used.
func loadFont(fname, letters string) (*calligraphy.Font, error) {
	if fname == "" {
		return calligraphy.Load(testcases.Latin, testcases.Latin.Symbols())
	}

	face, err := outline.Load(fname, nil)
	if err != nil {
		return nil, err
	}
	var symbols []string
	for _, r := range letters {
		symbols = append(symbols, string(r))
	}
	tracer().Infof("loading %d letters from %q", len(symbols), face.Family())
	return calligraphy.Load(face, symbols)
}
