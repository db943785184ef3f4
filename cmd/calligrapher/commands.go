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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/anim"
	"seehuhn.de/go/calligraphy/pdfout"
	"seehuhn.de/go/calligraphy/svgout"
)

type command struct {
	name    string
	args    string
	help    string
	minArgs int
	fn      func(intp *Intp, args []string) (quit bool, err error)
}

var (
	commandList []command
	commandMap  map[string]command
)

func init() {
	commandList = []command{
		{"next", "", "select the next letter", 0, nextOp},
		{"prev", "", "select the previous letter", 0, prevOp},
		{"select", "<letter>", "select a letter", 1, selectOp},
		{"key", "<code>", "select a letter by Hebrew keyboard position, e.g. KeyT or ArrowLeft", 1, keyOp},
		{"letters", "", "list all letters", 0, lettersOp},
		{"reverse", "", "toggle the writing direction", 0, reverseOp},
		{"theme", "<light|dark>", "select the colour theme", 1, themeOp},
		{"resize", "<width> <height>", "set the size of the drawing surface", 2, resizeOp},
		{"phase", "<offset>", "show the drawing state at an offset in [0, 1]", 1, phaseOp},
		{"pointer", "<x>", "set the offset from a horizontal pointer position", 1, pointerOp},
		{"png", "<file> [offset]", "write the current frame as PNG", 1, pngOp},
		{"svg", "<file> [offset]", "write the current frame as SVG", 1, svgOp},
		{"pdf", "<file> [offset]", "write the current frame as PDF", 1, pdfOp},
		{"snap", "<file> [offset]", "render the SVG frame with a headless browser", 1, snapOp},
		{"play", "[dir] [frames]", "play the animation, or write its frames to dir", 0, playOp},
		{"help", "", "show this help", 0, helpOp},
		{"quit", "", "leave the shell", 0, quitOp},
	}
	commandMap = make(map[string]command, len(commandList))
	for _, cmd := range commandList {
		commandMap[cmd.name] = cmd
	}
}

func helpOp(intp *Intp, args []string) (bool, error) {
	data := [][]string{{"Command", "Arguments", "Description"}}
	for _, cmd := range commandList {
		data = append(data, []string{cmd.name, cmd.args, cmd.help})
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func quitOp(intp *Intp, args []string) (bool, error) {
	return true, nil
}

// --- Letter Selection -------------------------------------------------

// restart shows the newly selected letter from the beginning.
func (intp *Intp) restart() {
	intp.offset = 0
	pterm.Info.Printf("letter %s\n", intp.font.CurrentSymbol())
}

func nextOp(intp *Intp, args []string) (bool, error) {
	intp.font.Next()
	intp.restart()
	return false, nil
}

func prevOp(intp *Intp, args []string) (bool, error) {
	intp.font.Previous()
	intp.restart()
	return false, nil
}

var errNoLetter = errors.New("letter not in font")

func selectOp(intp *Intp, args []string) (bool, error) {
	if !intp.font.SetCurrent(args[0]) {
		return false, fmt.Errorf("%q: %w", args[0], errNoLetter)
	}
	intp.restart()
	return false, nil
}

func keyOp(intp *Intp, args []string) (bool, error) {
	switch code := args[0]; code {
	case keyNext:
		return nextOp(intp, nil)
	case keyPrevious:
		return prevOp(intp, nil)
	default:
		sym, ok := keyMap[code]
		if !ok {
			return false, fmt.Errorf("no letter for key %q", code)
		}
		return selectOp(intp, []string{sym})
	}
}

func lettersOp(intp *Intp, args []string) (bool, error) {
	data := [][]string{{"", "Letter", "Strokes", "Length", "Time"}}
	current := intp.font.CurrentSymbol()
	for i := range intp.font.Len() {
		l := intp.font.Letter(i)
		mark := ""
		if l.Symbol == current {
			mark = "*"
		}
		data = append(data, []string{
			mark,
			l.Symbol,
			strconv.Itoa(len(l.Strokes())),
			fmt.Sprintf("%.1f", l.Length()),
			anim.DurationFor(l.Length(), intp.font.ScaleFactor()).String(),
		})
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- Display Settings -------------------------------------------------

func reverseOp(intp *Intp, args []string) (bool, error) {
	intp.font.ReversePaths()
	intp.offset = 0
	if l := intp.font.Current(); l != nil {
		pterm.Info.Printf("writing direction %s\n", l.Direction())
	}
	return false, nil
}

func themeOp(intp *Intp, args []string) (bool, error) {
	style, err := calligraphy.StyleByName(args[0])
	if err != nil {
		return false, err
	}
	intp.style = style
	return false, nil
}

func resizeOp(intp *Intp, args []string) (bool, error) {
	w, err1 := strconv.Atoi(args[0])
	h, err2 := strconv.Atoi(args[1])
	if err := errors.Join(err1, err2); err != nil {
		return false, err
	}
	if w <= 0 || h <= 0 {
		return false, fmt.Errorf("invalid size %dx%d", w, h)
	}
	intp.width, intp.height = w, h
	intp.font.Rescale(float64(h))
	intp.canvas.Reset(w, h)
	return false, nil
}

// --- Phases -----------------------------------------------------------

func phaseOp(intp *Intp, args []string) (bool, error) {
	offset, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return false, err
	}
	intp.offset = offset
	return false, intp.showScene()
}

func pointerOp(intp *Intp, args []string) (bool, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return false, err
	}
	intp.offset = anim.PointerOffset(x, float64(intp.width))
	if err := intp.showScene(); err != nil {
		return false, err
	}
	if l := intp.font.Current(); l != nil {
		full := anim.DurationFor(l.Length(), intp.font.ScaleFactor())
		tw := anim.Resume(intp.offset, full)
		pterm.Info.Printf("on release, drawing resumes after %s and takes %s\n", tw.Delay, tw.Duration)
	}
	return false, nil
}

func (intp *Intp) showScene() error {
	l := intp.font.Current()
	if l == nil {
		return errNoLetter
	}
	scene := l.Phase(intp.offset)
	data := [][]string{
		{"Letter", "Direction", "Offset", "Revealed", "Complete", "Pen angle"},
		{
			l.Symbol,
			l.Direction().String(),
			fmt.Sprintf("%.3f", intp.offset),
			fmt.Sprintf("%.1f / %.1f", scene.Revealed, l.Length()),
			fmt.Sprintf("%d / %d", len(scene.Complete), len(l.Strokes())),
			angleText(scene),
		},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func angleText(scene *calligraphy.Scene) string {
	if scene.Active == nil {
		return "-"
	}
	return scene.Active.Label()
}

// --- Output -----------------------------------------------------------

// frameArgs returns the file name and offset of a frame command.
func (intp *Intp) frameArgs(args []string) (string, float64, error) {
	offset := intp.offset
	if len(args) > 1 {
		var err error
		offset, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", 0, err
		}
	}
	return args[0], offset, nil
}

func (intp *Intp) letter() (*calligraphy.Letter, error) {
	l := intp.font.Current()
	if l == nil {
		return nil, errNoLetter
	}
	return l, nil
}

func pngOp(intp *Intp, args []string) (bool, error) {
	fname, offset, err := intp.frameArgs(args)
	if err != nil {
		return false, err
	}
	l, err := intp.letter()
	if err != nil {
		return false, err
	}
	if err := intp.writePNG(fname, l, offset); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", fname)
	return false, nil
}

func (intp *Intp) writePNG(fname string, l *calligraphy.Letter, offset float64) error {
	if err := intp.canvas.Frame(l, offset, intp.style); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := intp.canvas.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func svgOp(intp *Intp, args []string) (bool, error) {
	fname, offset, err := intp.frameArgs(args)
	if err != nil {
		return false, err
	}
	l, err := intp.letter()
	if err != nil {
		return false, err
	}
	svg := svgout.RenderFrame(l, offset, intp.style, intp.width, intp.height)
	if err := os.WriteFile(fname, []byte(svg), 0o644); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", fname)
	return false, nil
}

func pdfOp(intp *Intp, args []string) (bool, error) {
	fname, offset, err := intp.frameArgs(args)
	if err != nil {
		return false, err
	}
	l, err := intp.letter()
	if err != nil {
		return false, err
	}
	if err := pdfout.WriteFrame(fname, l, offset, intp.style, intp.width, intp.height); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", fname)
	return false, nil
}

func snapOp(intp *Intp, args []string) (bool, error) {
	fname, offset, err := intp.frameArgs(args)
	if err != nil {
		return false, err
	}
	l, err := intp.letter()
	if err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := svgout.Screenshot(ctx, svgout.RenderFrame(l, offset, intp.style, intp.width, intp.height))
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", fname)
	return false, nil
}

// --- Animation --------------------------------------------------------

const defaultFrames = 25

func playOp(intp *Intp, args []string) (bool, error) {
	l, err := intp.letter()
	if err != nil {
		return false, err
	}
	tw := anim.Start(anim.DurationFor(l.Length(), intp.font.ScaleFactor()))
	if len(args) == 0 {
		return false, intp.play(l, tw)
	}

	dir := args[0]
	n := defaultFrames
	if len(args) > 1 {
		n, err = strconv.Atoi(args[1])
		if err != nil {
			return false, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	for i, offset := range tw.Frames(n) {
		fname := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if err := intp.writePNG(fname, l, offset); err != nil {
			return false, err
		}
	}
	pterm.Info.Printf("wrote %d frames to %s\n", n, dir)
	return false, nil
}

// play shows the progress of the animation in the terminal, until it
// finishes or is interrupted.
func (intp *Intp) play(l *calligraphy.Letter, tw anim.Tween) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	const barWidth = 40
	err := tw.Run(ctx, time.Second/30, func(offset float64) {
		intp.offset = offset
		scene := l.Phase(offset)
		done := int(offset * barWidth)
		bar := make([]byte, barWidth)
		for i := range bar {
			bar[i] = '.'
			if i < done {
				bar[i] = '#'
			}
		}
		pterm.Printf("\r%s [%s] %3.0f%% %-5s", l.Symbol, bar, offset*100, angleText(scene))
	})
	pterm.Println()
	if errors.Is(err, context.Canceled) {
		pterm.Info.Printf("interrupted at offset %.3f\n", intp.offset)
		return nil
	}
	return err
}
