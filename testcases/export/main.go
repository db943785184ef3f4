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

// Command export writes the animation phases of the test alphabets to a
// JSON file, for comparison with other implementations of the phase
// interpolation.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/anim"
	"seehuhn.de/go/calligraphy/bezier"
	"seehuhn.de/go/calligraphy/testcases"
)

const numFrames = 11

func main() {
	var out struct {
		Glyphs []jsonGlyph `json:"glyphs"`
	}

	offsets := anim.Start(0).Frames(numFrames)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		alphabet := testcases.All[category]
		font, err := calligraphy.Load(alphabet, alphabet.Symbols())
		if err != nil {
			panic(err)
		}
		for i := range font.Len() {
			out.Glyphs = append(out.Glyphs, toJSON(category, font.Letter(i), offsets))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/phases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonGlyph struct {
	Name   string      `json:"name"`
	Length float64     `json:"length"`
	Frames []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Offset   float64         `json:"offset"`
	Revealed float64         `json:"revealed"`
	Shapes   [][]jsonSegment `json:"shapes"`
	Pen      [][]float64     `json:"pen,omitempty"`
	Angle    *int            `json:"angle,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, l *calligraphy.Letter, offsets []float64) jsonGlyph {
	jg := jsonGlyph{
		Name:   category + "_" + l.Symbol,
		Length: l.Length(),
	}
	for _, offset := range offsets {
		scene := l.Phase(offset)
		jf := jsonFrame{
			Offset:   offset,
			Revealed: scene.Revealed,
		}
		for _, shape := range scene.Shapes() {
			jf.Shapes = append(jf.Shapes, pathToJSON(shape))
		}
		if a := scene.Active; a != nil {
			jf.Pen = [][]float64{{a.Pen[0].X, a.Pen[0].Y}, {a.Pen[1].X, a.Pen[1].Y}}
			angle := a.Angle
			jf.Angle = &angle
		}
		jg.Frames = append(jg.Frames, jf)
	}
	return jg
}

func pathToJSON(p bezier.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Data().Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
