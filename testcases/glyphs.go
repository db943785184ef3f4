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

package testcases

// stroke width of the synthetic glyphs
const w = 80

var straightGlyphs = Alphabet{
	{
		Name:   "i",
		Symbol: "I",
		Path:   Bar(pt(500, 150), pt(500, 750), w, 3),
	},
	{
		Name:   "l",
		Symbol: "L",
		Path: Strokes(
			Bar(pt(300, 150), pt(300, 750), w, 2),
			Bar(pt(300, 710), pt(700, 710), w, 2),
		),
	},
	{
		Name:   "t",
		Symbol: "T",
		Path: Strokes(
			Bar(pt(200, 190), pt(800, 190), w, 3),
			Bar(pt(500, 150), pt(500, 750), w, 2),
		),
	},
	{
		Name:   "v",
		Symbol: "V",
		Path: Strokes(
			Bar(pt(250, 150), pt(500, 750), w, 1),
			Bar(pt(500, 750), pt(750, 150), w, 4),
		),
	},
	{
		Name:   "x",
		Symbol: "X",
		Path: Strokes(
			Bar(pt(250, 150), pt(750, 750), w, 2),
			Bar(pt(750, 150), pt(250, 750), w, 2),
		),
	},
}

var curvedGlyphs = Alphabet{
	{
		Name:   "c",
		Symbol: "C",
		Path:   Arc(pt(500, 450), 270, w, -45, -315),
	},
	{
		Name:   "o",
		Symbol: "O",
		Path: Strokes(
			Arc(pt(500, 450), 270, w, -90, -270),
			Arc(pt(500, 450), 270, w, -90, 90),
		),
	},
	{
		Name:   "s",
		Symbol: "S",
		Path:   Wave(pt(150, 450), 700, 250, w),
	},
}

var mixedGlyphs = Alphabet{
	{
		Name:   "u",
		Symbol: "U",
		Path: Strokes(
			Bar(pt(300, 150), pt(300, 500), w, 2),
			Arc(pt(500, 500), 200, w, 180, 0),
			Bar(pt(700, 500), pt(700, 150), w, 2),
		),
	},
	{
		Name:   "j",
		Symbol: "J",
		Path: Strokes(
			Bar(pt(350, 190), pt(750, 190), w, 1),
			Bar(pt(650, 150), pt(650, 550), w, 3),
			Arc(pt(450, 550), 200, w, 0, 150),
		),
	},
}
