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

// All contains the synthetic glyphs, grouped by category.
var All = map[string]Alphabet{
	"straight": straightGlyphs,
	"curved":   curvedGlyphs,
	"mixed":    mixedGlyphs,
}

// Latin is the demo alphabet used when no font is loaded.
var Latin = Alphabet{
	straightGlyphs[0], // I
	straightGlyphs[1], // L
	straightGlyphs[2], // T
	straightGlyphs[3], // V
	straightGlyphs[4], // X
	curvedGlyphs[0],   // C
	curvedGlyphs[1],   // O
	curvedGlyphs[2],   // S
	mixedGlyphs[0],    // U
	mixedGlyphs[1],    // J
}
