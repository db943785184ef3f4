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

// Package testcases provides synthetic calligraphic glyphs for tests,
// benchmarks and the command line tools.
//
// All glyphs use the coordinate system of extracted font outlines: y
// points down, the em height is 1000 and the baseline is at y = 750.  Each
// stroke is a closed contour whose first half of segments runs along one
// side of the stroke and whose second half comes back along the other side.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/bezier"
	"seehuhn.de/go/calligraphy/outline"
)

// Glyph is a synthetic letter.
type Glyph struct {
	Name   string     // lowercase a-z and _ only
	Symbol string     // the symbol the glyph is registered under
	Path   *path.Data // one closed subpath per stroke, in drawing order
}

// Contours returns the strokes of the glyph.
func (g Glyph) Contours() []bezier.Path {
	return bezier.FromData(g.Path)
}

// Alphabet is an ordered list of glyphs.  It implements outline.Source.
type Alphabet []Glyph

// Contours returns the strokes of the glyph registered under symbol.
func (a Alphabet) Contours(symbol string) ([]bezier.Path, error) {
	for _, g := range a {
		if g.Symbol == symbol {
			return g.Contours(), nil
		}
	}
	return nil, fmt.Errorf("%q: %w", symbol, outline.ErrMissingGlyph)
}

// Symbols returns the symbols of all glyphs in order.
func (a Alphabet) Symbols() []string {
	res := make([]string, len(a))
	for i, g := range a {
		res[i] = g.Symbol
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
