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

package calligraphy

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Guide is a background guide line in device coordinates.
type Guide [2]vec.Vec2

// number of diagonal guide lines
const numDiagonals = 80

// Guides returns the background guide lines for a drawing surface of the
// given size: the baseline at 3/4 of the height, the x-height line at 1/4
// of the height, and diagonal lines at 60 degrees which indicate the
// slant of the pen.
func Guides(width, height float64) []Guide {
	base := 0.75 * height
	mid := 0.25 * height
	res := make([]Guide, 0, 2+numDiagonals)
	res = append(res,
		Guide{{X: 0, Y: base}, {X: width, Y: base}},
		Guide{{X: 0, Y: mid}, {X: width, Y: mid}},
	)

	s, c := math.Sincos(-60 * math.Pi / 180)
	dir := vec.Vec2{X: c, Y: s}.Mul(0.58 * height)
	step := width / 50
	x := -20 * step
	for range numDiagonals {
		start := vec.Vec2{X: x, Y: base}
		res = append(res, Guide{start, start.Add(dir)})
		x += step
	}
	return res
}

// Centering returns the transformation which centres the letter
// horizontally on a surface of the given width.
func (l *Letter) Centering(width float64) matrix.Matrix {
	if len(l.strokes) == 0 {
		return matrix.Identity
	}
	b := l.Bounds()
	return matrix.Matrix{1, 0, 0, 1, (width - b.LLx - b.URx) / 2, 0}
}
