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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Bar builds a straight stroke of the given width from p0 to p1.  Each
// side of the stroke is divided into the given number of pieces.
// The length of the stroke is the distance between p0 and p1.
func Bar(p0, p1 vec.Vec2, width float64, pieces int) *path.Data {
	pieces = max(pieces, 1)
	d := p1.Sub(p0)
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2 / d.Length())

	res := &path.Data{}
	for i := 0; i <= pieces; i++ {
		p := p0.Add(d.Mul(float64(i) / float64(pieces))).Add(n)
		if i == 0 {
			res = res.MoveTo(p)
		} else {
			res = res.LineTo(p)
		}
	}
	for i := pieces; i >= 0; i-- {
		res = res.LineTo(p0.Add(d.Mul(float64(i) / float64(pieces))).Sub(n))
	}
	return res.Close()
}

// Arc builds a curved stroke along a circle around c with radius r.  The
// stroke runs from angle `from` to angle `to`, in degrees.  In the y-down
// coordinate system, increasing angles run clockwise.  The first side of
// the stroke is the one at radius r+width/2.
func Arc(c vec.Vec2, r, width, from, to float64) *path.Data {
	res := &path.Data{}
	res = arcTo(res, c, r+width/2, from, to, true)
	res = arcTo(res, c, r-width/2, to, from, false)
	return res.Close()
}

// arcTo appends a circular arc, using at most 90 degrees per cubic curve.
func arcTo(d *path.Data, c vec.Vec2, r, from, to float64, move bool) *path.Data {
	at := func(a float64) vec.Vec2 {
		s, co := math.Sincos(a * math.Pi / 180)
		return vec.Vec2{X: c.X + r*co, Y: c.Y + r*s}
	}
	tangent := func(a float64) vec.Vec2 {
		s, co := math.Sincos(a * math.Pi / 180)
		return vec.Vec2{X: -s, Y: co}
	}

	if move {
		d = d.MoveTo(at(from))
	} else {
		d = d.LineTo(at(from))
	}

	pieces := max(int(math.Ceil(math.Abs(to-from)/90)), 1)
	step := (to - from) / float64(pieces)
	h := 4.0 / 3.0 * math.Tan(step*math.Pi/180/4) * r
	for i := range pieces {
		a0 := from + float64(i)*step
		a1 := a0 + step
		d = d.CubeTo(
			at(a0).Add(tangent(a0).Mul(h)),
			at(a1).Sub(tangent(a1).Mul(h)),
			at(a1))
	}
	return d
}

// Wave builds an S-shaped horizontal stroke starting at p0.  The centre
// line is made of two cubic curves, which bulge by amp to either side.
func Wave(p0 vec.Vec2, length, amp, width float64) *path.Data {
	edge := func(d *path.Data, dy float64, forward bool) *path.Data {
		x, y := p0.X, p0.Y+dy
		l := length
		if forward {
			d = d.CubeTo(pt(x+l/6, y-amp), pt(x+l/3, y-amp), pt(x+l/2, y))
			return d.CubeTo(pt(x+2*l/3, y+amp), pt(x+5*l/6, y+amp), pt(x+l, y))
		}
		d = d.CubeTo(pt(x+5*l/6, y+amp), pt(x+2*l/3, y+amp), pt(x+l/2, y))
		return d.CubeTo(pt(x+l/3, y-amp), pt(x+l/6, y-amp), pt(x, y))
	}

	res := (&path.Data{}).MoveTo(pt(p0.X, p0.Y-width/2))
	res = edge(res, -width/2, true)
	res = res.LineTo(pt(p0.X+length, p0.Y+width/2))
	res = edge(res, width/2, false)
	return res.Close()
}

// Strokes combines the given strokes into one glyph path.
func Strokes(strokes ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, s := range strokes {
		res.Cmds = append(res.Cmds, s.Cmds...)
		res.Coords = append(res.Coords, s.Coords...)
	}
	return res
}
