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

package bezier

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// closeEpsilon is the distance below which the end point of a contour is
// merged into its start point.
const closeEpsilon = 1e-9

// Data converts the path into a path.Data.  Straight curves are written as
// lines, all other curves as cubic Béziers.
func (p Path) Data() *path.Data {
	d := &path.Data{}
	p.AppendTo(d)
	return d
}

// AppendTo appends the path as a new subpath to d.
func (p Path) AppendTo(d *path.Data) *path.Data {
	if len(p.Segments) == 0 {
		return d
	}
	d = d.MoveTo(p.Segments[0].Point)
	for i, c := range p.Curves() {
		closing := p.Closed && i == len(p.Segments)-1
		switch {
		case c.IsLine() && closing:
			// the close command draws this one
		case c.IsLine():
			d = d.LineTo(c.P3)
		default:
			d = d.CubeTo(c.P1, c.P2, c.P3)
		}
	}
	if p.Closed {
		d = d.Close()
	}
	return d
}

// FromData converts every subpath of d into a Path.  Quadratic curves are
// raised to cubics.  For closed subpaths whose last point coincides with
// the first point, the two are merged into one segment.
func FromData(d *path.Data) []Path {
	var res []Path
	var cur []Segment
	closed := false

	flush := func() {
		if len(cur) > 0 {
			res = append(res, makeContour(cur, closed))
		}
		cur = nil
		closed = false
	}

	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = append(cur, Segment{Point: d.Coords[coordIdx]})
			coordIdx++

		case path.CmdLineTo:
			cur = append(cur, Segment{Point: d.Coords[coordIdx]})
			coordIdx++

		case path.CmdQuadTo:
			cur = quadTo(cur, d.Coords[coordIdx], d.Coords[coordIdx+1])
			coordIdx += 2

		case path.CmdCubeTo:
			cur = cubeTo(cur, d.Coords[coordIdx], d.Coords[coordIdx+1], d.Coords[coordIdx+2])
			coordIdx += 3

		case path.CmdClose:
			closed = true
			flush()
		}
	}
	flush()
	return res
}

// cubeTo appends a cubic curve to the segment list under construction.
func cubeTo(segs []Segment, c1, c2, p vec.Vec2) []Segment {
	if len(segs) == 0 {
		segs = append(segs, Segment{})
	}
	last := &segs[len(segs)-1]
	last.HandleOut = c1.Sub(last.Point)
	return append(segs, Segment{Point: p, HandleIn: c2.Sub(p)})
}

// quadTo appends a quadratic curve, raised to a cubic.
func quadTo(segs []Segment, c, p vec.Vec2) []Segment {
	if len(segs) == 0 {
		segs = append(segs, Segment{})
	}
	p0 := segs[len(segs)-1].Point
	c1 := p0.Add(c.Sub(p0).Mul(2.0 / 3.0))
	c2 := p.Add(c.Sub(p).Mul(2.0 / 3.0))
	return cubeTo(segs, c1, c2, p)
}

func makeContour(segs []Segment, closed bool) Path {
	if closed && len(segs) > 1 {
		first, last := segs[0], segs[len(segs)-1]
		if last.Point.Sub(first.Point).Length() <= closeEpsilon {
			segs[0].HandleIn = last.HandleIn
			segs = segs[:len(segs)-1]
		}
	}
	return Path{Segments: segs, Closed: closed}
}
