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

// anchorEpsilon is the distance in curve parameter space below which a cut
// is snapped to an existing anchor point.
const anchorEpsilon = 1e-9

// SplitAt cuts the path at the given arc length, measured from the first
// segment.  The length is clamped to [0, p.Length()].
//
// The cut point becomes a new segment which is the last segment of head and
// the first segment of tail.  Both copies carry the handles of both halves
// of the divided curve.  If the cut falls onto an existing anchor, no new
// segment is created and the anchor is shared instead.
//
// A closed path is cut open: its closing curve is treated as a final curve
// which ends in a copy of the first segment.  Both results are open paths.
func (p Path) SplitAt(length float64) (head, tail Path) {
	if p.Closed && len(p.Segments) > 1 {
		open := p.AddSegments(p.Segments[0])
		open.Closed = false
		return open.SplitAt(length)
	}

	n := len(p.Segments)
	if n == 0 {
		return Path{}, Path{}
	}
	if length <= 0 || n == 1 {
		return p.Slice(0, 1), p.Slice(0, n)
	}

	var acc float64
	for i, c := range p.Curves() {
		l := c.Length(Tolerance)
		if length >= acc+l && i < n-2 {
			acc += l
			continue
		}

		t := c.ParameterAt(length-acc, Tolerance)
		switch {
		case t <= anchorEpsilon:
			return p.Slice(0, i+1), p.Slice(i, n)
		case t >= 1-anchorEpsilon:
			return p.Slice(0, i+2), p.Slice(i+1, n)
		}

		left, right := c.Split(t)
		cut := Segment{
			Point:     left.P3,
			HandleIn:  left.P2.Sub(left.P3),
			HandleOut: right.P1.Sub(right.P0),
		}

		head = p.Slice(0, i+1)
		head.Segments[i].HandleOut = left.P1.Sub(left.P0)
		head = head.AddSegments(cut)

		tail = p.Slice(i+1, n)
		tail.Segments[0].HandleIn = right.P2.Sub(right.P3)
		tail = Path{Segments: append([]Segment{cut}, tail.Segments...)}
		return head, tail
	}

	// not reached: the last curve always takes the cut
	return p.Clone(), p.Slice(n-1, n)
}
