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

// Package bezier implements value-type Bézier paths in the style of
// drawing programs: every anchor point carries its own incoming and
// outgoing control handle.
//
// All operations treat paths as immutable values.  Methods which modify a
// path return a new Path and never write to the receiver's segment slice,
// so paths can be shared freely between a producer and a renderer.
//
// Arc lengths are measured by flattening the curves into polylines, see
// [Tolerance].
package bezier

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is an anchor point of a path together with its two control
// handles.  The handles are offsets relative to Point.  A zero handle makes
// the adjacent curve leave (or enter) the anchor in a straight line.
type Segment struct {
	Point     vec.Vec2
	HandleIn  vec.Vec2
	HandleOut vec.Vec2
}

// Path is a sequence of segments.  Consecutive segments are connected by
// cubic curves; if Closed is set, the last segment is also connected back to
// the first one.
type Path struct {
	Segments []Segment
	Closed   bool
}

// Line returns an open path connecting the given points by straight lines.
func Line(pts ...vec.Vec2) Path {
	segs := make([]Segment, len(pts))
	for i, pt := range pts {
		segs[i] = Segment{Point: pt}
	}
	return Path{Segments: segs}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p.Segments == nil {
		return Path{Closed: p.Closed}
	}
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)
	return Path{Segments: segs, Closed: p.Closed}
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// First returns the first segment.  The path must not be empty.
func (p Path) First() Segment {
	return p.Segments[0]
}

// Last returns the last segment.  The path must not be empty.
func (p Path) Last() Segment {
	return p.Segments[len(p.Segments)-1]
}

// NumCurves returns the number of curves between segments, including the
// closing curve of a closed path.
func (p Path) NumCurves() int {
	n := len(p.Segments)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Curve returns the i-th curve of the path.
func (p Path) Curve(i int) Cubic {
	a := p.Segments[i]
	b := p.Segments[(i+1)%len(p.Segments)]
	return Cubic{
		P0: a.Point,
		P1: a.Point.Add(a.HandleOut),
		P2: b.Point.Add(b.HandleIn),
		P3: b.Point,
	}
}

// Curves iterates over all curves of the path.
func (p Path) Curves() iter.Seq2[int, Cubic] {
	return func(yield func(int, Cubic) bool) {
		for i := range p.NumCurves() {
			if !yield(i, p.Curve(i)) {
				return
			}
		}
	}
}

// Length returns the arc length of the path.
func (p Path) Length() float64 {
	var l float64
	for _, c := range p.Curves() {
		l += c.Length(Tolerance)
	}
	return l
}

// RemoveSegments returns a copy of p without the segments with indices in
// the half-open range [from, to).  The range is clamped to the path.
func (p Path) RemoveSegments(from, to int) Path {
	n := len(p.Segments)
	from = max(0, min(from, n))
	to = max(from, min(to, n))
	segs := make([]Segment, 0, n-(to-from))
	segs = append(segs, p.Segments[:from]...)
	segs = append(segs, p.Segments[to:]...)
	return Path{Segments: segs, Closed: p.Closed}
}

// Slice returns an open path made of copies of the segments [from, to).
func (p Path) Slice(from, to int) Path {
	n := len(p.Segments)
	from = max(0, min(from, n))
	to = max(from, min(to, n))
	segs := make([]Segment, to-from)
	copy(segs, p.Segments[from:to])
	return Path{Segments: segs}
}

// AddSegments returns a copy of p with the given segments appended.
func (p Path) AddSegments(segs ...Segment) Path {
	res := make([]Segment, 0, len(p.Segments)+len(segs))
	res = append(res, p.Segments...)
	res = append(res, segs...)
	return Path{Segments: res, Closed: p.Closed}
}

// Join returns the concatenation of the segments of p and q.  Coincident end
// points are kept as separate segments.  The result is open.
func (p Path) Join(q Path) Path {
	res := p.AddSegments(q.Segments...)
	res.Closed = false
	return res
}

// Close returns a closed copy of p.
func (p Path) Close() Path {
	res := p.Clone()
	res.Closed = true
	return res
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	n := len(p.Segments)
	segs := make([]Segment, n)
	for i, s := range p.Segments {
		segs[n-1-i] = Segment{
			Point:     s.Point,
			HandleIn:  s.HandleOut,
			HandleOut: s.HandleIn,
		}
	}
	return Path{Segments: segs, Closed: p.Closed}
}

// Transform applies the affine transformation m to the path.  Anchor points
// are mapped affinely, handles linearly.
func (p Path) Transform(m matrix.Matrix) Path {
	segs := make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		segs[i] = Segment{
			Point:     Apply(m, s.Point),
			HandleIn:  applyLinear(m, s.HandleIn),
			HandleOut: applyLinear(m, s.HandleOut),
		}
	}
	return Path{Segments: segs, Closed: p.Closed}
}

// Scale returns the path scaled by f about the origin.
func (p Path) Scale(f float64) Path {
	return p.Transform(matrix.Matrix{f, 0, 0, f, 0, 0})
}

// Bounds returns the bounding box of the flattened path.  The zero
// rectangle is returned for empty paths.
func (p Path) Bounds() rect.Rect {
	if len(p.Segments) == 0 {
		return rect.Rect{}
	}
	first := p.Segments[0].Point
	b := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, c := range p.Curves() {
		c.Flatten(Tolerance, func(_, pt vec.Vec2, _, _ float64) {
			b = extend(b, pt)
		})
	}
	return b
}

// Polyline returns the vertices of the flattened path.  For closed paths
// the first vertex is not repeated at the end.
func (p Path) Polyline(tol float64) []vec.Vec2 {
	if len(p.Segments) == 0 {
		return nil
	}
	pts := []vec.Vec2{p.Segments[0].Point}
	for i, c := range p.Curves() {
		closing := p.Closed && i == len(p.Segments)-1
		c.Flatten(tol, func(_, b vec.Vec2, _, t1 float64) {
			if closing && t1 == 1 {
				return
			}
			pts = append(pts, b)
		})
	}
	return pts
}

// Union returns the smallest rectangle containing both a and b.
func Union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: math.Min(a.LLx, b.LLx),
		LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx),
		URy: math.Max(a.URy, b.URy),
	}
}

// Apply maps the point v through the affine transformation m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of m.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

func extend(b rect.Rect, pt vec.Vec2) rect.Rect {
	b.LLx = math.Min(b.LLx, pt.X)
	b.LLy = math.Min(b.LLy, pt.Y)
	b.URx = math.Max(b.URx, pt.X)
	b.URy = math.Max(b.URy, pt.Y)
	return b
}
