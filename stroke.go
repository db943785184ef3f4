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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/bezier"
)

// Stroke is a single brush stroke of a letter, given by a closed contour.
//
// The first ⌊n/2⌋ segments of the contour form the incoming edge of the
// stroke, the remaining segments form the outgoing edge.  The edges are
// split by segment count, so their arc lengths may differ.  The length of
// the stroke is the arc length of the incoming edge.
type Stroke struct {
	base    bezier.Path // unscaled contour
	contour bezier.Path

	incoming bezier.Path
	outgoing bezier.Path
	length   float64
}

// NewStroke creates a stroke from a contour.  The contour is copied and
// treated as closed.
func NewStroke(contour bezier.Path) *Stroke {
	base := contour.Close()
	s := &Stroke{
		base:    base,
		contour: base,
	}
	s.CalculatePaths()
	return s
}

// CalculatePaths recomputes the two edges of the stroke and its length from
// the current contour.
func (s *Stroke) CalculatePaths() {
	s.incoming, s.outgoing = s.edges()
	s.length = s.incoming.Length()
}

func (s *Stroke) edges() (incoming, outgoing bezier.Path) {
	n := s.contour.Len()
	return s.contour.Slice(0, n/2), s.contour.Slice(n/2, n)
}

// Rescale sets the working contour to the base contour scaled by factor
// about the origin, and recomputes the stroke length.
func (s *Stroke) Rescale(factor float64) {
	s.contour = s.base.Scale(factor)
	s.CalculatePaths()
}

// Length returns the arc length of the incoming edge.
func (s *Stroke) Length() float64 {
	return s.length
}

// Contour returns a copy of the (scaled) contour of the stroke.
func (s *Stroke) Contour() bezier.Path {
	return s.contour.Clone()
}

// Incoming returns a copy of the incoming edge.
func (s *Stroke) Incoming() bezier.Path {
	return s.incoming.Clone()
}

// Outgoing returns a copy of the outgoing edge.
func (s *Stroke) Outgoing() bezier.Path {
	return s.outgoing.Clone()
}

// Phase returns the part of the stroke which has been drawn after
// phaseLength units of writing in direction dir.  The result is a closed
// path.  phaseLength is clamped to [0, s.Length()].
//
// The leading edge is cut at phaseLength and the trailing edge at the
// proportional position, so that the cut runs across the stroke.  If the
// two pieces end up with different numbers of segments, segments next to
// the cut are dropped from the larger piece.
func (s *Stroke) Phase(phaseLength float64, dir Direction) bezier.Path {
	phaseLength = clamp(phaseLength, s.length)

	front, back := s.edges()
	if dir == Backward {
		front, back = back, front
	}

	backLength := back.Length()
	var backPhaseLength float64
	if s.length > 0 {
		backPhaseLength = phaseLength / s.length * backLength
	}

	front, _ = front.SplitAt(phaseLength)
	_, back = back.SplitAt(backLength - backPhaseLength)

	for front.Len() > back.Len() {
		front = front.RemoveSegments(front.Len()-1, front.Len())
	}
	for back.Len() > front.Len() {
		back = back.RemoveSegments(0, 1)
	}

	// straight cut across the stroke
	if !front.IsEmpty() {
		front.Segments[front.Len()-1].HandleOut = vec.Vec2{}
		back.Segments[0].HandleIn = vec.Vec2{}
	}

	return front.Join(back).Close()
}

// Partial is a partially drawn stroke together with the pen indicator.
type Partial struct {
	// Shape is the closed outline of the drawn part of the stroke.
	Shape bezier.Path

	// Pen is the edge of Shape where the pen currently touches the paper.
	Pen [2]vec.Vec2

	// Angle is the pen angle in degrees, in the range [0, 180).
	Angle int

	// LabelAt is the position of the angle label.
	LabelAt vec.Vec2
}

// Label returns the text of the angle label.
func (p *Partial) Label() string {
	return fmt.Sprintf("%d°", p.Angle)
}

// PhaseWithPen is like Phase, but also locates the pen on the cut edge of
// the partial outline and measures its angle.
func (s *Stroke) PhaseWithPen(phaseLength float64, dir Direction) *Partial {
	shape := s.Phase(phaseLength, dir)
	res := &Partial{Shape: shape}

	if n := shape.Len(); n >= 2 {
		mid := n / 2
		res.Pen = [2]vec.Vec2{shape.Segments[mid-1].Point, shape.Segments[mid].Point}
	} else if n == 1 {
		res.Pen = [2]vec.Vec2{shape.Segments[0].Point, shape.Segments[0].Point}
	}

	d := res.Pen[1].Sub(res.Pen[0])
	res.Angle = penAngle(math.Atan2(d.Y, d.X) * 180 / math.Pi)

	centre := res.Pen[0].Add(res.Pen[1]).Mul(0.5)
	res.LabelAt = centre.Add(vec.Vec2{X: 10})

	return res
}

// penAngle converts the direction of the pen edge, in degrees, into the
// writing angle shown to the user.
func penAngle(raw float64) int {
	angle := int(math.Floor(120 + raw + 0.5))
	if angle > 180 {
		angle -= 180
	}
	angle %= 180
	if angle < 0 {
		angle += 180
	}
	return angle
}

// clamp restricts x to [0, upper].  NaN is mapped to 0.
func clamp(x, upper float64) float64 {
	if !(x > 0) {
		return 0
	}
	return math.Min(x, upper)
}
