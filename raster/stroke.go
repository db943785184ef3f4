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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/calligraphy/bezier"
)

// addStroke adds the outline of a stroked path to the rasteriser.
//
// The outline is the union of one quadrilateral per line piece and one
// disc per vertex.  All polygons are emitted with the same orientation,
// so that overlaps saturate instead of cancelling.
func (c *Canvas) addStroke(p bezier.Path, width float64) {
	d := width / 2 * c.lineScale()
	if d <= 0 || p.IsEmpty() {
		return
	}
	pts := p.Transform(c.CTM).Polyline(c.Flatness)

	if len(pts) == 1 || (len(pts) == 2 && pts[1].Sub(pts[0]).Length() < zeroLengthThreshold) {
		// degenerate path without orientation: only round caps are visible
		if c.Cap == graphics.LineCapRound {
			c.addArc(pts[0], d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
		}
		return
	}

	n := len(pts)
	pieces := n - 1
	if p.Closed {
		pieces = n
	}
	for i := range pieces {
		a, b := pts[i], pts[(i+1)%n]
		seg := b.Sub(a)
		l := seg.Length()
		if l < zeroLengthThreshold {
			continue
		}
		T := seg.Mul(1 / l)
		N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d) // normal (90° CCW from T)
		c.stroke = append(c.stroke[:0], a.Sub(N), b.Sub(N), b.Add(N), a.Add(N))
		c.addPolygon(c.stroke)
	}

	for i, pt := range pts {
		isEnd := !p.Closed && (i == 0 || i == n-1)
		if !isEnd {
			c.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
			continue
		}
		switch c.Cap {
		case graphics.LineCapRound:
			c.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
		case graphics.LineCapSquare:
			var T vec.Vec2
			if i == 0 {
				T = pts[1].Sub(pts[0])
			} else {
				T = pts[n-1].Sub(pts[n-2])
			}
			if l := T.Length(); l >= zeroLengthThreshold {
				c.addSquare(pt, T.Mul(1/l), d)
			}
		}
	}
}

// addArc adds a polygonal approximation of a circular arc, in device
// coordinates, as a closed polygon.  For a full circle this is a disc.
func (c *Canvas) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	c.stroke = c.stroke[:0]

	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation (sagitta) is r*(1 - cos(θ/2)).  For this to equal the
	// flatness ε we need θ = 2*acos(1 - ε/r).
	angleStep := math.Pi / 4
	if radius > c.Flatness {
		if s := 2 * math.Acos(1-c.Flatness/radius); s > 0 && !math.IsNaN(s) {
			angleStep = s
		}
	}
	n := max(int(math.Ceil(math.Abs(sweep)/angleStep)), 4)

	dt := sweep / float64(n)
	for i := range n {
		cos, sin := math.Cos(float64(i)*dt), math.Sin(float64(i)*dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		c.stroke = append(c.stroke, center.Add(dir.Mul(radius)))
	}
	c.addPolygon(c.stroke)
}

// addSquare adds a square centred at the given point, with side length 2*d,
// oriented by the unit tangent T.
func (c *Canvas) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	c.stroke = append(c.stroke[:0],
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
	c.addPolygon(c.stroke)
}
