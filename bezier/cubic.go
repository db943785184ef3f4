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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Tolerance is the maximal distance between a curve and the polyline used
// to measure it, in path units.
const Tolerance = 0.01

// maxFlattenSteps bounds the number of line pieces used for a single curve.
const maxFlattenSteps = 1 << 12

// Cubic is a cubic Bézier curve.  Straight lines are represented as cubics
// whose control points coincide with the end points.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

// IsLine reports whether both control points coincide with their end points.
func (c Cubic) IsLine() bool {
	return c.P1 == c.P0 && c.P2 == c.P3
}

// Eval returns the point on the curve at parameter t.
func (c Cubic) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c.P0.Mul(omt2 * omt).
		Add(c.P1.Mul(3 * omt2 * t)).
		Add(c.P2.Mul(3 * omt * t2)).
		Add(c.P3.Mul(t2 * t))
}

// Split divides the curve at parameter t using de Casteljau's algorithm.
// Lines are divided linearly, so that ParameterAt and Split agree and both
// halves remain lines.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	if c.IsLine() {
		m := lerp(c.P0, c.P3, t)
		return Cubic{c.P0, c.P0, m, m}, Cubic{m, m, c.P3, c.P3}
	}
	p01 := lerp(c.P0, c.P1, t)
	p12 := lerp(c.P1, c.P2, t)
	p23 := lerp(c.P2, c.P3, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	m := lerp(p012, p123, t)
	return Cubic{c.P0, p01, p012, m}, Cubic{m, p123, p23, c.P3}
}

// steps returns the number of line pieces needed to approximate the curve
// within tol, using Wang's formula.
func (c Cubic) steps(tol float64) int {
	if c.IsLine() {
		return 1
	}
	d1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2) // P0 - 2*P1 + P2
	d2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3) // P1 - 2*P2 + P3
	m := max(d1.Length(), d2.Length())
	if m == 0 {
		return 1
	}
	// n = ceil(sqrt(3 * m / (4 * ε)))
	nFloat := math.Sqrt(3 * m / (4 * tol))
	if nFloat <= 1 || math.IsNaN(nFloat) {
		return 1
	}
	return min(int(math.Ceil(nFloat)), maxFlattenSteps)
}

// Flatten approximates the curve by line pieces and calls emit for each of
// them.  The parameter values t0 < t1 of each piece are passed along.
func (c Cubic) Flatten(tol float64, emit func(a, b vec.Vec2, t0, t1 float64)) {
	n := c.steps(tol)
	prev := c.P0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := c.P3
		if i < n {
			pt = c.Eval(t)
		}
		emit(prev, pt, float64(i-1)/float64(n), t)
		prev = pt
	}
}

// Length returns the arc length of the flattened curve.
func (c Cubic) Length(tol float64) float64 {
	if c.IsLine() {
		return c.P3.Sub(c.P0).Length()
	}
	var l float64
	c.Flatten(tol, func(a, b vec.Vec2, _, _ float64) {
		l += b.Sub(a).Length()
	})
	return l
}

// ParameterAt returns the curve parameter at which the flattened arc length,
// measured from P0, reaches length.  The result is clamped to [0, 1].
func (c Cubic) ParameterAt(length, tol float64) float64 {
	if length <= 0 {
		return 0
	}
	if c.IsLine() {
		total := c.P3.Sub(c.P0).Length()
		if total == 0 || length >= total {
			return 1
		}
		return length / total
	}

	var acc float64
	t := 1.0
	done := false
	c.Flatten(tol, func(a, b vec.Vec2, t0, t1 float64) {
		if done {
			return
		}
		l := b.Sub(a).Length()
		if acc+l >= length {
			if l > 0 {
				t = t0 + (t1-t0)*(length-acc)/l
			} else {
				t = t0
			}
			done = true
			return
		}
		acc += l
	})
	return t
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
