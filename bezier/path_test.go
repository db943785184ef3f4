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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// quarterCircle returns the arc from (r, 0) to (0, r) around the origin.
func quarterCircle(r float64) Path {
	k := r * kappa
	return Path{Segments: []Segment{
		{Point: pt(r, 0), HandleOut: pt(0, k)},
		{Point: pt(0, r), HandleIn: pt(k, 0)},
	}}
}

func square(x, y, side float64) Path {
	p := Line(pt(x, y), pt(x+side, y), pt(x+side, y+side), pt(x, y+side))
	p.Closed = true
	return p
}

func TestLineLength(t *testing.T) {
	p := Line(pt(0, 0), pt(3, 4), pt(3, 10))
	if l := p.Length(); math.Abs(l-11) > 1e-12 {
		t.Errorf("expected length 11, got %g", l)
	}
	if l := square(0, 0, 10).Length(); math.Abs(l-40) > 1e-12 {
		t.Errorf("expected closed square length 40, got %g", l)
	}
}

func TestCubicLength(t *testing.T) {
	for _, r := range []float64{1, 100, 1000} {
		want := math.Pi * r / 2
		got := quarterCircle(r).Length()
		if math.Abs(got-want)/want > 1e-3 {
			t.Errorf("r=%g: expected length %g, got %g", r, want, got)
		}
	}
}

func TestSplitAtLine(t *testing.T) {
	p := Line(pt(0, 0), pt(10, 0), pt(20, 0))

	cases := []struct {
		name       string
		at         float64
		head, tail []vec.Vec2
	}{
		{"inside", 5, []vec.Vec2{pt(0, 0), pt(5, 0)}, []vec.Vec2{pt(5, 0), pt(10, 0), pt(20, 0)}},
		{"anchor", 10, []vec.Vec2{pt(0, 0), pt(10, 0)}, []vec.Vec2{pt(10, 0), pt(20, 0)}},
		{"second", 15, []vec.Vec2{pt(0, 0), pt(10, 0), pt(15, 0)}, []vec.Vec2{pt(15, 0), pt(20, 0)}},
		{"zero", 0, []vec.Vec2{pt(0, 0)}, []vec.Vec2{pt(0, 0), pt(10, 0), pt(20, 0)}},
		{"negative", -3, []vec.Vec2{pt(0, 0)}, []vec.Vec2{pt(0, 0), pt(10, 0), pt(20, 0)}},
		{"end", 20, []vec.Vec2{pt(0, 0), pt(10, 0), pt(20, 0)}, []vec.Vec2{pt(20, 0)}},
		{"beyond", 99, []vec.Vec2{pt(0, 0), pt(10, 0), pt(20, 0)}, []vec.Vec2{pt(20, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			head, tail := p.SplitAt(tc.at)
			diff(t, Line(tc.head...), head, approx)
			diff(t, Line(tc.tail...), tail, approx)
		})
	}
}

func TestSplitAtClosed(t *testing.T) {
	head, tail := square(0, 0, 10).SplitAt(25)
	diff(t, Line(pt(0, 0), pt(10, 0), pt(10, 10), pt(5, 10)), head, approx)
	diff(t, Line(pt(5, 10), pt(0, 10), pt(0, 0)), tail, approx)
}

func TestSplitAtCurve(t *testing.T) {
	const r = 100
	p := quarterCircle(r)
	total := p.Length()

	for _, at := range []float64{1, 30, total / 2, 120, total - 1} {
		head, tail := p.SplitAt(at)
		if head.Len() != 2 || tail.Len() != 2 {
			t.Fatalf("at=%g: unexpected segment counts %d, %d", at, head.Len(), tail.Len())
		}
		if head.Last().Point != tail.First().Point {
			t.Errorf("at=%g: head and tail do not meet", at)
		}
		if d := head.Last().Point.Length(); math.Abs(d-r) > 0.05 {
			t.Errorf("at=%g: cut point at distance %g from centre", at, d)
		}
		if l := head.Length(); math.Abs(l-at) > 0.05 {
			t.Errorf("at=%g: head length %g", at, l)
		}
		if l := tail.Length(); math.Abs(l-(total-at)) > 0.05 {
			t.Errorf("at=%g: tail length %g, want %g", at, l, total-at)
		}
	}
}

func TestSplitAtKeepsReceiver(t *testing.T) {
	p := quarterCircle(10)
	orig := p.Clone()
	p.SplitAt(5)
	diff(t, orig, p)
}

func TestRemoveAndAddSegments(t *testing.T) {
	p := Line(pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0))
	orig := p.Clone()

	q := p.RemoveSegments(1, 3)
	diff(t, Line(pt(0, 0), pt(3, 0)), q)
	diff(t, orig, p)

	q = p.RemoveSegments(-5, 1)
	diff(t, Line(pt(1, 0), pt(2, 0), pt(3, 0)), q)

	q = p.AddSegments(Segment{Point: pt(4, 0)})
	if q.Len() != 5 || p.Len() != 4 {
		t.Errorf("unexpected lengths %d and %d", q.Len(), p.Len())
	}

	j := Line(pt(0, 0), pt(1, 0)).Join(Line(pt(1, 0), pt(1, 1)))
	diff(t, Line(pt(0, 0), pt(1, 0), pt(1, 0), pt(1, 1)), j)
}

func TestReverse(t *testing.T) {
	p := quarterCircle(10)
	r := p.Reverse()
	if r.First().Point != p.Last().Point || r.First().HandleOut != p.Last().HandleIn {
		t.Errorf("unexpected first segment %v", r.First())
	}
	if math.Abs(r.Length()-p.Length()) > 1e-9 {
		t.Errorf("reversing changed the length")
	}
	diff(t, p, r.Reverse())
}

func TestTransform(t *testing.T) {
	p := quarterCircle(10)
	q := p.Transform(matrix.Matrix{2, 0, 0, 2, 5, 7})
	if q.First().Point != pt(25, 7) {
		t.Errorf("unexpected anchor %v", q.First().Point)
	}
	if q.First().HandleOut != p.First().HandleOut.Mul(2) {
		t.Errorf("handles must not be translated: %v", q.First().HandleOut)
	}
	if got, want := q.Length(), 2*p.Length(); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("expected length %g, got %g", want, got)
	}
	if got, want := p.Scale(3).Length(), 3*p.Length(); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("expected length %g, got %g", want, got)
	}
}

func TestBounds(t *testing.T) {
	b := quarterCircle(10).Bounds()
	if b.LLx != 0 || b.LLy != 0 || math.Abs(b.URx-10) > 1e-9 || math.Abs(b.URy-10) > 1e-9 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestDataRoundTrip(t *testing.T) {
	circle := func(r float64) Path {
		k := r * kappa
		return Path{Closed: true, Segments: []Segment{
			{Point: pt(r, 0), HandleIn: pt(0, -k), HandleOut: pt(0, k)},
			{Point: pt(0, r), HandleIn: pt(k, 0), HandleOut: pt(-k, 0)},
			{Point: pt(-r, 0), HandleIn: pt(0, k), HandleOut: pt(0, -k)},
			{Point: pt(0, -r), HandleIn: pt(-k, 0), HandleOut: pt(k, 0)},
		}}
	}

	for _, p := range []Path{circle(10), square(1, 2, 3), quarterCircle(5)} {
		got := FromData(p.Data())
		if len(got) != 1 {
			t.Fatalf("expected one contour, got %d", len(got))
		}
		diff(t, p, got[0], approx)
	}
}

func TestFromDataQuadratic(t *testing.T) {
	d := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(3, 3), pt(6, 0)).
		Close().
		MoveTo(pt(10, 10)).
		LineTo(pt(20, 10))

	got := FromData(d)
	want := []Path{
		{Closed: true, Segments: []Segment{
			{Point: pt(0, 0), HandleOut: pt(2, 2)},
			{Point: pt(6, 0), HandleIn: pt(-2, 2)},
		}},
		Line(pt(10, 10), pt(20, 10)),
	}
	diff(t, want, got, approx)
}

func TestPolyline(t *testing.T) {
	pts := square(0, 0, 1).Polyline(Tolerance)
	diff(t, []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}, pts)
}
