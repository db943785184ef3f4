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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/bezier"
	"seehuhn.de/go/calligraphy/testcases"
)

// approaches lists thresholds which force the 2D buffer code path ("A")
// and the active edge list ("B").
var approaches = []struct {
	name      string
	threshold int
}{
	{"A", 1 << 30},
	{"B", 0},
}

// coverage fills the collected outlines and returns the coverage as a
// row-major w×h grid.
func coverage(r *Rasterizer, w, h int) []float32 {
	res := make([]float32, w*h)
	r.FillNonZero(func(y, xMin int, cov []float32) {
		copy(res[y*w+xMin:], cov)
	})
	return res
}

func sum(cov []float32) float64 {
	var s float64
	for _, c := range cov {
		s += float64(c)
	}
	return s
}

func ring(cx, cy, r, width float64) bezier.Path {
	return bezier.FromData(testcases.Arc(vec.Vec2{X: cx, Y: cy}, r, width, 0, 360))[0]
}

func TestRasterizerArea(t *testing.T) {
	type testCase struct {
		name  string
		paths []bezier.Path
		ctm   matrix.Matrix
		area  float64
		tol   float64
	}
	cases := []testCase{
		{"square", []bezier.Path{square(2, 2, 4)}, matrix.Identity, 16, 1e-5},
		{"offset", []bezier.Path{square(2.5, 2.5, 3)}, matrix.Identity, 9, 1e-5},
		{"clipped", []bezier.Path{square(-5, -5, 10)}, matrix.Identity, 25, 1e-5},
		{"scaled", []bezier.Path{square(1, 1, 4)}, matrix.Matrix{2, 0, 0, 2, 0, 0}, 64, 1e-5},
		{"overlap", []bezier.Path{square(2, 2, 4), square(2, 2, 4)}, matrix.Identity, 16, 1e-5},
		{"ring", []bezier.Path{ring(20, 20, 10, 6)}, matrix.Identity, 2 * math.Pi * 10 * 6, 10},
		{"open", []bezier.Path{bezier.Line(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 8, Y: 0}, vec.Vec2{X: 8, Y: 8})}, matrix.Identity, 32, 1e-5},
	}
	for _, tc := range cases {
		for _, a := range approaches {
			t.Run(tc.name+"_"+a.name, func(t *testing.T) {
				r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
				r.smallPathThreshold = a.threshold
				r.CTM = tc.ctm
				for _, p := range tc.paths {
					r.AddPath(p)
				}
				cov := coverage(r, 40, 40)
				if got := sum(cov); math.Abs(got-tc.area) > tc.tol {
					t.Errorf("area: got %g, want %g", got, tc.area)
				}
				for i, c := range cov {
					if c < 0 || c > 1 {
						t.Fatalf("pixel %d: coverage %g out of range", i, c)
					}
				}
			})
		}
	}
}

func TestRasterizerEdgePixels(t *testing.T) {
	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
			r.smallPathThreshold = a.threshold
			r.AddPath(square(2.5, 2.5, 3))
			cov := coverage(r, 8, 8)

			want := map[[2]int]float32{
				{3, 3}: 1, {4, 4}: 1,
				{2, 3}: 0.5, {5, 4}: 0.5, {3, 2}: 0.5, {4, 5}: 0.5,
				{2, 2}: 0.25, {5, 5}: 0.25,
				{1, 1}: 0, {6, 6}: 0,
			}
			for xy, w := range want {
				got := cov[xy[1]*8+xy[0]]
				if math.Abs(float64(got-w)) > 1e-5 {
					t.Errorf("pixel %v: got %g, want %g", xy, got, w)
				}
			}
		})
	}
}

func TestRasterizerApproachesAgree(t *testing.T) {
	var results [][]float32
	for _, a := range approaches {
		r := NewRasterizer(rect.Rect{URx: 50, URy: 50})
		r.smallPathThreshold = a.threshold
		r.AddPath(ring(25, 25, 15, 7))
		r.AddPolygon([]vec.Vec2{{X: 3, Y: 40.2}, {X: 47.5, Y: 44}, {X: 20, Y: 49.7}})
		results = append(results, coverage(r, 50, 50))
	}
	for i := range results[0] {
		if d := math.Abs(float64(results[0][i] - results[1][i])); d > 1e-5 {
			t.Fatalf("pixel (%d,%d): A=%g B=%g", i%50, i/50, results[0][i], results[1][i])
		}
	}
}

func TestRasterizerPolygonOrientation(t *testing.T) {
	// both orientations cover the same pixels
	cw := []vec.Vec2{{X: 1, Y: 1}, {X: 7, Y: 1}, {X: 7, Y: 7}, {X: 1, Y: 7}}
	ccw := []vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 1}}

	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	r.AddPolygon(cw)
	a := coverage(r, 8, 8)
	r.AddPolygon(ccw)
	b := coverage(r, 8, 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d: %g != %g", i, a[i], b[i])
		}
	}
	if got := sum(a); math.Abs(got-36) > 1e-5 {
		t.Errorf("area: got %g", got)
	}
}

func TestRasterizerReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.AddPath(square(1, 1, 5))
	r.Reset(rect.Rect{URx: 10, URy: 10})

	calls := 0
	r.FillNonZero(func(int, int, []float32) { calls++ })
	if calls != 0 {
		t.Errorf("reset rasterizer emitted %d rows", calls)
	}

	// filling discards the outlines
	r.AddPath(square(1, 1, 5))
	r.FillNonZero(func(int, int, []float32) {})
	r.FillNonZero(func(int, int, []float32) { calls++ })
	if calls != 0 {
		t.Errorf("second fill emitted %d rows", calls)
	}
}

func TestRasterizerDegenerate(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.AddPath(bezier.Path{})
	r.AddPath(bezier.Line(vec.Vec2{X: 1, Y: 1}))
	r.AddPath(bezier.Line(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 9, Y: 1}))
	r.AddPolygon([]vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 5}})
	r.AddPath(square(20, 20, 5))
	r.FillNonZero(func(y, xMin int, cov []float32) {
		t.Errorf("unexpected row %d", y)
	})
}

// BenchmarkRasterizer fills a ring with the scanline rasteriser.
func BenchmarkRasterizer(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			s := float64(size)
			p := ring(s/2, s/2, 0.375*s, 0.15*s)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.AddPath(p)
				r.FillNonZero(func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVector fills the same ring with x/image/vector, for comparison.
func BenchmarkVector(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			s := float64(size)
			p := ring(s/2, s/2, 0.375*s, 0.15*s)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for i, c := range p.Curves() {
					if i == 0 {
						r.MoveTo(float32(c.P0.X), float32(c.P0.Y))
					}
					r.CubeTo(float32(c.P1.X), float32(c.P1.Y),
						float32(c.P2.X), float32(c.P2.Y),
						float32(c.P3.X), float32(c.P3.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
