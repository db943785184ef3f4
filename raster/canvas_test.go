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
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/bezier"
	"seehuhn.de/go/calligraphy/testcases"
)

var (
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	black = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

func square(x, y, side float64) bezier.Path {
	p := bezier.Line(
		vec.Vec2{X: x, Y: y},
		vec.Vec2{X: x + side, Y: y},
		vec.Vec2{X: x + side, Y: y + side},
		vec.Vec2{X: x, Y: y + side},
	)
	return p.Close()
}

// red returns the red channel of the pixel at (x, y).
func red(c *Canvas, x, y int) uint8 {
	return c.Image().RGBAAt(x, y).R
}

func TestFill(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill([]bezier.Path{square(5, 5, 10)}, black, 1)

	if got := c.Image().RGBAAt(10, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("inside: got %v", got)
	}
	if got := c.Image().RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside: got %v", got)
	}
}

func TestFillHole(t *testing.T) {
	outer := square(0, 0, 20)
	inner := square(5, 5, 10).Reverse()

	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill([]bezier.Path{outer, inner}, black, 1)

	if got := red(c, 2, 2); got != 0 {
		t.Errorf("ring: got %d", got)
	}
	if got := red(c, 10, 10); got != 255 {
		t.Errorf("hole: got %d", got)
	}
}

func TestOpacity(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Fill([]bezier.Path{square(5, 5, 10)}, black, 0.5)

	if got := red(c, 10, 10); got < 126 || got > 129 {
		t.Errorf("got %d, want approximately 127", got)
	}
}

func TestFillAndStrokeComposited(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(white)
	c.FillAndStroke([]bezier.Path{square(5, 5, 10)}, black, black, 2, 0.5)

	edge := red(c, 5, 10)
	inside := red(c, 10, 10)
	if edge != inside {
		t.Errorf("edge %d != inside %d", edge, inside)
	}
	if got := red(c, 4, 10); got >= 255 {
		t.Errorf("stroke outside the fill not painted")
	}
	if got := red(c, 1, 10); got != 255 {
		t.Errorf("far outside: got %d", got)
	}
}

func TestLineCaps(t *testing.T) {
	a, b := vec.Vec2{X: 4, Y: 10}, vec.Vec2{X: 16, Y: 10}

	c := NewCanvas(20, 20)
	c.Cap = graphics.LineCapButt
	c.Clear(white)
	c.Line(a, b, 4, black, 1)
	if got := red(c, 10, 9); got != 0 {
		t.Errorf("line: got %d", got)
	}
	if got := red(c, 10, 14); got != 255 {
		t.Errorf("beside line: got %d", got)
	}
	if got := red(c, 2, 9); got != 255 {
		t.Errorf("butt cap: got %d", got)
	}

	c.Cap = graphics.LineCapRound
	c.Clear(white)
	c.Line(a, b, 4, black, 1)
	if got := red(c, 2, 9); got == 255 {
		t.Errorf("round cap not painted")
	}

	c.Cap = graphics.LineCapSquare
	c.Clear(white)
	c.Line(a, b, 4, black, 1)
	if got := red(c, 2, 9); got != 0 {
		t.Errorf("square cap: got %d", got)
	}
}

func TestDegenerateLine(t *testing.T) {
	p := vec.Vec2{X: 10, Y: 10}

	c := NewCanvas(20, 20)
	c.Clear(white)
	c.Cap = graphics.LineCapButt
	c.Line(p, p, 6, black, 1)
	if got := red(c, 10, 10); got != 255 {
		t.Errorf("butt: got %d", got)
	}

	c.Cap = graphics.LineCapRound
	c.Line(p, p, 6, black, 1)
	if got := red(c, 10, 10); got != 0 {
		t.Errorf("round: got %d", got)
	}
}

func TestCTM(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(white)
	c.CTM = [6]float64{2, 0, 0, 2, 10, 0}
	c.Fill([]bezier.Path{square(0, 0, 5)}, black, 1)

	if got := red(c, 15, 5); got != 0 {
		t.Errorf("inside: got %d", got)
	}
	if got := red(c, 5, 5); got != 255 {
		t.Errorf("left of shape: got %d", got)
	}
	if got := red(c, 25, 5); got != 255 {
		t.Errorf("right of shape: got %d", got)
	}
}

func TestBackground(t *testing.T) {
	c := NewCanvas(100, 100)
	c.DrawBackground(calligraphy.Light)

	paper := color.RGBA{255, 255, 255, 255}
	if got := c.Image().RGBAAt(50, 74); got == paper {
		t.Error("baseline not drawn")
	}
	if got := c.Image().RGBAAt(0, 99); got != paper {
		t.Errorf("below baseline: got %v", got)
	}
}

func TestFrame(t *testing.T) {
	contour := bezier.FromData(testcases.Bar(vec.Vec2{X: 20, Y: 50}, vec.Vec2{X: 180, Y: 50}, 20, 2))
	l := calligraphy.NewLetter("-", contour)
	c := NewCanvas(200, 100)

	if err := c.Frame(l, 0, calligraphy.Light); err != nil {
		t.Fatal(err)
	}
	if got := red(c, 100, 50); got < 0xaa {
		t.Errorf("empty frame: got %d", got)
	}

	if err := c.Frame(l, 1, calligraphy.Light); err != nil {
		t.Fatal(err)
	}
	if got := red(c, 100, 50); got >= 100 {
		t.Errorf("complete frame: got %d", got)
	}

	if err := c.Frame(l, 0.5, calligraphy.Light); err != nil {
		t.Fatal(err)
	}
	left := red(c, 40, 50) < 100
	right := red(c, 160, 50) < 100
	if left == right {
		t.Errorf("half frame: left drawn %t, right drawn %t", left, right)
	}
}

func TestDrawSceneDark(t *testing.T) {
	contour := bezier.FromData(testcases.Bar(vec.Vec2{X: 20, Y: 50}, vec.Vec2{X: 180, Y: 50}, 20, 2))
	l := calligraphy.NewLetter("-", contour)
	c := NewCanvas(200, 100)
	if err := c.Frame(l, 0.5, calligraphy.Dark); err != nil {
		t.Fatal(err)
	}

	var salmon int
	img := c.Image()
	for y := range 100 {
		for x := range 200 {
			px := img.RGBAAt(x, y)
			if px.R > 0xe0 && px.G < 0x80 {
				salmon++
			}
		}
	}
	if salmon == 0 {
		t.Error("pen not drawn")
	}
}

func TestPNG(t *testing.T) {
	c := NewCanvas(30, 20)
	c.DrawBackground(calligraphy.Dark)

	buf := &bytes.Buffer{}
	if err := c.EncodePNG(buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("got size %dx%d", b.Dx(), b.Dy())
	}
}

func TestReset(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	img := c.Image()

	c.Reset(10, 10)
	if c.Image() != img {
		t.Error("buffer not reused")
	}
	if got := c.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("not cleared: got %v", got)
	}

	c.Reset(12, 8)
	if c.Width() != 12 || c.Height() != 8 {
		t.Errorf("got size %dx%d", c.Width(), c.Height())
	}
}

func BenchmarkFrame(b *testing.B) {
	font, err := calligraphy.Load(testcases.Latin, testcases.Latin.Symbols(), calligraphy.WithEmHeight(200))
	if err != nil {
		b.Fatal(err)
	}
	c := NewCanvas(200, 200)
	l := font.Current()

	var i int
	for b.Loop() {
		if err := c.Frame(l, float64(i%100)/100, calligraphy.Light); err != nil {
			b.Fatal(err)
		}
		i++
	}
}
