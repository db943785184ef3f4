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
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/bezier"
)

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
)

func loadLabelFont() *opentype.Font {
	labelFontOnce.Do(func() {
		f, err := opentype.Parse(gomonobold.TTF)
		if err != nil {
			panic(err) // the embedded font is known to be valid
		}
		labelFont = f
	})
	return labelFont
}

// Text draws s with its baseline starting at the given point in user
// space.  The size is given in user space units.
func (c *Canvas) Text(s string, at vec.Vec2, size float64, col color.NRGBA, opacity float64) error {
	devSize := size * c.lineScale()
	if opacity <= 0 || devSize <= 0 || s == "" {
		return nil
	}
	face, err := opentype.NewFace(loadLabelFont(), &opentype.FaceOptions{
		Size:    devSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	clear(c.layer.Pix)
	dot := bezier.Apply(c.CTM, at)
	d := &font.Drawer{
		Dst:  c.layer,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(dot.X * 64)), Y: fixed.Int26_6(math.Round(dot.Y * 64))},
	}
	d.DrawString(s)
	c.compose(opacity)
	return nil
}

// DrawBackground clears the canvas to the paper colour and draws the guide
// lines.  Guides are given in device coordinates and ignore the CTM.
func (c *Canvas) DrawBackground(style calligraphy.Style) {
	c.Clear(style.Paper)

	saveCTM, saveCap := c.CTM, c.Cap
	c.CTM, c.Cap = matrix.Identity, graphics.LineCapButt
	for _, g := range calligraphy.Guides(float64(c.Width()), float64(c.Height())) {
		c.Line(g[0], g[1], 1, style.Guide, 1)
	}
	c.CTM, c.Cap = saveCTM, saveCap
}

// DrawScene draws the letter outlines, the pen and the angle label of a
// scene, using the current CTM.
func (c *Canvas) DrawScene(scene *calligraphy.Scene, style calligraphy.Style) error {
	ps := style.Path
	for _, shape := range scene.Complete {
		c.FillAndStroke([]bezier.Path{shape}, ps.Fill, ps.Stroke, ps.StrokeWidth, ps.Opacity)
	}

	active := scene.Active
	if active == nil {
		return nil
	}
	c.FillAndStroke([]bezier.Path{active.Shape}, ps.Fill, ps.Stroke, ps.StrokeWidth, ps.Opacity)

	saveCap := c.Cap
	c.Cap = graphics.LineCapButt
	c.Line(active.Pen[0], active.Pen[1], style.Pen.StrokeWidth, style.Pen.Stroke, style.Pen.Opacity)
	c.Cap = saveCap

	ls := style.Label
	return c.Text(active.Label(), active.LabelAt, ls.FontSize, ls.Fill, ls.Opacity)
}

// Frame draws a complete animation frame: the background and the given
// phase of the letter, centred horizontally.
func (c *Canvas) Frame(l *calligraphy.Letter, offset float64, style calligraphy.Style) error {
	c.DrawBackground(style)
	c.CTM = l.Centering(float64(c.Width()))
	err := c.DrawScene(l.Phase(offset), style)
	c.CTM = matrix.Identity
	return err
}
