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

// Package raster renders calligraphy scenes into RGBA images.
//
// Outlines are converted to coverage by a scanline [Rasterizer].  Every
// shape is painted into a separate layer first, so that fill and stroke of
// one shape are blended with the background using a single opacity.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/calligraphy/bezier"
)

// tracer traces with key 'calligraphy.raster'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.raster")
}

// Canvas is an RGBA drawing surface.  Internal buffers are reused between
// frames.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels.
	Flatness float64

	// Cap is the line cap style for open paths: LineCapButt, LineCapRound
	// or LineCapSquare.  Joins are always round.
	Cap graphics.LineCapStyle

	img   *image.RGBA
	layer *image.RGBA
	mask  *image.Alpha
	r     *Rasterizer

	// stroke outline vertices of the current polygon
	stroke []vec.Vec2
}

// NewCanvas allocates a canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		Cap:      graphics.LineCapRound,
	}
	c.Reset(width, height)
	return c
}

// Reset resizes the canvas and clears it to transparent.  The CTM is
// reset to the identity.
func (c *Canvas) Reset(width, height int) {
	width, height = max(width, 1), max(height, 1)
	c.CTM = matrix.Identity

	if c.img != nil && c.Width() == width && c.Height() == height {
		clear(c.img.Pix)
		return
	}
	bounds := image.Rect(0, 0, width, height)
	c.img = image.NewRGBA(bounds)
	c.layer = image.NewRGBA(bounds)
	c.mask = image.NewAlpha(bounds)
	if c.r == nil {
		c.r = NewRasterizer(rect.Rect{})
	}
	tracer().Debugf("canvas size %dx%d", width, height)
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the canvas contents.  The image is overwritten by
// subsequent drawing operations.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas contents as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Fill fills the given closed paths.
func (c *Canvas) Fill(paths []bezier.Path, col color.NRGBA, opacity float64) {
	c.FillAndStroke(paths, col, color.NRGBA{}, 0, opacity)
}

// Stroke strokes the outlines of the given paths with the given line width
// in user space units.
func (c *Canvas) Stroke(paths []bezier.Path, width float64, col color.NRGBA, opacity float64) {
	c.FillAndStroke(paths, color.NRGBA{}, col, width, opacity)
}

// Line draws a straight line from a to b.
func (c *Canvas) Line(a, b vec.Vec2, width float64, col color.NRGBA, opacity float64) {
	c.Stroke([]bezier.Path{bezier.Line(a, b)}, width, col, opacity)
}

// FillAndStroke fills the paths with fill, strokes them with stroke and
// blends the result onto the canvas with the given opacity.  Areas covered
// by both the fill and the stroke are not darkened twice.
func (c *Canvas) FillAndStroke(paths []bezier.Path, fill, stroke color.NRGBA, width, opacity float64) {
	if opacity <= 0 {
		return
	}
	clear(c.layer.Pix)

	if fill.A > 0 {
		c.beginMask()
		for _, p := range paths {
			c.addFill(p)
		}
		c.paintMask(fill)
	}
	if stroke.A > 0 && width > 0 {
		c.beginMask()
		for _, p := range paths {
			c.addStroke(p, width)
		}
		c.paintMask(stroke)
	}

	c.compose(opacity)
}

// beginMask prepares the rasteriser and the coverage mask for a new
// shape.
func (c *Canvas) beginMask() {
	c.r.Reset(rect.Rect{URx: float64(c.Width()), URy: float64(c.Height())})
	c.r.CTM = c.CTM
	c.r.Flatness = c.Flatness
	clear(c.mask.Pix)
}

// paintMask rasterises the accumulated shape and paints col through it
// into the layer.
func (c *Canvas) paintMask(col color.NRGBA) {
	c.r.FillNonZero(c.emitMask)
	draw.DrawMask(c.layer, c.layer.Rect, image.NewUniform(col), image.Point{},
		c.mask, image.Point{}, draw.Over)
}

// compose blends the layer onto the canvas.
func (c *Canvas) compose(opacity float64) {
	a := uint8(math.Round(255 * min(opacity, 1)))
	draw.DrawMask(c.img, c.img.Rect, c.layer, image.Point{},
		image.NewUniform(color.Alpha{A: a}), image.Point{}, draw.Over)
}

// emitMask stores one row of coverage values in the mask.
func (c *Canvas) emitMask(y, xMin int, coverage []float32) {
	row := c.mask.Pix[y*c.mask.Stride+xMin:]
	for i, cov := range coverage {
		row[i] = uint8(cov*255 + 0.5)
	}
}

// addFill adds a closed path, in user space, to the rasteriser.
func (c *Canvas) addFill(p bezier.Path) {
	c.r.AddPath(p)
}

// addPolygon adds a closed polygon in device coordinates.
func (c *Canvas) addPolygon(pts []vec.Vec2) {
	c.r.AddPolygon(pts)
}

// lineScale returns the factor by which the CTM scales lengths.
func (c *Canvas) lineScale() float64 {
	return math.Sqrt(math.Abs(c.CTM[0]*c.CTM[3] - c.CTM[1]*c.CTM[2]))
}
