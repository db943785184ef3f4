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

// Package pdfout writes calligraphy scenes as single-page PDF files.
//
// PDF has no group opacity in the basic graphics model, so colours are
// blended with the paper colour in advance and written as DeviceRGB
// values.  Overlapping outlines therefore do not darken each other.
package pdfout

import (
	"image/color"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/bezier"
	"seehuhn.de/go/calligraphy/outline"
)

// tracer traces with key 'calligraphy.pdf'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.pdf")
}

// WriteFile writes the scene to a PDF file.  The page size is width×height
// PDF points.  Scene coordinates have the y-axis pointing down, and ctm
// maps them to the page; guides are drawn in page coordinates.
func WriteFile(fname string, scene *calligraphy.Scene, style calligraphy.Style, width, height int, ctm matrix.Matrix) error {
	w, h := float64(width), float64(height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(rgb(style.Paper))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineCap(graphics.LineCapButt)
	page.SetLineWidth(1)
	page.SetStrokeColor(rgb(style.Guide))
	for _, g := range calligraphy.Guides(w, h) {
		page.MoveTo(g[0].X, g[0].Y)
		page.LineTo(g[1].X, g[1].Y)
	}
	page.Stroke()

	page.Transform(ctm)

	ps := style.Path
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapRound)
	page.SetFillColor(blend(ps.Fill, style.Paper, ps.Opacity))
	page.SetStrokeColor(blend(ps.Stroke, style.Paper, ps.Opacity))
	page.SetLineWidth(ps.StrokeWidth)
	shapes := scene.Shapes()
	if len(shapes) > 0 {
		// the outline is drawn twice, since a path is consumed by painting
		addPaths(page, shapes)
		page.Fill()
		addPaths(page, shapes)
		page.Stroke()
	}

	if a := scene.Active; a != nil {
		pen := style.Pen
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineWidth(pen.StrokeWidth)
		page.SetStrokeColor(blend(pen.Stroke, style.Paper, pen.Opacity))
		page.MoveTo(a.Pen[0].X, a.Pen[0].Y)
		page.LineTo(a.Pen[1].X, a.Pen[1].Y)
		page.Stroke()

		ls := style.Label
		label := outline.LabelFace().TextPaths(a.Label(), a.LabelAt, ls.FontSize)
		if len(label) > 0 {
			page.SetFillColor(blend(ls.Fill, style.Paper, ls.Opacity))
			addPaths(page, label)
			page.Fill()
		}
	}

	tracer().Debugf("writing %s: %d shapes", fname, len(shapes))
	return page.Close()
}

// WriteFrame writes the given phase of the letter, centred horizontally,
// to a PDF file.
func WriteFrame(fname string, l *calligraphy.Letter, offset float64, style calligraphy.Style, width, height int) error {
	return WriteFile(fname, l.Phase(offset), style, width, height, l.Centering(float64(width)))
}

type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func addPaths(page pathWriter, paths []bezier.Path) {
	for _, p := range paths {
		for cmd, pts := range p.Data().Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
}

// rgb converts c to the DeviceRGB colour space, ignoring alpha.
func rgb(c color.NRGBA) pdfcolor.DeviceRGB {
	return pdfcolor.DeviceRGB{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}

// blend returns the colour of c painted with the given opacity on top of
// the paper colour.
func blend(c, paper color.NRGBA, opacity float64) pdfcolor.DeviceRGB {
	opacity = max(0, min(opacity, 1))
	fg, bg := rgb(c), rgb(paper)
	var res pdfcolor.DeviceRGB
	for i := range res {
		res[i] = fg[i]*opacity + bg[i]*(1-opacity)
	}
	return res
}
