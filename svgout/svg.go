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

// Package svgout writes calligraphy scenes as SVG documents.
//
// The SVG output mirrors the raster renderer: background guides, the
// letter outlines with a common opacity, the pen and its angle label.
// Screenshot turns an SVG document into a PNG image using a headless
// Chrome browser.
package svgout

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/bezier"
)

// tracer traces with key 'calligraphy.svg'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.svg")
}

// Render returns an SVG document of the given size showing the scene.  The
// matrix ctm maps the scene geometry to the SVG viewport; the guides are
// drawn in viewport coordinates.
func Render(scene *calligraphy.Scene, style calligraphy.Style, width, height int, ctm matrix.Matrix) string {
	svg := &bytes.Buffer{}
	fmt.Fprintf(svg, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`,
		width, height, width, height)
	svg.WriteString("\n")
	fmt.Fprintf(svg, `  <rect x="0" y="0" width="%d" height="%d" fill="%s" />`,
		width, height, calligraphy.Hex(style.Paper))
	svg.WriteString("\n")

	writeGuides(svg, style, float64(width), float64(height))

	fmt.Fprintf(svg, `  <g transform="matrix(%s %s %s %s %s %s)">`,
		num(ctm[0]), num(ctm[1]), num(ctm[2]), num(ctm[3]), num(ctm[4]), num(ctm[5]))
	svg.WriteString("\n")
	for _, shape := range scene.Shapes() {
		writeShape(svg, shape, style.Path)
	}
	if a := scene.Active; a != nil {
		ps := style.Pen
		fmt.Fprintf(svg, `    <line class="pen" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-opacity="%s" />`,
			num(a.Pen[0].X), num(a.Pen[0].Y), num(a.Pen[1].X), num(a.Pen[1].Y),
			calligraphy.Hex(ps.Stroke), num(ps.StrokeWidth), num(ps.Opacity))
		svg.WriteString("\n")

		ls := style.Label
		fmt.Fprintf(svg, `    <text x="%s" y="%s" font-family="%s" font-weight="bold" font-size="%s" fill="%s" fill-opacity="%s">%s</text>`,
			num(a.LabelAt.X), num(a.LabelAt.Y), escapeXML(ls.FontFamily), num(ls.FontSize),
			calligraphy.Hex(ls.Fill), num(ls.Opacity), escapeXML(a.Label()))
		svg.WriteString("\n")
	}
	svg.WriteString("  </g>\n</svg>\n")
	return svg.String()
}

// RenderFrame returns an SVG document showing the given phase of the
// letter, centred horizontally.
func RenderFrame(l *calligraphy.Letter, offset float64, style calligraphy.Style, width, height int) string {
	return Render(l.Phase(offset), style, width, height, l.Centering(float64(width)))
}

func writeGuides(svg *bytes.Buffer, style calligraphy.Style, width, height float64) {
	fmt.Fprintf(svg, `  <g class="guides" stroke="%s" stroke-width="1">`, calligraphy.Hex(style.Guide))
	svg.WriteString("\n")
	for _, g := range calligraphy.Guides(width, height) {
		fmt.Fprintf(svg, `    <line x1="%s" y1="%s" x2="%s" y2="%s" />`,
			num(g[0].X), num(g[0].Y), num(g[1].X), num(g[1].Y))
		svg.WriteString("\n")
	}
	svg.WriteString("  </g>\n")
}

// writeShape writes one outline.  Fill and stroke are grouped, so that the
// opacity applies to both together.
func writeShape(svg *bytes.Buffer, p bezier.Path, ss calligraphy.ShapeStyle) {
	fmt.Fprintf(svg, `    <path d="%s" fill="%s" stroke="%s" stroke-width="%s" stroke-linejoin="round" opacity="%s" />`,
		pathData(p), calligraphy.Hex(ss.Fill), calligraphy.Hex(ss.Stroke), num(ss.StrokeWidth), num(ss.Opacity))
	svg.WriteString("\n")
}

// pathData converts a path to the SVG path syntax.
func pathData(p bezier.Path) string {
	var buf strings.Builder
	for cmd, pts := range p.Data().Iter().ToCubic() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			fmt.Fprintf(&buf, "M%s %s", num(pts[0].X), num(pts[0].Y))
		case path.CmdLineTo:
			fmt.Fprintf(&buf, "L%s %s", num(pts[0].X), num(pts[0].Y))
		case path.CmdCubeTo:
			fmt.Fprintf(&buf, "C%s %s %s %s %s %s",
				num(pts[0].X), num(pts[0].Y), num(pts[1].X), num(pts[1].Y), num(pts[2].X), num(pts[2].Y))
		case path.CmdClose:
			buf.WriteByte('Z')
		}
	}
	return buf.String()
}

// num formats a coordinate with at most three decimals.
func num(x float64) string {
	s := fmt.Sprintf("%.3f", x)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func escapeXML(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// ErrEmptyScreenshot is returned if the browser produced no image.
var ErrEmptyScreenshot = errors.New("empty screenshot")

// Screenshot renders an SVG document in headless Chrome and returns the
// result as PNG data.
func Screenshot(ctx context.Context, svg string) ([]byte, error) {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	tracer().Debugf("taking screenshot of %d bytes of SVG", len(svg))
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, ErrEmptyScreenshot
	}
	return buf, nil
}
