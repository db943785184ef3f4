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

// Package outline extracts glyph contours from OpenType and TrueType fonts.
//
// Glyphs are extracted in a y-down coordinate system, at a fixed design
// size with the baseline at a fixed height, so that all letters of an
// alphabet share one coordinate space.
package outline

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/bezier"
)

// tracer traces with key 'calligraphy.outline'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy.outline")
}

// ErrMissingGlyph is returned when a font has no glyph for a character.
var ErrMissingGlyph = errors.New("missing glyph")

// Source supplies the stroke contours of a symbol.  Each returned path is
// one closed contour; the order of the paths is the drawing order.
type Source interface {
	Contours(symbol string) ([]bezier.Path, error)
}

// Options control the extraction of glyph outlines.  Zero fields are
// replaced by the corresponding field of DefaultOptions.
type Options struct {
	// Size is the font size in output units.  The default is 1000.
	Size float64

	// Baseline is the y coordinate of the baseline.  The default is 750.
	Baseline float64
}

// DefaultOptions are used when nil Options are passed.
var DefaultOptions = Options{
	Size:     1000,
	Baseline: 750,
}

// Face is a parsed font together with extraction options.
// A Face must not be used concurrently.
type Face struct {
	font *sfnt.Font
	opts Options
	buf  sfnt.Buffer
}

// Parse parses an OpenType or TrueType font.
func Parse(data []byte, opts *Options) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions
	if opts != nil {
		if opts.Size > 0 {
			o.Size = opts.Size
		}
		if opts.Baseline != 0 {
			o.Baseline = opts.Baseline
		}
	}
	return &Face{font: f, opts: o}, nil
}

// Load reads and parses a font file.
func Load(fname string, opts *Options) (*Face, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	face, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	tracer().Infof("loaded font %q from %s", face.Family(), fname)
	return face, nil
}

// LabelFace returns a face for angle labels, using the Go Mono Bold font.
func LabelFace() *Face {
	face, err := Parse(gomonobold.TTF, nil)
	if err != nil {
		panic(err) // the embedded font is known to be valid
	}
	return face
}

// Family returns the full name of the font.
func (f *Face) Family() string {
	name, err := f.font.Name(&f.buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// Options returns the extraction options of the face.
func (f *Face) Options() Options {
	return f.opts
}

// Contours returns the contours of all glyphs of symbol, laid out from
// x = 0 along the baseline.
func (f *Face) Contours(symbol string) ([]bezier.Path, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", ErrMissingGlyph)
	}
	return f.layout(symbol, vec.Vec2{Y: f.opts.Baseline}, f.opts.Size, true)
}

// TextPaths returns the outlines of text at the given size.  The origin is
// the start of the baseline.  Characters without glyph are rendered using
// the font's replacement glyph.
func (f *Face) TextPaths(text string, origin vec.Vec2, size float64) []bezier.Path {
	res, _ := f.layout(text, origin, size, false)
	return res
}

func (f *Face) layout(text string, origin vec.Vec2, size float64, strict bool) ([]bezier.Path, error) {
	ppem := fixed.Int26_6(size * 64)
	var res []bezier.Path
	x := origin.X
	for _, r := range text {
		gid, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			return nil, err
		}
		if gid == 0 && strict {
			return nil, fmt.Errorf("%q (U+%04X): %w", r, r, ErrMissingGlyph)
		}

		segs, err := f.font.LoadGlyph(&f.buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", gid, err)
		}
		// segs is only valid until the next use of f.buf
		d := convert(segs, vec.Vec2{X: x, Y: origin.Y})
		res = append(res, bezier.FromData(d)...)

		adv, err := f.font.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", gid, err)
		}
		x += fromFixed(adv)
	}
	return res, nil
}

// convert translates sfnt segments into a path.  Every contour is closed.
func convert(segs sfnt.Segments, at vec.Vec2) *path.Data {
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: at.X + fromFixed(p.X), Y: at.Y + fromFixed(p.Y)}
	}

	d := &path.Data{}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				d = d.Close()
			}
			d = d.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			d = d.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			d = d.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			d = d.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		d = d.Close()
	}
	return d
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
