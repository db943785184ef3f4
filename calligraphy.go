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

// Package calligraphy animates the drawing of calligraphic letterforms.
//
// A glyph is given as a list of closed contours, one per brush stroke.  Each
// contour consists of two roughly parallel edges: the first half of its
// segments runs along one side of the stroke, the second half comes back
// along the other side.  For a requested drawing progress the package
// computes the part of the glyph which has already been "written", as a set
// of closed outlines together with a pen indicator at the current writing
// position.
//
// The main types are [Stroke], [Letter] and [Font].  Phase computations
// return a fresh [Scene] on every call and never modify the stored geometry.
// Rendering a Scene is left to the raster, svgout and pdfout packages.
package calligraphy

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calligraphy'
func tracer() tracing.Trace {
	return tracing.Select("calligraphy")
}

var (
	// ErrNoOutline is returned when no stroke geometry is available for a
	// glyph set.
	ErrNoOutline = errors.New("no outline available")

	// ErrUnknownStyle is returned by StyleByName for unknown theme names.
	ErrUnknownStyle = errors.New("unknown style")
)

// Direction is the writing direction used for phase computations.
type Direction int

// Valid writing directions.
const (
	// Forward draws strokes along their incoming edge.
	Forward Direction = iota
	// Backward draws strokes along their outgoing edge.
	Backward
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "Direction(?)"
	}
}
