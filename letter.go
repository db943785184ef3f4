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

package calligraphy

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/calligraphy/bezier"
)

// Letter is a glyph made from an ordered list of strokes.
type Letter struct {
	Symbol string

	strokes []*Stroke
	length  float64
	reverse bool
}

// NewLetter creates a letter with one stroke per contour.  Strokes are
// drawn in the order of the contours.
func NewLetter(symbol string, contours []bezier.Path) *Letter {
	l := &Letter{Symbol: symbol}
	for _, c := range contours {
		s := NewStroke(c)
		l.strokes = append(l.strokes, s)
		l.length += s.length
	}
	return l
}

// Strokes returns the strokes of the letter.
func (l *Letter) Strokes() []*Stroke {
	return l.strokes
}

// Length returns the total length of all strokes.
func (l *Letter) Length() float64 {
	return l.length
}

// ReversePaths toggles the writing direction.
func (l *Letter) ReversePaths() {
	l.reverse = !l.reverse
}

// Reversed reports whether the letter is drawn backwards.
func (l *Letter) Reversed() bool {
	return l.reverse
}

// Direction returns the writing direction of the letter.
func (l *Letter) Direction() Direction {
	if l.reverse {
		return Backward
	}
	return Forward
}

// CalculateLength recomputes the length of every stroke and the total
// length of the letter.  This must be called after the stroke geometry has
// changed.
func (l *Letter) CalculateLength() {
	l.length = 0
	for _, s := range l.strokes {
		s.CalculatePaths()
		l.length += s.length
	}
}

// Rescale scales all strokes by factor relative to their original size.
func (l *Letter) Rescale(factor float64) {
	for _, s := range l.strokes {
		s.Rescale(factor)
	}
	l.CalculateLength()
}

// Bounds returns the bounding box of all strokes.  Empty strokes are
// ignored.
func (l *Letter) Bounds() rect.Rect {
	var b rect.Rect
	seeded := false
	for _, s := range l.strokes {
		if s.contour.IsEmpty() {
			continue
		}
		sb := s.contour.Bounds()
		if !seeded {
			b = sb
			seeded = true
		} else {
			b = bezier.Union(b, sb)
		}
	}
	return b
}

// Phase returns the scene for the given offset, using the letter's own
// writing direction.
func (l *Letter) Phase(offset float64) *Scene {
	return l.PhaseDir(offset, l.Direction())
}

// PhaseDir returns the drawing state after the fraction offset of the
// letter has been written in direction dir.  The offset is clamped to
// [0, 1].
//
// Strokes before the current writing position are returned as complete
// outlines, the current stroke is returned together with the pen
// indicator, and later strokes are omitted.
func (l *Letter) PhaseDir(offset float64, dir Direction) *Scene {
	offset = clamp(offset, 1)

	scene := &Scene{}
	switch {
	case offset == 0 || len(l.strokes) == 0:
		return scene
	case offset == 1:
		for _, s := range l.strokes {
			scene.Complete = append(scene.Complete, s.contour.Clone())
		}
		scene.Revealed = l.length
		return scene
	}

	pl := offset * l.length
	scene.Revealed = pl

	var ol float64
	for _, s := range l.strokes {
		if pl < ol+s.length {
			scene.Active = s.PhaseWithPen(pl-ol, dir)
			break
		}
		scene.Complete = append(scene.Complete, s.contour.Clone())
		ol += s.length
	}
	tracer().Debugf("%s: offset %.3f, %d complete, active=%t",
		l.Symbol, offset, len(scene.Complete), scene.Active != nil)
	return scene
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
