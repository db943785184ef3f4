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
	"seehuhn.de/go/calligraphy/bezier"
)

// Scene is the drawable result of a phase computation.
type Scene struct {
	// Complete holds the outlines of all fully drawn strokes, in drawing
	// order.
	Complete []bezier.Path

	// Active is the stroke currently being drawn, or nil.
	Active *Partial

	// Revealed is the arc length drawn so far.
	Revealed float64
}

// Empty reports whether nothing has been drawn.
func (s *Scene) Empty() bool {
	return len(s.Complete) == 0 && s.Active == nil
}

// Shapes returns all outlines of the scene in drawing order.
func (s *Scene) Shapes() []bezier.Path {
	res := make([]bezier.Path, 0, len(s.Complete)+1)
	res = append(res, s.Complete...)
	if s.Active != nil {
		res = append(res, s.Active.Shape)
	}
	return res
}
