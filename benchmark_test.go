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
	"fmt"
	"testing"

	"seehuhn.de/go/calligraphy/testcases"
)

// BenchmarkLetterPhase measures a full animation sweep over each letter of
// the demo alphabet.
func BenchmarkLetterPhase(b *testing.B) {
	const frames = 100

	for _, g := range testcases.Latin {
		b.Run(g.Name, func(b *testing.B) {
			l := NewLetter(g.Symbol, g.Contours())

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for i := range frames {
					l.Phase(float64(i) / frames)
				}
			}
		})
	}
}

// BenchmarkRescale measures rescaling of the complete demo alphabet.
func BenchmarkRescale(b *testing.B) {
	heights := []float64{200, 1000, 4000}

	for _, h := range heights {
		b.Run(fmt.Sprintf("h%g", h), func(b *testing.B) {
			f, err := Load(testcases.Latin, testcases.Latin.Symbols())
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				f.Rescale(h)
				f.Rescale(f.EmHeight)
			}
		})
	}
}
