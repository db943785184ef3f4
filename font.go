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
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/calligraphy/outline"
)

// DefaultEmHeight is the size at which glyph outlines are extracted.
const DefaultEmHeight = 1000

// Font is an alphabet of letters with a current selection.
type Font struct {
	// EmHeight is the height of the design space of the letters.
	EmHeight float64

	letters     []*Letter
	current     int
	scaleFactor float64
}

// NewFont creates an empty alphabet.  If emHeight is not positive,
// DefaultEmHeight is used.
func NewFont(emHeight float64) *Font {
	if !(emHeight > 0) || !isFinite(emHeight) {
		emHeight = DefaultEmHeight
	}
	return &Font{
		EmHeight:    emHeight,
		scaleFactor: 1,
	}
}

// Add appends a letter to the alphabet.  The letter is registered under the
// given symbol and scaled to the current scale factor of the font.
func (f *Font) Add(symbol string, l *Letter) {
	l.Symbol = symbol
	if f.scaleFactor != 1 {
		l.Rescale(f.scaleFactor)
	}
	f.letters = append(f.letters, l)
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	height float64
}

// WithEmHeight rescales the loaded letters so that the em height fills h.
// Glyphs are still extracted in a design space of DefaultEmHeight units.
func WithEmHeight(h float64) LoadOption {
	return func(c *loadConfig) {
		if h > 0 && isFinite(h) {
			c.height = h
		}
	}
}

// Load builds an alphabet from the glyphs of src, one letter per symbol.
//
// Symbols without glyph get an empty letter.  If the outline source fails,
// or if none of the symbols has any contour, an error wrapping
// ErrNoOutline is returned.
func Load(src outline.Source, symbols []string, opts ...LoadOption) (*Font, error) {
	var conf loadConfig
	for _, opt := range opts {
		opt(&conf)
	}
	f := NewFont(DefaultEmHeight)

	total := 0
	for _, sym := range symbols {
		contours, err := src.Contours(sym)
		if errors.Is(err, outline.ErrMissingGlyph) {
			tracer().Infof("no glyph for %q, using an empty letter", sym)
			contours = nil
		} else if err != nil {
			return nil, fmt.Errorf("symbol %q: %w: %w", sym, ErrNoOutline, err)
		}
		if len(contours) == 0 {
			tracer().Infof("letter %q has no strokes", sym)
		}
		total += len(contours)
		f.Add(sym, NewLetter(sym, contours))
	}
	if total == 0 {
		return nil, fmt.Errorf("%d symbols: %w", len(symbols), ErrNoOutline)
	}
	tracer().Debugf("loaded %d letters with %d strokes", len(f.letters), total)
	if conf.height > 0 {
		f.Rescale(conf.height)
	}
	return f, nil
}

// Len returns the number of letters.
func (f *Font) Len() int {
	return len(f.letters)
}

// Symbols returns the symbols of all letters, in alphabet order.
func (f *Font) Symbols() []string {
	res := make([]string, len(f.letters))
	for i, l := range f.letters {
		res[i] = l.Symbol
	}
	return res
}

// Letter returns the letter at index i.
func (f *Font) Letter(i int) *Letter {
	return f.letters[i]
}

// Next selects the next letter, wrapping around at the end.
func (f *Font) Next() {
	if len(f.letters) == 0 {
		return
	}
	f.current = (f.current + 1) % len(f.letters)
}

// Previous selects the previous letter, wrapping around at the start.
func (f *Font) Previous() {
	if len(f.letters) == 0 {
		return
	}
	f.current = (f.current + len(f.letters) - 1) % len(f.letters)
}

// SetCurrent selects the letter for the given symbol.  Symbols are compared
// in Unicode normalisation form C.  If no letter matches, the selection is
// left unchanged and false is returned.
func (f *Font) SetCurrent(symbol string) bool {
	want := norm.NFC.String(symbol)
	for i, l := range f.letters {
		if norm.NFC.String(l.Symbol) == want {
			f.current = i
			return true
		}
	}
	return false
}

// Current returns the selected letter, or nil if the alphabet is empty.
func (f *Font) Current() *Letter {
	if len(f.letters) == 0 {
		return nil
	}
	return f.letters[f.current]
}

// CurrentSymbol returns the symbol of the selected letter.
func (f *Font) CurrentSymbol() string {
	if l := f.Current(); l != nil {
		return l.Symbol
	}
	return ""
}

// CurrentPhase returns the scene of the selected letter at offset.
func (f *Font) CurrentPhase(offset float64) *Scene {
	l := f.Current()
	if l == nil {
		return &Scene{}
	}
	return l.Phase(offset)
}

// ScaleFactor returns the current scale factor.
func (f *Font) ScaleFactor() float64 {
	return f.scaleFactor
}

// Rescale scales all letters so that the em height fills the given
// height, and recomputes all lengths.
func (f *Font) Rescale(height float64) {
	scale := height / f.EmHeight
	if !(scale > 0) || !isFinite(scale) {
		tracer().Errorf("invalid rescale height %g", height)
		return
	}
	if scale == f.scaleFactor {
		return
	}
	for _, l := range f.letters {
		l.Rescale(scale)
	}
	f.scaleFactor = scale
	tracer().Debugf("rescaled %d letters by %g", len(f.letters), scale)
}

// ReversePaths toggles the writing direction of every letter.
func (f *Font) ReversePaths() {
	for _, l := range f.letters {
		l.ReversePaths()
	}
}
