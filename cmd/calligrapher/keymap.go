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

package main

// hebrewLetters is the default list of letters loaded from a font, in
// alphabetical order with final forms after their regular forms.
var hebrewLetters = []string{
	"א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט", "י", "כ", "ך", "ל", "מ",
	"ם", "נ", "ן", "ס", "ע", "פ", "ף", "צ", "ץ", "ק", "ר", "ש", "ת",
}

// keyMap maps key codes of a Latin keyboard to the letters at the same
// position of the Hebrew standard keyboard layout.
var keyMap = map[string]string{
	"KeyA":      "ש",
	"KeyB":      "נ",
	"KeyC":      "ב",
	"KeyD":      "ג",
	"KeyE":      "ק",
	"KeyF":      "כ",
	"KeyG":      "ע",
	"KeyH":      "י",
	"KeyI":      "ן",
	"KeyJ":      "ח",
	"KeyK":      "ל",
	"KeyL":      "ך",
	"KeyM":      "צ",
	"KeyN":      "מ",
	"KeyO":      "ם",
	"KeyP":      "פ",
	"KeyR":      "ר",
	"KeyS":      "ד",
	"KeyT":      "א",
	"KeyU":      "ו",
	"KeyV":      "ה",
	"KeyX":      "ס",
	"KeyY":      "ט",
	"KeyZ":      "ז",
	"Period":    "ץ",
	"Comma":     "ת",
	"Semicolon": "ף",
}

// Letters are written right to left, so the arrow keys are swapped.
const (
	keyNext     = "ArrowLeft"
	keyPrevious = "ArrowRight"
)
