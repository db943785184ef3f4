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
	"image/color"
	"strings"
)

// Style describes the appearance of a rendered scene.  A Style value is
// passed to every render call.
type Style struct {
	Name  string
	Paper color.NRGBA

	Path  ShapeStyle
	Pen   PenStyle
	Label LabelStyle

	// Guide is the colour of the background guide lines.
	Guide color.NRGBA
}

// ShapeStyle describes how stroke outlines are painted.  Fill and stroke
// are composited together and then blended with Opacity.
type ShapeStyle struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	Opacity     float64
}

// PenStyle describes the pen indicator.
type PenStyle struct {
	Stroke      color.NRGBA
	StrokeWidth float64
	Opacity     float64
}

// LabelStyle describes the pen angle label.
type LabelStyle struct {
	Fill       color.NRGBA
	FontFamily string
	FontSize   float64
	Opacity    float64
}

var (
	black  = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red    = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	salmon = color.NRGBA{0xf5, 0x5b, 0x5b, 0xff}
)

// Light is the style for light backgrounds.
var Light = Style{
	Name:  "light",
	Paper: white,
	Path: ShapeStyle{
		Fill:        black,
		Stroke:      black,
		StrokeWidth: 2,
		Opacity:     0.7,
	},
	Pen: PenStyle{
		Stroke:      red,
		StrokeWidth: 5,
		Opacity:     1,
	},
	Label: LabelStyle{
		Fill:       red,
		FontFamily: "Courier New",
		FontSize:   8,
		Opacity:    0.7,
	},
	Guide: color.NRGBA{0xaa, 0xdd, 0xff, 0xff},
}

// Dark is the style for dark backgrounds.
var Dark = Style{
	Name:  "dark",
	Paper: color.NRGBA{0x1c, 0x1f, 0x2b, 0xff},
	Path: ShapeStyle{
		Fill:        white,
		Stroke:      white,
		StrokeWidth: 2,
		Opacity:     0.7,
	},
	Pen: PenStyle{
		Stroke:      salmon,
		StrokeWidth: 5,
		Opacity:     1,
	},
	Label: LabelStyle{
		Fill:       salmon,
		FontFamily: "Courier New",
		FontSize:   8,
		Opacity:    0.7,
	},
	Guide: color.NRGBA{0x42, 0x50, 0x70, 0xff},
}

// StyleByName returns the predefined style with the given name.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Style{}, fmt.Errorf("%q: %w", name, ErrUnknownStyle)
}

// Styles returns the names of the predefined styles.
func Styles() []string {
	return []string{Light.Name, Dark.Name}
}

// Hex formats a colour as an HTML hex string, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
