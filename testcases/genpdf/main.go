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

// Command genpdf writes animation frames of the test alphabets as PDF
// files.  If Ghostscript is installed, every PDF is also rendered to PNG,
// which gives reference images for the raster renderer.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/anim"
	"seehuhn.de/go/calligraphy/pdfout"
	"seehuhn.de/go/calligraphy/testcases"
)

const (
	frameDir  = "testdata/frames"
	size      = 400
	numFrames = 5
)

func main() {
	if err := os.MkdirAll(frameDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	offsets := anim.Start(0).Frames(numFrames)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		alphabet := testcases.All[category]
		font, err := calligraphy.Load(alphabet, alphabet.Symbols(), calligraphy.WithEmHeight(size))
		if err != nil {
			panic(err)
		}
		for i, g := range alphabet {
			l := font.Letter(i)
			for j, offset := range offsets {
				name := fmt.Sprintf("%s_%s_%d", category, g.Name, j)
				pdfPath := filepath.Join(frameDir, name+".pdf")
				pngPath := filepath.Join(frameDir, name+".png")

				err := pdfout.WriteFrame(pdfPath, l, offset, calligraphy.Light, size, size)
				if err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
				if !haveGS {
					continue
				}
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-dTextAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
