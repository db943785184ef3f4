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

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/bezier"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasterizer converts outlines to pixel coverage values, the fraction of
// each pixel's area covered by the outline, ranging from 0 (outside) to 1
// (inside).
//
// Outlines are collected with AddPath and AddPolygon and then filled
// together by FillNonZero.  Coverage from overlapping outlines saturates,
// so all outlines of one shape must have the same orientation.  Internal
// buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms the points passed to AddPath from user space to
	// device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers.  Larger outlines use an active edge list.
	smallPathThreshold int

	cover       []float32 // cover change per pixel; reused as output
	area        []float32 // area within pixel
	edges       []edge    // collected edges (device coordinates)
	activeIdx   []int     // indices of active edges
	rowHasEdges []bool    // per-scanline flag: true if any edge contributes
	crossings   []float64 // y values where an edge crosses pixel boundaries

	// bounding box of the collected edges, in device space
	edgeDevXMin, edgeDevXMax float64
	edgeDevYMin, edgeDevYMax float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity CTM and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,

		smallPathThreshold: smallPathThreshold,
	}
}

// Reset discards all collected outlines and sets a new clip rectangle.
// CTM and Flatness are reset to their defaults.  Buffer capacity is
// preserved.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
}

// AddPath adds the outline of p, transformed by the CTM.  Open paths are
// closed implicitly.
func (r *Rasterizer) AddPath(p bezier.Path) {
	if p.Len() < 2 {
		return
	}
	for _, c := range p.Curves() {
		if c.IsLine() {
			r.addUserEdge(c.P0, c.P3)
		} else {
			r.flattenCubic(c, r.addUserEdge)
		}
	}
	if !p.Closed {
		r.addUserEdge(p.Last().Point, p.First().Point)
	}
}

// AddPolygon adds a closed polygon given in device coordinates.
func (r *Rasterizer) AddPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	prev := pts[len(pts)-1]
	for _, pt := range pts {
		r.addEdge(prev.X, prev.Y, pt.X, pt.Y)
		prev = pt
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenCubic flattens a curve given in user space and calls emit for
// each line segment.  The number of pieces is chosen using Wang's formula
// on the device-space control polygon.
func (r *Rasterizer) flattenCubic(c bezier.Cubic, emit func(from, to vec.Vec2)) {
	d1 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2) // P0 - 2*P1 + P2
	d2 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3) // P1 - 2*P2 + P3
	mDev := max(r.transformLinear(d1).Length(), r.transformLinear(d2).Length())

	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		nFloat := math.Sqrt(3 * mDev / (4 * r.Flatness))
		if nFloat > 1 {
			n = min(int(math.Ceil(nFloat)), maxCurvePieces)
		}
	}

	prev := c.P0
	for i := 1; i <= n; i++ {
		pt := c.P3
		if i < n {
			pt = c.Eval(float64(i) / float64(n))
		}
		emit(prev, pt)
		prev = pt
	}
}

// addUserEdge adds an edge from user space coordinates, transforming to
// device space.
func (r *Rasterizer) addUserEdge(p0, p1 vec.Vec2) {
	a := bezier.Apply(r.CTM, p0)
	b := bezier.Apply(r.CTM, p1)
	r.addEdge(a.X, a.Y, b.X, b.Y)
}

// addEdge adds an edge in device coordinates.
func (r *Rasterizer) addEdge(x0, y0, x1, y1 float64) {
	// Skip horizontal edges
	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	if len(r.edges) == 0 {
		r.edgeDevXMin, r.edgeDevXMax = min(x0, x1), max(x0, x1)
		r.edgeDevYMin, r.edgeDevYMax = min(y0, y1), max(y0, y1)
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, x0, x1)
		r.edgeDevXMax = max(r.edgeDevXMax, x0, x1)
		r.edgeDevYMin = min(r.edgeDevYMin, y0, y1)
		r.edgeDevYMax = max(r.edgeDevYMax, y0, y1)
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})
}

// FillNonZero fills all collected outlines using the nonzero winding
// rule and discards them afterwards.  The emit callback receives coverage
// row by row; its slice argument is valid only during the call.
func (r *Rasterizer) FillNonZero(emit func(y, xMin int, coverage []float32)) {
	defer func() { r.edges = r.edges[:0] }()

	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, emit)
	}
}

// bounds returns the bounding box of the collected edges in device
// coordinates, clamped to the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by integrateScanline:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)

// accumulateEdge adds the contribution of one edge within scanline y to
// the cover and area buffers.  The buffers are indexed by x - bboxXMin.
// Edges spanning several pixel columns are split at the column boundaries.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	// the portion of the edge within [y, y+1)
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	// +1 for downward edges, -1 for upward ones
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pixLeft >= bboxXMax {
		return
	}
	if pixLeft == pixRight {
		accumulateSpan(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// split at the y values where the edge crosses integer x
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		accumulateSpan(e, y0, y1, sign, int(math.Floor(xMid)), cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSpan handles the part of an edge between yTop and yBot, which
// lies within the single pixel column pix.
func accumulateSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += coverVal
	area[idx] += coverVal * float32(1-xFrac)
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// clamp(abs(raw), 0, 1)
		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// fillSmallPath rasterises using 2D buffers covering the whole bounding
// box.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]

		edgeYMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		edgeYMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := edgeYMin; y < edgeYMax; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateScanlineNonZero(coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLargePath rasterises one scanline at a time, using an active edge
// list.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for nextEdge < len(r.edges) && min(r.edges[nextEdge].y0, r.edges[nextEdge].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// remove from active list (swap with last)
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateScanlineNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve approximation accuracy in
	// device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// using 2D buffers.
	smallPathThreshold = 65536

	// maxCurvePieces bounds the number of edges used for a single curve.
	maxCurvePieces = 1 << 12

	// zeroLengthThreshold is the minimum segment length (in device space)
	// for which a stroke segment is generated.
	zeroLengthThreshold = 1e-10
)
