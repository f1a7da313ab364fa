// swirlr - one-line spiral portraits from photographs
// Copyright (C) 2026  The swirlr authors
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

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is a non-horizontal line segment in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (s *segment) yRange() (float64, float64) {
	return min(s.y0, s.y1), max(s.y0, s.y1)
}

// xAt returns the x coordinate of the segment's supporting line at height y.
func (s *segment) xAt(y float64) float64 {
	return s.x0 + s.dxdy*(y-s.y0)
}

// Rasteriser computes per-pixel coverage of filled paths.
//
// A Rasteriser keeps its scratch buffers between calls, so one instance
// should be reused for all paths drawn onto a canvas.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device region which receives output. The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, allowed when
	// curves are replaced by line segments.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// accumulated into a full 2D buffer. Larger paths are processed one
	// scanline at a time.
	denseLimit int

	cover    []float32
	area     []float32
	segs     []segment
	active   []int
	rowLo    []int
	rowHi    []int
	splits   []float64
	bboxInit bool
	bbox     rect.Rect
}

// NewRasteriser returns a rasteriser with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters while keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.denseLimit = denseLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.segs = r.segs[:0]
	r.active = r.active[:0]
	r.rowLo = r.rowLo[:0]
	r.rowHi = r.rowHi[:0]
	r.splits = r.splits[:0]
}

// FillNonZero fills p using the nonzero winding rule.
//
// Coverage values in [0, 1] are passed to emit one row at a time. Rows
// without coverage are skipped, and each row is trimmed to its non-zero
// part. The coverage slice is reused after emit returns.
func (r *Rasteriser) FillNonZero(p curve.BezPath, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd is like FillNonZero but uses the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p curve.BezPath, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p curve.BezPath, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	x0, x1, y0, y1, ok := r.buildSegments(p)
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.denseLimit {
		r.fillDense(x0, x1, y0, y1, integrate, emit)
	} else {
		r.fillSparse(x0, x1, y0, y1, integrate, emit)
	}
}

// buildSegments flattens p into device space segments. It returns the
// pixel range touched by the path, clipped to r.Clip.
func (r *Rasteriser) buildSegments(p curve.BezPath) (xMin, xMax, yMin, yMax int, ok bool) {
	r.segs = r.segs[:0]
	r.bboxInit = false

	var cur, start vec.Vec2
	for el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			cur = toVec(el.P0)
			start = cur
		case curve.LineToKind:
			next := toVec(el.P0)
			r.addSegment(cur, next)
			cur = next
		case curve.QuadToKind:
			end := toVec(el.P1)
			r.flattenQuad(cur, toVec(el.P0), end, r.addSegment)
			cur = end
		case curve.CubicToKind:
			end := toVec(el.P2)
			r.flattenCubic(cur, toVec(el.P0), toVec(el.P1), end, r.addSegment)
			cur = end
		case curve.ClosePathKind:
			if cur != start {
				r.addSegment(cur, start)
			}
			cur = start
		}
	}
	if len(r.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func toVec(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// device maps a point from path space to device space.
func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceDelta maps a difference vector, ignoring the translation.
func (r *Rasteriser) deviceDelta(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

func (r *Rasteriser) addSegment(from, to vec.Vec2) {
	a := r.device(from)
	b := r.device(to)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalLimit {
		return
	}
	r.segs = append(r.segs, segment{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
	if !r.bboxInit {
		r.bbox = box
		r.bboxInit = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// flattenQuad splits the quadratic Bézier curve p0, p1, p2 into line
// segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.deviceDelta(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier curve into line segments, using
// Wang's formula for the number of pieces.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.deviceDelta(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.deviceDelta(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Each pixel collects two values from the segments which cross it.
// cover is the signed height of the crossing, positive for segments
// which run downwards. area is cover weighted by the part of the pixel
// to the right of the crossing. Summing cover from the left edge of a
// row and adding area gives the signed area of the path inside each
// pixel.

// accumulate adds the part of s inside scanline y to cover and area,
// which are indexed by x-x0 for x in [x0, x1).
func (r *Rasteriser) accumulate(s *segment, y int, cover, area []float32, x0, x1 int) {
	lo, hi := s.yRange()
	top := max(float64(y), lo)
	bot := min(float64(y+1), hi)
	if bot <= top {
		return
	}

	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xa, xb := s.xAt(top), s.xAt(bot)
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Floor(xa))
	right := int(math.Floor(xb))

	if right < x0 {
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	}
	if left >= x1 {
		return
	}

	if left == right {
		r.deposit(s, top, bot, sign, cover, area, x0, x1)
		return
	}

	// The segment crosses several pixel columns. Cut it where it meets
	// the vertical pixel boundaries and handle each piece on its own.
	r.splits = append(r.splits[:0], top, bot)
	for x := left + 1; x <= right; x++ {
		yx := s.y0 + (float64(x)-s.x0)/s.dxdy
		if yx > top && yx < bot {
			r.splits = append(r.splits, yx)
		}
	}
	slices.Sort(r.splits)
	for i := range len(r.splits) - 1 {
		if r.splits[i+1] <= r.splits[i] {
			continue
		}
		r.deposit(s, r.splits[i], r.splits[i+1], sign, cover, area, x0, x1)
	}
}

// deposit adds a piece of s which lies within a single pixel column.
func (r *Rasteriser) deposit(s *segment, top, bot float64, sign float32, cover, area []float32, x0, x1 int) {
	c := sign * float32(bot-top)
	xm := s.xAt((top + bot) / 2)
	px := int(math.Floor(xm))

	switch {
	case px < x0:
		cover[0] += c
		area[0] += c
	case px < x1:
		cover[px-x0] += c
		area[px-x0] += c * float32(1-(xm-float64(px)))
	}
}

// columnOf returns the buffer index of the pixel column where s passes
// through the middle of its part inside scanline y, or -1 if s does not
// reach the scanline.
func columnOf(s *segment, y int, x0, x1 int) int {
	lo, hi := s.yRange()
	top := max(float64(y), lo)
	bot := min(float64(y+1), hi)
	if bot <= top {
		return -1
	}
	x := int(math.Floor(s.xAt((top + bot) / 2)))
	return min(max(x, x0), x1-1) - x0
}

func integrateNonZero(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

func integrateEvenOdd(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trim strips zero coverage from both ends of row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// fillDense accumulates all scanlines into one buffer of the size of the
// bounding box.
func (r *Rasteriser) fillDense(x0, x1, y0, y1 int, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	w, h := x1-x0, y1-y0
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	clear(r.cover)
	clear(r.area)
	r.rowLo = slices.Grow(r.rowLo[:0], h)[:h]
	r.rowHi = slices.Grow(r.rowHi[:0], h)[:h]
	for i := range h {
		r.rowLo[i] = w
		r.rowHi[i] = -1
	}

	for i := range r.segs {
		s := &r.segs[i]
		lo, hi := s.yRange()
		first := max(int(math.Floor(lo)), y0)
		last := min(int(math.Floor(hi))+1, y1)
		for y := first; y < last; y++ {
			row := y - y0
			off := row * w
			r.accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], x0, x1)
			if c := columnOf(s, y, x0, x1); c >= 0 {
				r.rowLo[row] = min(r.rowLo[row], c)
				r.rowHi[row] = max(r.rowHi[row], c)
			}
		}
	}

	for row := range h {
		if r.rowHi[row] < 0 {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w])
		if out, dx := trim(line); out != nil {
			emit(y0+row, x0+dx, out)
		}
	}
}

// fillSparse processes one scanline at a time, keeping a list of the
// segments which intersect the current scanline.
func (r *Rasteriser) fillSparse(x0, x1, y0, y1 int, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		for next < len(r.segs) {
			if lo, _ := r.segs[next].yRange(); lo >= float64(y+1) {
				break
			}
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if _, hi := s.yRange(); hi <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(s, y, r.cover, r.area, x0, x1)
			if columnOf(s, y, x0, x1) >= 0 {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if out, dx := trim(r.cover); out != nil {
			emit(y, x0+dx, out)
		}
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// denseLimit is the default for Rasteriser.denseLimit.
	denseLimit = 65536

	// horizontalLimit is the smallest vertical extent of a segment which
	// contributes to coverage.
	horizontalLimit = 1e-10
)
