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

package swirlr

import (
	"slices"

	"honnef.co/go/curve"
)

// Contour is the outline produced by a spiral walk. Inner[i] and Outer[i]
// are the two edge points recorded at step i, in order of increasing
// spiral angle.
type Contour struct {
	Size  float64 // side length of the square canvas
	Inner []Point
	Outer []Point
}

// Points returns the closed outline: the inner edge from the centre
// outwards, followed by the outer edge back towards the centre.
func (c *Contour) Points() []Point {
	pts := make([]Point, 0, len(c.Inner)+len(c.Outer))
	pts = append(pts, c.Inner...)
	for _, p := range slices.Backward(c.Outer) {
		pts = append(pts, p)
	}
	return pts
}

// Path returns the reduced outline as a closed path, see [Reduce].
// An empty contour gives an empty path.
func (c *Contour) Path(minGap float64) curve.BezPath {
	pts := Reduce(c.Points(), minGap)
	if len(pts) == 0 {
		return nil
	}
	p := make(curve.BezPath, 0, len(pts)+1)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}

// Reduce thins out a polyline. The first point is always kept; every
// later point is kept only if it is more than minGap away from the point
// kept last. The order of the points is preserved.
func Reduce(points []Point, minGap float64) []Point {
	if len(points) == 0 {
		return nil
	}
	out := []Point{points[0]}
	last := points[0]
	for _, p := range points[1:] {
		if Distance(last, p) > minGap {
			out = append(out, p)
			last = p
		}
	}
	return out
}
