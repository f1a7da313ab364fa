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

import "image"

// Line steps through the pixels of a straight line, using the Bresenham
// algorithm.
type Line struct {
	// err is twice the accumulated error along the minor axis.
	err int

	major, minor int

	// steep is set if y is the major axis.
	steep bool
}

// Reset starts a new line covering the offset d. It returns the sign of
// each coordinate step and the number of steps needed to reach d.
func (l *Line) Reset(d image.Point) (sx, sy, n int) {
	sx, sy = 1, 1
	if d.X < 0 {
		sx, d.X = -1, -d.X
	}
	if d.Y < 0 {
		sy, d.Y = -1, -d.Y
	}
	l.steep = d.Y > d.X
	if l.steep {
		d.X, d.Y = d.Y, d.X
	}
	l.major, l.minor = d.X, d.Y
	l.err = 2*l.minor - l.major
	return sx, sy, l.major
}

// Step advances by one pixel along the major axis. The results are 0 or 1
// and have to be multiplied by the signs returned from Reset.
func (l *Line) Step() (dx, dy int) {
	side := 0
	if l.err > 0 {
		side = 1
		l.err -= 2 * l.major
	}
	l.err += 2 * l.minor
	if l.steep {
		return side, 1
	}
	return 1, side
}

// Pixels returns all pixels of the line from a to b, both ends included.
func Pixels(a, b image.Point) []image.Point {
	var l Line
	sx, sy, n := l.Reset(b.Sub(a))
	res := make([]image.Point, 0, n+1)
	p := a
	res = append(res, p)
	for range n {
		dx, dy := l.Step()
		p.X += dx * sx
		p.Y += dy * sy
		res = append(res, p)
	}
	return res
}
